package model

// Hash is a pair of short and full commit hashes pointing at the same commit.
type Hash struct {
	Short string `json:"short"`
	Full  string `json:"full"`
}

// CommitRecord is one parsed unit of commit history.
//
// Hashes is a list because records can absorb other records during footer
// deduplication: the survivor keeps its own metadata and appends the hashes
// of the absorbed record.
type CommitRecord struct {
	Hashes    []Hash   `json:"hashes"`
	Type      string   `json:"type"`
	Scope     string   `json:"scope,omitempty"`
	Message   string   `json:"message"`
	Usernames []string `json:"usernames,omitempty"`
	PRs       []string `json:"prs,omitempty"`

	// Body is the raw remaining commit body, kept only to test for
	// control markers (internal-only, breaking change).
	Body string `json:"-"`
}

// ParseResult is the output of a single pass over the raw log blob.
type ParseResult struct {
	Records []*CommitRecord

	// Committers is the distinct set of non-bot committer identities,
	// in first-seen order.
	Committers []string

	// Dropped counts log entries whose title did not match the
	// conventional commit grammar. Dropping is a deliberate filter,
	// the count exists for diagnostics only.
	Dropped int
}
