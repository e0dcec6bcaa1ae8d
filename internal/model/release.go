package model

// ReleaseRange describes the portion of history being summarized.
// It is produced once per build by the range resolver and passed
// explicitly to everything that needs it, never read from shared state.
type ReleaseRange struct {
	// PreviousTag is the highest semver tag on the remote, empty when
	// the repository has never been tagged.
	PreviousTag string `json:"previous_tag,omitempty"`

	// Expr is the git revision range expression: "tag..HEAD", or "HEAD"
	// when the whole history is in scope.
	Expr string `json:"expr"`
}

// FromRoot reports whether the range covers the entire history.
func (r ReleaseRange) FromRoot() bool {
	return r.PreviousTag == ""
}

// Repository identifies the remote repository, resolved once per build
// and used for rendering commit and PR links.
type Repository struct {
	Owner  string `json:"owner"`
	Name   string `json:"name"`
	WebURL string `json:"web_url"`
}

// FullName returns the "owner/name" form used by provider APIs.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Release is what gets published to the remote provider.
type Release struct {
	TagName   string `json:"tag_name"`
	Name      string `json:"name"`
	Body      string `json:"body"`
	Commitish string `json:"commitish,omitempty"`
}

// Report carries diagnostic counters from a changelog build.
type Report struct {
	Range        ReleaseRange `json:"range"`
	Parsed       int          `json:"parsed"`
	Dropped      int          `json:"dropped"`
	Contributors int          `json:"contributors"`
	Committers   int          `json:"committers"`
}
