package gitea

type createReleaseRequest struct {
	TagName      string `json:"tag_name"`
	Name         string `json:"name"`
	Body         string `json:"body"`
	TargetCommit string `json:"target_commitish,omitempty"`
}
