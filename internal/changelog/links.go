package changelog

import (
	"strings"

	"github.com/maxbolgarin/shiplog/internal/model"
)

// LinkRenderer formats commit and PR references as markdown links for a
// repository resolved once per build.
type LinkRenderer struct {
	repo model.Repository
}

// NewLinkRenderer creates a renderer bound to the repository identity.
func NewLinkRenderer(repo model.Repository) LinkRenderer {
	return LinkRenderer{repo: repo}
}

// PRLink renders a "#123" reference as [#123](…/pull/123).
func (l LinkRenderer) PRLink(ref string) string {
	number := strings.TrimPrefix(ref, "#")
	return "[#" + number + "](" + l.repo.WebURL + "/pull/" + number + ")"
}

// CommitLink renders a hash pair as [short](…/commit/full).
func (l LinkRenderer) CommitLink(h model.Hash) string {
	return "[" + h.Short + "](" + l.repo.WebURL + "/commit/" + h.Full + ")"
}

// HashGroup renders every hash of a possibly merged record.
func (l LinkRenderer) HashGroup(hashes []model.Hash) string {
	parts := make([]string, 0, len(hashes))
	for _, h := range hashes {
		parts = append(parts, l.CommitLink(h))
	}
	return strings.Join(parts, ", ")
}

// PRGroup renders every PR reference of a record.
func (l LinkRenderer) PRGroup(prs []string) string {
	parts := make([]string, 0, len(prs))
	for _, pr := range prs {
		parts = append(parts, l.PRLink(pr))
	}
	return strings.Join(parts, ", ")
}
