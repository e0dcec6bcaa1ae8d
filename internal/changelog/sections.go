package changelog

import (
	"strings"

	"github.com/maxbolgarin/shiplog/internal/model"
)

// buildSection renders one user-facing category, or returns "" when no
// record qualifies. A record qualifies when its type matches the category
// and its body does not carry the internal-only marker.
func buildSection(cat category, records []*model.CommitRecord, internalMarker string, links LinkRenderer) string {
	var lines []string
	for _, r := range records {
		if r.Type != cat.Type || strings.Contains(r.Body, internalMarker) {
			continue
		}
		lines = append(lines, renderLine(r, scopePrefix(r), links))
	}
	if len(lines) == 0 {
		return ""
	}
	return "### " + cat.Title + "\n" + strings.Join(lines, "\n")
}

// renderLine renders one record as a markdown list line:
// scope/type prefix, message, contributor group, PR link group and the
// always-present hash link group.
func renderLine(r *model.CommitRecord, prefix string, links LinkRenderer) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(prefix)
	b.WriteString(r.Message)
	if len(r.Usernames) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(r.Usernames, ", "))
		b.WriteString(")")
	}
	if len(r.PRs) > 0 {
		b.WriteString(" (")
		b.WriteString(links.PRGroup(r.PRs))
		b.WriteString(")")
	}
	b.WriteString(" (")
	b.WriteString(links.HashGroup(r.Hashes))
	b.WriteString(")")
	return b.String()
}

func scopePrefix(r *model.CommitRecord) string {
	if r.Scope == "" {
		return ""
	}
	return "**" + r.Scope + ":** "
}
