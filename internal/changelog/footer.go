package changelog

import (
	"strings"

	"github.com/maxbolgarin/shiplog/internal/model"
)

const (
	footerHeading = "### Nerd stuff"
	footerIntro   = "Internal changes that do not affect the user experience:"
)

// buildFooter renders the deduplicated internal changes block, or ""
// when nothing qualifies.
//
// Eligible are user-facing records that opted out via the internal-only
// marker, followed by every record of an inherently internal type, in a
// fixed concatenation order. Records are deduplicated by full hash with
// first-writer-wins: a later record with an already seen hash is dropped
// entirely, not merged.
func buildFooter(records []*model.CommitRecord, internalMarker string, links LinkRenderer) string {
	var ordered []*model.CommitRecord

	for _, cat := range userFacingCategories {
		for _, r := range records {
			if r.Type == cat.Type && strings.Contains(r.Body, internalMarker) {
				ordered = append(ordered, r)
			}
		}
	}
	for _, t := range internalTypes {
		for _, r := range records {
			if r.Type == t {
				ordered = append(ordered, r)
			}
		}
	}

	seen := make(map[string]bool)
	var lines []string
	for _, r := range ordered {
		if seen[r.Hashes[0].Full] {
			continue
		}
		seen[r.Hashes[0].Full] = true
		lines = append(lines, renderLine(r, typePrefix(r), links))
	}

	if len(lines) == 0 {
		return ""
	}
	return footerHeading + "\n" + footerIntro + "\n" + strings.Join(lines, "\n")
}

// typePrefix renders "type(scope): " merged into one bold prefix so the
// true category stays visible inside the internal bucket.
func typePrefix(r *model.CommitRecord) string {
	if r.Scope == "" {
		return "**" + r.Type + ":** "
	}
	return "**" + r.Type + "(" + r.Scope + "):** "
}
