package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/shiplog/internal/changelog"
	"github.com/maxbolgarin/shiplog/internal/model"
)

const breakingMarker = "BREAKING CHANGE"

type level int

const (
	levelPatch level = iota
	levelMinor
	levelMajor
)

// Next computes the next tag name from the previous tag and the parsed
// records: a breaking change bumps major, a feature bumps minor,
// everything else bumps patch. The "v" prefix of the previous tag is
// preserved; a repository without tags starts from defaultPrefix + 0.1.0.
func Next(rng model.ReleaseRange, defaultPrefix string, records []*model.CommitRecord) (string, error) {
	prefix := defaultPrefix
	previous := "0.0.0"
	if rng.PreviousTag != "" {
		previous = rng.PreviousTag
		if !strings.HasPrefix(previous, "v") {
			prefix = ""
		} else {
			prefix = "v"
		}
	}

	v, err := semver.NewVersion(previous)
	if err != nil {
		return "", errm.Wrap(err, "parse previous tag")
	}

	var next semver.Version
	switch bumpLevel(records) {
	case levelMajor:
		next = v.IncMajor()
	case levelMinor:
		next = v.IncMinor()
	default:
		next = v.IncPatch()
	}

	return prefix + next.String(), nil
}

func bumpLevel(records []*model.CommitRecord) level {
	result := levelPatch
	for _, r := range records {
		if strings.Contains(r.Body, breakingMarker) {
			return levelMajor
		}
		if r.Type == changelog.TypeFeature {
			result = levelMinor
		}
	}
	return result
}
