package changelog

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/shiplog/internal/model"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
)

// ResolveRange determines the commit range to summarize: everything after
// the highest semver tag on the remote, or the whole history when the
// repository has never been tagged. Tags that do not parse as semver are
// ignored. A failing tag query is fatal and propagated as is.
func ResolveRange(ctx context.Context, tags interfaces.TagSource) (model.ReleaseRange, error) {
	list, err := tags.ListTags(ctx)
	if err != nil {
		return model.ReleaseRange{}, errm.Wrap(err, "failed to list remote tags")
	}

	var best *semver.Version
	var bestName string
	for _, name := range list {
		v, err := semver.NewVersion(name)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestName = name
		}
	}

	if bestName == "" {
		return model.ReleaseRange{Expr: "HEAD"}, nil
	}
	return model.ReleaseRange{
		PreviousTag: bestName,
		Expr:        bestName + "..HEAD",
	}, nil
}
