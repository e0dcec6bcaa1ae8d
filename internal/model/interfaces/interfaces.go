package interfaces

import (
	"context"

	"github.com/maxbolgarin/shiplog/internal/model"
)

// HistorySource supplies raw commit history from the local repository.
type HistorySource interface {
	// Log returns the raw delimited log blob for the given range
	// expression, formatted with the changelog entry template.
	Log(ctx context.Context, rangeExpr string) (string, error)
}

// TagSource supplies the list of tag names visible on the remote.
type TagSource interface {
	ListTags(ctx context.Context) ([]string, error)
}

// RepositoryResolver resolves the identity of the remote repository.
type RepositoryResolver interface {
	ResolveRepository(ctx context.Context) (model.Repository, error)
}

// ReleasePublisher creates a release on the remote provider.
type ReleasePublisher interface {
	CreateRelease(ctx context.Context, repo model.Repository, release model.Release) error
}

// HighlightsAgent turns a built changelog into a short highlights
// paragraph. Optional, the release works without it.
type HighlightsAgent interface {
	GenerateHighlights(ctx context.Context, changelog string) (string, error)
}
