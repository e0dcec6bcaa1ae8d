package release

import (
	"context"
	"slices"
	"time"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/changelog"
	"github.com/maxbolgarin/shiplog/internal/model"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
	"github.com/maxbolgarin/shiplog/internal/version"
)

// GitClient is the part of the git collaborator the releaser needs.
type GitClient interface {
	interfaces.RepositoryResolver
	CurrentBranch(ctx context.Context) (string, error)
	IsClean(ctx context.Context) (bool, error)
	CreateTag(ctx context.Context, tag, message string) error
	Push(ctx context.Context) error
}

// Releaser orchestrates the release workflow: preflight checks, changelog
// build, version bump, confirmation, tagging and remote publishing.
type Releaser struct {
	cfg       Config
	git       GitClient
	builder   *changelog.Builder
	publisher interfaces.ReleasePublisher
	agent     interfaces.HighlightsAgent
	logger    logze.Logger
}

// New creates a new releaser. Publisher and agent are optional, the
// workflow degrades to tag-and-push without them.
func New(cfg Config, git GitClient, builder *changelog.Builder, publisher interfaces.ReleasePublisher, agent interfaces.HighlightsAgent) (*Releaser, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}
	return &Releaser{
		cfg:       cfg,
		git:       git,
		builder:   builder,
		publisher: publisher,
		agent:     agent,
		logger:    logze.With("module", "release"),
	}, nil
}

// Run executes one release end to end. It returns the built changelog
// together with the created tag name.
func (r *Releaser) Run(ctx context.Context) (model.Release, error) {
	timer := abstract.StartTimer()

	if err := r.preflight(ctx); err != nil {
		return model.Release{}, errm.Wrap(err, "preflight failed")
	}

	result, err := r.builder.Build(ctx)
	if err != nil {
		return model.Release{}, errm.Wrap(err, "failed to build changelog")
	}
	if result.Changelog == "" {
		return model.Release{}, errm.New("nothing to release: no well-formed commits in range")
	}

	tag, err := version.Next(result.Range, r.cfg.TagPrefix, result.Records)
	if err != nil {
		return model.Release{}, errm.Wrap(err, "failed to compute next version")
	}

	body := result.Changelog
	if r.agent != nil {
		if highlights, err := r.agent.GenerateHighlights(ctx, result.Changelog); err != nil {
			// Highlights are decoration, a failing agent never blocks a release.
			r.logger.Warn("failed to generate highlights", "error", err)
		} else {
			body = "### Highlights\n" + highlights + "\n\n" + body
		}
	}

	release := model.Release{
		TagName: tag,
		Name:    tag,
		Body:    body,
	}

	if !r.cfg.SkipConfirm {
		ok, err := Confirm(release)
		if err != nil {
			return model.Release{}, errm.Wrap(err, "confirmation failed")
		}
		if !ok {
			return model.Release{}, errm.New("release aborted by user")
		}
	}

	if err := r.git.CreateTag(ctx, tag, "Release "+tag); err != nil {
		return model.Release{}, errm.Wrap(err, "failed to create tag")
	}
	if err := r.git.Push(ctx); err != nil {
		return model.Release{}, errm.Wrap(err, "failed to push")
	}

	if !r.cfg.SkipPublish && r.publisher != nil {
		repo, err := r.git.ResolveRepository(ctx)
		if err != nil {
			return model.Release{}, errm.Wrap(err, "failed to resolve repository")
		}
		if err := r.publishWithRetry(ctx, repo, release); err != nil {
			return model.Release{}, errm.Wrap(err, "failed to publish release")
		}
	}

	r.logger.Info("release finished",
		"tag", tag,
		"dropped_entries", result.Report.Dropped,
		"elapsed_time", timer.ElapsedTime().String(),
	)

	return release, nil
}

func (r *Releaser) preflight(ctx context.Context) error {
	branch, err := r.git.CurrentBranch(ctx)
	if err != nil {
		return errm.Wrap(err, "failed to get current branch")
	}
	if !slices.Contains(r.cfg.AllowedBranches, branch) {
		return errm.New("releases are not allowed from branch %q", branch)
	}

	clean, err := r.git.IsClean(ctx)
	if err != nil {
		return errm.Wrap(err, "failed to check worktree")
	}
	if !clean {
		return errm.New("worktree has uncommitted changes")
	}

	return nil
}

func (r *Releaser) publishWithRetry(ctx context.Context, repo model.Repository, release model.Release) error {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxRetries; attempt++ {
		lastErr = r.publisher.CreateRelease(ctx, repo, release)
		if lastErr == nil {
			return nil
		}

		r.logger.Warn("publish attempt failed",
			"attempt", attempt,
			"max_retries", r.cfg.MaxRetries,
			"error", lastErr,
		)

		if attempt == r.cfg.MaxRetries {
			break
		}
		select {
		case <-time.After(r.cfg.RetryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
