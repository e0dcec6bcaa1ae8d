package gitlab

import (
	"context"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/model"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

var _ interfaces.ReleasePublisher = (*Provider)(nil)

const defaultBaseURL = "https://gitlab.com"

// Provider implements the ReleasePublisher interface for GitLab
type Provider struct {
	client *gitlab.Client
	logger logze.Logger
}

// New creates a new GitLab publisher
func New(token, baseURL string) (*Provider, error) {
	if token == "" {
		return nil, errm.New("GitLab token is required")
	}
	logger := logze.With("provider", "gitlab")

	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client, err := gitlab.NewClient(token, gitlab.WithBaseURL(baseURL))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create GitLab client")
	}

	return &Provider{
		client: client,
		logger: logger,
	}, nil
}

// CreateRelease creates a GitLab release for an existing tag
func (p *Provider) CreateRelease(ctx context.Context, repo model.Repository, release model.Release) error {
	opts := &gitlab.CreateReleaseOptions{
		TagName:     gitlab.Ptr(release.TagName),
		Name:        gitlab.Ptr(release.Name),
		Description: gitlab.Ptr(release.Body),
	}
	if release.Commitish != "" {
		opts.Ref = gitlab.Ptr(release.Commitish)
	}

	created, _, err := p.client.Releases.CreateRelease(repo.FullName(), opts, gitlab.WithContext(ctx))
	if err != nil {
		return errm.Wrap(err, "failed to create GitLab release")
	}

	p.logger.Info("release created", "tag", release.TagName, "name", created.Name)
	return nil
}
