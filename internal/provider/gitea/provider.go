package gitea

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/model"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
)

var _ interfaces.ReleasePublisher = (*Provider)(nil)

// Provider implements the ReleasePublisher interface for Gitea
type Provider struct {
	client *cliex.HTTP
	logger logze.Logger
}

// New creates a new Gitea publisher. Gitea has no official Go SDK, the
// provider talks to the REST API directly.
func New(token, baseURL string) (*Provider, error) {
	if token == "" {
		return nil, errm.New("Gitea token is required")
	}
	if baseURL == "" {
		return nil, errm.New("Gitea base URL is required")
	}
	log := logze.With("provider", "gitea")

	cli, err := cliex.New(cliex.WithBaseURL(strings.TrimSuffix(baseURL, "/")), cliex.WithLogger(log))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create Gitea client")
	}
	cli.C().SetHeader("Authorization", "token "+token)

	return &Provider{
		client: cli,
		logger: log,
	}, nil
}

// CreateRelease creates a Gitea release for an existing tag
func (p *Provider) CreateRelease(ctx context.Context, repo model.Repository, release model.Release) error {
	apiURL := fmt.Sprintf("/api/v1/repos/%s/%s/releases", repo.Owner, repo.Name)

	payload := createReleaseRequest{
		TagName:      release.TagName,
		Name:         release.Name,
		Body:         release.Body,
		TargetCommit: release.Commitish,
	}

	if _, err := p.client.Post(ctx, apiURL, payload); err != nil {
		return errm.Wrap(err, "failed to create Gitea release")
	}

	p.logger.Info("release created", "tag", release.TagName)
	return nil
}
