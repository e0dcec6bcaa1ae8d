package github

import (
	"context"

	"github.com/google/go-github/v57/github"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/model"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
	"golang.org/x/oauth2"
)

var _ interfaces.ReleasePublisher = (*Provider)(nil)

const defaultBaseURL = "https://github.com"

// Provider implements the ReleasePublisher interface for GitHub
type Provider struct {
	client *github.Client
	logger logze.Logger
}

// New creates a new GitHub publisher
func New(token, baseURL string) (*Provider, error) {
	if token == "" {
		return nil, errm.New("GitHub token is required")
	}
	log := logze.With("provider", "github")

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	// Set base URL if provided (for GitHub Enterprise)
	if baseURL != "" && baseURL != defaultBaseURL {
		var err error
		client, err = github.NewClient(tc).WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, errm.Wrap(err, "failed to create GitHub Enterprise client")
		}
	}

	return &Provider{
		client: client,
		logger: log,
	}, nil
}

// CreateRelease creates a GitHub release for an existing tag
func (p *Provider) CreateRelease(ctx context.Context, repo model.Repository, release model.Release) error {
	req := &github.RepositoryRelease{
		TagName: github.String(release.TagName),
		Name:    github.String(release.Name),
		Body:    github.String(release.Body),
	}
	if release.Commitish != "" {
		req.TargetCommitish = github.String(release.Commitish)
	}

	created, _, err := p.client.Repositories.CreateRelease(ctx, repo.Owner, repo.Name, req)
	if err != nil {
		return errm.Wrap(err, "failed to create GitHub release")
	}

	p.logger.Info("release created", "tag", release.TagName, "url", created.GetHTMLURL())
	return nil
}
