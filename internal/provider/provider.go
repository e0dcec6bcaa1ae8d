package provider

import (
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
	"github.com/maxbolgarin/shiplog/internal/provider/gitea"
	"github.com/maxbolgarin/shiplog/internal/provider/github"
	"github.com/maxbolgarin/shiplog/internal/provider/gitlab"
)

// NewPublisher creates a new release publisher based on the configuration
func NewPublisher(cfg Config) (interfaces.ReleasePublisher, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	var publisher interfaces.ReleasePublisher
	var err error

	switch cfg.Type {
	case GitHub:
		publisher, err = github.New(cfg.Token, cfg.BaseURL)
	case GitLab:
		publisher, err = gitlab.New(cfg.Token, cfg.BaseURL)
	case Gitea:
		publisher, err = gitea.New(cfg.Token, cfg.BaseURL)
	default:
		return nil, erro.New("unsupported provider type: %s", cfg.Type)
	}
	if err != nil {
		return nil, erro.Wrap(err, "failed to create publisher")
	}

	return publisher, nil
}
