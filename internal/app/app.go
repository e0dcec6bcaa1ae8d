package app

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/agent"
	"github.com/maxbolgarin/shiplog/internal/changelog"
	"github.com/maxbolgarin/shiplog/internal/config"
	"github.com/maxbolgarin/shiplog/internal/git"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
	"github.com/maxbolgarin/shiplog/internal/provider"
	"github.com/maxbolgarin/shiplog/internal/release"
)

// Shiplog is the main service that orchestrates all components
type Shiplog struct {
	git      *git.Client
	builder  *changelog.Builder
	releaser *release.Releaser

	cfg config.Config
	log logze.Logger
}

// New creates a new release service
func New(ctx contem.Context, cfg config.Config) (*Shiplog, error) {
	service := &Shiplog{
		cfg: cfg,
		log: logze.With("component", "app"),
	}

	if err := service.init(ctx, cfg); err != nil {
		return nil, errm.Wrap(err, "failed to initialize service")
	}

	return service, nil
}

// BuildChangelog builds the changelog for the pending release without
// touching tags or the remote.
func (s *Shiplog) BuildChangelog(ctx contem.Context) (changelog.Result, error) {
	result, err := s.builder.Build(ctx)
	if err != nil {
		return changelog.Result{}, errm.Wrap(err, "failed to build changelog")
	}
	return result, nil
}

// Release runs the full release workflow once.
func (s *Shiplog) Release(ctx contem.Context) error {
	rel, err := s.releaser.Run(ctx)
	if err != nil {
		return errm.Wrap(err, "failed to run release")
	}
	s.log.Info("released", "tag", rel.TagName)
	return nil
}

func (s *Shiplog) init(ctx contem.Context, cfg config.Config) (err error) {

	// Local git collaborator: history, tags and repository identity
	s.git = git.New(cfg.Repo.Path, cfg.Repo.Remote)

	// Changelog engine
	s.builder, err = changelog.NewBuilder(changelog.Config{
		InternalMarker: cfg.Changelog.InternalMarker,
		BotMarker:      cfg.Changelog.BotMarker,
		ThankYouAfter:  cfg.Changelog.ThankYouAfter,
	}, s.git, s.git, s.git)
	if err != nil {
		return errm.Wrap(err, "failed to create changelog builder")
	}

	// Remote release publisher
	var publisher interfaces.ReleasePublisher
	if !cfg.Release.SkipPublish {
		publisher, err = provider.NewPublisher(provider.Config{
			Type:    provider.ProviderType(cfg.Provider.Type),
			BaseURL: cfg.Provider.BaseURL,
			Token:   cfg.Provider.Token,
		})
		if err != nil {
			return errm.Wrap(err, "failed to create release publisher")
		}
	}

	// Optional AI highlights
	var highlights interfaces.HighlightsAgent
	if cfg.Agent.APIKey != "" {
		highlights, err = agent.New(ctx, agent.Config{
			APIKey:   cfg.Agent.APIKey,
			Model:    cfg.Agent.Model,
			ProxyURL: cfg.Agent.ProxyURL,
		})
		if err != nil {
			return errm.Wrap(err, "failed to create highlights agent")
		}
	}

	// Release orchestrator
	s.releaser, err = release.New(release.Config{
		TagPrefix:       cfg.Release.TagPrefix,
		AllowedBranches: cfg.Repo.AllowedBranches,
		SkipConfirm:     cfg.Release.SkipConfirm,
		SkipPublish:     cfg.Release.SkipPublish,
		MaxRetries:      cfg.Release.MaxRetries,
		RetryDelay:      cfg.Release.RetryDelay,
	}, s.git, s.builder, publisher, highlights)
	if err != nil {
		return errm.Wrap(err, "failed to create releaser")
	}

	return nil
}

// LoadConfig reads configuration from an optional YAML file and the
// environment, then applies defaults and validates the result.
func LoadConfig(path string) (config.Config, error) {
	var cfg config.Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, errm.Wrap(err, "config file is not accessible")
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, errm.Wrap(err, "failed to read config file")
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, errm.Wrap(err, "failed to read environment")
		}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, errm.Wrap(err, "invalid config")
	}

	return cfg, nil
}
