package config

import (
	"time"
)

// Config represents the main application configuration
type Config struct {
	Repo      RepoConfig      `yaml:"repo"`
	Provider  ProviderConfig  `yaml:"provider"`
	Changelog ChangelogConfig `yaml:"changelog"`
	Release   ReleaseConfig   `yaml:"release"`
	Agent     AgentConfig     `yaml:"agent"`
}

// RepoConfig represents local repository configuration
type RepoConfig struct {
	Path            string   `yaml:"path" env:"REPO_PATH"`
	Remote          string   `yaml:"remote" env:"REPO_REMOTE"`
	AllowedBranches []string `yaml:"allowed_branches" env:"REPO_ALLOWED_BRANCHES"`
}

// ProviderConfig represents release provider configuration
type ProviderConfig struct {
	Type    string `yaml:"type" env:"PROVIDER_TYPE"` // github, gitlab, gitea
	BaseURL string `yaml:"base_url" env:"PROVIDER_BASE_URL"`
	Token   string `yaml:"token" env:"PROVIDER_TOKEN"`
}

// ChangelogConfig represents changelog engine configuration
type ChangelogConfig struct {
	InternalMarker string `yaml:"internal_marker" env:"CHANGELOG_INTERNAL_MARKER"`
	BotMarker      string `yaml:"bot_marker" env:"CHANGELOG_BOT_MARKER"`
	ThankYouAfter  int    `yaml:"thank_you_after" env:"CHANGELOG_THANK_YOU_AFTER"`
}

// ReleaseConfig represents release workflow configuration
type ReleaseConfig struct {
	TagPrefix   string        `yaml:"tag_prefix" env:"RELEASE_TAG_PREFIX"`
	SkipConfirm bool          `yaml:"skip_confirm" env:"RELEASE_SKIP_CONFIRM"`
	SkipPublish bool          `yaml:"skip_publish" env:"RELEASE_SKIP_PUBLISH"`
	MaxRetries  int           `yaml:"max_retries" env:"RELEASE_MAX_RETRIES"`
	RetryDelay  time.Duration `yaml:"retry_delay" env:"RELEASE_RETRY_DELAY"`
}

// AgentConfig represents optional AI highlights configuration
type AgentConfig struct {
	APIKey   string `yaml:"api_key" env:"AGENT_API_KEY"`
	Model    string `yaml:"model" env:"AGENT_MODEL"`
	ProxyURL string `yaml:"proxy_url" env:"AGENT_PROXY_URL"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !c.Release.SkipPublish {
		if c.Provider.Type == "" {
			return ErrMissingProviderType
		}
		if c.Provider.Token == "" {
			return ErrMissingProviderToken
		}
	}
	return nil
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	// Repo defaults
	if c.Repo.Path == "" {
		c.Repo.Path = "."
	}
	if c.Repo.Remote == "" {
		c.Repo.Remote = "origin"
	}
	if len(c.Repo.AllowedBranches) == 0 {
		c.Repo.AllowedBranches = []string{"main", "master"}
	}

	// Changelog defaults
	if c.Changelog.InternalMarker == "" {
		c.Changelog.InternalMarker = "[internal]"
	}
	if c.Changelog.BotMarker == "" {
		c.Changelog.BotMarker = "bot"
	}
	if c.Changelog.ThankYouAfter == 0 {
		c.Changelog.ThankYouAfter = 1
	}

	// Release defaults
	if c.Release.TagPrefix == "" {
		c.Release.TagPrefix = "v"
	}
	if c.Release.MaxRetries == 0 {
		c.Release.MaxRetries = 3
	}
	if c.Release.RetryDelay == 0 {
		c.Release.RetryDelay = 5 * time.Second
	}
}
