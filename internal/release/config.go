package release

import "time"

// Config represents release workflow configuration
type Config struct {
	TagPrefix       string        `yaml:"tag_prefix" env:"RELEASE_TAG_PREFIX"`
	AllowedBranches []string      `yaml:"allowed_branches" env:"RELEASE_ALLOWED_BRANCHES"`
	SkipConfirm     bool          `yaml:"skip_confirm" env:"RELEASE_SKIP_CONFIRM"`
	SkipPublish     bool          `yaml:"skip_publish" env:"RELEASE_SKIP_PUBLISH"`
	MaxRetries      int           `yaml:"max_retries" env:"RELEASE_MAX_RETRIES"`
	RetryDelay      time.Duration `yaml:"retry_delay" env:"RELEASE_RETRY_DELAY"`
}

func (c *Config) PrepareAndValidate() error {
	if c.TagPrefix == "" {
		c.TagPrefix = "v"
	}
	if len(c.AllowedBranches) == 0 {
		c.AllowedBranches = []string{"main", "master"}
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = 5 * time.Second
	}
	return nil
}
