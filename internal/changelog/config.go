package changelog

// Config represents changelog engine configuration
type Config struct {
	// InternalMarker is the body token that forces an otherwise
	// user-facing commit into the internal changes footer.
	InternalMarker string `yaml:"internal_marker" env:"CHANGELOG_INTERNAL_MARKER"`

	// BotMarker excludes automation identities from contributor counts
	// by case-insensitive substring match.
	BotMarker string `yaml:"bot_marker" env:"CHANGELOG_BOT_MARKER"`

	// ThankYouAfter is the contributor count above which the thank-you
	// header is emitted.
	ThankYouAfter int `yaml:"thank_you_after" env:"CHANGELOG_THANK_YOU_AFTER"`
}

func (c *Config) PrepareAndValidate() error {
	if c.InternalMarker == "" {
		c.InternalMarker = "[internal]"
	}
	if c.BotMarker == "" {
		c.BotMarker = "bot"
	}
	if c.ThankYouAfter == 0 {
		c.ThankYouAfter = 1
	}
	return nil
}
