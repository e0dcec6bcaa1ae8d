package agent

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
	"google.golang.org/genai"
)

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 1024

	systemPrompt = "You are a release manager. Given a markdown changelog, " +
		"write a short Highlights paragraph (3-5 sentences) for the release notes. " +
		"Mention only the most important user-facing changes. Plain prose, no lists, no headings."
)

var _ interfaces.HighlightsAgent = (*Agent)(nil)

// Config represents highlights agent configuration
type Config struct {
	APIKey   string `yaml:"api_key" env:"AGENT_API_KEY"`
	Model    string `yaml:"model" env:"AGENT_MODEL"`
	ProxyURL string `yaml:"proxy_url" env:"AGENT_PROXY_URL"`
}

// Agent generates an optional highlights paragraph for a built changelog
// using the Gemini API. The deterministic changelog itself never depends
// on it.
type Agent struct {
	client *genai.Client
	cfg    Config
}

// New creates a new Gemini highlights agent
func New(ctx context.Context, cfg Config) (*Agent, error) {
	if cfg.APIKey == "" {
		return nil, erro.New("Gemini API key is required")
	}
	cfg.Model = lang.Check(cfg.Model, defaultModel)

	transport := &http.Transport{}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, erro.Wrap(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Transport: transport,
		},
	})
	if err != nil {
		return nil, erro.Wrap(err, "failed to create Gemini client")
	}

	return &Agent{
		client: client,
		cfg:    cfg,
	}, nil
}

// GenerateHighlights asks the model for a highlights paragraph.
func (a *Agent) GenerateHighlights(ctx context.Context, changelog string) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType:  "text/plain",
		MaxOutputTokens:   defaultMaxTokens,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}

	result, err := a.client.Models.GenerateContent(ctx,
		a.cfg.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: changelog}}}},
		config,
	)
	if err != nil {
		return "", handleAPIError(err)
	}

	var content string
	if len(result.Candidates) > 0 {
		candidate := result.Candidates[0]
		if candidate.Content != nil && len(candidate.Content.Parts) > 0 {
			content = candidate.Content.Parts[0].Text
		}
	}
	if strings.TrimSpace(content) == "" {
		return "", erro.New("empty response from Gemini API")
	}

	return strings.TrimSpace(content), nil
}

func handleAPIError(err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "429"):
		return erro.New("rate limit exceeded")
	case strings.Contains(errStr, "401") || strings.Contains(errStr, "403"):
		return erro.New("authentication failed")
	case strings.Contains(errStr, "503"):
		return erro.New("Gemini API service unavailable")
	default:
		return erro.Wrap(err, "Gemini API error")
	}
}
