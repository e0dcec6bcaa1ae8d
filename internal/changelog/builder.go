package changelog

import (
	"context"
	"strings"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/model"
	"github.com/maxbolgarin/shiplog/internal/model/interfaces"
)

const thankYouHeader = "Thank you to all the contributors who made this release possible!"

// Builder assembles a release changelog from commit history. It is a pure
// function from the range-produced raw log text to a markdown string; the
// only blocking operations are the collaborator calls for repository
// identity, tags and log text.
type Builder struct {
	cfg     Config
	history interfaces.HistorySource
	tags    interfaces.TagSource
	repos   interfaces.RepositoryResolver
	parser  *Parser
	logger  logze.Logger
}

// NewBuilder creates a changelog builder.
func NewBuilder(cfg Config, history interfaces.HistorySource, tags interfaces.TagSource, repos interfaces.RepositoryResolver) (*Builder, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}
	return &Builder{
		cfg:     cfg,
		history: history,
		tags:    tags,
		repos:   repos,
		parser:  NewParser(cfg.BotMarker),
		logger:  logze.With("module", "changelog"),
	}, nil
}

// Result is the outcome of one changelog build.
type Result struct {
	Changelog string
	Range     model.ReleaseRange
	Records   []*model.CommitRecord
	Report    model.Report
}

// Build resolves the range, fetches the log and assembles the changelog.
// An input with zero well-formed entries yields an empty changelog, not
// an error. Collaborator failures are fatal and propagated immediately.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	// Resolved once per build and passed down, link rendering never
	// re-queries repository identity.
	repo, err := b.repos.ResolveRepository(ctx)
	if err != nil {
		return Result{}, errm.Wrap(err, "failed to resolve repository")
	}

	rng, err := ResolveRange(ctx, b.tags)
	if err != nil {
		return Result{}, errm.Wrap(err, "failed to resolve release range")
	}

	blob, err := b.history.Log(ctx, rng.Expr)
	if err != nil {
		return Result{}, errm.Wrap(err, "failed to fetch log")
	}

	parsed := b.parser.Parse(blob)
	contributors := b.distinctContributors(parsed.Records)

	result := Result{
		Range:   rng,
		Records: parsed.Records,
		Report: model.Report{
			Range:        rng,
			Parsed:       len(parsed.Records),
			Dropped:      parsed.Dropped,
			Contributors: len(contributors),
			Committers:   len(parsed.Committers),
		},
	}

	links := NewLinkRenderer(repo)

	var parts []string
	if len(contributors) > b.cfg.ThankYouAfter || len(parsed.Committers) > b.cfg.ThankYouAfter {
		parts = append(parts, thankYouHeader)
	}
	for _, cat := range userFacingCategories {
		if section := buildSection(cat, parsed.Records, b.cfg.InternalMarker, links); section != "" {
			parts = append(parts, section)
		}
	}

	text := strings.Join(parts, "\n\n")
	if footer := buildFooter(parsed.Records, b.cfg.InternalMarker, links); footer != "" {
		if text != "" {
			text += "\n\n\n"
		}
		text += footer
	}

	b.logger.Info("changelog built",
		"range", rng.Expr,
		"parsed", result.Report.Parsed,
		"dropped", result.Report.Dropped,
		"contributors", result.Report.Contributors,
	)

	result.Changelog = text
	return result, nil
}

// distinctContributors collects the distinct non-bot usernames from the
// contributor annotations, in first-seen order.
func (b *Builder) distinctContributors(records []*model.CommitRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		for _, u := range r.Usernames {
			if strings.Contains(strings.ToLower(u), strings.ToLower(b.cfg.BotMarker)) {
				continue
			}
			if !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}
	return out
}
