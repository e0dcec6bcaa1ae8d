package changelog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxbolgarin/shiplog/internal/model"
)

type stubCollaborators struct {
	blob    string
	logErr  error
	tags    []string
	tagsErr error
	repo    model.Repository
}

func (s *stubCollaborators) Log(ctx context.Context, rangeExpr string) (string, error) {
	return s.blob, s.logErr
}

func (s *stubCollaborators) ListTags(ctx context.Context) ([]string, error) {
	return s.tags, s.tagsErr
}

func (s *stubCollaborators) ResolveRepository(ctx context.Context) (model.Repository, error) {
	return s.repo, nil
}

var testRepo = model.Repository{
	Owner:  "acme",
	Name:   "widgets",
	WebURL: "https://github.com/acme/widgets",
}

func newTestBuilder(t *testing.T, stub *stubCollaborators) *Builder {
	t.Helper()
	b, err := NewBuilder(Config{}, stub, stub, stub)
	require.NoError(t, err)
	return b
}

func TestBuildFeatureAndFixScenario(t *testing.T) {
	blob := entry("aaa111", "aaa", "feat(ui): add button (@alice) (#10)", "", "Alice") +
		entry("bbb222", "bbb", "fix: crash on null (@bob)", "", "Bob")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)

	expected := "Thank you to all the contributors who made this release possible!\n\n" +
		"### Features\n" +
		"- **ui:** add button (@alice) ([#10](https://github.com/acme/widgets/pull/10)) ([aaa](https://github.com/acme/widgets/commit/aaa111))\n\n" +
		"### Fixes\n" +
		"- crash on null (@bob) ([bbb](https://github.com/acme/widgets/commit/bbb222))"

	assert.Equal(t, expected, result.Changelog)
}

func TestBuildIsDeterministic(t *testing.T) {
	blob := entry("aaa111", "aaa", "feat: one (@alice)", "", "Alice") +
		entry("bbb222", "bbb", "chore: bump dep", "", "Bob") +
		entry("ccc333", "ccc", "fix: two (@bob)", "", "Alice")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})

	first, err := b.Build(context.Background())
	require.NoError(t, err)
	second, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Changelog, second.Changelog)
}

func TestBuildEmptyInput(t *testing.T) {
	b := newTestBuilder(t, &stubCollaborators{blob: "", repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Changelog)
}

func TestBuildMalformedEntriesOnly(t *testing.T) {
	blob := entry("aaa111", "aaa", "free-form commit message", "", "Alice") +
		entry("bbb222", "bbb", "another plain message", "", "Bob")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Changelog)
	assert.Equal(t, 2, result.Report.Dropped)
}

func TestBuildInternalMarkerMovesToFooter(t *testing.T) {
	blob := entry("aaa111", "aaa", "feat(api): secret rework", "some context\n[internal]", "Alice")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, result.Changelog, "### Features")
	assert.Contains(t, result.Changelog, "### Nerd stuff")
	assert.Contains(t, result.Changelog, "- **feat(api):** secret rework")
}

func TestBuildChoreGoesToFooterOnly(t *testing.T) {
	blob := entry("aaa111", "aaa", "chore: bump dep", "", "Alice")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, result.Changelog, "### Features")
	assert.NotContains(t, result.Changelog, "### Improvements")
	assert.NotContains(t, result.Changelog, "### Fixes")
	assert.NotContains(t, result.Changelog, "Thank you")
	assert.Contains(t, result.Changelog, "### Nerd stuff")
	assert.Contains(t, result.Changelog, "- **chore:** bump dep")
}

func TestBuildFooterDedupFirstWriterWins(t *testing.T) {
	blob := entry("same111", "sam", "docs: explain the API", "", "Alice") +
		entry("same111", "sam", "chore: explain the API", "", "Alice")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, result.Changelog, "- **docs:** explain the API")
	assert.NotContains(t, result.Changelog, "- **chore:**")
}

func TestBuildThankYouThreshold(t *testing.T) {
	single := entry("aaa111", "aaa", "feat: one (@alice)", "", "Alice")
	b := newTestBuilder(t, &stubCollaborators{blob: single, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, result.Changelog, "Thank you")

	pair := entry("aaa111", "aaa", "feat: one (@alice)", "", "Alice") +
		entry("bbb222", "bbb", "fix: two (@bob)", "", "Alice")
	b = newTestBuilder(t, &stubCollaborators{blob: pair, repo: testRepo})
	result, err = b.Build(context.Background())
	require.NoError(t, err)
	assert.Contains(t, result.Changelog, "Thank you to all the contributors")
}

func TestBuildBotsDoNotCountForThankYou(t *testing.T) {
	blob := entry("aaa111", "aaa", "feat: one (@alice, @renovate-bot)", "", "Alice") +
		entry("bbb222", "bbb", "fix: two", "", "github-actions[bot]")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, result.Changelog, "Thank you")
}

func TestBuildFooterAfterSections(t *testing.T) {
	blob := entry("aaa111", "aaa", "feat: visible thing", "", "Alice") +
		entry("bbb222", "bbb", "refactor(core): cleanup", "", "Alice")

	b := newTestBuilder(t, &stubCollaborators{blob: blob, repo: testRepo})
	result, err := b.Build(context.Background())
	require.NoError(t, err)

	expected := "### Features\n" +
		"- visible thing ([aaa](https://github.com/acme/widgets/commit/aaa111))" +
		"\n\n\n" +
		"### Nerd stuff\n" +
		"Internal changes that do not affect the user experience:\n" +
		"- **refactor(core):** cleanup ([bbb](https://github.com/acme/widgets/commit/bbb222))"

	assert.Equal(t, expected, result.Changelog)
}

func TestBuildTagQueryFailureIsFatal(t *testing.T) {
	b := newTestBuilder(t, &stubCollaborators{tagsErr: assert.AnError, repo: testRepo})
	_, err := b.Build(context.Background())
	require.Error(t, err)
}

func TestBuildUsesResolvedRange(t *testing.T) {
	b := newTestBuilder(t, &stubCollaborators{
		blob: entry("aaa111", "aaa", "fix: one", "", "Alice"),
		tags: []string{"v1.0.0", "v1.2.0", "not-a-version"},
		repo: testRepo,
	})
	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", result.Range.PreviousTag)
	assert.Equal(t, "v1.2.0..HEAD", result.Range.Expr)
}
