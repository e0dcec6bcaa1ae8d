package release

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxbolgarin/shiplog/internal/changelog"
	"github.com/maxbolgarin/shiplog/internal/model"
)

type stubGit struct {
	branch string
	clean  bool
	blob   string
	tags   []string

	createdTag string
	pushed     bool
}

func (s *stubGit) CurrentBranch(ctx context.Context) (string, error) { return s.branch, nil }
func (s *stubGit) IsClean(ctx context.Context) (bool, error)         { return s.clean, nil }
func (s *stubGit) Push(ctx context.Context) error                    { s.pushed = true; return nil }
func (s *stubGit) Log(ctx context.Context, rangeExpr string) (string, error) {
	return s.blob, nil
}
func (s *stubGit) ListTags(ctx context.Context) ([]string, error) { return s.tags, nil }
func (s *stubGit) CreateTag(ctx context.Context, tag, message string) error {
	s.createdTag = tag
	return nil
}
func (s *stubGit) ResolveRepository(ctx context.Context) (model.Repository, error) {
	return model.Repository{Owner: "acme", Name: "widgets", WebURL: "https://github.com/acme/widgets"}, nil
}

type stubPublisher struct {
	failures int
	attempts int
}

func (s *stubPublisher) CreateRelease(ctx context.Context, repo model.Repository, release model.Release) error {
	s.attempts++
	if s.attempts <= s.failures {
		return assert.AnError
	}
	return nil
}

func testEntry(full, short, title string) string {
	return strings.Join([]string{full, short, title, "", "Alice"}, changelog.FieldDelimiter) +
		changelog.EntryDelimiter
}

func newTestReleaser(t *testing.T, git *stubGit, publisher *stubPublisher) *Releaser {
	t.Helper()

	builder, err := changelog.NewBuilder(changelog.Config{}, git, git, git)
	require.NoError(t, err)

	cfg := Config{
		SkipConfirm: true,
		MaxRetries:  3,
		RetryDelay:  time.Millisecond,
	}
	r, err := New(cfg, git, builder, publisher, nil)
	require.NoError(t, err)
	return r
}

func TestRunTagsAndPublishes(t *testing.T) {
	git := &stubGit{
		branch: "main",
		clean:  true,
		blob:   testEntry("aaa111", "aaa", "feat: shiny thing"),
		tags:   []string{"v1.2.3"},
	}
	publisher := &stubPublisher{}

	rel, err := newTestReleaser(t, git, publisher).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "v1.3.0", rel.TagName)
	assert.Equal(t, "v1.3.0", git.createdTag)
	assert.True(t, git.pushed)
	assert.Equal(t, 1, publisher.attempts)
	assert.Contains(t, rel.Body, "shiny thing")
}

func TestRunRetriesPublish(t *testing.T) {
	git := &stubGit{
		branch: "main",
		clean:  true,
		blob:   testEntry("aaa111", "aaa", "fix: a bug"),
		tags:   []string{"v1.2.3"},
	}
	publisher := &stubPublisher{failures: 2}

	_, err := newTestReleaser(t, git, publisher).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, publisher.attempts)
}

func TestRunPublishFailsAfterAllRetries(t *testing.T) {
	git := &stubGit{
		branch: "main",
		clean:  true,
		blob:   testEntry("aaa111", "aaa", "fix: a bug"),
		tags:   []string{"v1.2.3"},
	}
	publisher := &stubPublisher{failures: 10}

	_, err := newTestReleaser(t, git, publisher).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, publisher.attempts)
}

func TestRunRejectsWrongBranch(t *testing.T) {
	git := &stubGit{branch: "dev", clean: true}

	_, err := newTestReleaser(t, git, &stubPublisher{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestRunRejectsDirtyWorktree(t *testing.T) {
	git := &stubGit{branch: "main", clean: false}

	_, err := newTestReleaser(t, git, &stubPublisher{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uncommitted")
}

func TestRunNothingToRelease(t *testing.T) {
	git := &stubGit{branch: "main", clean: true, blob: ""}

	_, err := newTestReleaser(t, git, &stubPublisher{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to release")
	assert.Empty(t, git.createdTag)
}
