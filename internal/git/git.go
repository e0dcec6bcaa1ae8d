package git

import (
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strings"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/changelog"
	"github.com/maxbolgarin/shiplog/internal/model"
)

// Client wraps git CLI operations on a local repository clone.
type Client struct {
	path   string
	remote string
	logger logze.Logger
}

// New creates a new git client for the repository at path.
func New(path, remote string) *Client {
	return &Client{
		path:   path,
		remote: remote,
		logger: logze.With("module", "git"),
	}
}

// Log returns the raw delimited log blob for the given range expression,
// formatted with the changelog entry template.
func (c *Client) Log(ctx context.Context, rangeExpr string) (string, error) {
	out, err := c.run(ctx, "log", "--pretty=format:"+changelog.LogFormat, rangeExpr)
	if err != nil {
		return "", errm.Wrap(err, "git log")
	}
	return out, nil
}

// ListTags returns all tag names visible on the remote, unsorted.
// Annotated tag dereferences (^{} suffix) are skipped, they point at the
// same release as the tag ref itself.
func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "ls-remote", "--tags", "--refs", c.remote)
	if err != nil {
		return nil, errm.Wrap(err, "git ls-remote")
	}

	var tags []string
	for _, line := range strings.Split(out, "\n") {
		_, ref, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		name := strings.TrimPrefix(ref, "refs/tags/")
		if name == ref || strings.HasSuffix(name, "^{}") {
			continue
		}
		tags = append(tags, name)
	}
	return tags, nil
}

var remoteURLPattern = regexp.MustCompile(`^(?:https?://|git@)([^/:]+)[/:]([^/]+)/(.+?)(?:\.git)?$`)

// ResolveRepository parses the remote URL into owner, name and web base URL.
// Both ssh and https remote forms are supported.
func (c *Client) ResolveRepository(ctx context.Context) (model.Repository, error) {
	out, err := c.run(ctx, "remote", "get-url", c.remote)
	if err != nil {
		return model.Repository{}, errm.Wrap(err, "git remote get-url")
	}
	return ParseRemoteURL(strings.TrimSpace(out))
}

// ParseRemoteURL extracts repository identity from a git remote URL.
func ParseRemoteURL(url string) (model.Repository, error) {
	m := remoteURLPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return model.Repository{}, errm.Errorf("unsupported remote URL format: %s", url)
	}
	return model.Repository{
		Owner:  m[2],
		Name:   m[3],
		WebURL: "https://" + m[1] + "/" + m[2] + "/" + m[3],
	}, nil
}

// CurrentBranch returns the name of the checked out branch.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", errm.Wrap(err, "git rev-parse")
	}
	return strings.TrimSpace(out), nil
}

// IsClean reports whether the worktree has no uncommitted changes.
func (c *Client) IsClean(ctx context.Context) (bool, error) {
	out, err := c.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, errm.Wrap(err, "git status")
	}
	return strings.TrimSpace(out) == "", nil
}

// CommitAll stages everything and creates a commit with the given message.
func (c *Client) CommitAll(ctx context.Context, message string) error {
	if _, err := c.run(ctx, "add", "-A"); err != nil {
		return errm.Wrap(err, "git add")
	}
	if _, err := c.run(ctx, "commit", "-m", message); err != nil {
		return errm.Wrap(err, "git commit")
	}
	return nil
}

// CreateTag creates an annotated tag at HEAD.
func (c *Client) CreateTag(ctx context.Context, tag, message string) error {
	if _, err := c.run(ctx, "tag", "-a", tag, "-m", message); err != nil {
		return errm.Wrap(err, "git tag")
	}
	return nil
}

// Push pushes the current branch together with its tags.
func (c *Client) Push(ctx context.Context) error {
	if _, err := c.run(ctx, "push", c.remote, "HEAD", "--follow-tags"); err != nil {
		return errm.Wrap(err, "git push")
	}
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", c.path}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", errm.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", errm.Wrap(err, "git "+args[0])
	}
	return string(out), nil
}
