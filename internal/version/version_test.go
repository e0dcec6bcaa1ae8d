package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxbolgarin/shiplog/internal/model"
)

func record(typ, body string) *model.CommitRecord {
	return &model.CommitRecord{Type: typ, Body: body, Message: "m", Hashes: []model.Hash{{Short: "s", Full: "f"}}}
}

func TestNextPatchByDefault(t *testing.T) {
	tag, err := Next(model.ReleaseRange{PreviousTag: "v1.2.3"}, "v", []*model.CommitRecord{
		record("fix", ""),
		record("chore", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, "v1.2.4", tag)
}

func TestNextMinorOnFeature(t *testing.T) {
	tag, err := Next(model.ReleaseRange{PreviousTag: "v1.2.3"}, "v", []*model.CommitRecord{
		record("fix", ""),
		record("feat", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, "v1.3.0", tag)
}

func TestNextMajorOnBreakingChange(t *testing.T) {
	tag, err := Next(model.ReleaseRange{PreviousTag: "v1.2.3"}, "v", []*model.CommitRecord{
		record("feat", "BREAKING CHANGE: renamed the config keys"),
	})
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", tag)
}

func TestNextKeepsBareVersionStyle(t *testing.T) {
	tag, err := Next(model.ReleaseRange{PreviousTag: "1.2.3"}, "v", []*model.CommitRecord{
		record("fix", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, "1.2.4", tag)
}

func TestNextFirstRelease(t *testing.T) {
	tag, err := Next(model.ReleaseRange{}, "v", []*model.CommitRecord{
		record("feat", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0", tag)
}

func TestNextRejectsUnparsableTag(t *testing.T) {
	_, err := Next(model.ReleaseRange{PreviousTag: "nightly"}, "v", nil)
	require.Error(t, err)
}
