package build_test

import (
	"runtime/debug"
	"testing"

	"github.com/amp-labs/amp-flat/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		info, ok := build.Parse(`{
			"version": "v0.3.0",
			"git_commit": "abc123",
			"build_time": "2026-10-05T12:00:00Z",
			"go_version": "go1.25.5",
			"dependencies": {"github.com/zeebo/xxh3": "v1.0.2"}
		}`)

		require.True(t, ok)
		assert.Equal(t, "v0.3.0", info.Version)
		assert.Equal(t, "abc123", info.GitCommit)
		assert.Equal(t, "go1.25.5", info.GoVersion)
		assert.Equal(t, []string{"github.com/zeebo/xxh3"}, info.DependencyNames())
	})

	for _, input := range []string{"", "{}", "{not json"} {
		t.Run("rejects "+input, func(t *testing.T) {
			t.Parallel()

			info, ok := build.Parse(input)
			assert.False(t, ok)
			assert.Nil(t, info)
		})
	}
}

func TestFromBuildInfo(t *testing.T) {
	t.Parallel()

	info := build.FromBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/amp-labs/amp-flat", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: "gopkg.in/yaml.v3", Version: "v3.0.1"},
			{Path: "github.com/spf13/cobra", Version: "v1.9.1"},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
		},
	})

	assert.Equal(t, "(devel)", info.Version)
	assert.Equal(t, "deadbeef", info.GitCommit)
	assert.Equal(t, "2026-10-01T00:00:00Z", info.BuildTime)
	assert.Equal(t, []string{"github.com/spf13/cobra", "gopkg.in/yaml.v3"}, info.DependencyNames())
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, build.Current())
}
