package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-flat/bench"
	"github.com/amp-labs/amp-flat/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "workloads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("file with defaults filled in", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
workers: 3
metricsAddr: ":9100"
workloads:
  - name: names
    container: multiset
    storage: small
    keys: natural
    ops: 200
    hint: random
  - container: map
    keys: collated
    locale: sv
`)

		cfg, err := bench.LoadConfig(t.Context(), path)
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, ":9100", cfg.MetricsAddr)
		require.Len(t, cfg.Workloads, 2)

		first := cfg.Workloads[0]
		assert.Equal(t, "names", first.Name)
		assert.Equal(t, bench.ContainerMultiSet, first.Container)
		assert.Equal(t, bench.StorageSmall, first.Storage)
		assert.Equal(t, 200, first.Ops)
		assert.Positive(t, first.KeySpace)

		second := cfg.Workloads[1]
		assert.Equal(t, "map-vector-collated-none", second.Name)
		assert.Equal(t, "sv", second.Locale)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "workers: 3\n")

		ctx := envutil.WithEnvOverride(t.Context(), "FLATBENCH_WORKERS", "9")
		ctx = envutil.WithEnvOverride(ctx, "FLATBENCH_METRICS_ADDR", "localhost:2112")

		cfg, err := bench.LoadConfig(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Workers)
		assert.Equal(t, "localhost:2112", cfg.MetricsAddr)
		assert.Equal(t, bench.DefaultWorkloads(), cfg.Workloads)
	})

	t.Run("config path from the environment", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "workloads:\n  - name: only\n")

		cfg, err := bench.LoadConfig(envutil.WithEnvOverride(t.Context(), "FLATBENCH_CONFIG", path), "")
		require.NoError(t, err)
		require.Len(t, cfg.Workloads, 1)
		assert.Equal(t, "only", cfg.Workloads[0].Name)
	})

	t.Run("invalid workers", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "workers: 2\n")

		_, err := bench.LoadConfig(envutil.WithEnvOverride(t.Context(), "FLATBENCH_WORKERS", "0"), path)
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "workloads:\n  - name: x\n    colour: blue\n")

		_, err := bench.LoadConfig(t.Context(), path)
		require.Error(t, err)
	})

	t.Run("invalid workloads are all reported", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
workloads:
  - name: a
    container: heap
  - name: a
    eraseRatio: 2
`)

		_, err := bench.LoadConfig(t.Context(), path)
		require.ErrorIs(t, err, bench.ErrInvalidWorkload)
		assert.Contains(t, err.Error(), "heap")
		assert.Contains(t, err.Error(), "eraseRatio")
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := bench.LoadConfig(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDefaultWorkloads(t *testing.T) {
	t.Parallel()

	workloads := bench.DefaultWorkloads()
	assert.Len(t, workloads, len(bench.Containers)*len(bench.KeyKinds)*len(bench.Storages))

	cfg := bench.Config{Workers: 1, Workloads: workloads}
	require.NoError(t, cfg.Validate())
}
