package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-flat/envutil"
	"github.com/amp-labs/amp-flat/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWorkload = errors.New("workload failed")

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range bytes.Lines(buf.Bytes()) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec))

		out = append(out, rec)
	}

	return out
}

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest // replaces the default logger
	var buf bytes.Buffer

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "flatbench",
		JSON:      true,
		MinLevel:  slog.LevelInfo,
		Output:    &buf,
	})

	logger.Get().Debug("dropped")
	logger.Get().Info("kept")

	ctx := logger.With(logger.WithSubsystem(t.Context(), "runner"), "workload", "w1")
	logger.Get(ctx).Warn("with values")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "flatbench", lines[0]["subsystem"])

	assert.Equal(t, "runner", lines[1]["subsystem"])
	assert.Equal(t, "w1", lines[1]["workload"])
}

func TestAnnotatedErrorsAreExpanded(t *testing.T) { //nolint:paralleltest // replaces the default logger
	var buf bytes.Buffer

	logger.ConfigureLoggingWithOptions(logger.Options{JSON: true, Output: &buf})

	err := logger.AnnotateError(errWorkload, "workload", "w2", "ops", 10)
	logger.Get().Error("run failed", "error", err)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "workload failed", lines[0]["error"])
	assert.Equal(t, "w2", lines[0]["workload"])
	assert.InDelta(t, 10, lines[0]["ops"], 0)
}

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	require.NoError(t, logger.AnnotateError(nil, "k", "v"))

	inner := logger.AnnotateError(errWorkload, "inner", 1)
	outer := logger.AnnotateError(inner, "outer", 2)

	require.ErrorIs(t, outer, errWorkload)
	assert.Equal(t, "workload failed", outer.Error())

	attrs := logger.ErrorAttrs(outer)
	require.Len(t, attrs, 2)
	assert.Equal(t, "outer", attrs[0].Key)
	assert.Equal(t, "inner", attrs[1].Key)

	assert.Empty(t, logger.ErrorAttrs(errWorkload))
}

func TestOptionsFromEnv(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "debug")
	ctx = envutil.WithEnvOverride(ctx, "LOG_OUTPUT", "stderr")

	opts, err := logger.OptionsFromEnv(ctx, "flatbench")
	require.NoError(t, err)
	assert.True(t, opts.JSON)
	assert.Equal(t, slog.LevelDebug, opts.MinLevel)
	assert.Equal(t, "flatbench", opts.Subsystem)

	_, err = logger.OptionsFromEnv(envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "syslog"), "x")
	require.ErrorIs(t, err, logger.ErrInvalidLogOutput)
}
