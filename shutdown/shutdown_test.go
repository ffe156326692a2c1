package shutdown_test

import (
	"testing"

	"github.com/amp-labs/amp-flat/shutdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdown(t *testing.T) {
	t.Parallel()

	handler, ctx := shutdown.New(t.Context())

	var order []string

	handler.BeforeShutdown(func() {
		require.Error(t, ctx.Err())

		order = append(order, "metrics")
	})
	handler.BeforeShutdown(func() { order = append(order, "report") })

	require.NoError(t, ctx.Err())

	handler.Shutdown()
	handler.Shutdown()

	assert.Equal(t, []string{"metrics", "report"}, order)
	assert.Error(t, ctx.Err())
}

func TestListenStop(t *testing.T) {
	t.Parallel()

	handler, ctx := shutdown.New(t.Context())

	stop := handler.Listen()
	stop()
	stop()

	require.NoError(t, ctx.Err())
}
