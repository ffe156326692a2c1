//go:build !assertions_disabled

package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-flat/assert"
	"github.com/stretchr/testify/require"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	t.Run("passes on true", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() { assert.True(true) })
	})

	t.Run("panics with default message", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed", func() { assert.True(false) })
	})

	t.Run("panics with formatted message", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "hint 7 is bad", func() { assert.True(false, "hint %d is %s", 7, "bad") })
	})

	t.Run("panics with non-string args", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed: [42]", func() { assert.True(false, 42) })
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { assert.False(false) })
	require.Panics(t, func() { assert.False(true) })
}

func TestInRange(t *testing.T) {
	t.Parallel()

	require.True(t, assert.Enabled)

	require.NotPanics(t, func() { assert.InRange(0, 0, 3) })
	require.NotPanics(t, func() { assert.InRange(3, 0, 3) })
	require.PanicsWithValue(t, "index 4 out of range [0, 3]", func() { assert.InRange(4, 0, 3) })
	require.PanicsWithValue(t, "index -1 out of range [0, 3]", func() { assert.InRange(-1, 0, 3) })
	require.PanicsWithValue(t, "bad hint", func() { assert.InRange(9, 0, 3, "bad hint") })
}
