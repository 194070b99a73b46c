package urlstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, raw string) Location {
	t.Helper()
	loc, err := ParseLocation(raw)
	require.NoError(t, err)
	return loc
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(mustLocation(t, ""))
	require.False(t, h.Back())
	require.False(t, h.Forward())

	h.Push(mustLocation(t, "a=1"))
	h.Push(mustLocation(t, "a=2"))
	require.Equal(t, "2", h.Current().Get("a"))

	require.True(t, h.Back())
	require.Equal(t, "1", h.Current().Get("a"))
	require.True(t, h.CanForward())

	h.Push(mustLocation(t, "a=3"))
	require.False(t, h.CanForward())
	require.Equal(t, 3, h.Len())

	require.True(t, h.Back())
	require.Equal(t, "1", h.Current().Get("a"))
	require.True(t, h.Forward())
	require.Equal(t, "3", h.Current().Get("a"))
}
