package clipboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMemory_EmptyUntilWrite reports no text before the first write.
func TestMemory_EmptyUntilWrite(t *testing.T) {
	m := NewMemory()

	_, ok := m.Read()
	require.False(t, ok)
}

// TestMemory_RoundTrip returns what was written.
func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Write("hello"))

	got, ok := m.Read()
	require.True(t, ok)
	require.Equal(t, "hello", got)
}

// TestMemory_EmptyWriteReadsAsNoText mirrors an empty system clipboard.
func TestMemory_EmptyWriteReadsAsNoText(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Write("hello"))

	require.NoError(t, m.Write(""))

	_, ok := m.Read()
	require.False(t, ok)
}
