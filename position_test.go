package vis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocateBoundaries(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("ab")))
	e.Snapshot()
	require.NoError(t, e.Insert(2, []byte("cd")))

	p, off, err := locate(e, 0)
	require.NoError(t, err)
	require.True(t, p.isSentinel())
	require.Equal(t, 0, off)

	p, off, err = locate(e, 2)
	require.NoError(t, err)
	require.False(t, p.isSentinel())
	require.Equal(t, "ab", string(p.bytes()))
	require.Equal(t, 2, off)

	p, off, err = locate(e, 4)
	require.NoError(t, err)
	require.Equal(t, "cd", string(p.bytes()))
	require.Equal(t, 2, off)

	_, _, err = locate(e, 5)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, _, err = locate(e, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}
