package vis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func chainBytes(begin, end *piece) []byte {
	var out []byte
	for p := begin.next; p != end; p = p.next {
		out = append(out, p.bytes()...)
	}
	return out
}

// TestSpanSwapIsSelfInverse exercises spanSwap directly, without going
// through Editor, confirming spanSwap(a, b) followed by spanSwap(b, a)
// restores the original sequence exactly — the property undo/redo relies
// on.
func TestSpanSwapIsSelfInverse(t *testing.T) {
	buf := newAppendBuffer(64, DefaultBufferMin)
	buf.store([]byte("helloworld"))

	begin, end := newSentinel(), newSentinel()
	original := &piece{buf: buf, off: 0, len: 10}
	begin.next, original.prev = original, begin
	original.next, end.prev = end, original

	require.Equal(t, "helloworld", string(chainBytes(begin, end)))

	replacement := &piece{buf: buf, off: 10, len: 0} // placeholder, linked via attachSpan
	old := singleton(original)
	newSpan := singleton(replacement)
	c := newChange(old, newSpan, begin, end)

	spanSwap(c.old, c.new)
	require.Equal(t, "", string(chainBytes(begin, end)))

	spanSwap(c.new, c.old)
	require.Equal(t, "helloworld", string(chainBytes(begin, end)))
}
