package vis

// locate resolves an absolute byte offset to the piece that contains it
// and an inner offset into that piece, walking the active sequence from
// the begin sentinel. Because the sentinels carry zero length, including
// begin in the walk and using cumulative <= pos <= cumulative+p.len
// naturally produces every special case the spec calls out:
//
//   - pos == 0 matches at begin itself: (begin, 0).
//   - pos == size matches at the last real piece: (lastPiece, lastPiece.len).
//   - any other pos matches the piece that actually contains it.
//   - pos > size falls off the end of the walk: ErrOutOfRange.
//
// Complexity is O(active pieces); a balanced tree keyed by cumulative
// length is an acceptable substitution the spec explicitly allows, but
// is not implemented here (see DESIGN.md).
func locate(e *Editor, pos int64) (*piece, int, error) {
	if pos < 0 {
		return nil, 0, ErrOutOfRange
	}
	var cumulative int64
	for p := e.begin; p != e.end; p = p.next {
		if cumulative <= pos && pos <= cumulative+int64(p.len) {
			return p, int(pos - cumulative), nil
		}
		cumulative += int64(p.len)
	}
	return nil, 0, ErrOutOfRange
}
