package vis

// attachSpan links a non-empty span between the given neighbors, without
// touching the neighbors themselves — spanSwap does that part. Called once
// at Change-construction time so that an empty-old span-swap (a pure
// splice, see spanSwap) has somewhere to read its attachment point from.
func attachSpan(s span, before, after *piece) {
	if s.isEmpty() {
		return
	}
	s.start.prev = before
	s.end.next = after
}

// spanSwap replaces the piece-sequence run `remove` with `insert`, the
// single primitive all of insert/delete/undo/redo funnel through. It is
// its own inverse: spanSwap(a, b) followed by spanSwap(b, a) restores the
// original sequence exactly.
func spanSwap(remove, insert span) {
	switch {
	case remove.isEmpty() && insert.isEmpty():
		// no-op
	case remove.isEmpty():
		// Pure splice: insert's attachment points were set by attachSpan
		// when the Change was built.
		before, after := insert.start.prev, insert.end.next
		before.next = insert.start
		after.prev = insert.end
	case insert.isEmpty():
		before, after := remove.start.prev, remove.end.next
		before.next = after
		after.prev = before
	default:
		before, after := remove.start.prev, remove.end.next
		before.next = insert.start
		insert.start.prev = before
		after.prev = insert.end
		insert.end.next = after
	}
}
