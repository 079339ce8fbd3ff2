package vis

// Iterate walks the active piece sequence starting at pos, invoking fn
// once per piece with that piece's absolute start position and backing
// bytes. Iteration stops early when fn returns false. pos may be any
// offset in [0, size]: when it falls inside a piece, the first call
// receives only that piece's bytes from pos onward, reported at pos.
func (e *Editor) Iterate(pos int64, fn func(pos int64, b []byte) bool) error {
	p, off, err := locate(e, pos)
	if err != nil {
		return err
	}
	if p.isSentinel() {
		p = p.next
		off = 0
	}

	cur := pos - int64(off)
	for p != e.end {
		b := p.bytes()
		if off > 0 {
			b = b[off:]
		}
		if !fn(cur+int64(off), b) {
			return nil
		}
		cur += int64(p.len)
		off = 0
		p = p.next
	}
	return nil
}

// Cursor is a read-only, forward-and-backward walker over the document's
// bytes, one piece at a time. Unlike Iterate it can be paused and resumed
// across calls, which suits line-oriented or search-style consumers.
type Cursor struct {
	e   *Editor
	p   *piece
	pos int64 // absolute position of the start of p
}

// NewCursor returns a Cursor positioned at the piece locate resolves pos
// to: the piece containing pos or, when pos falls on the boundary between
// two pieces, the earlier one (the piece ending at pos). pos == 0 yields
// the first piece.
func (e *Editor) NewCursor(pos int64) (*Cursor, error) {
	p, off, err := locate(e, pos)
	if err != nil {
		return nil, err
	}
	if p.isSentinel() {
		p = p.next
		return &Cursor{e: e, p: p, pos: pos - int64(off)}, nil
	}
	return &Cursor{e: e, p: p, pos: pos - int64(off)}, nil
}

// Valid reports whether the cursor is positioned on a real piece.
func (c *Cursor) Valid() bool { return c.p != nil && c.p != c.e.end }

// Bytes returns the current piece's backing bytes.
func (c *Cursor) Bytes() []byte {
	if !c.Valid() {
		return nil
	}
	return c.p.bytes()
}

// Pos returns the absolute position of the start of the current piece.
func (c *Cursor) Pos() int64 { return c.pos }

// Next advances to the following piece and reports whether it is valid.
func (c *Cursor) Next() bool {
	if !c.Valid() {
		return false
	}
	c.pos += int64(c.p.len)
	c.p = c.p.next
	return c.Valid()
}

// Prev moves back to the preceding piece and reports whether it is valid.
func (c *Cursor) Prev() bool {
	if c.p == nil {
		return false
	}
	prev := c.p.prev
	if prev == nil || prev.isSentinel() {
		return false
	}
	c.p = prev
	c.pos -= int64(prev.len)
	return true
}
