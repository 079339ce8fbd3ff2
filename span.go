package vis

// span is a contiguous sub-range of the piece sequence, identified by its
// endpoints (inclusive) and cumulative length. An empty span has
// start == end == nil and represents "no pieces" — it is not independently
// allocated, only ever embedded in a change.
type span struct {
	start, end *piece
	len        int64
}

func emptySpan() span {
	return span{}
}

func (s span) isEmpty() bool {
	return s.start == nil && s.end == nil
}

// singleton returns the one-piece span [p, p].
func singleton(p *piece) span {
	return span{start: p, end: p, len: int64(p.len)}
}
