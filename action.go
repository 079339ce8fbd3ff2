package vis

import "time"

// action groups the changes performed since the last snapshot — the unit
// of undo/redo. changes is a LIFO list, most recent first; next links
// actions within the undo or redo stack.
type action struct {
	changes *change
	time    time.Time
	next    *action
}

func newAction() *action {
	return &action{time: time.Now()}
}

func (a *action) push(c *change) {
	c.next = a.changes
	a.changes = c
}

// undo reverts every change in this action, in list (most-recent-first)
// order — the correct reverse-chronological order since changes are
// stored most-recent-first.
func (a *action) undo() {
	for c := a.changes; c != nil; c = c.next {
		spanSwap(c.new, c.old)
	}
}

// redo re-applies every change in this action, in the same list order.
func (a *action) redo() {
	for c := a.changes; c != nil; c = c.next {
		spanSwap(c.old, c.new)
	}
}
