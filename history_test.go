package vis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryModifiedTracksSavedMarker(t *testing.T) {
	var h history
	require.False(t, h.modified())

	a := h.currentAction()
	a.push(&change{})
	require.True(t, h.modified())

	h.markSaved()
	require.False(t, h.modified())

	h.snapshot()
	b := h.currentAction()
	b.push(&change{})
	require.True(t, h.modified())
}

func TestHistoryUndoRedoStacks(t *testing.T) {
	var h history
	require.False(t, h.undoOnce())
	require.False(t, h.redoOnce())

	h.currentAction().push(&change{})
	h.snapshot()

	require.True(t, h.undoOnce())
	require.Nil(t, h.undo)
	require.NotNil(t, h.redo)

	require.True(t, h.redoOnce())
	require.NotNil(t, h.undo)
	require.Nil(t, h.redo)
}

func TestHistoryNewEditDiscardsRedoStack(t *testing.T) {
	var h history
	h.currentAction().push(&change{})
	h.snapshot()
	h.undoOnce()
	require.NotNil(t, h.redo)

	h.currentAction() // starting a fresh action discards the redo stack
	require.Nil(t, h.redo)
}
