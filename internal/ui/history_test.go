package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buschmd967/traveling-salesman/internal/model"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, defaultMaxDepth, h.maxDepth)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()
	before := []model.Point{model.NewPoint(1, 1)}
	after := []model.Point{model.NewPoint(1, 1), model.NewPoint(2, 2)}

	h.Push(MakePointEdit(before, "Add Point"))
	require.True(t, h.CanUndo())

	restored, ok := h.Undo(MakePointEdit(after, ""))
	require.True(t, ok)
	assert.Equal(t, before, restored.Points)
	assert.Equal(t, "Add Point", restored.Label)
	assert.True(t, h.CanRedo())

	redone, ok := h.Redo(MakePointEdit(before, ""))
	require.True(t, ok)
	assert.Equal(t, after, redone.Points)
	assert.Equal(t, "Add Point", redone.Label)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	_, ok := h.Undo(PointEdit{})
	assert.False(t, ok)
	_, ok = h.Redo(PointEdit{})
	assert.False(t, ok)
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakePointEdit(nil, "Clear Points"))
	h.Undo(PointEdit{})
	require.True(t, h.CanRedo())

	h.Push(MakePointEdit(nil, "Add Point"))
	assert.False(t, h.CanRedo())
}

func TestHistoryMaxDepth(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakePointEdit([]model.Point{model.NewPoint(float32(i), 0)}, "Add Point"))
	}
	assert.Len(t, h.undoStack, defaultMaxDepth)
	assert.Equal(t, model.NewPoint(10, 0), h.undoStack[0].Points[0])
}

func TestMakePointEditCopies(t *testing.T) {
	points := []model.Point{model.NewPoint(1, 1)}
	e := MakePointEdit(points, "x")
	points[0] = model.NewPoint(9, 9)
	assert.Equal(t, model.NewPoint(1, 1), e.Points[0])
}
