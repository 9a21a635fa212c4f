package ui

import "github.com/buschmd967/traveling-salesman/internal/model"

const defaultMaxDepth = 50

// PointEdit captures the point set before an edit.
type PointEdit struct {
	Points []model.Point
	Label  string // Human-readable description (e.g. "Add Point")
}

// History manages undo/redo stacks of point set edits.
type History struct {
	undoStack []PointEdit
	redoStack []PointEdit
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves the state before an edit and clears the redo stack.
func (h *History) Push(e PointEdit) {
	h.undoStack = append(h.undoStack, e)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent edit and pushes current onto the redo stack.
// Returns the state to restore and true, or false if nothing to undo.
func (h *History) Undo(current PointEdit) (PointEdit, bool) {
	if len(h.undoStack) == 0 {
		return PointEdit{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	current.Label = last.Label
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo reverses the last Undo. Returns the state to restore and true, or
// false if nothing to redo.
func (h *History) Redo(current PointEdit) (PointEdit, bool) {
	if len(h.redoStack) == 0 {
		return PointEdit{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	current.Label = last.Label
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one edit to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one edit to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakePointEdit copies points into a history entry.
func MakePointEdit(points []model.Point, label string) PointEdit {
	return PointEdit{
		Points: model.Tour(points).Clone(),
		Label:  label,
	}
}
