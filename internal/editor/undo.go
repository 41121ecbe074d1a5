package editor

import (
	"log"

	"github.com/sockentrocken/mallet/internal/scene"
)

const maxUndoStack = 50

// UndoState is a snapshot of the whole world taken before an edit.
type UndoState struct {
	Label string
	World *scene.World
}

// pushUndo snapshots the world before an edit described by label.
func (e *Editor) pushUndo(label string) {
	e.addUndoState(UndoState{Label: label, World: e.World.Clone()})
}

func (e *Editor) addUndoState(state UndoState) {
	if len(e.undoStack) >= maxUndoStack {
		e.undoStack = e.undoStack[1:]
	}
	e.undoStack = append(e.undoStack, state)
}

// dropUndo forgets the last snapshot, for edits that turned out to
// change nothing.
func (e *Editor) dropUndo() {
	if len(e.undoStack) > 0 {
		e.undoStack = e.undoStack[:len(e.undoStack)-1]
	}
}

// undo restores the last snapshot.
func (e *Editor) undo() {
	if len(e.undoStack) == 0 {
		e.setMsg("Nothing to undo")
		return
	}
	state := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	e.World = state.World
	e.drag = nil
	log.Printf("editor: undo %s", state.Label)
	e.setMsg("Undo " + state.Label)
}

// UndoDepth is the number of snapshots available.
func (e *Editor) UndoDepth() int { return len(e.undoStack) }
