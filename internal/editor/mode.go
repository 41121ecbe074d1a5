// Package editor holds the level-editing state machine: picking,
// selection, the transform gizmo, handle dragging, undo and the four
// viewports.
package editor

// Mode is the active transform tool.
type Mode int

const (
	ModePosition Mode = iota
	ModeRotation
	ModeScale
	ModeVertex
	ModeEdge
	ModeFace
)

// Modes lists every tool in toolbar order.
var Modes = []Mode{ModePosition, ModeRotation, ModeScale, ModeVertex, ModeEdge, ModeFace}

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "Position"
	case ModeRotation:
		return "Rotation"
	case ModeScale:
		return "Scale"
	case ModeVertex:
		return "Vertex"
	case ModeEdge:
		return "Edge"
	case ModeFace:
		return "Face"
	}
	return "Unknown"
}

// Handles reports whether the mode edits brush geometry directly rather
// than whole objects.
func (m Mode) Handles() bool {
	return m == ModeVertex || m == ModeEdge || m == ModeFace
}
