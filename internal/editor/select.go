package editor

import (
	"fmt"

	"github.com/sockentrocken/mallet/internal/scene"
)

// MissPolicy decides what an extending click on empty space does. A
// plain click on empty space always clears the selection.
type MissPolicy int

const (
	MissKeepSelection MissPolicy = iota
	MissClearSelection
)

func (p MissPolicy) String() string {
	if p == MissClearSelection {
		return "clear"
	}
	return "keep"
}

func ParseMissPolicy(s string) (MissPolicy, error) {
	switch s {
	case "", "keep":
		return MissKeepSelection, nil
	case "clear":
		return MissClearSelection, nil
	}
	return MissKeepSelection, fmt.Errorf("unknown selection miss policy %q (want keep or clear)", s)
}

// Select applies a click to the world's focus flags. With extend the
// existing selection is kept and the hit target toggles; without it the
// selection is replaced. Clicking a selected target deselects it.
func Select(w *scene.World, hit Hit, ok, extend bool, policy MissPolicy) {
	if !ok {
		if !extend || policy == MissClearSelection {
			w.SelectAll(false)
		}
		return
	}

	switch hit.Kind {
	case TargetBrush:
		was := w.Brush[hit.Brush].Focus
		if !extend {
			w.SelectAll(false)
		}
		w.Brush[hit.Brush].Focus = !was

	case TargetEntity:
		was := w.Entity[hit.Entity].Focus
		if !extend {
			w.SelectAll(false)
		}
		w.Entity[hit.Entity].Focus = !was

	case TargetVertex, TargetEdge, TargetFace:
		b := &w.Brush[hit.Brush]
		points := handlePoints(hit.Target)
		was := true
		for _, p := range points {
			was = was && b.Vertex[p].Focus
		}
		if !extend {
			w.SelectAll(false)
		}
		b.Focus = true
		for _, p := range points {
			b.Vertex[p].Focus = !was
		}
		if hit.Kind == TargetFace {
			b.Face[hit.Index].Focus = !was
		}
	}
}
