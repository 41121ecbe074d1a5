package scene

import rl "github.com/gen2brain/raylib-go/raylib"

type World struct {
	Brush  []Brush
	Entity []Entity
}

// New returns a world holding one default brush.
func New() *World {
	return &World{Brush: []Brush{NewBrush()}}
}

// SelectAll sets every focus flag in the world.
func (w *World) SelectAll(value bool) {
	for i := range w.Brush {
		w.Brush[i].Select(value)
	}
	for i := range w.Entity {
		w.Entity[i].Focus = value
	}
}

// AddBrush appends a default brush centered on at and returns its index.
func (w *World) AddBrush(at rl.Vector3) int {
	b := NewBrush()
	b.Translate(at)
	w.Brush = append(w.Brush, b)
	return len(w.Brush) - 1
}

// AddEntity instantiates meta at the given position.
func (w *World) AddEntity(meta Template, at rl.Vector3) int {
	e := NewEntity(meta)
	e.Position = at
	w.Entity = append(w.Entity, e)
	return len(w.Entity) - 1
}

// DeleteFocused removes every focused brush and entity and returns how
// many were removed.
func (w *World) DeleteFocused() int {
	before := len(w.Brush) + len(w.Entity)

	brushes := w.Brush[:0]
	for _, b := range w.Brush {
		if !b.Focus {
			brushes = append(brushes, b)
		}
	}
	w.Brush = brushes

	entities := w.Entity[:0]
	for _, e := range w.Entity {
		if !e.Focus {
			entities = append(entities, e)
		}
	}
	w.Entity = entities

	return before - len(w.Brush) - len(w.Entity)
}

// FocusedEntity returns the index of the first focused entity, or -1.
func (w *World) FocusedEntity() int {
	for i := range w.Entity {
		if w.Entity[i].Focus {
			return i
		}
	}
	return -1
}

// HasFocus reports whether anything in the world is focused.
func (w *World) HasFocus() bool {
	for i := range w.Brush {
		if w.Brush[i].Focus || len(w.Brush[i].FocusedVertices()) > 0 {
			return true
		}
	}
	return w.FocusedEntity() >= 0
}

// FocusCenter averages the centers of focused brushes and entities.
func (w *World) FocusCenter() (rl.Vector3, bool) {
	var sum rl.Vector3
	n := 0
	for i := range w.Brush {
		if w.Brush[i].Focus {
			sum = rl.Vector3Add(sum, w.Brush[i].Center())
			n++
		}
	}
	for i := range w.Entity {
		if w.Entity[i].Focus {
			sum = rl.Vector3Add(sum, w.Entity[i].Position)
			n++
		}
	}
	if n == 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(sum, 1/float32(n)), true
}

// Clone deep-copies the world so it can be restored later.
func (w *World) Clone() *World {
	c := &World{
		Brush:  append([]Brush(nil), w.Brush...),
		Entity: make([]Entity, len(w.Entity)),
	}
	for i, e := range w.Entity {
		e.Meta = e.Meta.Clone()
		c.Entity[i] = e
	}
	return c
}
