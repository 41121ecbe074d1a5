package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Record is the state a widget keeps between frames.
type Record struct {
	Hover float32
	Focus float32

	// Active is the open/closed state of drawers.
	Active bool

	ScrollShift  float32
	ScrollExtent float32

	// text is the edit buffer of a number field while it is hovered.
	text    string
	editing bool
}

// Animate moves Hover and Focus toward their targets by dt*speed.
func (r *Record) Animate(dt float32, hover, focus bool) {
	r.Hover = approach(r.Hover, dt*hoverSpeed, hover)
	r.Focus = approach(r.Focus, dt*focusSpeed, focus)
}

func approach(v, step float32, up bool) float32 {
	if up {
		v += step
	} else {
		v -= step
	}
	return clamp01(v)
}

func clamp01(v float32) float32 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PressOffset lifts a hovered widget and settles it again while pressed.
func (r *Record) PressOffset() float32 {
	return ((r.Hover - 1) + (1 - r.Focus)) * pointShift
}

// Shape returns rect shifted by the press offset.
func (r *Record) Shape(rect rl.Rectangle) rl.Rectangle {
	rect.Y -= r.PressOffset()
	return rect
}

// Tint brightens c with hover.
func (r *Record) Tint(c rl.Color) rl.Color {
	k := r.Hover*colorUpper + colorLower
	return rl.Color{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}

// Store maps widget identities to their records. Identities must be
// unique among the widgets drawn in one frame; two widgets sharing one
// identity share (and fight over) one record.
type Store struct {
	records map[string]*Record
}

func NewStore() *Store {
	return &Store{records: make(map[string]*Record)}
}

// Get returns the record for id, creating a zero record on first use.
func (s *Store) Get(id string) *Record {
	r, ok := s.records[id]
	if !ok {
		r = &Record{}
		s.records[id] = r
	}
	return r
}

func (s *Store) Len() int { return len(s.records) }
