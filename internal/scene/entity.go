package scene

import (
	"maps"
	"slices"

	"github.com/sockentrocken/mallet/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type FieldKind int

const (
	FieldUnknown FieldKind = iota
	FieldBool
	FieldNumber
	FieldString
)

// Field is a named custom value on an entity. Value holds a bool, a
// float64 or a string.
type Field struct {
	Info  string
	Value any
}

func (f Field) Kind() FieldKind {
	switch f.Value.(type) {
	case bool:
		return FieldBool
	case float64:
		return FieldNumber
	case string:
		return FieldString
	}
	return FieldUnknown
}

// Template describes a placeable entity type, as supplied by a game
// script. Call names the script draw callback, if any.
type Template struct {
	Name  string
	Info  string
	Data  map[string]Field
	Shape rl.BoundingBox
	Call  string
}

// Clone returns a copy whose field map is not shared with t.
func (t Template) Clone() Template {
	c := t
	c.Data = maps.Clone(t.Data)
	if c.Data == nil {
		c.Data = map[string]Field{}
	}
	return c
}

// FieldNames returns the custom field names in a stable order.
func (t Template) FieldNames() []string {
	return slices.Sorted(maps.Keys(t.Data))
}

// Entity is an instance of a template. Its Meta is a private snapshot, so
// reloading the script catalog never invalidates placed entities.
type Entity struct {
	Position rl.Vector3
	Rotation rl.Vector3 // degrees
	Scale    rl.Vector3
	Focus    bool
	Meta     Template
}

func NewEntity(meta Template) Entity {
	return Entity{
		Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		Meta:  meta.Clone(),
	}
}

// Box is the template bounding box translated to the entity position.
func (e *Entity) Box() rl.BoundingBox {
	return geom.Translate(e.Meta.Shape, e.Position)
}
