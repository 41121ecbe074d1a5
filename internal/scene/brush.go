// Package scene is the editable map: brushes, entities and their focus
// flags, plus the JSON document they are saved as.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultShape is the half extent of a freshly created brush.
const DefaultShape float32 = 1.0

type Vertex struct {
	Point rl.Vector3
	Focus bool
}

type Face struct {
	Index   [4]int
	Shift   rl.Vector2
	Scale   rl.Vector2
	Texture string // empty means untextured
	Focus   bool
}

// Brush is a hexahedron. The face topology is fixed when the brush is
// created; editing only ever moves vertex positions.
type Brush struct {
	Vertex [8]Vertex
	Face   [6]Face
	Focus  bool
}

// FaceIndex is the canonical cube topology shared by every brush.
var FaceIndex = [6][4]int{
	{0, 1, 2, 3}, // front
	{5, 4, 7, 6}, // back
	{3, 2, 6, 7}, // top
	{1, 0, 4, 5}, // bottom
	{1, 5, 6, 2}, // right
	{4, 0, 3, 7}, // left
}

// EdgeIndex lists the 12 unique vertex pairs of the cube topology.
var EdgeIndex = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func NewBrush() Brush {
	s := DefaultShape
	corners := [8]rl.Vector3{
		{X: -s, Y: -s, Z: s},
		{X: s, Y: -s, Z: s},
		{X: s, Y: s, Z: s},
		{X: -s, Y: s, Z: s},
		{X: -s, Y: -s, Z: -s},
		{X: s, Y: -s, Z: -s},
		{X: s, Y: s, Z: -s},
		{X: -s, Y: s, Z: -s},
	}

	var b Brush
	for i, c := range corners {
		b.Vertex[i].Point = c
	}
	for i, index := range FaceIndex {
		b.Face[i] = Face{
			Index: index,
			Scale: rl.Vector2{X: 1, Y: 1},
		}
	}
	return b
}

// Corners returns the four vertex positions of a face in winding order.
func (b *Brush) Corners(face int) [4]rl.Vector3 {
	f := b.Face[face]
	return [4]rl.Vector3{
		b.Vertex[f.Index[0]].Point,
		b.Vertex[f.Index[1]].Point,
		b.Vertex[f.Index[2]].Point,
		b.Vertex[f.Index[3]].Point,
	}
}

// FaceCenter is the centroid of a face's corners.
func (b *Brush) FaceCenter(face int) rl.Vector3 {
	var sum rl.Vector3
	for _, c := range b.Corners(face) {
		sum = rl.Vector3Add(sum, c)
	}
	return rl.Vector3Scale(sum, 0.25)
}

func (b *Brush) EdgeCenter(edge int) rl.Vector3 {
	e := EdgeIndex[edge]
	return rl.Vector3Scale(rl.Vector3Add(b.Vertex[e[0]].Point, b.Vertex[e[1]].Point), 0.5)
}

// UV returns texture coordinates for the corners of a face, in the same
// order as Corners.
func (b *Brush) UV(face int) [4]rl.Vector2 {
	f := b.Face[face]
	uv := func(u, v float32) rl.Vector2 {
		return rl.Vector2{X: f.Scale.X * (f.Shift.X + u), Y: f.Scale.Y * (f.Shift.Y + v)}
	}
	return [4]rl.Vector2{uv(0, 1), uv(1, 1), uv(1, 0), uv(0, 0)}
}

// Bound is the axis-aligned box around every vertex.
func (b *Brush) Bound() rl.BoundingBox {
	box := rl.BoundingBox{Min: b.Vertex[0].Point, Max: b.Vertex[0].Point}
	for _, v := range b.Vertex[1:] {
		box.Min = rl.Vector3{X: min(box.Min.X, v.Point.X), Y: min(box.Min.Y, v.Point.Y), Z: min(box.Min.Z, v.Point.Z)}
		box.Max = rl.Vector3{X: max(box.Max.X, v.Point.X), Y: max(box.Max.Y, v.Point.Y), Z: max(box.Max.Z, v.Point.Z)}
	}
	return box
}

func (b *Brush) Center() rl.Vector3 {
	box := b.Bound()
	return rl.Vector3Scale(rl.Vector3Add(box.Min, box.Max), 0.5)
}

func (b *Brush) Translate(v rl.Vector3) {
	for i := range b.Vertex {
		b.Vertex[i].Point = rl.Vector3Add(b.Vertex[i].Point, v)
	}
}

// Transform applies m to every vertex position.
func (b *Brush) Transform(m rl.Matrix) {
	for i := range b.Vertex {
		b.Vertex[i].Point = rl.Vector3Transform(b.Vertex[i].Point, m)
	}
}

// SetTexture assigns texture to all six faces.
func (b *Brush) SetTexture(texture string) {
	for i := range b.Face {
		b.Face[i].Texture = texture
	}
}

// Select sets the focus of the brush and everything it owns.
func (b *Brush) Select(value bool) {
	b.Focus = value
	for i := range b.Vertex {
		b.Vertex[i].Focus = value
	}
	for i := range b.Face {
		b.Face[i].Focus = value
	}
}

// FocusedVertices returns the indices of focused vertices.
func (b *Brush) FocusedVertices() []int {
	var out []int
	for i, v := range b.Vertex {
		if v.Focus {
			out = append(out, i)
		}
	}
	return out
}
