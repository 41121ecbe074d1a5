package editor

import (
	"math"

	"github.com/sockentrocken/mallet/internal/geom"
	"github.com/sockentrocken/mallet/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HandlePick is the edge length of the cube tested around each handle.
// HandleDraw is the size the handle is drawn at.
const (
	HandlePick float32 = 1.0
	HandleDraw float32 = 0.5
)

type TargetKind int

const (
	TargetBrush TargetKind = iota
	TargetEntity
	TargetVertex
	TargetEdge
	TargetFace
)

func (k TargetKind) String() string {
	switch k {
	case TargetBrush:
		return "brush"
	case TargetEntity:
		return "entity"
	case TargetVertex:
		return "vertex"
	case TargetEdge:
		return "edge"
	case TargetFace:
		return "face"
	}
	return "unknown"
}

// Handle reports whether the target is a piece of a brush rather than a
// whole object.
func (k TargetKind) Handle() bool {
	return k == TargetVertex || k == TargetEdge || k == TargetFace
}

// Target identifies a pickable thing. Brush is set for every kind but
// TargetEntity; Index is the face of a TargetBrush hit, or the vertex,
// edge or face of a handle.
type Target struct {
	Kind   TargetKind
	Brush  int
	Entity int
	Index  int
}

type Hit struct {
	Target
	Distance float32
}

// Pick casts ray through the world and returns the nearest hit. A
// focused brush offers its handles for the mode instead of its faces.
// Candidates are visited brushes first, then entities, and only a
// strictly nearer hit replaces the current one, so ties go to the
// earlier candidate.
func Pick(ray rl.Ray, w *scene.World, mode Mode) (Hit, bool) {
	best := Hit{Distance: math.MaxFloat32}
	found := false

	consider := func(t Target, d float32) {
		if d < best.Distance {
			best = Hit{Target: t, Distance: d}
			found = true
		}
	}

	for i := range w.Brush {
		b := &w.Brush[i]

		if b.Focus {
			for _, h := range handles(b, mode) {
				if d, ok := geom.RayBox(ray, geom.CubeBox(h.point, HandlePick)); ok {
					consider(Target{Kind: h.kind, Brush: i, Index: h.index}, d)
				}
			}
			continue
		}

		for f := range b.Face {
			c := b.Corners(f)
			if d, ok := geom.RayQuad(ray, c[0], c[1], c[2], c[3]); ok {
				consider(Target{Kind: TargetBrush, Brush: i, Index: f}, d)
			}
		}
	}

	for i := range w.Entity {
		if d, ok := geom.RayBox(ray, w.Entity[i].Box()); ok {
			consider(Target{Kind: TargetEntity, Entity: i}, d)
		}
	}

	return best, found
}

type handle struct {
	kind  TargetKind
	index int
	point rl.Vector3
}

// handles lists the grab points a focused brush offers in mode. Object
// modes fall back to vertices.
func handles(b *scene.Brush, mode Mode) []handle {
	var out []handle
	switch mode {
	case ModeEdge:
		for e := range scene.EdgeIndex {
			out = append(out, handle{TargetEdge, e, b.EdgeCenter(e)})
		}
	case ModeFace:
		for f := range scene.FaceIndex {
			out = append(out, handle{TargetFace, f, b.FaceCenter(f)})
		}
	default:
		for v := range b.Vertex {
			out = append(out, handle{TargetVertex, v, b.Vertex[v].Point})
		}
	}
	return out
}

// handlePoints returns the vertex indices a handle target moves.
func handlePoints(t Target) []int {
	switch t.Kind {
	case TargetVertex:
		return []int{t.Index}
	case TargetEdge:
		e := scene.EdgeIndex[t.Index]
		return []int{e[0], e[1]}
	case TargetFace:
		f := scene.FaceIndex[t.Index]
		return []int{f[0], f[1], f[2], f[3]}
	}
	return nil
}
