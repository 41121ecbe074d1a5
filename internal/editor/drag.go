package editor

import (
	"github.com/sockentrocken/mallet/internal/geom"
	"github.com/sockentrocken/mallet/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGrid is the snapping unit for dragged handles.
const DefaultGrid float32 = 1.0

// dragSlop is how far the pointer has to travel on the drag plane before
// a press counts as a drag rather than a click.
const dragSlop float32 = 1e-3

// Drag moves the vertices behind one handle. The handle slides on a
// camera-facing plane through the point where it was grabbed; every
// update sets each vertex to its original position plus the travel on
// that plane, snapped to the grid.
type Drag struct {
	Target Target
	Grid   float32

	start  rl.Vector3
	normal rl.Vector3
	points []int
	origin []rl.Vector3
	moved  bool
}

// BeginDrag grabs the handle behind hit. It reports false for targets
// that are not handles.
func BeginDrag(w *scene.World, hit Hit, ray rl.Ray, camera rl.Camera3D, grid float32) (*Drag, bool) {
	if !hit.Kind.Handle() {
		return nil, false
	}

	b := &w.Brush[hit.Brush]
	d := &Drag{
		Target: hit.Target,
		Grid:   grid,
		normal: rl.Vector3Normalize(rl.Vector3Subtract(camera.Position, camera.Target)),
		points: handlePoints(hit.Target),
	}
	for _, p := range d.points {
		d.origin = append(d.origin, b.Vertex[p].Point)
	}

	d.start = rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, hit.Distance))
	return d, true
}

// Update follows ray. Rays parallel to the drag plane leave the
// vertices where they are, and so does any travel within the slop.
func (d *Drag) Update(w *scene.World, ray rl.Ray) {
	now, ok := geom.RayPlane(ray, d.start, d.normal)
	if !ok {
		return
	}
	delta := rl.Vector3Subtract(now, d.start)
	if rl.Vector3Length(delta) > dragSlop {
		d.moved = true
	}
	if d.moved {
		d.place(w, delta)
	}
}

// End snaps the dragged vertices one last time and reports whether the
// handle travelled at all. A handle that never moved is left untouched.
func (d *Drag) End(w *scene.World) bool {
	if !d.moved {
		return false
	}
	b := &w.Brush[d.Target.Brush]
	for _, p := range d.points {
		b.Vertex[p].Point = geom.SnapVector(b.Vertex[p].Point, d.Grid)
	}
	return true
}

func (d *Drag) place(w *scene.World, delta rl.Vector3) {
	b := &w.Brush[d.Target.Brush]
	for k, p := range d.points {
		b.Vertex[p].Point = geom.SnapVector(rl.Vector3Add(d.origin[k], delta), d.Grid)
	}
}
