package editor

import (
	"github.com/sockentrocken/mallet/internal/geom"
	"github.com/sockentrocken/mallet/internal/input"
	"github.com/sockentrocken/mallet/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// One movement step is one unit, RotationStep degrees or a ScaleStep
// change in size.
const (
	RotationStep float32 = 10
	ScaleStep    float32 = 0.1
)

var (
	axisX = rl.Vector3{X: 1}
	axisZ = rl.Vector3{Z: 1}
)

// MoveVector turns this frame's movement key presses into a step vector
// relative to camera. Nothing moves while the look binding is held,
// since the same keys fly the camera then.
func MoveVector(f *input.Frame, b *input.Bindings, camera rl.Camera3D) rl.Vector3 {
	if b.Look.Down(f) {
		return rl.Vector3{}
	}

	var x, y float32
	if b.MoveYA.Pressed(f) {
		x -= 1
	}
	if b.MoveYB.Pressed(f) {
		x += 1
	}
	if b.MoveXA.Pressed(f) {
		y += 1
	}
	if b.MoveXB.Pressed(f) {
		y -= 1
	}
	return Movement(x, y, camera)
}

// Movement maps a lateral step x and a vertical step y onto world axes.
// A perspective camera moves along the ground plane, each axis flipped
// to match the side the camera looks from. An orthographic camera moves
// in its screen plane.
func Movement(x, y float32, camera rl.Camera3D) rl.Vector3 {
	if x == 0 && y == 0 {
		return rl.Vector3{}
	}

	dir := rl.Vector3Normalize(rl.Vector3Subtract(camera.Position, camera.Target))
	side := rl.Vector3CrossProduct(camera.Up, dir)

	if camera.Projection == rl.CameraPerspective {
		vx := geom.Sign(rl.Vector3DotProduct(axisX, dir))
		vy := geom.Sign(rl.Vector3DotProduct(axisZ, side))
		return rl.Vector3{X: x * vx, Z: y * vy}
	}

	return rl.Vector3Add(rl.Vector3Scale(side, x), rl.Vector3Scale(camera.Up, y))
}

// ApplyMove applies one step of the mode's transform to every focused
// brush and entity. It reports whether anything was done; a zero vector
// is a no-op. Handle modes never move geometry here.
func ApplyMove(w *scene.World, mode Mode, v rl.Vector3) bool {
	if v == (rl.Vector3{}) {
		return false
	}

	switch mode {
	case ModePosition:
		for i := range w.Brush {
			if w.Brush[i].Focus {
				w.Brush[i].Translate(v)
			}
		}
		for i := range w.Entity {
			if w.Entity[i].Focus {
				w.Entity[i].Position = rl.Vector3Add(w.Entity[i].Position, v)
			}
		}

	case ModeRotation:
		degrees := rl.Vector3Scale(v, RotationStep)
		m := rl.MatrixRotateXYZ(rl.Vector3Scale(degrees, rl.Deg2rad))
		for i := range w.Brush {
			if w.Brush[i].Focus {
				w.Brush[i].Transform(m)
			}
		}
		for i := range w.Entity {
			if w.Entity[i].Focus {
				w.Entity[i].Rotation = rl.Vector3Add(w.Entity[i].Rotation, degrees)
			}
		}

	case ModeScale:
		step := rl.Vector3Scale(v, ScaleStep)
		m := rl.MatrixScale(1+step.X, 1+step.Y, 1+step.Z)
		for i := range w.Brush {
			if w.Brush[i].Focus {
				w.Brush[i].Transform(m)
			}
		}
		for i := range w.Entity {
			if w.Entity[i].Focus {
				w.Entity[i].Scale = rl.Vector3Add(w.Entity[i].Scale, step)
			}
		}

	default:
		return false
	}

	return true
}
