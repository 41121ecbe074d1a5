package editor

import (
	"math"

	"github.com/sockentrocken/mallet/internal/geom"
	"github.com/sockentrocken/mallet/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Screen areas reserved around the viewports.
const (
	ToolbarHeight float32 = 56
	PanelWidth    float32 = 400
)

const (
	lookSpeed  float32 = 0.1
	flySpeed   float32 = 8
	panSpeed   float32 = 0.05
	frameTime  float32 = 0.4
	orthoFovy  float32 = 15
	orthoDepth float32 = 512
)

// View is one of the four viewports.
type View struct {
	Name   string
	Camera rl.Camera3D
	Rect   rl.Rectangle

	yaw, pitch float32
	tween      [3]*gween.Tween
	offset     rl.Vector3
}

// DefaultViews returns a perspective view and three axis-aligned
// orthographic views.
func DefaultViews() [4]View {
	ortho := func(name string, pos, up rl.Vector3) View {
		return View{
			Name: name,
			Camera: rl.Camera3D{
				Position:   pos,
				Up:         up,
				Fovy:       orthoFovy,
				Projection: rl.CameraOrthographic,
			},
		}
	}

	views := [4]View{
		{
			Name: "Perspective",
			Camera: rl.Camera3D{
				Position:   rl.Vector3{X: 4, Y: 4, Z: 4},
				Up:         rl.Vector3{Y: 1},
				Fovy:       90,
				Projection: rl.CameraPerspective,
			},
		},
		ortho("Side", rl.Vector3{X: orthoDepth}, rl.Vector3{Y: 1}),
		ortho("Top", rl.Vector3{Y: orthoDepth}, rl.Vector3{X: 1}),
		ortho("Front", rl.Vector3{Z: orthoDepth}, rl.Vector3{Y: 1}),
	}
	views[0].syncAngles()
	return views
}

// Layout splits the area between the toolbar and the side panel into a
// 2x2 grid.
func Layout(views *[4]View, screen rl.Vector2) {
	w := max(screen.X-PanelWidth, 0) / 2
	h := max(screen.Y-ToolbarHeight, 0) / 2
	for i := range views {
		views[i].Rect = rl.Rectangle{
			X:      float32(i%2) * w,
			Y:      ToolbarHeight + float32(i/2)*h,
			Width:  w,
			Height: h,
		}
	}
}

// Contains reports whether a screen point is inside the view.
func (v *View) Contains(p rl.Vector2) bool {
	return p.X >= v.Rect.X && p.X < v.Rect.X+v.Rect.Width &&
		p.Y >= v.Rect.Y && p.Y < v.Rect.Y+v.Rect.Height
}

// Ray returns the world ray under a screen point.
func (v *View) Ray(p rl.Vector2) (rl.Ray, error) {
	local := rl.Vector2{X: p.X - v.Rect.X, Y: p.Y - v.Rect.Y}
	return geom.ScreenToWorldRay(local, v.Camera, v.Rect.Width, v.Rect.Height)
}

// Perspective reports whether the view uses a perspective projection.
func (v *View) Perspective() bool {
	return v.Camera.Projection == rl.CameraPerspective
}

// Look moves the camera while the look binding is held: a perspective
// view turns with the mouse and flies with the movement keys, an
// orthographic view pans.
func (v *View) Look(f *input.Frame, b *input.Bindings) {
	v.stopTween()

	if !v.Perspective() {
		dir := rl.Vector3Normalize(rl.Vector3Subtract(v.Camera.Position, v.Camera.Target))
		side := rl.Vector3CrossProduct(v.Camera.Up, dir)
		pan := rl.Vector3Add(
			rl.Vector3Scale(side, -f.MouseDelta.X*panSpeed*b.MouseSpeed[0]),
			rl.Vector3Scale(v.Camera.Up, f.MouseDelta.Y*panSpeed*b.MouseSpeed[1]),
		)
		v.Camera.Position = rl.Vector3Add(v.Camera.Position, pan)
		v.Camera.Target = rl.Vector3Add(v.Camera.Target, pan)
		return
	}

	v.yaw += f.MouseDelta.X * lookSpeed * b.MouseSpeed[0]
	v.pitch -= f.MouseDelta.Y * lookSpeed * b.MouseSpeed[1]
	v.pitch = max(min(v.pitch, 89), -89)

	forward := v.forward()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, v.Camera.Up))

	var move rl.Vector3
	if b.MoveXA.Down(f) {
		move = rl.Vector3Add(move, forward)
	}
	if b.MoveXB.Down(f) {
		move = rl.Vector3Subtract(move, forward)
	}
	if b.MoveYA.Down(f) {
		move = rl.Vector3Subtract(move, right)
	}
	if b.MoveYB.Down(f) {
		move = rl.Vector3Add(move, right)
	}
	if rl.Vector3Length(move) > 0 {
		move = rl.Vector3Scale(rl.Vector3Normalize(move), flySpeed*f.FrameTime)
	}

	v.Camera.Position = rl.Vector3Add(v.Camera.Position, move)
	v.Camera.Target = rl.Vector3Add(v.Camera.Position, forward)
}

// Frame starts a camera move that centers p while keeping the current
// viewing offset.
func (v *View) Frame(p rl.Vector3) {
	v.offset = rl.Vector3Subtract(v.Camera.Position, v.Camera.Target)
	t := v.Camera.Target
	v.tween = [3]*gween.Tween{
		gween.New(t.X, p.X, frameTime, ease.OutCubic),
		gween.New(t.Y, p.Y, frameTime, ease.OutCubic),
		gween.New(t.Z, p.Z, frameTime, ease.OutCubic),
	}
}

// Framing reports whether a Frame move is in progress.
func (v *View) Framing() bool { return v.tween[0] != nil }

// Update advances a Frame move.
func (v *View) Update(dt float32) {
	if v.tween[0] == nil {
		return
	}
	x, done := v.tween[0].Update(dt)
	y, _ := v.tween[1].Update(dt)
	z, _ := v.tween[2].Update(dt)

	v.Camera.Target = rl.Vector3{X: x, Y: y, Z: z}
	v.Camera.Position = rl.Vector3Add(v.Camera.Target, v.offset)
	if done {
		v.stopTween()
	}
}

func (v *View) stopTween() { v.tween = [3]*gween.Tween{} }

func (v *View) forward() rl.Vector3 {
	yaw := float64(v.yaw) * math.Pi / 180
	pitch := float64(v.pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(math.Sin(yaw) * math.Cos(pitch)),
	}
}

// syncAngles derives yaw and pitch from the camera's position and
// target.
func (v *View) syncAngles() {
	d := rl.Vector3Normalize(rl.Vector3Subtract(v.Camera.Target, v.Camera.Position))
	v.yaw = float32(math.Atan2(float64(d.Z), float64(d.X)) * 180 / math.Pi)
	v.pitch = float32(math.Asin(float64(d.Y)) * 180 / math.Pi)
}
