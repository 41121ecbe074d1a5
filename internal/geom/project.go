package geom

import (
	"errors"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip distances used for picking. They match the renderer's defaults so
// an orthographic ray starts on the same near plane that is drawn.
const (
	CullNear float32 = 0.01
	CullFar  float32 = 1000.0
)

// ErrSingularProjection is returned when the view-projection matrix of a
// camera cannot be inverted (zero viewport, zero fovy, near == far, or a
// camera whose position equals its target).
var ErrSingularProjection = errors.New("singular view-projection")

// ScreenToWorldRay turns a viewport-relative point into a world-space
// ray. Perspective rays start at the camera; orthographic rays start on
// the near plane under the cursor.
func ScreenToWorldRay(point rl.Vector2, camera rl.Camera3D, width, height float32) (rl.Ray, error) {
	return screenToWorldRay(point, camera, width, height, CullNear, CullFar)
}

func screenToWorldRay(point rl.Vector2, camera rl.Camera3D, width, height, near, far float32) (rl.Ray, error) {
	viewProj, err := viewProjection(camera, width, height, near, far)
	if err != nil {
		return rl.Ray{}, err
	}
	inv := rl.MatrixInvert(viewProj)

	x := 2*point.X/width - 1
	y := 1 - 2*point.Y/height

	nearPoint, err := unproject(inv, rl.Vector3{X: x, Y: y, Z: -1})
	if err != nil {
		return rl.Ray{}, err
	}
	farPoint, err := unproject(inv, rl.Vector3{X: x, Y: y, Z: 1})
	if err != nil {
		return rl.Ray{}, err
	}

	ray := rl.Ray{
		Position:  nearPoint,
		Direction: rl.Vector3Normalize(rl.Vector3Subtract(farPoint, nearPoint)),
	}
	if camera.Projection == rl.CameraPerspective {
		ray.Position = camera.Position
	}
	return ray, nil
}

// WorldToScreen projects a world point into viewport pixels. The second
// result is false for points behind the camera.
func WorldToScreen(point rl.Vector3, camera rl.Camera3D, width, height float32) (rl.Vector2, bool) {
	viewProj, err := viewProjection(camera, width, height, CullNear, CullFar)
	if err != nil {
		return rl.Vector2{}, false
	}
	clip, w := transform(viewProj, point, 1)
	if w <= 0 {
		return rl.Vector2{}, false
	}
	ndc := rl.Vector3Scale(clip, 1/w)
	return rl.Vector2{
		X: (ndc.X + 1) / 2 * width,
		Y: (1 - ndc.Y) / 2 * height,
	}, true
}

func viewProjection(camera rl.Camera3D, width, height, near, far float32) (rl.Matrix, error) {
	if width <= 0 || height <= 0 {
		return rl.Matrix{}, fmt.Errorf("viewport %vx%v: %w", width, height, ErrSingularProjection)
	}
	if camera.Fovy <= 0 {
		return rl.Matrix{}, fmt.Errorf("fovy %v: %w", camera.Fovy, ErrSingularProjection)
	}
	if far-near == 0 {
		return rl.Matrix{}, fmt.Errorf("clip range %v..%v: %w", near, far, ErrSingularProjection)
	}

	aspect := width / height
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		top := camera.Fovy / 2
		right := top * aspect
		proj = rl.MatrixOrtho(-right, right, -top, top, near, far)
	}

	viewProj := rl.MatrixMultiply(view, proj)
	det := float64(rl.MatrixDeterminant(viewProj))
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return rl.Matrix{}, fmt.Errorf("determinant %v: %w", det, ErrSingularProjection)
	}
	return viewProj, nil
}

func unproject(inv rl.Matrix, ndc rl.Vector3) (rl.Vector3, error) {
	p, w := transform(inv, ndc, 1)
	if w == 0 || math.IsNaN(float64(w)) {
		return rl.Vector3{}, fmt.Errorf("unproject w=%v: %w", w, ErrSingularProjection)
	}
	return rl.Vector3Scale(p, 1/w), nil
}

// transform applies m to the homogeneous point (v, w).
func transform(m rl.Matrix, v rl.Vector3, w float32) (rl.Vector3, float32) {
	return rl.Vector3{
			X: m.M0*v.X + m.M4*v.Y + m.M8*v.Z + m.M12*w,
			Y: m.M1*v.X + m.M5*v.Y + m.M9*v.Z + m.M13*w,
			Z: m.M2*v.X + m.M6*v.Y + m.M10*v.Z + m.M14*w,
		},
		m.M3*v.X + m.M7*v.Y + m.M11*v.Z + m.M15*w
}
