// Package geom holds the ray and projection math shared by picking,
// dragging and the viewport overlays.
package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-6

// RayBox intersects a ray with an axis-aligned box using the slab test.
// A ray starting inside the box reports the exit distance.
func RayBox(ray rl.Ray, box rl.BoundingBox) (float32, bool) {
	origin := [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for axis := range 3 {
		if dir[axis] == 0 {
			// Parallel to this slab: miss unless the origin lies between its planes.
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// RayTriangle is the Möller–Trumbore test. Both windings hit.
func RayTriangle(ray rl.Ray, a, b, c rl.Vector3) (float32, bool) {
	edge1 := rl.Vector3Subtract(b, a)
	edge2 := rl.Vector3Subtract(c, a)
	p := rl.Vector3CrossProduct(ray.Direction, edge2)
	det := rl.Vector3DotProduct(edge1, p)
	if absF(det) < epsilon {
		return 0, false
	}
	inv := 1 / det

	s := rl.Vector3Subtract(ray.Position, a)
	u := rl.Vector3DotProduct(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := rl.Vector3CrossProduct(s, edge1)
	v := rl.Vector3DotProduct(ray.Direction, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := rl.Vector3DotProduct(edge2, q) * inv
	if t <= epsilon {
		return 0, false
	}
	return t, true
}

// RayQuad splits the quad a-b-c-d along a-c and returns the nearer hit.
func RayQuad(ray rl.Ray, a, b, c, d rl.Vector3) (float32, bool) {
	t1, ok1 := RayTriangle(ray, a, b, c)
	t2, ok2 := RayTriangle(ray, a, c, d)
	switch {
	case ok1 && ok2:
		return min(t1, t2), true
	case ok1:
		return t1, true
	case ok2:
		return t2, true
	}
	return 0, false
}

// RayPlane returns where a ray hits a plane given by a point and a normal.
func RayPlane(ray rl.Ray, point, normal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(ray.Direction, normal)
	if absF(denom) < epsilon {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(point, ray.Position), normal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}

// CubeBox returns the box of edge length size centered on p.
func CubeBox(p rl.Vector3, size float32) rl.BoundingBox {
	half := rl.Vector3{X: size / 2, Y: size / 2, Z: size / 2}
	return rl.BoundingBox{
		Min: rl.Vector3Subtract(p, half),
		Max: rl.Vector3Add(p, half),
	}
}

// Translate offsets both corners of a box.
func Translate(box rl.BoundingBox, by rl.Vector3) rl.BoundingBox {
	return rl.BoundingBox{
		Min: rl.Vector3Add(box.Min, by),
		Max: rl.Vector3Add(box.Max, by),
	}
}

// Snap rounds v to the nearest multiple of grid. A non-positive grid
// leaves v alone.
func Snap(v, grid float32) float32 {
	if grid <= 0 {
		return v
	}
	return float32(math.Round(float64(v/grid))) * grid
}

// SnapVector snaps each component of v.
func SnapVector(v rl.Vector3, grid float32) rl.Vector3 {
	return rl.Vector3{X: Snap(v.X, grid), Y: Snap(v.Y, grid), Z: Snap(v.Z, grid)}
}

// Sign returns -1, 0 or 1.
func Sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func absF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
