package camera

import (
	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/vmath"
)

// Ray returns the unit world-space direction through a screen cell
func (vw View) Ray(px, py int) vmath.Vec3 {
	ndcX := (float64(px)+0.5)/float64(vw.width)*2 - 1
	ndcY := 1 - (float64(py)+0.5)/float64(vw.height)*2

	dir := vmath.V3Scale(vw.u, ndcX*vw.halfW)
	dir = vmath.V3Add(dir, vmath.V3Scale(vw.v, ndcY*vw.halfH))
	dir = vmath.V3Sub(dir, vw.w)
	return vmath.V3Normalize(dir)
}

// PickGround intersects the view ray through a screen cell with the y=0
// plane. Misses (ray parallel, plane behind the eye, or a hit outside the
// pickable extent) return ok=false; callers treat that as a no-op, not an
// error.
func (vw View) PickGround(px, py int) (vmath.Vec3, bool) {
	dir := vw.Ray(px, py)
	if dir.Y == 0 {
		return vmath.Vec3{}, false
	}

	t := -vw.Eye.Y / dir.Y
	if t <= 0 {
		return vmath.Vec3{}, false
	}

	hit := vmath.V3Add(vw.Eye, vmath.V3Scale(dir, t))
	if hit.X < -parameter.GroundExtent || hit.X > parameter.GroundExtent ||
		hit.Z < -parameter.GroundExtent || hit.Z > parameter.GroundExtent {
		return vmath.Vec3{}, false
	}
	return hit, true
}
