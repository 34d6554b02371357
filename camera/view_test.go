package camera

import (
	"math"
	"testing"

	"github.com/lixenwraith/particle-storm/vmath"
)

// TestProjectLookAtCenter verifies the look-at target projects to the screen
// center.
func TestProjectLookAtCenter(t *testing.T) {
	o := NewOrbit()
	vw := NewView(o, 120, 40)

	sx, sy, depth, ok := vw.Project(o.Target)
	if !ok {
		t.Fatal("look-at target not projectable")
	}
	if depth <= 0 {
		t.Errorf("depth = %v, want > 0", depth)
	}
	if math.Abs(sx-float64(vw.Width())/2) > 1e-9 {
		t.Errorf("sx = %v, want center %v", sx, float64(vw.Width())/2)
	}
	if math.Abs(sy-float64(vw.Height())/2) > 1e-9 {
		t.Errorf("sy = %v, want center %v", sy, float64(vw.Height())/2)
	}
}

// TestProjectBehindCamera verifies points behind the eye are rejected.
func TestProjectBehindCamera(t *testing.T) {
	o := NewOrbit()
	vw := NewView(o, 120, 40)

	// Continue past the eye away from the target
	behind := vmath.V3Add(o.Eye(), vmath.V3Sub(o.Eye(), o.Target))
	if _, _, _, ok := vw.Project(behind); ok {
		t.Error("point behind camera projected")
	}
}

// TestProjectDepthOrdering verifies a point nearer the eye reports smaller
// depth than the look-at target.
func TestProjectDepthOrdering(t *testing.T) {
	o := NewOrbit()
	vw := NewView(o, 120, 40)

	mid := vmath.V3Scale(vmath.V3Add(o.Eye(), o.Target), 0.5)
	_, _, dMid, ok1 := vw.Project(mid)
	_, _, dTarget, ok2 := vw.Project(o.Target)
	if !ok1 || !ok2 {
		t.Fatal("projection failed")
	}
	if dMid >= dTarget {
		t.Errorf("midpoint depth %v not closer than target depth %v", dMid, dTarget)
	}
}

// TestPickGroundCenter verifies the center ray descends onto the floor plane
// between the camera and the far side.
func TestPickGroundCenter(t *testing.T) {
	o := NewOrbit()
	// Odd width puts column 60 exactly on the optical axis
	vw := NewView(o, 121, 40)

	hit, ok := vw.PickGround(60, 19)
	if !ok {
		t.Fatal("center pick missed the ground")
	}
	if hit.Y != 0 {
		t.Errorf("hit.Y = %v, want 0 (plane)", hit.Y)
	}

	eye := o.Eye()
	if hit.X <= 0 || hit.X >= eye.X {
		t.Errorf("hit.X = %v, want between 0 and eye.X %v", hit.X, eye.X)
	}
	if math.Abs(hit.Z) > 1e-6 {
		t.Errorf("hit.Z = %v, want ~0 for yaw 0", hit.Z)
	}
}

// TestPickGroundBehind verifies an eye below the floor looking further down
// reports a miss: the plane is behind the ray.
func TestPickGroundBehind(t *testing.T) {
	o := NewOrbit()
	o.Pitch = -0.3 // eye sinks below the floor, still looking at (0,-8,0)
	vw := NewView(o, 120, 40)

	if _, ok := vw.PickGround(60, 19); ok {
		t.Error("pick from below the floor should miss")
	}
}

// TestPickMatchesProject verifies picking is the inverse of projection: the
// hit point projects back onto the picked cell.
func TestPickMatchesProject(t *testing.T) {
	o := NewOrbit()
	o.Yaw = 0.45
	vw := NewView(o, 120, 40)

	px, py := 80, 30
	hit, ok := vw.PickGround(px, py)
	if !ok {
		t.Fatal("pick missed")
	}

	sx, sy, _, ok := vw.Project(hit)
	if !ok {
		t.Fatal("hit not projectable")
	}
	if math.Abs(sx-(float64(px)+0.5)) > 1e-6 || math.Abs(sy-(float64(py)+0.5)) > 1e-6 {
		t.Errorf("round trip (%v, %v), want (%v, %v)", sx, sy, float64(px)+0.5, float64(py)+0.5)
	}
}

// TestPickExtent verifies near-horizon rays that land beyond the pickable
// plane report a miss, while steeper rays on the same column hit. A wide
// orbit puts the plane's far edge inside the view.
func TestPickExtent(t *testing.T) {
	o := NewOrbit()
	o.Distance = 300
	vw := NewView(o, 120, 40)

	var sawExtentMiss, sawHit bool
	for py := 0; py < vw.Height(); py++ {
		dir := vw.Ray(60, py)
		hit, ok := vw.PickGround(60, py)
		switch {
		case ok:
			sawHit = true
			if hit.Y != 0 {
				t.Fatalf("row %d hit off the plane: %v", py, hit)
			}
		case dir.Y < 0:
			// Descending ray that still missed: must be the extent cut
			sawExtentMiss = true
		}
	}

	if !sawHit {
		t.Error("no row hit the ground")
	}
	if !sawExtentMiss {
		t.Error("no near-horizon row exceeded the pickable extent")
	}
}
