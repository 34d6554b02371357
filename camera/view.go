package camera

import (
	"math"

	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/vmath"
)

// nearClip rejects points at or behind the eye before the perspective divide
const nearClip = 0.1

// View is the per-frame projection state: eye, look-at basis, and frustum
// half-extents for the current screen size. Rebuild it whenever the camera
// or the screen changes; it is cheap.
type View struct {
	Eye vmath.Vec3

	// Right, up, and back basis vectors; the camera looks along -w
	u, v, w vmath.Vec3

	halfW, halfH  float64
	width, height int // screen cells; height excludes HUD rows
}

// NewView builds the projection for an orbit camera and a terminal of
// width x height cells (HUD rows are subtracted from the usable height).
func NewView(o *Orbit, width, height int) View {
	eye := o.Eye()

	w := vmath.V3Normalize(vmath.V3Sub(eye, o.Target))
	up := vmath.Vec3{Y: 1}
	u := vmath.V3Normalize(vmath.V3Cross(up, w))
	v := vmath.V3Cross(w, u)

	viewH := height - parameter.HUDRows
	if viewH < 1 {
		viewH = 1
	}
	if width < 1 {
		width = 1
	}

	// Terminal cells are twice as tall as wide; fold that into the aspect
	aspect := (float64(width) / parameter.CellAspect) / float64(viewH)
	halfH := math.Tan(parameter.CameraFOV * math.Pi / 360)

	return View{
		Eye:    eye,
		u:      u,
		v:      v,
		w:      w,
		halfW:  halfH * aspect,
		halfH:  halfH,
		width:  width,
		height: viewH,
	}
}

// Width returns the usable screen width in cells
func (vw View) Width() int { return vw.width }

// Height returns the usable screen height in cells
func (vw View) Height() int { return vw.height }

// Project maps a world point to screen cell coordinates and camera-space
// depth. ok is false behind the near plane.
func (vw View) Project(p vmath.Vec3) (sx, sy, depth float64, ok bool) {
	rel := vmath.V3Sub(p, vw.Eye)

	cx := vmath.V3Dot(rel, vw.u)
	cy := vmath.V3Dot(rel, vw.v)
	depth = -vmath.V3Dot(rel, vw.w)
	if depth < nearClip {
		return 0, 0, depth, false
	}

	ndcX := cx / (depth * vw.halfW)
	ndcY := cy / (depth * vw.halfH)

	sx = (ndcX*0.5 + 0.5) * float64(vw.width)
	sy = (1 - (ndcY*0.5 + 0.5)) * float64(vw.height)
	return sx, sy, depth, true
}
