package render

import (
	"github.com/lixenwraith/particle-storm/camera"
	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/sim"
	"github.com/lixenwraith/particle-storm/vmath"
)

var (
	gridColor = RGB{R: 46, G: 52, B: 64}
	hudDim    = RGB{R: 100, G: 100, B: 110}
	hudBright = RGB{R: 220, G: 220, B: 230}
)

// gridSampleStep is the world-unit spacing of grid line samples; fine enough
// that projected lines stay continuous at the demo's orbit distance
const gridSampleStep = 0.25

// depthFade maps camera-space depth to a brightness factor in [0.3, 1]
func depthFade(depth float64) float64 {
	t := (depth - parameter.DepthFadeNear) / (parameter.DepthFadeFar - parameter.DepthFadeNear)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1 - t*0.7
}

// DrawGrid paints the static reference grid on the floor plane. Drawn before
// particles so the additive sprites glow over it.
func DrawGrid(buf *Buffer, vw camera.View) {
	for line := -parameter.GridExtent; line <= parameter.GridExtent; line += parameter.GridStep {
		for s := -parameter.GridExtent; s <= parameter.GridExtent; s += gridSampleStep {
			plotGridPoint(buf, vw, line, s) // line along Z
			plotGridPoint(buf, vw, s, line) // line along X
		}
	}
}

func plotGridPoint(buf *Buffer, vw camera.View, x, z float64) {
	sx, sy, depth, ok := vw.Project(vmath.Vec3{X: x, Z: z})
	if !ok {
		return
	}
	buf.BlendBg(int(sx), int(sy), Scale(gridColor, depthFade(depth)), 0.9)
}

// DrawParticles projects the pool and paints each particle as an additive
// sprite. Additive blending is order-independent, so no depth sort is needed.
func DrawParticles(buf *Buffer, st *sim.Store, vw camera.View, size float64) {
	for i := 0; i < st.Len(); i++ {
		sx, sy, depth, ok := vw.Project(st.Pos[i])
		if !ok {
			continue
		}

		fade := depthFade(depth)
		col := RGB{
			R: uint8(st.Col[i].X * 255),
			G: uint8(st.Col[i].Y * 255),
			B: uint8(st.Col[i].Z * 255),
		}

		radius := size * parameter.SizeScale / depth
		if radius <= 0.6 {
			// Sub-cell sprite: single cell, dimmed by coverage
			buf.AddBg(int(sx), int(sy), Scale(col, fade*radius/0.6))
			continue
		}

		rx := radius * parameter.CellAspect
		minX, maxX := int(sx-rx), int(sx+rx)
		minY, maxY := int(sy-radius), int(sy+radius)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				nx := (float64(x) + 0.5 - sx) / rx
				ny := (float64(y) + 0.5 - sy) / radius
				d2 := nx*nx + ny*ny
				if d2 > 1 {
					continue
				}
				buf.AddBg(x, y, Scale(col, fade*(1-d2)))
			}
		}
	}
}

// DrawHUD writes the status and key-help rows under the view
func DrawHUD(buf *Buffer, status, help string) {
	writeStr(buf, 1, buf.Height()-2, status, hudBright)
	writeStr(buf, 1, buf.Height()-1, help, hudDim)
}

func writeStr(buf *Buffer, x, y int, s string, fg RGB) {
	for _, r := range s {
		buf.SetText(x, y, r, fg)
		x++
	}
}
