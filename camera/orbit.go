// Package camera implements the orbit camera: a position derived from two
// angles and a radius around a fixed look-at target, plus the projection and
// ground picking built on top of it.
package camera

import (
	"math"

	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/vmath"
)

// Orbit holds the camera parameters. Position is always derived, never
// stored. Only yaw is user-driven; pitch and distance stay at their
// defaults in the demo.
type Orbit struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	Target   vmath.Vec3
}

// NewOrbit returns the demo's starting camera
func NewOrbit() *Orbit {
	return &Orbit{
		Yaw:      parameter.CameraYawDefault,
		Pitch:    parameter.CameraPitchDefault,
		Distance: parameter.CameraDistanceDefault,
		Target:   vmath.Vec3{Y: parameter.CameraLookAtY},
	}
}

// ApplyWheel advances yaw by a wheel delta in pixels. No clamping; yaw wraps
// naturally through the trig below.
func (o *Orbit) ApplyWheel(deltaY float64) {
	o.Yaw += deltaY * parameter.CameraWheelFactor
}

// Eye returns the derived camera position
func (o *Orbit) Eye() vmath.Vec3 {
	cp := math.Cos(o.Pitch)
	return vmath.Vec3{
		X: math.Cos(o.Yaw) * cp * o.Distance,
		Y: math.Sin(o.Pitch) * o.Distance,
		Z: math.Sin(o.Yaw) * cp * o.Distance,
	}
}
