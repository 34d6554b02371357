package sim

import (
	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/vmath"
)

// Params is the live-tunable simulation configuration. Passes take it by
// value so a concurrent adjustment applies on the next dispatch, never
// mid-pass.
type Params struct {
	Gravity  float64 // per-frame vertical acceleration, negative
	Bounce   float64 // floor restitution, 0..1
	Friction float64 // per-frame velocity damping, 0..1
	Size     float64 // sprite size, render-only
}

// DefaultParams returns the tuning the demo starts with
func DefaultParams() Params {
	return Params{
		Gravity:  parameter.GravityDefault,
		Bounce:   parameter.BounceDefault,
		Friction: parameter.FrictionDefault,
		Size:     parameter.SizeDefault,
	}
}

// Clamp folds each value back into its documented range
func (p Params) Clamp() Params {
	p.Gravity = vmath.ClampF(p.Gravity, parameter.GravityMin, parameter.GravityMax)
	p.Bounce = vmath.ClampF(p.Bounce, parameter.BounceMin, parameter.BounceMax)
	p.Friction = vmath.ClampF(p.Friction, parameter.FrictionMin, parameter.FrictionMax)
	p.Size = vmath.ClampF(p.Size, parameter.SizeMin, parameter.SizeMax)
	return p
}
