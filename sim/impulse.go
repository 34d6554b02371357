package sim

import (
	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/vmath"
)

// PointerTarget converts a ground-plane hit into an impulse origin by forcing
// Y below the floor. The sunken origin biases every push upward; kept as-is,
// see the open question in DESIGN.md.
func PointerTarget(hit vmath.Vec3) vmath.Vec3 {
	hit.Y = parameter.ImpulseOriginY
	return hit
}

// Impulse pushes particles near target outward. Influence falls off linearly
// and ends at ImpulseRadius; each particle scales the push by a hashed jitter
// multiplier in [0.5, 2.0). Velocity only — position changes appear on the
// next Integrate.
func Impulse(st *Store, target vmath.Vec3, d *Dispatcher) {
	d.Run(st.Len(), func(i int) {
		delta := vmath.V3Sub(st.Pos[i], target)
		dist := vmath.V3Mag(delta)

		area := parameter.ImpulseRadius - dist
		if area <= 0 {
			return
		}

		power := area * parameter.ImpulsePower
		jitter := vmath.HashUnit(uint64(i))*parameter.ImpulseJitterScale + parameter.ImpulseJitterOffset

		dir := vmath.V3Normalize(delta)
		st.Vel[i] = vmath.V3Add(st.Vel[i], vmath.V3Scale(dir, power*jitter))
	})
}
