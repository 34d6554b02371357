package sim

import (
	"github.com/lixenwraith/particle-storm/parameter"
)

// Integrate advances every particle by one frame. The step order is fixed:
// gravity, move, friction, then floor contact. Friction deliberately applies
// after the position update, and floor contact adds its own harsher
// horizontal damping on top of it. Reordering changes the numbers.
func Integrate(st *Store, p Params, d *Dispatcher) {
	d.Run(st.Len(), func(i int) {
		vel := &st.Vel[i]
		pos := &st.Pos[i]

		vel.Y += p.Gravity

		pos.X += vel.X
		pos.Y += vel.Y
		pos.Z += vel.Z

		vel.X *= p.Friction
		vel.Y *= p.Friction
		vel.Z *= p.Friction

		if pos.Y < 0 {
			pos.Y = 0
			vel.Y = -vel.Y * p.Bounce
			vel.X *= parameter.FloorFriction
			vel.Z *= parameter.FloorFriction
		}
	})
}
