package sim

import (
	"math"

	"github.com/lixenwraith/particle-storm/parameter"
	"github.com/lixenwraith/particle-storm/vmath"
)

// Seed lays particles out on a square grid on the floor plane and assigns
// hashed colors. Fully deterministic: the same index always yields the same
// position and color. Velocities are zeroed, so Seed doubles as reset.
func Seed(st *Store, separation float64, d *Dispatcher) {
	if separation <= 0 {
		separation = parameter.SeparationDefault
	}

	side := int(math.Sqrt(float64(st.Len())))
	if side < 1 {
		side = 1
	}
	offset := float64(side) / 2

	d.Run(st.Len(), func(i int) {
		st.Pos[i] = vmath.Vec3{
			X: (offset - float64(i%side)) * separation,
			Y: 0,
			Z: (offset - float64(i/side)) * separation,
		}
		st.Vel[i] = vmath.Vec3{}
		st.Col[i] = vmath.Vec3{
			X: vmath.HashUnit(uint64(i)),
			Y: vmath.HashUnit(uint64(i) + 2),
			Z: vmath.HashUnit(uint64(i) + 4),
		}
	})
}
