package sim

import (
	"testing"

	"github.com/lixenwraith/particle-storm/vmath"
)

// TestSeedDeterministic verifies two independent seedings agree exactly.
func TestSeedDeterministic(t *testing.T) {
	a := NewStore(256)
	b := NewStore(256)
	d := NewDispatcher(1)

	Seed(a, 0.2, d)
	Seed(b, 0.2, d)

	for i := 0; i < a.Len(); i++ {
		if a.Pos[i] != b.Pos[i] {
			t.Fatalf("particle %d positions differ: %v vs %v", i, a.Pos[i], b.Pos[i])
		}
		if a.Col[i] != b.Col[i] {
			t.Fatalf("particle %d colors differ: %v vs %v", i, a.Col[i], b.Col[i])
		}
	}
}

// TestSeedGridLayout checks the grid formula on a 4x4 pool.
func TestSeedGridLayout(t *testing.T) {
	st := NewStore(16)
	d := NewDispatcher(1)
	Seed(st, 0.2, d)

	// side = 4, offset = 2
	cases := []struct {
		i    int
		x, z float64
	}{
		{0, 0.4, 0.4},  // (2-0)*0.2, (2-0)*0.2
		{3, -0.2, 0.4}, // (2-3)*0.2
		{5, 0.2, 0.2},  // (2-1)*0.2, (2-1)*0.2
		{15, -0.2, -0.2},
	}

	for _, c := range cases {
		p := st.Pos[c.i]
		if !closeF(p.X, c.x) || p.Y != 0 || !closeF(p.Z, c.z) {
			t.Errorf("particle %d at %v, want (%v, 0, %v)", c.i, p, c.x, c.z)
		}
	}
}

// TestSeedColorsInRange verifies every channel lands in [0, 1).
func TestSeedColorsInRange(t *testing.T) {
	st := NewStore(1024)
	d := NewDispatcher(1)
	Seed(st, 0.2, d)

	for i := 0; i < st.Len(); i++ {
		c := st.Col[i]
		for _, ch := range []float64{c.X, c.Y, c.Z} {
			if ch < 0 || ch >= 1 {
				t.Fatalf("particle %d channel out of range: %v", i, c)
			}
		}
	}
}

// TestSeedResetsVelocity verifies reseeding clears motion from a live pool.
func TestSeedResetsVelocity(t *testing.T) {
	st := NewStore(64)
	d := NewDispatcher(1)
	Seed(st, 0.2, d)

	p := DefaultParams()
	for frame := 0; frame < 20; frame++ {
		Integrate(st, p, d)
	}
	Impulse(st, PointerTarget(vmath.Vec3{}), d)

	Seed(st, 0.2, d)
	for i := 0; i < st.Len(); i++ {
		if st.Vel[i] != (vmath.Vec3{}) {
			t.Fatalf("particle %d kept velocity after reseed: %v", i, st.Vel[i])
		}
		if st.Pos[i].Y != 0 {
			t.Fatalf("particle %d not back on the floor: %v", i, st.Pos[i])
		}
	}
}

func closeF(a, b float64) bool {
	diff := a - b
	return diff < 1e-12 && diff > -1e-12
}
