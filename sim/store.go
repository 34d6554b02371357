package sim

import (
	"github.com/lixenwraith/particle-storm/vmath"
)

// Store holds the particle pool as parallel arrays. The pool size is fixed at
// construction; indices are reused for the process lifetime, particles are
// never destroyed.
type Store struct {
	Pos []vmath.Vec3
	Vel []vmath.Vec3
	Col []vmath.Vec3
}

// NewStore allocates a zeroed pool of n particles
func NewStore(n int) *Store {
	if n < 1 {
		n = 1
	}
	return &Store{
		Pos: make([]vmath.Vec3, n),
		Vel: make([]vmath.Vec3, n),
		Col: make([]vmath.Vec3, n),
	}
}

// Len returns the pool size
func (s *Store) Len() int {
	return len(s.Pos)
}

// Clone returns a deep copy, used by deterministic comparison tests
func (s *Store) Clone() *Store {
	c := NewStore(s.Len())
	copy(c.Pos, s.Pos)
	copy(c.Vel, s.Vel)
	copy(c.Col, s.Col)
	return c
}
