package parameter

// Integrate pass tuning. Gravity/bounce/friction are live-adjustable at
// runtime within the stated ranges; the rest are fixed.
const (
	// GravityDefault is per-frame vertical acceleration (world units/frame²)
	GravityDefault = -0.00098
	GravityMin     = -0.0098
	GravityMax     = 0.0

	// BounceDefault is floor restitution (fraction of vertical speed kept)
	BounceDefault = 0.8
	BounceMin     = 0.1
	BounceMax     = 1.0

	// FrictionDefault is per-frame velocity damping, applied after movement
	FrictionDefault = 0.99
	FrictionMin     = 0.96
	FrictionMax     = 0.99

	// FloorFriction is the extra horizontal damping applied only on bounce frames
	FloorFriction = 0.9
)

// Impulse pass tuning
const (
	// ImpulseRadius is the influence radius around the pointer target (world units)
	ImpulseRadius = 3.0

	// ImpulsePower converts remaining radius to velocity magnitude
	ImpulsePower = 0.01

	// ImpulseJitterScale and ImpulseJitterOffset map a unit hash to the
	// per-particle power multiplier range [0.5, 2.0)
	ImpulseJitterScale  = 1.5
	ImpulseJitterOffset = 0.5

	// ImpulseOriginY is forced onto the pointer target before the pass.
	// Sinking the origin below the floor biases the push upward.
	ImpulseOriginY = -1.0
)

// Seed pass tuning
const (
	// ParticleCountDefault is the pool size (fixed for the process lifetime)
	ParticleCountDefault = 30000

	// SeparationDefault is grid spacing between seeded particles (world units)
	SeparationDefault = 0.2
)
