package parameter

// Per-keypress adjustment steps for the live parameter panel. Each step is
// roughly a tenth of its parameter's documented range.
const (
	GravityStep  = 0.00098
	BounceStep   = 0.05
	FrictionStep = 0.0025
	SizeStep     = 0.02
)
