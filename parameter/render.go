package parameter

import "time"

// Render and frame loop tuning
const (
	// SizeDefault is the particle sprite size (render-only, no physics effect)
	SizeDefault = 0.12
	SizeMin     = 0.12
	SizeMax     = 0.5

	// SizeScale converts world size to projected cell radius
	SizeScale = 48.0

	// HUDRows is the number of bottom rows reserved for status and key help
	HUDRows = 2

	// CellAspect doubles horizontal projection for 1:2 terminal cells
	CellAspect = 2.0

	// DepthFadeNear/Far bound the depth brightness ramp (camera-space depth)
	DepthFadeNear = 5.0
	DepthFadeFar  = 60.0

	// FPSDefault is the frame rate when not overridden by flag
	FPSDefault = 60
)

// Audio cue tuning
const (
	// CueToneHz is the impulse cue pitch
	CueToneHz = 880

	// CueDuration is the impulse cue length
	CueDuration = 50 * time.Millisecond

	// CueMinInterval rate-limits cues so pointer motion does not stack streams
	CueMinInterval = 100 * time.Millisecond
)
