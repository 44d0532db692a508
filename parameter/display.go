package parameter

// Frame pacing. MaxFrameDT clamps pathological deltas after a stall so
// the substep loop stays bounded.
const (
	TargetFPS  = 60
	MaxFrameDT = 0.05 // seconds

	// Terminal cells are roughly twice as tall as wide; projected Y
	// offsets are scaled by this before mapping to rows
	CellAspect = 0.5
)
