package parameter

// Audio levels and ramp timing for looping sounds.
const (
	AudioMasterVolume = 0.8  // 0.0 - 1.0
	AudioRampTime     = 0.15 // seconds to fade loops in/out
	AudioTraverseVol  = 0.6  // base volume of the traverse motor loop
)
