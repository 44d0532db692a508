package parameter

// Spotter callout timing and quantization.
const (
	SpotterDisplayTime   = 4.0 // seconds on screen
	SpotterFadeTime      = 1.0 // seconds of fade at the end
	SpotterRoundTo       = 50  // corrections rounded to this, meters
	SpotterMinCorrection = 10  // below this the axis reads "on target"
)
