package sim

import (
	"github.com/lixenwraith/tank-gunner/vmath"
)

// Explosion is a transient visual event at a shell impact point.
// Hit distinguishes armor strikes from ground dust.
type Explosion struct {
	Pos     vmath.Vec3
	Hit     bool
	Timer   float64
	MaxTime float64
}

// Fraction returns the remaining lifetime fraction in [0, 1].
func (e *Explosion) Fraction() float64 {
	if e.MaxTime <= 0 {
		return 0
	}
	f := e.Timer / e.MaxTime
	return max(0, min(1, f))
}

// Callout is a transient spotter message shown on the HUD.
type Callout struct {
	Lines   []string
	Hit     bool
	Timer   float64
	MaxTime float64
}

// Fraction returns the remaining lifetime fraction in [0, 1].
func (c *Callout) Fraction() float64 {
	if c.MaxTime <= 0 {
		return 0
	}
	f := c.Timer / c.MaxTime
	return max(0, min(1, f))
}
