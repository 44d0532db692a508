package sim

import (
	"github.com/lixenwraith/tank-gunner/input"
	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// Gun is the player's gun: a fixed eye position with traverse and
// elevation driven by held input. Invariant: Ready == (ReloadTimer <= 0).
type Gun struct {
	Eye       vmath.Vec3
	Elevation float64 // radians, clamped to [MinElevation, MaxElevation]
	Traverse  float64 // radians, unbounded

	ReloadTimer float64
	Ready       bool

	// DispersionStd is the Gaussian angular perturbation applied at
	// fire time. Tests set it to zero for exact trajectories.
	DispersionStd float64

	rampTimer  float64 // seconds of fast traverse held, [0, TraverseRampTime]
	traversing bool
}

func NewGun() *Gun {
	return &Gun{
		Eye:           vmath.Vec3{X: 0, Y: parameter.PlayerEyeHeight, Z: 0},
		Elevation:     parameter.InitialElevation,
		Traverse:      parameter.InitialTraverse,
		Ready:         true,
		DispersionStd: parameter.DispersionStdRad,
	}
}

// TraverseSpeedAt returns the traverse rate after the fast modifier has
// been held for rampHeld seconds, lerping from the fine rate to the
// fast rate over the ramp duration.
func TraverseSpeedAt(rampHeld float64) float64 {
	t := 1.0
	if parameter.TraverseRampTime > 0 {
		t = rampHeld / parameter.TraverseRampTime
	}
	return parameter.TraverseSpeed +
		(parameter.TraverseSpeedFast-parameter.TraverseSpeed)*t
}

// Update integrates traverse, elevation and the reload countdown from
// one frame of held input.
func (g *Gun) Update(dt float64, in input.Frame) {
	g.traversing = in.Traversing()

	// Ramp advances only while the fast modifier is held with a
	// traverse key; it resets the instant either stops
	if in.FastTraverse && g.traversing {
		g.rampTimer = min(g.rampTimer+dt, parameter.TraverseRampTime)
	} else {
		g.rampTimer = 0
	}
	speed := TraverseSpeedAt(g.rampTimer)

	if in.TraverseLeft {
		g.Traverse += speed * dt
	}
	if in.TraverseRight {
		g.Traverse -= speed * dt
	}

	if in.ElevateUp {
		g.Elevation += parameter.ElevationSpeed * dt
	}
	if in.ElevateDown {
		g.Elevation -= parameter.ElevationSpeed * dt
	}

	// Clamp, don't reject: holding the key at a stop just pins there
	g.Elevation = max(parameter.MinElevation,
		min(parameter.MaxElevation, g.Elevation))

	if !g.Ready {
		g.ReloadTimer -= dt
		if g.ReloadTimer <= 0 {
			g.ReloadTimer = 0
			g.Ready = true
		}
	}
}

// Fire attempts to fire. Returns nil while reloading; this is a normal
// outcome, not an error. On success the aim angles are perturbed by
// independent Gaussian dispersion and the shell spawns slightly ahead
// of the eye along the perturbed forward.
func (g *Gun) Fire(rng *vmath.Rand) *Shell {
	if !g.Ready {
		return nil
	}
	g.Ready = false
	g.ReloadTimer = parameter.ReloadTime

	elev := rng.Gauss(g.Elevation, g.DispersionStd)
	trav := rng.Gauss(g.Traverse, g.DispersionStd)

	forward := vmath.ViewBasis(elev, trav).Forward
	vel := vmath.Scale(forward, parameter.MuzzleVelocity)
	start := vmath.Add(g.Eye, vmath.Scale(forward, parameter.MuzzleOffset))

	return NewShell(start, vel)
}

// View returns the aim frame for the current angles.
func (g *Gun) View() vmath.Basis {
	return vmath.ViewBasis(g.Elevation, g.Traverse)
}

// Traversing reports whether a traverse key was active last frame,
// used to gate the motor loop sound.
func (g *Gun) Traversing() bool {
	return g.traversing
}

// ReloadProgress returns 1 when ready, otherwise the completed
// fraction of the reload cycle.
func (g *Gun) ReloadProgress() float64 {
	if g.Ready {
		return 1
	}
	return 1 - g.ReloadTimer/parameter.ReloadTime
}
