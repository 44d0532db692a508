package sim

import (
	"fmt"
	"math"

	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// minSpotterRange rejects degenerate geometry when the target is
// essentially at the gun.
const minSpotterRange = 1.0

// hitCallout is the fixed confirmation shown on a kill.
func hitCallout() Callout {
	return Callout{
		Lines:   []string{"TARGET HIT!"},
		Hit:     true,
		Timer:   parameter.SpotterDisplayTime,
		MaxTime: parameter.SpotterDisplayTime,
	}
}

// missCallout derives correction text from miss geometry: both the
// impact and the target are projected onto the ground plane, the
// signed range error is measured along the eye-to-target direction and
// the lateral error along its ground-plane perpendicular. ok is false
// when no usable geometry exists.
func missCallout(impact, targetCenter, eye vmath.Vec3) (Callout, bool) {
	target := vmath.Flatten(targetCenter)
	ground := vmath.Flatten(impact)

	toTarget := vmath.Flatten(vmath.Sub(target, eye))
	targetRange := vmath.Mag(toTarget)
	if targetRange < minSpotterRange {
		return Callout{}, false
	}

	forward := vmath.Scale(toTarget, 1/targetRange)
	right := vmath.Vec3{X: forward.Z, Y: 0, Z: -forward.X}

	delta := vmath.Sub(ground, target)
	rangeErr := vmath.Dot(delta, forward) // positive = long
	lateralErr := vmath.Dot(delta, right) // positive = right

	lines := []string{
		rangeLine(rangeErr),
		lateralLine(lateralErr),
	}

	return Callout{
		Lines:   lines,
		Timer:   parameter.SpotterDisplayTime,
		MaxTime: parameter.SpotterDisplayTime,
	}, true
}

func rangeLine(err float64) string {
	if math.Abs(err) < parameter.SpotterMinCorrection {
		return "RANGE: ON"
	}
	n := roundCorrection(math.Abs(err))
	if err > 0 {
		return fmt.Sprintf("LONG %dm", n)
	}
	return fmt.Sprintf("SHORT %dm", n)
}

func lateralLine(err float64) string {
	if math.Abs(err) < parameter.SpotterMinCorrection {
		return "LINE: ON"
	}
	n := roundCorrection(math.Abs(err))
	if err > 0 {
		return fmt.Sprintf("RIGHT %dm", n)
	}
	return fmt.Sprintf("LEFT %dm", n)
}

// roundCorrection quantizes a miss distance to the nearest multiple of
// the rounding unit, never below one unit.
func roundCorrection(dist float64) int {
	rounded := int(math.Round(dist/parameter.SpotterRoundTo)) * parameter.SpotterRoundTo
	if rounded < parameter.SpotterRoundTo {
		rounded = parameter.SpotterRoundTo
	}
	return rounded
}
