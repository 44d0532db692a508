package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/sim"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// drawExplosions renders impact effects as expanding rune blobs that
// fade as their timer runs out.
func (r *Renderer) drawExplosions(explosions []sim.Explosion, eye vmath.Vec3, b vmath.Basis) {
	for i := range explosions {
		exp := &explosions[i]

		sx, sy, ok := vmath.ProjectToSight(exp.Pos, eye, b, parameter.SightFocal)
		if !ok {
			continue
		}
		col, row := r.toCell(sx, sy)
		if !r.inSight(col, row, 8) {
			continue
		}

		progress := exp.Fraction()

		// Expansion peaks at mid-life then the blob holds and fades
		expand := 1 - (progress-0.5)*(progress-0.5)*4
		expand = math.Max(0.3, math.Min(1, expand*1.5))

		dist := math.Max(exp.Pos.Z, 50)
		sizeScale := 600 / dist

		baseRadius := parameter.DustBaseRadius
		color := colorDust
		if exp.Hit {
			baseRadius = parameter.HitBaseRadius
			color = colorHit
		}

		radius := math.Max(1, baseRadius*expand*sizeScale*r.scale)
		r.blob(col, row, radius, progress, color)
	}
}

// blob draws a filled rune circle with density falling off from the
// core; progress picks denser runes early in the effect's life.
func (r *Renderer) blob(cx, cy int, radius, progress float64, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	rows := int(radius*parameter.CellAspect) + 1
	cols := int(radius) + 1

	for dy := -rows; dy <= rows; dy++ {
		for dx := -cols; dx <= cols; dx++ {
			fx := float64(dx) / radius
			fy := float64(dy) / (radius * parameter.CellAspect)
			d := fx*fx + fy*fy
			if d > 1 {
				continue
			}
			ch := blobRune(d, progress)
			r.set(cx+dx, cy+dy, ch, style)
		}
	}
}

func blobRune(normDistSq, progress float64) rune {
	density := (1 - normDistSq) * progress
	switch {
	case density > 0.6:
		return '█'
	case density > 0.35:
		return '▓'
	case density > 0.15:
		return '▒'
	default:
		return '░'
	}
}

// drawTracers renders the fading streak behind each live shell plus a
// bright head at its current position.
func (r *Renderer) drawTracers(shells []*sim.Shell, eye vmath.Vec3, b vmath.Basis) {
	styleTail := tcell.StyleDefault.Foreground(colorTracer)
	styleHead := tcell.StyleDefault.Foreground(colorTracerCore)

	for _, shell := range shells {
		if !shell.Alive {
			continue
		}

		points := append(shell.Trail(), shell.Pos)
		total := len(points)

		prevValid := false
		var prevCol, prevRow int
		for i, p := range points {
			sx, sy, ok := vmath.ProjectToSight(p, eye, b, parameter.SightFocal)
			if !ok {
				prevValid = false
				continue
			}
			col, row := r.toCell(sx, sy)

			age := float64(i) / math.Max(1, float64(total-1))

			if prevValid && age > 0.1 {
				r.line(prevCol, prevRow, col, row, tracerRune(age), styleTail)
			}
			if i == total-1 {
				r.set(col, row, '●', styleHead)
			}

			prevCol, prevRow = col, row
			prevValid = true
		}
	}
}

// tracerRune thins the streak toward its tail.
func tracerRune(age float64) rune {
	switch {
	case age > 0.75:
		return '*'
	case age > 0.4:
		return '+'
	default:
		return '·'
	}
}
