package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/sim"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// hudRows is the vertical space reserved below the sight for the
// reload bar and readouts.
const hudRows = 3

const reticleGap = 2 // cells left clear at the sight center

// drawReticle draws the crosshair with range tick marks.
func (r *Renderer) drawReticle() {
	style := tcell.StyleDefault.Foreground(colorReticle)

	// Horizontal hair with a center gap
	for dx := -r.radiusCols; dx <= r.radiusCols; dx++ {
		if abs(dx) <= reticleGap*2 {
			continue
		}
		r.set(r.cx+dx, r.cy, '─', style)
	}
	// Vertical hair
	for dy := -r.radiusRows; dy <= r.radiusRows; dy++ {
		if abs(dy) <= reticleGap {
			continue
		}
		r.set(r.cx, r.cy+dy, '│', style)
	}

	// Tick marks along both hairs at regular sight intervals
	tick := r.radiusCols / 4
	if tick > 0 {
		for i := 1; i <= 3; i++ {
			r.set(r.cx+i*tick, r.cy, '┼', style)
			r.set(r.cx-i*tick, r.cy, '┼', style)
		}
	}
	vtick := r.radiusRows / 4
	if vtick > 0 {
		for i := 1; i <= 3; i++ {
			r.set(r.cx, r.cy+i*vtick, '┼', style)
			r.set(r.cx, r.cy-i*vtick, '┼', style)
		}
	}

	r.set(r.cx, r.cy, '·', style)
}

// drawHUD renders score, gun readouts, and the reload state bar in the
// rows below the sight.
func (r *Renderer) drawHUD(w *sim.World) {
	row := r.cy + r.radiusRows + 1
	if row >= r.height {
		row = r.height - 1
	}

	left := fmt.Sprintf("SCORE %d   SHOTS %d", w.Score, w.ShotsFired)
	if w.ShotsFired > 0 {
		left += fmt.Sprintf("   ACC %.0f%%", float64(w.Score)/float64(w.ShotsFired)*100)
	}
	r.text(1, row, left, styleHud)

	// Rough range only; estimating the exact lead is the player's job
	if t := w.NearestLiveTank(); t != nil {
		d := vmath.Dist(vmath.Flatten(t.Center), vmath.Flatten(w.Gun.Eye))
		r.text(1, row-1, fmt.Sprintf("TGT ~%dm", int(d/100)*100), styleHud)
	}

	readout := fmt.Sprintf("TRV %+6.1f°  ELV %+5.1f°",
		w.Gun.Traverse*180/math.Pi, w.Gun.Elevation*180/math.Pi)
	r.text(r.width-len([]rune(readout))-1, row, readout, styleHud)

	if row+1 < r.height {
		r.drawReloadBar(w, row+1)
	}
}

// drawReloadBar shows READY or a filling progress bar while reloading.
func (r *Renderer) drawReloadBar(w *sim.World, row int) {
	const barWidth = 20
	col := r.cx - barWidth/2 - 1

	if w.Gun.Ready {
		style := tcell.StyleDefault.Foreground(colorReady).Bold(true)
		r.text(r.cx-3, row, "READY", style)
		return
	}

	style := tcell.StyleDefault.Foreground(colorReloading)
	filled := int(w.Gun.ReloadProgress() * barWidth)
	r.setRaw(col, row, '[', style)
	for i := 0; i < barWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.setRaw(col+1+i, row, ch, style)
	}
	r.setRaw(col+barWidth+1, row, ']', style)
	r.text(col+barWidth+3, row, "RELOADING", style)
}

// drawCallouts renders spotter lines top-center, dimming them over the
// fade window at the end of their display time.
func (r *Renderer) drawCallouts(callouts []sim.Callout) {
	row := 1
	for i := range callouts {
		c := &callouts[i]

		style := tcell.StyleDefault.Foreground(colorHudText).Bold(true)
		if c.Hit {
			style = tcell.StyleDefault.Foreground(colorHit).Bold(true)
		}
		if c.Timer < parameter.SpotterFadeTime {
			style = style.Bold(false).Dim(true)
		}

		for _, line := range c.Lines {
			r.text(r.cx-len([]rune(line))/2, row, line, style)
			row++
		}
		row++
	}
}
