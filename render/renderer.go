package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/sim"
)

// Renderer draws the optical sight view of the world into a tcell
// screen. All projection happens in sight units and is mapped to cells
// with the cell aspect correction so the sight stays circular.
type Renderer struct {
	screen tcell.Screen

	width, height int
	cx, cy        int // sight center cell

	radiusCols int
	radiusRows int
	scale      float64 // columns per sight unit
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Frame renders one complete frame and flips the screen.
func (r *Renderer) Frame(w *sim.World) {
	r.screen.Clear()
	r.layout()

	eye := w.Gun.Eye
	basis := w.Gun.View()

	r.drawSkyGround(w.Gun.Elevation)
	r.drawGroundLines(eye, basis)
	r.drawTanks(w.Tanks, eye, basis)
	r.drawExplosions(w.Explosions, eye, basis)
	r.drawTracers(w.Shells, eye, basis)
	r.drawReticle()
	r.drawHUD(w)
	r.drawCallouts(w.Callouts)

	r.screen.Show()
}

// layout recomputes the sight placement from the current terminal
// size, reserving rows for the HUD above and below.
func (r *Renderer) layout() {
	r.width, r.height = r.screen.Size()

	rows := (r.height-hudRows)/2 - 1
	if rows < 4 {
		rows = 4
	}
	cols := int(float64(rows) / parameter.CellAspect)
	if maxCols := r.width/2 - 1; cols > maxCols && maxCols > 4 {
		cols = maxCols
		rows = int(float64(cols) * parameter.CellAspect)
	}

	r.radiusCols = cols
	r.radiusRows = rows
	r.cx = r.width / 2
	r.cy = rows + 1
	r.scale = float64(cols) / parameter.SightRadius
}

// toCell maps sight-relative offsets (screen units, Y down) to a
// terminal cell.
func (r *Renderer) toCell(sx, sy float64) (col, row int) {
	col = r.cx + int(math.Round(sx*r.scale))
	row = r.cy + int(math.Round(sy*r.scale*parameter.CellAspect))
	return col, row
}

// inSight reports whether a cell lies inside the sight ellipse, with
// margin extra cells of slack.
func (r *Renderer) inSight(col, row int, margin int) bool {
	dx := float64(col-r.cx) / float64(r.radiusCols+margin)
	dy := float64(row-r.cy) / float64(r.radiusRows+margin)
	return dx*dx+dy*dy <= 1
}

// set writes one cell if it falls inside the sight.
func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	if !r.inSight(col, row, 0) {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// setRaw writes one cell without the sight clip, for HUD elements.
func (r *Renderer) setRaw(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= r.width || row < 0 || row >= r.height {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// line draws a Bresenham cell line clipped to the sight.
func (r *Renderer) line(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		r.set(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// text writes a string without sight clipping.
func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for i, ch := range s {
		r.setRaw(col+i, row, ch, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
