package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tank-gunner/parameter"
	"github.com/lixenwraith/tank-gunner/sim"
	"github.com/lixenwraith/tank-gunner/vmath"
)

// drawSkyGround fills the sight with sky above the horizon and ground
// below it. The horizon sits at elevation angle zero, so it appears at
// sight offset focal·tan(elevation) below center when aiming up.
func (r *Renderer) drawSkyGround(elevation float64) {
	horizonSy := parameter.SightFocal * math.Tan(elevation)
	_, horizonRow := r.toCell(0, horizonSy)

	for row := r.cy - r.radiusRows; row <= r.cy+r.radiusRows; row++ {
		for col := r.cx - r.radiusCols; col <= r.cx+r.radiusCols; col++ {
			if !r.inSight(col, row, 0) {
				continue
			}
			if row < horizonRow {
				r.screen.SetContent(col, row, ' ', nil, styleSky)
			} else {
				r.screen.SetContent(col, row, ' ', nil, styleGround)
			}
		}
	}
}

// drawGroundLines draws depth-cue lines across the ground at regular
// range intervals.
func (r *Renderer) drawGroundLines(eye vmath.Vec3, b vmath.Basis) {
	for dist := 100.0; dist <= 2000; dist += 100 {
		var pts [2][2]int
		n := 0
		for _, xOff := range []float64{-500, 500} {
			sx, sy, ok := vmath.ProjectToSight(
				vmath.Vec3{X: xOff, Z: dist}, eye, b, parameter.SightFocal)
			if !ok {
				continue
			}
			if math.Abs(sx) > parameter.SightRadius*2 ||
				math.Abs(sy) > parameter.SightRadius*2 {
				continue
			}
			col, row := r.toCell(sx, sy)
			pts[n] = [2]int{col, row}
			n++
		}
		if n == 2 {
			r.line(pts[0][0], pts[0][1], pts[1][0], pts[1][1], '-', styleGroundLine)
		}
	}
}

// drawTanks projects live tank silhouettes as filled face quads with
// back-face culling; faces are shaded by orientation for depth.
func (r *Renderer) drawTanks(tanks []*sim.Tank, eye vmath.Vec3, b vmath.Basis) {
	for _, tank := range tanks {
		if !tank.Alive {
			continue
		}

		for _, face := range tank.SilhouetteQuads() {
			center := vmath.Scale(
				vmath.Add(vmath.Add(face[0], face[1]), vmath.Add(face[2], face[3])), 0.25)
			e1 := vmath.Sub(face[1], face[0])
			e2 := vmath.Sub(face[3], face[0])
			normal := vmath.Cross(e1, e2)
			if vmath.Dot(normal, vmath.Sub(eye, center)) <= 0 {
				continue // back face
			}

			var quad [4][2]float64
			visible := true
			for i, corner := range face {
				sx, sy, ok := vmath.ProjectToSight(corner, eye, b, parameter.SightFocal)
				if !ok {
					visible = false
					break
				}
				quad[i][0] = float64(r.cx) + sx*r.scale
				quad[i][1] = float64(r.cy) + sy*r.scale*parameter.CellAspect
			}
			if !visible {
				continue
			}

			style := tcell.StyleDefault.Background(colorTankBody)
			switch {
			case math.Abs(normal.Y) > 0.5*vmath.Mag(normal):
				style = tcell.StyleDefault.Background(colorTankTop)
			case math.Abs(normal.X) > 0.5*vmath.Mag(normal):
				style = tcell.StyleDefault.Background(colorTankSide)
			}
			r.fillQuad(quad, style)
		}
	}
}

// fillQuad scanline-fills a convex quad given in float cell
// coordinates.
func (r *Renderer) fillQuad(q [4][2]float64, style tcell.Style) {
	minY, maxY := q[0][1], q[0][1]
	for _, p := range q[1:] {
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}

	for row := int(math.Ceil(minY)); row <= int(math.Floor(maxY)); row++ {
		y := float64(row)
		var xs []float64
		for i := 0; i < 4; i++ {
			a, b := q[i], q[(i+1)%4]
			if (a[1] <= y && b[1] > y) || (b[1] <= y && a[1] > y) {
				t := (y - a[1]) / (b[1] - a[1])
				xs = append(xs, a[0]+t*(b[0]-a[0]))
			}
		}
		if len(xs) < 2 {
			continue
		}
		lo, hi := xs[0], xs[0]
		for _, x := range xs[1:] {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		for col := int(math.Ceil(lo)); col <= int(math.Floor(hi)); col++ {
			r.set(col, row, ' ', style)
		}
	}
}
