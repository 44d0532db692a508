package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette. Values follow the sight's muted daylight look.
var (
	colorSky        = tcell.NewRGBColor(155, 195, 230)
	colorGround     = tcell.NewRGBColor(95, 130, 60)
	colorGroundLine = tcell.NewRGBColor(82, 115, 52)
	colorReticle    = tcell.NewRGBColor(20, 20, 20)
	colorTankBody   = tcell.NewRGBColor(55, 58, 48)
	colorTankTop    = tcell.NewRGBColor(75, 78, 65)
	colorTankSide   = tcell.NewRGBColor(50, 52, 44)
	colorReady      = tcell.NewRGBColor(30, 220, 30)
	colorReloading  = tcell.NewRGBColor(220, 60, 20)
	colorHudText    = tcell.NewRGBColor(200, 200, 200)
	colorDust       = tcell.NewRGBColor(190, 170, 110)
	colorHit        = tcell.NewRGBColor(255, 90, 20)
	colorTracer     = tcell.NewRGBColor(255, 230, 140)
	colorTracerCore = tcell.NewRGBColor(255, 255, 220)
)

var (
	styleSky        = tcell.StyleDefault.Background(colorSky)
	styleGround     = tcell.StyleDefault.Background(colorGround)
	styleGroundLine = tcell.StyleDefault.Foreground(colorGroundLine).Background(colorGround)
	styleHud        = tcell.StyleDefault.Foreground(colorHudText)
)
