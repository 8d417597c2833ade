package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/renderloop/viewfinder/pkg/engine"
)

const (
	statusRows = 3
	insetStep  = 2
)

var (
	colorBorder   = color.RGBA{110, 110, 120, 255}
	colorData     = color.RGBA{220, 190, 60, 255}
	colorFilmback = color.RGBA{80, 200, 220, 255}
	colorText     = color.RGBA{200, 200, 200, 255}
	colorDim      = color.RGBA{130, 130, 140, 255}
)

// overlayRect animates the filmback overlay toward its target with a
// critically damped spring per edge.
type overlayRect struct {
	pos, vel [4]float64
	spring   harmonica.Spring
	snapped  bool
}

func newOverlayRect(fps int) overlayRect {
	return overlayRect{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

func (o *overlayRect) update(target [4]float64) {
	if !o.snapped {
		// Start on target instead of flying in from the origin.
		o.pos = target
		o.snapped = true
		return
	}
	for i := range o.pos {
		o.pos[i], o.vel[i] = o.spring.Update(o.pos[i], o.vel[i], target[i])
	}
}

// Draw renders one frame into the screen: the render buffer border, the
// data window, the animated filmback overlay and the status lines.
func (a *app) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < area.Max.X; col++ {
			scr.SetCell(col, row, &uv.Cell{Content: " ", Width: 1})
		}
	}

	gridH := a.gridHeight()

	drawBox(scr, 0, 0, a.width-1, gridH-1, colorBorder)

	// Two buffer pixel rows per cell row; the exclusive max edge
	// addresses the cell after the last covered one.
	dw := a.framing.DataWindow
	drawBox(scr, dw.Min.X, dw.Min.Y/2, dw.Max.X-1, (dw.Max.Y-1)/2, colorData)

	x0 := max(int(math.Round(a.overlay.pos[0])), 0)
	y0 := max(int(math.Round(a.overlay.pos[1]))/2, 0)
	x1 := min(int(math.Round(a.overlay.pos[2]))-1, a.width-1)
	y1 := min((int(math.Round(a.overlay.pos[3]))-1)/2, gridH-1)
	if x1 > x0 && y1 > y0 {
		drawBox(scr, x0, y0, x1, y1, colorFilmback)
	}

	a.drawStatus(scr, gridH)
}

func (a *app) drawStatus(scr uv.Screen, gridH int) {
	cam := a.activeCamera()
	buf := a.bufSize()

	line1 := fmt.Sprintf("%s  %s f=%.0f  par %.0f  policy %s  planes %d  buffer %dx%d",
		cam.Path, cam.Projection, cam.FocalLength, a.par, a.policy,
		len(a.session.ClippingPlaneIDs()), buf.X, buf.Y)

	rec, _ := a.session.Camera(a.camCtx.CameraID())
	sw, _ := rec.Params.FloatArray(engine.ParamScreenWindow)
	crop, _ := a.opts.FloatArray(engine.ParamCropWindow)
	line2 := fmt.Sprintf("screen %s  crop %s", fmtVec4(sw), fmtVec4(crop))

	line3 := "f/c/v/h/d policy  arrows window  tab cam  +/- focal  o proj  a par  x plane  r reset  q quit"
	if ops := a.session.Ops(); len(ops) > 0 {
		line3 = fmt.Sprintf("op %d: %s   %s", len(ops), ops[len(ops)-1], line3)
	}

	drawText(scr, 1, gridH, a.width-1, line1, colorText)
	drawText(scr, 1, gridH+1, a.width-1, line2, colorText)
	drawText(scr, 1, gridH+2, a.width-1, line3, colorDim)
}

func drawBox(scr uv.Screen, x0, y0, x1, y1 int, c color.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	style := uv.Style{Fg: c}
	set := func(x, y int, s string) {
		scr.SetCell(x, y, &uv.Cell{Content: s, Width: 1, Style: style})
	}
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, "─")
		set(x, y1, "─")
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, "│")
		set(x1, y, "│")
	}
	set(x0, y0, "┌")
	set(x1, y0, "┐")
	set(x0, y1, "└")
	set(x1, y1, "┘")
}

func drawText(scr uv.Screen, x, y, maxX int, s string, c color.Color) {
	style := uv.Style{Fg: c}
	for i, r := range []rune(s) {
		if x+i >= maxX {
			return
		}
		scr.SetCell(x+i, y, &uv.Cell{Content: string(r), Width: 1, Style: style})
	}
}

func fmtVec4(v []float32) string {
	if len(v) != 4 {
		return "[-]"
	}
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", v[0], v[1], v[2], v[3])
}
