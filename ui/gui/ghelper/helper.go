package ghelper

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// anti-aliased through gg, then uploaded once
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	inset := strokeW / 2
	dc.DrawRoundedRectangle(inset, inset, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// DrawRectStroke draws the outline of a rect, faded by alpha.
func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color, alpha float64) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2)

	r, g, b, a := col.RGBA()
	faded := color.NRGBA64{
		R: uint16(r), G: uint16(g), B: uint16(b),
		A: uint16(float64(a) * alpha),
	}
	if a > 0 {
		// RGBA() is premultiplied
		faded.R = uint16(uint32(r) * 0xffff / a)
		faded.G = uint16(uint32(g) * 0xffff / a)
		faded.B = uint16(uint32(b) * 0xffff / a)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(thickness), faded, true)
}
