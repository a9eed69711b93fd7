package ghelper

import (
	"image"
	"image/color"

	"jigcam/src/geom"
	"jigcam/src/puzzle"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameImage is a puzzle.Frame backed by an ebiten image.
type FrameImage interface {
	puzzle.Frame
	Image() *ebiten.Image
}

// Surface draws the board onto the ebiten screen.
type Surface struct {
	screen *ebiten.Image
	bg     color.Color
	stroke color.Color
	alpha  float64
	mirror bool
}

func NewSurface(screen *ebiten.Image, bg, stroke color.Color, mirror bool) *Surface {
	return &Surface{screen: screen, bg: bg, stroke: stroke, alpha: 1, mirror: mirror}
}

func (s *Surface) Clear() {
	s.screen.Fill(s.bg)
}

func (s *Surface) Alpha() float64 {
	return s.alpha
}

func (s *Surface) SetAlpha(a float64) {
	s.alpha = a
}

func (s *Surface) DrawFrame(frame puzzle.Frame, src, dst geom.Rect) {
	fi, ok := frame.(FrameImage)
	if !ok || fi.Image() == nil || src.W <= 0 || src.H <= 0 {
		return
	}
	fw, _ := frame.Size()
	sx := src.X
	if s.mirror {
		sx = float64(fw) - src.X - src.W
	}
	r := image.Rect(int(sx), int(src.Y), int(sx+src.W), int(src.Y+src.H))
	sub, ok := fi.Image().SubImage(r).(*ebiten.Image)
	if !ok || r.Dx() == 0 || r.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if s.mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(r.Dx()), 0)
	}
	op.GeoM.Scale(dst.W/float64(r.Dx()), dst.H/float64(r.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	op.Filter = ebiten.FilterLinear
	s.screen.DrawImage(sub, op)
}

func (s *Surface) StrokeRect(r geom.Rect) {
	DrawRectStroke(s.screen, r.X, r.Y, r.W, r.H, 1, s.stroke, s.alpha)
}
