package puzzle

import "jigcam/src/geom"

// Frame is a read-only source image; only its current dimensions are needed here.
type Frame interface {
	Size() (width, height int)
}

// Surface is the drawing target the board renders onto.
type Surface interface {
	Clear()
	Alpha() float64
	SetAlpha(a float64)
	// DrawFrame copies the src region of frame (in frame pixels) scaled into dst.
	DrawFrame(frame Frame, src, dst geom.Rect)
	StrokeRect(r geom.Rect)
}

// FrameRect returns the whole frame as a rect.
func FrameRect(f Frame) geom.Rect {
	w, h := f.Size()
	return geom.Rect{W: float64(w), H: float64(h)}
}
