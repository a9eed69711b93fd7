// Package framesrc produces frames on the CPU: decoded still images, animated
// GIFs and a generated test pattern.
package framesrc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDim bounds the longer side of decoded frames.
const MaxDim = 1920

const defaultDelay = 100 * time.Millisecond

var ErrEmpty = errors.New("no frames")

// Sequence is a looping list of equally sized frames.
type Sequence struct {
	Frames []*image.RGBA
	Delays []time.Duration
	total  time.Duration
}

func (s *Sequence) Size() (int, int) {
	b := s.Frames[0].Bounds()
	return b.Dx(), b.Dy()
}

func (s *Sequence) Len() int {
	return len(s.Frames)
}

// Index returns the frame shown after elapsed, looping forever.
func (s *Sequence) Index(elapsed time.Duration) int {
	if len(s.Frames) < 2 || s.total <= 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	elapsed %= s.total
	for i, d := range s.Delays {
		if elapsed < d {
			return i
		}
		elapsed -= d
	}
	return len(s.Frames) - 1
}

func newSequence(frames []*image.RGBA, delays []time.Duration) (*Sequence, error) {
	if len(frames) == 0 {
		return nil, ErrEmpty
	}
	s := &Sequence{Frames: frames, Delays: delays}
	for _, d := range delays {
		s.total += d
	}
	return s, nil
}

// Decode reads png, jpeg, gif, bmp or webp data. GIFs keep all their frames.
func Decode(data []byte) (*Sequence, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decode image: %w", err)
	}
	if format == "gif" {
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("error decode gif: %w", err)
		}
		return fromGIF(g)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decode image: %w", err)
	}
	return newSequence([]*image.RGBA{fit(img)}, []time.Duration{defaultDelay})
}

func fromGIF(g *gif.GIF) (*Sequence, error) {
	if len(g.Image) == 0 {
		return nil, ErrEmpty
	}
	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	frames := make([]*image.RGBA, 0, len(g.Image))
	delays := make([]time.Duration, 0, len(g.Image))

	for i, p := range g.Image {
		var prev *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			prev = clone(canvas)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)
		frames = append(frames, fit(canvas))

		d := defaultDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			d = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		delays = append(delays, d)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = prev
		}
	}
	return newSequence(frames, delays)
}

func clone(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// fit copies img into a fresh RGBA at the origin, scaled down to MaxDim.
func fit(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > MaxDim || h > MaxDim {
		if w >= h {
			h = h * MaxDim / w
			w = MaxDim
		} else {
			w = w * MaxDim / h
			h = MaxDim
		}
		dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		return dst
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
