package framesrc

import (
	"image"
	"time"
)

// Pattern is an animated test card used when no camera or image is available.
type Pattern struct {
	img *image.RGBA
}

func NewPattern(w, h int) *Pattern {
	return &Pattern{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (p *Pattern) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

// Render draws the pattern at time t into the shared buffer and returns it.
func (p *Pattern) Render(t time.Duration) *image.RGBA {
	w, h := p.Size()
	shift := int(t / (16 * time.Millisecond))
	cellW, cellH := max(w/8, 1), max(h/6, 1)
	for y := 0; y < h; y++ {
		row := p.img.Pix[y*p.img.Stride:]
		for x := 0; x < w; x++ {
			cx, cy := x/cellW, y/cellH
			i := x * 4
			// diagonal gradient per cell, distinct hue per cell, slow scroll
			base := uint8((cx*37 + cy*71) & 0xff)
			row[i+0] = base + uint8((x+shift)&0x7f)
			row[i+1] = uint8((cy*53)&0xff) + uint8((y+shift/2)&0x7f)
			row[i+2] = uint8(((cx ^ cy) * 29) & 0xff)
			row[i+3] = 0xff
			if x%cellW == 0 || y%cellH == 0 {
				row[i+0], row[i+1], row[i+2] = 0xff, 0xff, 0xff
			}
		}
	}
	return p.img
}
