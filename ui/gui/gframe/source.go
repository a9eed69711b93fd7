package gframe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jigcam/src/framesrc"
	"jigcam/ui/gui/gbase/gos"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	KindPattern = "pattern"
	KindImage   = "image"
	KindCamera  = "camera"
)

var (
	ErrUnknownSource = errors.New("unknown frame source")
	ErrNoCamera      = errors.New("camera capture is only available in the web build")
)

// Source is a continuously updating frame. Image and Update must be called from
// the game loop.
type Source interface {
	Size() (width, height int)
	Image() *ebiten.Image
	Update(now time.Time)
	Close() error
}

type Options struct {
	Kind   string
	Path   string // image file, used when Data is empty
	Data   []byte // already loaded image bytes
	FrameW int    // pattern size
	FrameH int
	Mirror bool // camera only: ask the browser for the user facing camera
}

// Open acquires a source. It may block (camera permission prompt, file IO) and
// is meant to run outside the game loop.
func Open(ctx context.Context, opts Options) (Source, error) {
	switch opts.Kind {
	case KindPattern, "":
		return newPatternSource(opts.FrameW, opts.FrameH), nil
	case KindImage:
		data := opts.Data
		if len(data) == 0 {
			b, err := gos.ReadFile(opts.Path)
			if err != nil {
				return nil, fmt.Errorf("error read image: %w", err)
			}
			data = b
		}
		seq, err := framesrc.Decode(data)
		if err != nil {
			return nil, err
		}
		return newSequenceSource(seq), nil
	case KindCamera:
		return openCamera(ctx, opts)
	default:
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, opts.Kind)
}

// ---- Pattern ----

type patternSource struct {
	pattern *framesrc.Pattern
	img     *ebiten.Image
	start   time.Time
}

func newPatternSource(w, h int) *patternSource {
	return &patternSource{pattern: framesrc.NewPattern(w, h)}
}

func (s *patternSource) Size() (int, int) {
	return s.pattern.Size()
}

func (s *patternSource) Image() *ebiten.Image {
	return s.img
}

func (s *patternSource) Update(now time.Time) {
	if s.img == nil {
		w, h := s.pattern.Size()
		s.img = ebiten.NewImage(w, h)
		s.start = now
	}
	s.img.WritePixels(s.pattern.Render(now.Sub(s.start)).Pix)
}

func (s *patternSource) Close() error {
	if s.img != nil {
		s.img.Deallocate()
	}
	return nil
}

// ---- Still image / GIF ----

type sequenceSource struct {
	seq    *framesrc.Sequence
	images []*ebiten.Image
	cur    int
	start  time.Time
}

func newSequenceSource(seq *framesrc.Sequence) *sequenceSource {
	return &sequenceSource{seq: seq, images: make([]*ebiten.Image, seq.Len())}
}

func (s *sequenceSource) Size() (int, int) {
	return s.seq.Size()
}

func (s *sequenceSource) Image() *ebiten.Image {
	return s.images[s.cur]
}

func (s *sequenceSource) Update(now time.Time) {
	if s.start.IsZero() {
		s.start = now
	}
	s.cur = s.seq.Index(now.Sub(s.start))
	if s.images[s.cur] == nil {
		s.images[s.cur] = ebiten.NewImageFromImage(s.seq.Frames[s.cur])
	}
}

func (s *sequenceSource) Close() error {
	for _, img := range s.images {
		if img != nil {
			img.Deallocate()
		}
	}
	return nil
}
