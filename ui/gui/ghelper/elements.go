package ghelper

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	Active     *ebiten.Image // used while Selected, may be nil
	Selected   bool

	Hover   bool
	Pressed bool
	// animation variables
	Scale         float64
	TargetScale   float64
	OffsetY       float64
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func NewButton(label string, x, y, w, h int, img, active *ebiten.Image) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Image: img, Active: active,
		Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput is called for every pointer update and reports a finished click.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0
	}
	if justReleased {
		if b.Pressed && inside {
			b.Pressed = false
			b.TargetScale = 1.03 // click bounce
			b.TargetOffsetY = 0
			return true
		}
		b.Pressed = false
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	if inside && !b.Pressed {
		b.TargetScale = 1.02
		b.TargetOffsetY = 0
	} else if !b.Pressed {
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	return false
}

func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	approach := func(cur *float64, target float64, speed float64) {
		t := 1.0 - math.Exp(-speed*dt)
		*cur = *cur*(1.0-t) + target*t
	}
	approach(&b.Scale, b.TargetScale, b.AnimSpeed)
	approach(&b.OffsetY, b.TargetOffsetY, b.AnimSpeed)

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, textColor color.Color) {
	img := b.Image
	if b.Selected && b.Active != nil {
		img = b.Active
	}
	if img == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)

	DrawTextCentered(screen, b.Label, face, int(cx), int(cy), textColor)
}

// DrawTextCentered centers s on (cx, cy) using the face metrics.
func DrawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	tx := cx - bounds.Dx()/2 - bounds.Min.X
	ty := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, face, tx, ty, clr)
}

// ---- Popup ----

// Popup is a panel that scales open and closed.
type Popup struct {
	Open    bool
	Opening bool
	Scale   float64 // 0..1
}

func (p *Popup) Show() {
	if p.Open && p.Opening {
		return
	}
	p.Open = true
	p.Opening = true
}

func (p *Popup) Hide() {
	p.Opening = false
}

func (p *Popup) Visible() bool {
	return p.Open && p.Scale > 0
}

func (p *Popup) Animate(dt float64) {
	const speed = 6.0
	if p.Opening {
		p.Scale = math.Min(1, p.Scale+speed*dt)
		return
	}
	p.Scale = math.Max(0, p.Scale-speed*dt)
	if p.Scale == 0 {
		p.Open = false
	}
}
