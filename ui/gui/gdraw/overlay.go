package gdraw

import (
	"image/color"

	"jigcam/src/geom"
	"jigcam/src/puzzle"
	"jigcam/ui/gui/gbase"
	"jigcam/ui/gui/gctx"
	"jigcam/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type Action int

const (
	ActionNone Action = iota
	ActionDifficulty
	ActionStart
)

// Overlay is the menu, timer and congratulations layer drawn over the board.
type Overlay struct {
	menuVisible  bool
	timerVisible bool
	congrats     ghelper.Popup
	elapsed      string
	final        string
	played       bool

	selected    puzzle.Difficulty
	diffButtons []*ghelper.Button
	startButton *ghelper.Button

	panelX, panelY, panelW, panelH int
	panelImg, timerImg, cardImg    *ebiten.Image

	pointer geom.Point
}

func NewOverlay(selected puzzle.Difficulty) *Overlay {
	return &Overlay{selected: selected}
}

// ---- session.Display ----

func (o *Overlay) SetElapsed(text string) {
	o.elapsed = text
}

func (o *Overlay) ShowMenu(visible bool) {
	o.menuVisible = visible
}

func (o *Overlay) ShowTimer(visible bool) {
	o.timerVisible = visible
	if visible {
		o.played = true
	}
}

func (o *Overlay) ShowCongrats(visible bool, finalTime string) {
	o.final = finalTime
	if visible {
		o.congrats.Show()
	} else {
		o.congrats.Hide()
	}
}

// ---- layout ----

func (o *Overlay) Layout(ctx *gctx.GUIGameContext, w, h int) {
	o.panelW = gbase.PanelW
	if o.panelW > w-2*gbase.PanelMargin {
		o.panelW = max(w-2*gbase.PanelMargin, 4*gbase.ButtonW/2)
	}
	o.panelH = gbase.PanelH
	o.panelX = (w - o.panelW) / 2
	o.panelY = gbase.PanelMargin
	o.rebuild(ctx)
}

// Refresh re-renders panels and labels after a theme or language switch.
func (o *Overlay) Refresh(ctx *gctx.GUIGameContext) {
	if o.panelW > 0 {
		o.rebuild(ctx)
	}
}

func (o *Overlay) rebuild(ctx *gctx.GUIGameContext) {
	th := ctx.Theme
	lang := ctx.AssetsWorker.Lang()
	o.panelImg = ghelper.RenderRoundedRect(o.panelW, o.panelH, 16, th.PanelBg, th.ButtonStroke, 2)
	o.timerImg = ghelper.RenderRoundedRect(gbase.TimerW, gbase.TimerH, 12, th.PanelBg, th.ButtonStroke, 2)
	o.cardImg = ghelper.RenderRoundedRect(o.panelW, 96, 16, th.PanelBg, th.Accent, 3)

	n := len(puzzle.Difficulties)
	bw := min(gbase.ButtonW, (o.panelW-(n+1)*gbase.ButtonGap)/n)
	rowW := n*bw + (n-1)*gbase.ButtonGap
	x := o.panelX + (o.panelW-rowW)/2
	y := o.panelY + 70

	img := ghelper.RenderRoundedRect(bw, gbase.ButtonH, 12, th.ButtonFill, th.ButtonStroke, 2)
	active := ghelper.RenderRoundedRect(bw, gbase.ButtonH, 12, th.ButtonFill, th.Accent, 4)
	o.diffButtons = o.diffButtons[:0]
	for _, d := range puzzle.Difficulties {
		b := ghelper.NewButton(lang.T("difficulty."+d.String()), x, y, bw, gbase.ButtonH, img, active)
		b.Selected = d == o.selected
		o.diffButtons = append(o.diffButtons, b)
		x += bw + gbase.ButtonGap
	}

	sw := 2*bw + gbase.ButtonGap
	o.startButton = ghelper.NewButton(lang.T("menu.start"),
		o.panelX+(o.panelW-sw)/2, y+gbase.ButtonH+gbase.ButtonGap, sw, gbase.ButtonH,
		ghelper.RenderRoundedRect(sw, gbase.ButtonH, 12, th.Accent, th.ButtonStroke, 2), nil)
}

// Contains reports whether p is over a visible panel.
func (o *Overlay) Contains(p geom.Point) bool {
	if !o.menuVisible {
		return false
	}
	return ghelper.PointInRect(int(p.X), int(p.Y), o.panelX, o.panelY, o.panelW, o.panelH)
}

// HandleEvent runs the buttons for one pointer event.
func (o *Overlay) HandleEvent(ev puzzle.Event) (Action, puzzle.Difficulty) {
	if ev.Kind != puzzle.EventRelease {
		o.pointer = ev.At
	}
	if !o.menuVisible {
		return ActionNone, o.selected
	}
	px, py := int(o.pointer.X), int(o.pointer.Y)
	pressed := ev.Kind == puzzle.EventPress
	released := ev.Kind == puzzle.EventRelease

	for i, b := range o.diffButtons {
		if b.HandleInput(px, py, pressed, released) {
			o.selected = puzzle.Difficulties[i]
			for j, other := range o.diffButtons {
				other.Selected = j == i
			}
			return ActionDifficulty, o.selected
		}
	}
	if o.startButton != nil && o.startButton.HandleInput(px, py, pressed, released) {
		return ActionStart, o.selected
	}
	return ActionNone, o.selected
}

func (o *Overlay) Update(dt float64) {
	for _, b := range o.diffButtons {
		b.UpdateAnim(dt)
	}
	if o.startButton != nil {
		o.startButton.UpdateAnim(dt)
	}
	o.congrats.Animate(dt)
}

// ---- drawing ----

func (o *Overlay) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()
	w := screen.Bounds().Dx()

	if o.timerVisible && o.elapsed != "" {
		tx := (w - gbase.TimerW) / 2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(tx), float64(gbase.PanelMargin))
		screen.DrawImage(o.timerImg, op)
		ghelper.DrawTextCentered(screen, o.elapsed, fonts.Bold, tx+gbase.TimerW/2, gbase.PanelMargin+gbase.TimerH/2, ctx.Theme.MenuText)
	}

	if o.menuVisible {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(o.panelX), float64(o.panelY))
		screen.DrawImage(o.panelImg, op)
		ghelper.DrawTextCentered(screen, lang.T("menu.title"), fonts.Title, o.panelX+o.panelW/2, o.panelY+26, ctx.Theme.MenuText)
		ghelper.DrawTextCentered(screen, lang.T("menu.hint"), fonts.Small, o.panelX+o.panelW/2, o.panelY+52, ctx.Theme.MenuText)
		for _, b := range o.diffButtons {
			b.DrawAnimated(screen, fonts.Normal, ctx.Theme.ButtonText)
		}
		if o.startButton != nil {
			o.startButton.Label = lang.T("menu.start")
			if o.played {
				o.startButton.Label = lang.T("menu.restart")
			}
			o.startButton.DrawAnimated(screen, fonts.Bold, color.White)
		}
	}

	if o.congrats.Visible() {
		o.drawCongrats(ctx, screen)
	}
}

func (o *Overlay) drawCongrats(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()
	cw, ch := o.cardImg.Bounds().Dx(), o.cardImg.Bounds().Dy()
	cx := o.panelX + o.panelW/2
	cy := o.panelY + o.panelH + gbase.PanelMargin + ch/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(cw)/2, -float64(ch)/2)
	op.GeoM.Scale(o.congrats.Scale, o.congrats.Scale)
	op.GeoM.Translate(float64(cx), float64(cy))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.cardImg, op)

	if o.congrats.Scale > 0.85 {
		ghelper.DrawTextCentered(screen, lang.T("congrats.title"), fonts.Title, cx, cy-16, ctx.Theme.Accent)
		ghelper.DrawTextCentered(screen, lang.Tf("congrats.time", o.final), fonts.Bold, cx, cy+22, ctx.Theme.MenuText)
	}
}
