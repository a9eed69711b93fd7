package gdraw

import (
	"jigcam/ui/gui/gbase"
	"jigcam/ui/gui/gctx"
	"jigcam/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) error
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
	Resize(ctx *gctx.GUIGameContext, w, h int)
	Close() error
}

// DrawStatus fills the screen and writes one centered line.
func DrawStatus(ctx *gctx.GUIGameContext, screen *ebiten.Image, msg string) {
	screen.Fill(ctx.Theme.Bg)
	b := screen.Bounds()
	face := ctx.AssetsWorker.Fonts().Bold
	if text.BoundString(face, msg).Dx() > b.Dx()-2*gbase.PanelMargin {
		face = ctx.AssetsWorker.Fonts().Small
	}
	ghelper.DrawTextCentered(screen, msg, face, b.Dx()/2, b.Dy()/2, ctx.Theme.MenuText)
}
