package gui

import (
	"errors"

	"jigcam/src/logx"
	"jigcam/ui/gui/gbase"
	"jigcam/ui/gui/gbase/gconf"
	"jigcam/ui/gui/gctx"
	"jigcam/ui/gui/gdraw"
	"jigcam/ui/gui/gframe"
	"jigcam/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
	w, h    int
}

// SourceOptions builds frame source options from the config.
func SourceOptions(cfg *gconf.Config) gframe.Options {
	return gframe.Options{
		Kind:   cfg.Source,
		Path:   cfg.Image,
		FrameW: cfg.FrameW,
		FrameH: cfg.FrameH,
		Mirror: cfg.Mirror,
	}
}

func NewGUI(cw *gconf.GUIConfigWorker, src gframe.Options, logx logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(cw.Config.Lang)
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(assets, cw, logx)
	return &GUIProcessing{
		current: gdraw.NewGUIPlayDrawer(ctx, src),
		ctx:     ctx,
		w:       cw.Config.WindowW,
		h:       cw.Config.WindowH,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.w, gp.h)
	ebiten.SetWindowTitle("JigCam")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer func() {
		if err := gp.current.Close(); err != nil {
			gp.ctx.Logx.Warnf("error close scene: %v", err)
		}
		_ = gp.ctx.Logx.Sync()
	}()

	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		gp.ctx.Logx.Errorf("error run game: %v", err)
		return err
	}
	gp.ctx.Logx.Info("exit")
	return nil
}

func (gp *GUIProcessing) Update() error {
	return gp.current.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

// Layout follows the outside size so the board always fills the window or canvas.
func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != gp.w || outsideHeight != gp.h {
		gp.w, gp.h = outsideWidth, outsideHeight
		gp.current.Resize(gp.ctx, gp.w, gp.h)
	}
	return gp.w, gp.h
}
