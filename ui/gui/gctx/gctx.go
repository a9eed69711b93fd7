package gctx

import (
	"jigcam/src/logx"
	"jigcam/ui/gui/gbase"
	"jigcam/ui/gui/gbase/gconf"
	"jigcam/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	AssetsWorker *ghelper.GUIAssetsWorker
	ConfigWorker *gconf.GUIConfigWorker
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(a *ghelper.GUIAssetsWorker, c *gconf.GUIConfigWorker, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		AssetsWorker: a,
		ConfigWorker: c,
		Theme:        gbase.PaletteFromString(c.Config.Theme),
		Logx:         l,
	}
}

func (ctx *GUIGameContext) Config() *gconf.Config {
	return ctx.ConfigWorker.Config
}

// SaveConfig persists the config, logging instead of failing.
func (ctx *GUIGameContext) SaveConfig() {
	if err := ctx.ConfigWorker.Save(); err != nil && err != gconf.ErrNoConfigFile {
		ctx.Logx.Errorf("error save config: %v", err)
	}
}
