package ghelper

import (
	"jigcam/ui/gui/ghelper/gfont"
	"jigcam/ui/gui/ghelper/glang"
)

type GUIAssetsWorker struct {
	fonts *gfont.Fonts
	lang  *glang.GUILangWorker
}

func NewGUIAssetsWorker(lang string) (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	l, err := glang.NewGUILangWorker(glang.LangFromString(lang))
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{fonts: fonts, lang: l}, nil
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}
