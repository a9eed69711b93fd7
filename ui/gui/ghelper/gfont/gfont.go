package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face
	Normal font.Face
	Bold   font.Face
	Title  font.Face
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFonts builds the faces from the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}
	if fonts.Small, err = newFace(goregular.TTF, 12); err != nil {
		return nil, err
	}
	if fonts.Normal, err = newFace(goregular.TTF, 16); err != nil {
		return nil, err
	}
	if fonts.Bold, err = newFace(gobold.TTF, 18); err != nil {
		return nil, err
	}
	// for titles
	if fonts.Title, err = newFace(gobold.TTF, 26); err != nil {
		return nil, err
	}
	return fonts, nil
}
