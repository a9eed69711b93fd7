//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

var ErrCancelled = dialog.ErrCancelled

type Result struct {
	Path string
	Name string
	Data []byte
}

func OpenImage(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "webp").Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

// Alert shows a blocking native error box.
func Alert(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}
