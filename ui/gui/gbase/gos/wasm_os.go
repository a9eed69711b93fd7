//go:build js && wasm
// +build js,wasm

package gos

import "errors"

func Stat(name string) (FileInfo, error) {
	return FileInfo{}, ErrNotExist
}

func ReadFile(name string) ([]byte, error) {
	return nil, ErrNotExist
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
