//go:build !js && !wasm
// +build !js,!wasm

package gos

import (
	"errors"
	"os"
)

func Stat(name string) (FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Name:    fi.Name(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}, nil
}

func ReadFile(name string) ([]byte, error) {
	fi, err := Stat(name)
	if err != nil {
		return nil, err
	}
	if fi.IsDir {
		return nil, errors.New(name + " is a directory")
	}
	return os.ReadFile(name)
}

func IsNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, ErrNotExist)
}
