//go:build !js && !wasm
// +build !js,!wasm

package gframe

import "context"

func openCamera(ctx context.Context, opts Options) (Source, error) {
	return nil, ErrNoCamera
}
