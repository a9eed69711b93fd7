//go:build js && wasm
// +build js,wasm

package gframe

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type cameraSource struct {
	stream js.Value
	video  js.Value
	canvas js.Value
	ctx2d  js.Value
	w, h   int
	buf    []byte
	img    *ebiten.Image
}

// await blocks the calling goroutine until the promise settles.
func await(ctx context.Context, promise js.Value) (js.Value, error) {
	type settled struct {
		v   js.Value
		err error
	}
	ch := make(chan settled, 1)
	then := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- settled{v: args[0]}
		return nil
	})
	catch := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		msg := "rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		ch <- settled{err: errors.New(msg)}
		return nil
	})
	promise.Call("then", then).Call("catch", catch)

	select {
	case r := <-ch:
		then.Release()
		catch.Release()
		return r.v, r.err
	case <-ctx.Done():
		// the callbacks stay alive, the promise may still settle
		return js.Undefined(), ctx.Err()
	}
}

func openCamera(ctx context.Context, opts Options) (Source, error) {
	devices := js.Global().Get("navigator").Get("mediaDevices")
	if !devices.Truthy() {
		return nil, ErrNoCamera
	}
	constraints := map[string]interface{}{"video": true}
	if opts.Mirror {
		constraints["video"] = map[string]interface{}{"facingMode": "user"}
	}
	stream, err := await(ctx, devices.Call("getUserMedia", constraints))
	if err != nil {
		return nil, fmt.Errorf("error get user media: %w", err)
	}

	doc := js.Global().Get("document")
	video := doc.Call("createElement", "video")
	video.Set("srcObject", stream)
	video.Set("muted", true)
	video.Set("playsInline", true)

	loaded := make(chan struct{}, 1)
	onloaded := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case loaded <- struct{}{}:
		default:
		}
		return nil
	})
	defer onloaded.Release()
	video.Set("onloadeddata", onloaded)
	if _, err := await(ctx, video.Call("play")); err != nil {
		return nil, fmt.Errorf("error play video: %w", err)
	}
	select {
	case <-loaded:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	video.Set("onloadeddata", js.Null())

	w, h := video.Get("videoWidth").Int(), video.Get("videoHeight").Int()
	if w == 0 || h == 0 {
		return nil, ErrNoCamera
	}
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", w)
	canvas.Set("height", h)
	return &cameraSource{
		stream: stream,
		video:  video,
		canvas: canvas,
		ctx2d:  canvas.Call("getContext", "2d", map[string]interface{}{"willReadFrequently": true}),
		w:      w,
		h:      h,
		buf:    make([]byte, w*h*4),
	}, nil
}

func (s *cameraSource) Size() (int, int) {
	return s.w, s.h
}

func (s *cameraSource) Image() *ebiten.Image {
	return s.img
}

// Update copies the current video frame into the ebiten image.
func (s *cameraSource) Update(now time.Time) {
	w, h := s.video.Get("videoWidth").Int(), s.video.Get("videoHeight").Int()
	if w > 0 && h > 0 && (w != s.w || h != s.h) {
		s.w, s.h = w, h
		s.canvas.Set("width", w)
		s.canvas.Set("height", h)
		s.buf = make([]byte, w*h*4)
		if s.img != nil {
			s.img.Deallocate()
			s.img = nil
		}
	}
	if s.img == nil {
		s.img = ebiten.NewImage(s.w, s.h)
	}
	s.ctx2d.Call("drawImage", s.video, 0, 0, s.w, s.h)
	data := s.ctx2d.Call("getImageData", 0, 0, s.w, s.h).Get("data")
	js.CopyBytesToGo(s.buf, data)
	s.img.WritePixels(s.buf)
}

func (s *cameraSource) Close() error {
	tracks := s.stream.Call("getTracks")
	for i := 0; i < tracks.Length(); i++ {
		tracks.Index(i).Call("stop")
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	return nil
}
