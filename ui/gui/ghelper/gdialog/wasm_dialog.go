//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"errors"
	"syscall/js"
)

type Result struct {
	Path string // empty
	Name string
	Data []byte
}

var ErrCancelled = errors.New("Cancelled")

type result struct {
	res Result
	err error
}

// OpenImage asks for a file through <input type="file"> and waits for its bytes.
func OpenImage(title string) (Result, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return Result{}, errors.New("document not available")
	}
	body := doc.Get("body")
	if !body.Truthy() {
		return Result{}, errors.New("document.body not available")
	}

	ch := make(chan result, 1)
	send := func(r result) {
		select {
		case ch <- r:
		default:
		}
	}

	input := doc.Call("createElement", "input")
	input.Set("type", "file")
	input.Set("accept", "image/*")
	input.Set("title", title)

	var onchange, oncancel, onload, onerror js.Func
	releaseReader := func() {
		onload.Release()
		onerror.Release()
	}

	onchange = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		files := input.Get("files")
		if files.Length() == 0 {
			send(result{err: ErrCancelled})
			return nil
		}
		file := files.Index(0)
		name := file.Get("name").String()
		reader := js.Global().Get("FileReader").New()

		onload = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			arr := js.Global().Get("Uint8Array").New(reader.Get("result"))
			data := make([]byte, arr.Get("length").Int())
			js.CopyBytesToGo(data, arr)
			releaseReader()
			send(result{res: Result{Name: name, Data: data}})
			return nil
		})
		onerror = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			releaseReader()
			send(result{err: errors.New("failed to read file")})
			return nil
		})
		reader.Set("onload", onload)
		reader.Set("onerror", onerror)
		reader.Call("readAsArrayBuffer", file)
		return nil
	})
	input.Set("onchange", onchange)
	oncancel = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		send(result{err: ErrCancelled})
		return nil
	})
	input.Call("addEventListener", "cancel", oncancel)

	body.Call("appendChild", input)
	input.Call("click")

	r := <-ch
	body.Call("removeChild", input)
	onchange.Release()
	oncancel.Release()
	return r.res, r.err
}

func Alert(title, msg string) {
	js.Global().Call("alert", title+": "+msg)
}
