//go:build js && wasm

package main

import (
	"bytes"
	"strings"
	"syscall/js"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/elmt"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/engine"
)

func main() {
	converter := js.Global().Get("Object").New()
	converter.Set("convertDrawing", js.FuncOf(convertDrawing))
	converter.Set("convertSample", js.FuncOf(convertSample))

	js.Global().Set("dxf2elmt", converter)

	// Signal that WASM is ready
	js.Global().Set("dxf2elmtWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// convertDrawing(json, [options]) converts a JSON drawing. options may carry
// name, splineStep and dynamicText.
func convertDrawing(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing drawing JSON"})
	}
	d, err := drawing.Load(strings.NewReader(args[0].String()))
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return convert(d, args[1:])
}

func convertSample(this js.Value, args []js.Value) interface{} {
	return convert(drawing.NewSampleDrawing(), args)
}

func convert(d *drawing.Drawing, args []js.Value) interface{} {
	opts := engine.DefaultOptions()
	name := ""
	if len(args) > 0 && args[0].Type() == js.TypeObject {
		o := args[0]
		if v := o.Get("name"); v.Type() == js.TypeString {
			name = v.String()
		}
		if v := o.Get("splineStep"); v.Type() == js.TypeNumber && v.Int() > 0 && v.Int() <= engine.MaxSplineStep {
			opts.SplineStep = v.Int()
		}
		if v := o.Get("dynamicText"); v.Type() == js.TypeBoolean {
			opts.DynamicText = v.Bool()
		}
	}

	var buf bytes.Buffer
	res, err := elmt.Convert(&buf, d, name, opts)
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	skipped := map[string]interface{}{}
	for reason, n := range res.Stats.Skipped {
		skipped[string(reason)] = n
	}
	return js.ValueOf(map[string]interface{}{
		"id":        res.ID,
		"xml":       buf.String(),
		"width":     res.Canvas.Width,
		"height":    res.Canvas.Height,
		"converted": res.Stats.TotalConverted(),
		"skipped":   skipped,
	})
}
