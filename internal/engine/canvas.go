package engine

import (
	"math"

	"github.com/jbeda/geom"
)

// Canvas is the size and anchor of the output symbol.
type Canvas struct {
	Width    int
	Height   int
	HotspotX int
	HotspotY int
}

// SizeCanvas derives the canvas from the extent of the scaled tree. Sizes
// are rounded up to the next multiple of ten, plus another ten when the
// rounded extent ends in 7, 8 or 9.
func SizeCanvas(bounds geom.Rect) Canvas {
	w, hx := fit(bounds.Min.X, bounds.Max.X)
	h, hy := fit(bounds.Min.Y, bounds.Max.Y)
	return Canvas{Width: w, Height: h, HotspotX: hx, HotspotY: hy}
}

func fit(lo, hi float64) (size, hotspot int) {
	if !finite(lo) || !finite(hi) {
		lo, hi = 0, 0
	}
	raw := hi - lo
	rounded := math.Round(raw)
	up := math.Floor(rounded/10)*10 + 10
	margin := math.Round(up - raw)

	size = int(up)
	if int(rounded)%10 > 6 {
		size += 10
	}
	hotspot = int(-math.Round(lo - margin/2))
	return size, hotspot
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
