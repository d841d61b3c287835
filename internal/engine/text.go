package engine

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

const (
	standardTextStyle = "STANDARD"
	defaultFontFamily = "Arial Narrow"
)

func fontFamily(styleName string) string {
	if styleName == "" || styleName == standardTextStyle {
		return defaultFontFamily
	}
	return styleName
}

// textRotation converts a source rotation to the output convention, where
// whole turns read as zero.
func textRotation(deg float64) float64 {
	if int64(math.Round(math.Abs(deg)))%360 != 0 {
		return deg - 180
	}
	return 0
}

func normalizeText(s string) string {
	return norm.NFC.String(s)
}
