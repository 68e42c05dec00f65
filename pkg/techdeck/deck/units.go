// Package deck provides the slide-drawing helpers used to assemble the deck.
package deck

import "math"

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
const EMUPerInch = 914400

// EMUPerPoint is the number of EMUs per typographic point.
// 1 inch = 72 points, so 914400 / 72 = 12700.
const EMUPerPoint = 12700

// Widescreen page size shared by every slide (13.333in x 7.5in).
var (
	SlideWidth  = Inches(13.333)
	SlideHeight = Inches(7.5)
)

// Inches converts inches to EMU, rounding to the nearest unit.
func Inches(in float64) int64 {
	return int64(math.Round(in * EMUPerInch))
}

// Points converts points to EMU.
func Points(pt float64) int64 {
	return int64(math.Round(pt * EMUPerPoint))
}

// ToInches converts EMU back to inches.
func ToInches(emu int64) float64 {
	return float64(emu) / EMUPerInch
}
