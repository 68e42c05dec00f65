package deck

import (
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Theme colors: khadi background with suvarna (gold) accents.
var (
	Khadi           = RGB(249, 246, 238) // warm off-white
	CardBG          = RGB(255, 252, 245)
	CardLine        = RGB(235, 228, 212)
	Ink             = RGB(32, 33, 36)
	Muted           = RGB(110, 107, 101)
	Suvarna         = RGB(196, 151, 52)
	SuvarnaDark     = RGB(140, 104, 26)
	AccentBlue      = RGB(41, 98, 255)
	PlaceholderBG   = RGB(245, 239, 225)
	PlaceholderLine = RGB(224, 212, 190)
	White           = RGB(255, 255, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) ppt.Color {
	return ppt.NewColor(fmt.Sprintf("FF%02X%02X%02X", r, g, b))
}
