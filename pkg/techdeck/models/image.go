// Package models defines data structures shared by the deck builder and the deck inspector.
package models

// SlideImage names an optional screenshot and the caption drawn beneath it.
type SlideImage struct {
	// Filename is the image file name inside the images directory.
	Filename string `json:"filename"`
	// Caption is the text placed under the picture or its placeholder.
	Caption string `json:"caption"`
}

// PlaceholderPrefix starts the text drawn in place of a missing screenshot.
// The expected file name follows on the next line.
const PlaceholderPrefix = "Drop screenshot here:"
