package models

// Shape kind labels reported by the inspector.
const (
	KindPicture     = "Picture"
	KindTextBox     = "TextBox"
	KindGroup       = "Group"
	KindLine        = "Line"
	KindRoundedRect = "AutoShape-RoundedRectangle"
	KindRectangle   = "AutoShape-Rectangle"
)

// Shape represents a drawable element read back from a slide.
type Shape struct {
	// ID is the cNvPr id of the shape within its slide.
	ID int `json:"id"`
	// Name is the cNvPr name of the shape.
	Name string `json:"name,omitempty"`
	// Kind is the shape kind label (see Kind* constants).
	Kind string `json:"kind"`
	// Text is the visible text; paragraphs and line breaks are joined with "\n".
	Text string `json:"text,omitempty"`
	// L is the left offset in EMU.
	L int64 `json:"l"`
	// T is the top offset in EMU.
	T int64 `json:"t"`
	// W is the width in EMU.
	W int64 `json:"w"`
	// H is the height in EMU.
	H int64 `json:"h"`
}
