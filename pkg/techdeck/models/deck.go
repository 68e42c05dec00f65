package models

// DeckSummary represents a presentation file read back from disk.
type DeckSummary struct {
	// FileName is the deck file name (no path).
	FileName string `json:"file_name"`
	// Width is the page width in EMU.
	Width int64 `json:"width"`
	// Height is the page height in EMU.
	Height int64 `json:"height"`
	// Slides lists slides in presentation order.
	Slides []SlideSummary `json:"slides"`
}

// ShapeCount returns the total number of shapes across all slides.
func (d *DeckSummary) ShapeCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Shapes)
	}
	return n
}

// Placeholders returns every placeholder file name in slide order.
func (d *DeckSummary) Placeholders() []string {
	var names []string
	for _, s := range d.Slides {
		names = append(names, s.Placeholders...)
	}
	return names
}

// Pictures returns the total number of embedded pictures.
func (d *DeckSummary) Pictures() int {
	n := 0
	for _, s := range d.Slides {
		n += s.Pictures
	}
	return n
}
