package models

// SlideSummary represents structured data for a single slide.
type SlideSummary struct {
	// Index is the slide position (1-based).
	Index int `json:"index"`
	// Title is the first text found on the slide, normally the header title.
	Title string `json:"title,omitempty"`
	// Shapes contains every shape in document order.
	Shapes []Shape `json:"shapes"`
	// Pictures counts embedded pictures.
	Pictures int `json:"pictures"`
	// Placeholders lists the image file names drawn as placeholders.
	Placeholders []string `json:"placeholders,omitempty"`
}
