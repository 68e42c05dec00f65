package deck

import (
	"bytes"
	"fmt"
	"os"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Save serializes the presentation as PPTX and writes it to path,
// replacing any existing file.
func Save(p *ppt.Presentation, path string) error {
	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("failed to create PPT writer: %w", err)
	}
	pw, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return fmt.Errorf("unexpected PPT writer %T", w)
	}

	var buf bytes.Buffer
	if err := pw.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode PPT: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
