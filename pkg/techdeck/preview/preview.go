// Package preview rasterizes deck slides to PNG images.
package preview

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
	"go.uber.org/zap"
)

// DefaultWidth is the output image width in pixels when none is given.
const DefaultWidth = 1280

// FileName returns the image name for a 1-based slide number.
func FileName(slide int) string {
	return fmt.Sprintf("slide_%02d.png", slide)
}

// Render reads the deck at deckPath and writes one PNG per slide into outDir.
// It returns the written paths in slide order.
func Render(deckPath, outDir string, width int, log *zap.Logger) ([]string, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(deckPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}
	return RenderPresentation(pres, outDir, width, log)
}

// RenderPresentation writes one PNG per slide of an in-memory presentation.
func RenderPresentation(pres *ppt.Presentation, outDir string, width int, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if width <= 0 {
		width = DefaultWidth
	}

	slides := pres.GetAllSlides()
	if len(slides) == 0 {
		return nil, fmt.Errorf("PPT file has no slides")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(slides))
	for i := range slides {
		path := filepath.Join(outDir, FileName(i+1))
		if err := saveSlide(pres, i, width, path); err != nil {
			return paths, fmt.Errorf("slide %d: %w", i+1, err)
		}
		log.Debug("Rendered slide", zap.Int("index", i+1), zap.String("path", path))
		paths = append(paths, path)
	}

	return paths, nil
}

func saveSlide(pres *ppt.Presentation, index, width int, path string) error {
	img, err := RenderSlide(pres, index, width)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	encodeErr := png.Encode(f, img)
	closeErr := f.Close()
	if encodeErr != nil {
		return encodeErr
	}
	return closeErr
}
