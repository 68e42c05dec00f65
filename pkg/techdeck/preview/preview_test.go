package preview_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh-app/techdeck/pkg/techdeck"
	"github.com/vansh-app/techdeck/pkg/techdeck/deck"
	"github.com/vansh-app/techdeck/pkg/techdeck/preview"
	"go.uber.org/zap/zaptest"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "slide_01.png", preview.FileName(1))
	assert.Equal(t, "slide_09.png", preview.FileName(9))
	assert.Equal(t, "slide_12.png", preview.FileName(12))
}

func TestRenderPresentation(t *testing.T) {
	pres, _, err := techdeck.Assemble(techdeck.Options{Root: t.TempDir()})
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "previews")
	paths, err := preview.RenderPresentation(pres, outDir, 640, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, paths, techdeck.SlideCount)

	for i, p := range paths {
		assert.Equal(t, filepath.Join(outDir, preview.FileName(i+1)), p)
	}

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 360, cfg.Height)
}

func TestRenderFromFile(t *testing.T) {
	res, err := techdeck.Build(techdeck.Options{Root: t.TempDir()})
	require.NoError(t, err)

	paths, err := preview.Render(res.OutputPath, t.TempDir(), 0, nil)
	require.NoError(t, err)
	assert.Len(t, paths, techdeck.SlideCount)
}

func TestRenderMissingDeck(t *testing.T) {
	_, err := preview.Render(filepath.Join(t.TempDir(), "missing.pptx"), t.TempDir(), 0, nil)
	assert.Error(t, err)
}

var blue = color.RGBA{R: 41, G: 98, B: 255, A: 255}

func rgba(c ppt.Color) color.RGBA {
	return color.RGBA{R: c.GetRed(), G: c.GetGreen(), B: c.GetBlue(), A: 255}
}

// sampleSlide lays out a header, a card at (1in, 2in) and a picture at
// (7in, 2in), both 4in x 3in. At 640px wide one inch is 48px.
func sampleSlide(t *testing.T) *ppt.Presentation {
	t.Helper()
	pic := filepath.Join(t.TempDir(), "blue.png")
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	for x := 0; x < 16; x++ {
		for y := 0; y < 12; y++ {
			img.SetRGBA(x, y, blue)
		}
	}
	f, err := os.Create(pic)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	pres := ppt.New()
	deck.SetWidescreen(pres)
	slide := pres.GetActiveSlide()
	deck.AddBackground(slide, deck.Khadi)
	deck.AddHeader(slide, "Overview", "")
	deck.AddCard(slide, deck.Inches(1), deck.Inches(2), deck.Inches(4), deck.Inches(3))
	embedded, err := deck.TryAddImage(slide, pic, deck.Inches(7), deck.Inches(2), deck.Inches(4), deck.Inches(3), "Blue")
	require.NoError(t, err)
	require.True(t, embedded)
	return pres
}

func TestRenderSlidePixels(t *testing.T) {
	img, err := preview.RenderSlide(sampleSlide(t), 0, 640)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 640, 360), img.Bounds())

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"header band", 2, 2, rgba(deck.Suvarna)},
		{"background", 639, 359, rgba(deck.Khadi)},
		{"card fill", 144, 168, rgba(deck.CardBG)},
		{"card outline", 48, 168, rgba(deck.CardLine)},
		{"rounded corner", 49, 97, rgba(deck.Khadi)},
		{"picture", 432, 168, blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, img.RGBAAt(tt.x, tt.y))
		})
	}
}

func TestRenderSlideDrawsText(t *testing.T) {
	img, err := preview.RenderSlide(sampleSlide(t), 0, 640)
	require.NoError(t, err)

	band := rgba(deck.Suvarna)
	inked := 0
	for y := 10; y < 40; y++ {
		for x := 34; x < 200; x++ {
			if img.RGBAAt(x, y) != band {
				inked++
			}
		}
	}
	assert.Positive(t, inked)
}

func TestRenderSlideOutOfRange(t *testing.T) {
	_, err := preview.RenderSlide(ppt.New(), 3, 640)
	assert.Error(t, err)
}
