package techdeck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/vansh-app/techdeck/pkg/techdeck/deck"
	"github.com/vansh-app/techdeck/pkg/techdeck/models"
	"go.uber.org/zap"
)

// DeckTitle is stored in the document properties and shown on the first slide.
const DeckTitle = "Vansh App – Technical Learnings"

// SlideCount is the number of slides every build produces.
const SlideCount = 9

// Result describes a finished build.
type Result struct {
	// OutputPath is where the deck was written.
	OutputPath string
	// Slides is the number of slides in the deck.
	Slides int
	// Embedded lists screenshots that were found and embedded.
	Embedded []string
	// Placeholders lists screenshots that were missing and drawn as placeholders.
	Placeholders []string
}

// Build assembles the nine-slide deck and writes it to opts.OutputPath(),
// creating the output directory if needed.
func Build(opts Options) (*Result, error) {
	opts = opts.WithDefaults()
	if name := filepath.Base(strings.TrimSpace(opts.OutFile)); name == "." || name == string(filepath.Separator) {
		return nil, ErrNoOutput
	}

	b, err := assemble(opts)
	if err != nil {
		return nil, err
	}

	outPath := opts.OutputPath()
	if err := os.MkdirAll(opts.OutputDir(), 0755); err != nil {
		return nil, NewBuildError(0, "save", err)
	}
	if err := deck.Save(b.pres, outPath); err != nil {
		return nil, NewBuildError(0, "save", err)
	}

	b.result.OutputPath = outPath
	b.log.Info("Deck written",
		zap.String("path", outPath),
		zap.Int("slides", b.result.Slides),
		zap.Strings("embedded", b.result.Embedded),
		zap.Strings("placeholders", b.result.Placeholders))

	return b.result, nil
}

// Assemble builds the in-memory presentation without writing it.
func Assemble(opts Options) (*ppt.Presentation, *Result, error) {
	b, err := assemble(opts.WithDefaults())
	if err != nil {
		return nil, nil, err
	}
	return b.pres, b.result, nil
}

func assemble(opts Options) (*builder, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = DeckTitle
	p.GetDocumentProperties().Creator = "techdeck"
	deck.SetWidescreen(p)

	b := &builder{
		opts:   opts,
		log:    opts.Logger,
		pres:   p,
		result: &Result{},
	}

	for _, add := range slides {
		if err := add(b); err != nil {
			return nil, err
		}
	}
	b.result.Slides = b.num

	return b, nil
}

// builder tracks the slide currently being populated.
type builder struct {
	opts   Options
	log    *zap.Logger
	pres   *ppt.Presentation
	slide  *ppt.Slide
	num    int
	result *Result
}

// newSlide starts a slide with the khadi background and a header band.
func (b *builder) newSlide(title, subtitle string) *ppt.Slide {
	var s *ppt.Slide
	if b.num == 0 {
		s = b.pres.GetActiveSlide()
	} else {
		s = b.pres.CreateSlide()
	}
	b.num++
	b.slide = s

	deck.AddBackground(s, deck.Khadi)
	deck.AddHeader(s, title, subtitle)

	b.log.Debug("Building slide", zap.Int("index", b.num), zap.String("title", title))
	return s
}

// image places a screenshot (or its placeholder) on the current slide.
// Coordinates are in inches.
func (b *builder) image(img models.SlideImage, x, y, w, h float64) error {
	path := b.opts.ImagePath(img.Filename)
	embedded, err := deck.TryAddImage(b.slide, path, in(x), in(y), in(w), in(h), img.Caption)
	if err != nil {
		return NewBuildError(b.num, "image", fmt.Errorf("%s: %w", img.Filename, err))
	}

	if embedded {
		b.result.Embedded = append(b.result.Embedded, img.Filename)
		b.log.Debug("Embedded screenshot", zap.Int("slide", b.num), zap.String("path", path))
	} else {
		b.result.Placeholders = append(b.result.Placeholders, img.Filename)
		b.log.Info("Screenshot missing, drawing placeholder", zap.Int("slide", b.num), zap.String("path", path))
	}
	return nil
}

func in(v float64) int64 {
	return deck.Inches(v)
}
