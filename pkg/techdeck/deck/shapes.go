package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/vansh-app/techdeck/pkg/techdeck/models"
)

// Font sizes (pt)
const (
	fontHeaderTitle    = 30
	fontHeaderSubtitle = 14
	fontBullet         = 18
	fontKPIValue       = 22
	fontKPILabel       = 12
	fontPlaceholder    = 14
	fontCaption        = 12
)

// Fixed geometry for header bands and KPI pills.
var (
	headerHeight = Inches(1.1)
	kpiWidth     = Inches(3.6)
	kpiHeight    = Inches(0.95)
)

// SetWidescreen sets the 13.333in x 7.5in page size used by every slide.
func SetWidescreen(p *ppt.Presentation) {
	p.GetLayout().SetCustomLayout(SlideWidth, SlideHeight)
}

// AddBackground fills the slide background with a solid color.
func AddBackground(slide *ppt.Slide, c ppt.Color) {
	slide.SetBackground(ppt.NewFill().SetSolid(c))
}

// AddHeader draws the suvarna band across the top of the slide with a title
// and, when subtitle is not empty, a smaller subtitle line.
func AddHeader(slide *ppt.Slide, title, subtitle string) {
	band := ppt.NewAutoShape().SetAutoShapeType(ppt.AutoShapeRectangle)
	band.SetName("Header")
	band.SetPosition(0, 0)
	band.SetSize(SlideWidth, headerHeight)
	band.SetSolidFill(Suvarna)
	noOutline(band.GetBorder())
	slide.AddShape(band)

	AddText(slide, Inches(0.7), Inches(0.22), Inches(12), Inches(0.5), title, fontHeaderTitle, true, White)

	if subtitle != "" {
		AddText(slide, Inches(0.7), Inches(0.70), Inches(12), Inches(0.35), subtitle, fontHeaderSubtitle, false, White)
	}
}

// AddCard draws a rounded panel used to group content.
func AddCard(slide *ppt.Slide, x, y, w, h int64) {
	card := roundedRect(x, y, w, h, CardBG)
	card.SetName("Card")
	outline(card.GetBorder(), CardLine)
	slide.AddShape(card)
}

// AddBullets writes one paragraph per bullet into a single word-wrapped text box.
func AddBullets(slide *ppt.Slide, x, y, w, h int64, bullets []string) *ppt.RichTextShape {
	box := textBox(slide, x, y, w, h)
	box.SetWordWrap(true)
	for i, b := range bullets {
		if i > 0 {
			box.CreateParagraph()
		}
		box.CreateTextRun(b).GetFont().SetSize(fontBullet).SetColor(Ink)
	}
	return box
}

// AddKPI draws a colored pill with a large value line above a smaller label.
func AddKPI(slide *ppt.Slide, x, y int64, label, value string, c ppt.Color) {
	pill := roundedRect(x, y, kpiWidth, kpiHeight, c)
	pill.SetName("KPI")
	noOutline(pill.GetBorder())
	slide.AddShape(pill)

	AddText(slide, x+Inches(0.25), y+Inches(0.1), Inches(3.2), Inches(0.45), value, fontKPIValue, true, White)
	AddText(slide, x+Inches(0.25), y+Inches(0.52), Inches(3.2), Inches(0.35), label, fontKPILabel, false, White)
}

// TryAddImage embeds the picture at path scaled to the given box. If the file
// does not exist a placeholder naming the expected file is drawn instead. A
// caption is always added beneath the box. It reports whether the picture was
// embedded.
func TryAddImage(slide *ppt.Slide, path string, x, y, w, h int64, caption string) (bool, error) {
	embedded := false
	_, err := os.Stat(path)
	switch {
	case err == nil:
		pic := slide.CreateDrawingShape()
		if err := pic.SetImageFromFile(path); err != nil {
			return false, err
		}
		pic.SetName(filepath.Base(path))
		pic.SetDescription(caption)
		pic.SetOffsetX(x).SetOffsetY(y)
		pic.SetWidth(w).SetHeight(h)
		embedded = true
	case errors.Is(err, fs.ErrNotExist):
		addPlaceholder(slide, filepath.Base(path), x, y, w, h)
	default:
		return false, fmt.Errorf("stat image: %w", err)
	}

	capBox := textBox(slide, x, y+h+Inches(0.1), w, Inches(0.35))
	capBox.SetName("Caption")
	capBox.CreateTextRun(caption).GetFont().SetSize(fontCaption).SetColor(Muted)
	alignCenter(capBox.GetActiveParagraph())

	return embedded, nil
}

// AddText adds a text box holding a single styled run.
func AddText(slide *ppt.Slide, x, y, w, h int64, text string, size int, bold bool, c ppt.Color) *ppt.RichTextShape {
	box := textBox(slide, x, y, w, h)
	box.CreateTextRun(text).GetFont().SetSize(size).SetBold(bold).SetColor(c)
	return box
}

func addPlaceholder(slide *ppt.Slide, name string, x, y, w, h int64) {
	ph := roundedRect(x, y, w, h, PlaceholderBG)
	ph.SetName("Placeholder " + name)
	outline(ph.GetBorder(), PlaceholderLine)
	slide.AddShape(ph)

	tx := textBox(slide, x+Inches(0.3), y+Inches(0.25), w-Inches(0.6), Inches(0.7))
	tx.CreateTextRun(models.PlaceholderPrefix).GetFont().SetSize(fontPlaceholder).SetColor(Muted)
	tx.CreateBreak()
	tx.CreateTextRun(name).GetFont().SetSize(fontPlaceholder).SetColor(Muted)
	tx.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalLeft))
}

func textBox(slide *ppt.Slide, x, y, w, h int64) *ppt.RichTextShape {
	box := slide.CreateRichTextShape()
	box.SetOffsetX(x).SetOffsetY(y)
	box.SetWidth(w).SetHeight(h)
	return box
}

func roundedRect(x, y, w, h int64, fill ppt.Color) *ppt.AutoShape {
	s := ppt.NewAutoShape().SetAutoShapeType(ppt.AutoShapeRoundedRect)
	s.SetPosition(x, y)
	s.SetSize(w, h)
	s.SetSolidFill(fill)
	return s
}

func outline(b *ppt.Border, c ppt.Color) {
	b.Style = ppt.BorderSolid
	b.Width = int(Points(1))
	b.Color = c
}

func noOutline(b *ppt.Border) {
	b.Style = ppt.BorderNone
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// AddPlainText adds a text box whose run keeps the default font.
func AddPlainText(slide *ppt.Slide, x, y, w, h int64, text string) *ppt.RichTextShape {
	box := textBox(slide, x, y, w, h)
	box.CreateTextRun(text)
	return box
}
