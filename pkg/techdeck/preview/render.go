package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"math"
	"strings"
	"sync"

	ppt "github.com/VantageDataChat/GoPPT"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Default DrawingML text insets and rounded rectangle corner ratio.
const (
	insetX         = 91440
	insetY         = 45720
	roundRectRatio = 0.16667
	lineSpacing    = 1.2
	defaultFontPt  = 18
)

var (
	fontsOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontsErr    error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

type faceKey struct {
	px   int
	bold bool
}

// renderer paints one slide into an RGBA image.
type renderer struct {
	img    *image.RGBA
	scaleX float64
	scaleY float64
	faces  map[faceKey]font.Face
}

// RenderSlide rasterizes a single slide at the given pixel width. The height
// follows the presentation's aspect ratio.
func RenderSlide(pres *ppt.Presentation, index, width int) (*image.RGBA, error) {
	slides := pres.GetAllSlides()
	if index < 0 || index >= len(slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(slides)-1)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	layout := pres.GetLayout()
	height := int(float64(width) * float64(layout.CY) / float64(layout.CX))

	r := &renderer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		scaleX: float64(width) / float64(layout.CX),
		scaleY: float64(height) / float64(layout.CY),
		faces:  make(map[faceKey]font.Face),
	}
	defer r.close()

	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	slide := slides[index]
	if f := slide.GetBackground(); f != nil && f.Type == ppt.FillSolid {
		bg = toRGBA(f.Color)
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, shape := range slide.GetShapes() {
		r.renderShape(shape)
	}
	return r.img, nil
}

func (r *renderer) close() {
	for _, f := range r.faces {
		f.Close()
	}
}

func (r *renderer) renderShape(shape ppt.Shape) {
	switch s := shape.(type) {
	case *ppt.AutoShape:
		radius := 0.0
		if s.GetAutoShapeType() == ppt.AutoShapeRoundedRect {
			radius = roundRectRatio
		}
		r.renderBox(shape, s.GetFill(), s.GetBorder(), radius)
	case *ppt.RichTextShape:
		r.renderBox(shape, s.GetFill(), s.GetBorder(), 0)
		r.renderText(s)
	case *ppt.DrawingShape:
		r.renderPicture(s)
	case *ppt.GroupShape:
		for _, child := range s.GetShapes() {
			r.renderShape(child)
		}
	}
}

func (r *renderer) bounds(s ppt.Shape) image.Rectangle {
	x := r.px(s.GetOffsetX(), r.scaleX)
	y := r.px(s.GetOffsetY(), r.scaleY)
	return image.Rect(x, y, x+r.px(s.GetWidth(), r.scaleX), y+r.px(s.GetHeight(), r.scaleY))
}

func (r *renderer) px(emu int64, scale float64) int {
	return int(math.Round(float64(emu) * scale))
}

// renderBox paints a solid fill and outline. radius is the corner radius as a
// fraction of the shorter side.
func (r *renderer) renderBox(s ppt.Shape, fill *ppt.Fill, border *ppt.Border, radius float64) {
	rect := r.bounds(s)
	if rect.Empty() {
		return
	}
	rad := int(radius * float64(min(rect.Dx(), rect.Dy())))

	if fill != nil && fill.Type == ppt.FillSolid {
		c := toRGBA(fill.Color)
		r.scan(rect, func(x, y int) bool { return insideRounded(x, y, rect, rad) }, c)
	}

	if border != nil && border.Style != ppt.BorderNone {
		t := max(1, r.px(int64(border.Width), r.scaleX))
		inner := rect.Inset(t)
		innerRad := max(0, rad-t)
		c := toRGBA(border.Color)
		r.scan(rect, func(x, y int) bool {
			return insideRounded(x, y, rect, rad) && !insideRounded(x, y, inner, innerRad)
		}, c)
	}
}

func (r *renderer) scan(rect image.Rectangle, inside func(x, y int) bool, c color.RGBA) {
	rect = rect.Intersect(r.img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if inside(x, y) {
				r.img.SetRGBA(x, y, c)
			}
		}
	}
}

// insideRounded reports whether the pixel lies in rect with corners of radius rad.
func insideRounded(x, y int, rect image.Rectangle, rad int) bool {
	if !(image.Point{X: x, Y: y}).In(rect) {
		return false
	}
	if rad <= 0 {
		return true
	}
	cx := min(max(x, rect.Min.X+rad), rect.Max.X-rad-1)
	cy := min(max(y, rect.Min.Y+rad), rect.Max.Y-rad-1)
	dx, dy := float64(x-cx), float64(y-cy)
	return dx*dx+dy*dy <= float64(rad*rad)
}

func (r *renderer) renderPicture(s *ppt.DrawingShape) {
	data := s.GetImageData()
	if len(data) == 0 {
		return
	}
	rect := r.bounds(s)
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil || rect.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(r.img, rect, src, src.Bounds(), xdraw.Over, nil)
}

type span struct {
	text  string
	face  font.Face
	color color.RGBA
}

type line struct {
	spans  []span
	width  fixed.Int26_6
	height int
	ascent int
}

func (r *renderer) renderText(s *ppt.RichTextShape) {
	box := r.bounds(s)
	left := box.Min.X + r.px(insetX, r.scaleX)
	right := box.Max.X - r.px(insetX, r.scaleX)
	y := box.Min.Y + r.px(insetY, r.scaleY)
	maxW := fixed.I(max(1, right-left))

	for _, para := range s.GetParagraphs() {
		center := false
		if a := para.GetAlignment(); a != nil && a.Horizontal == ppt.HorizontalCenter {
			center = true
		}
		for _, ln := range r.layout(para, maxW) {
			x := left
			if center {
				x = left + (right-left-ln.width.Ceil())/2
			}
			dot := fixed.P(x, y+ln.ascent)
			for _, sp := range ln.spans {
				d := font.Drawer{Dst: r.img, Src: image.NewUniform(sp.color), Face: sp.face, Dot: dot}
				d.DrawString(sp.text)
				dot = d.Dot
			}
			y += ln.height
		}
	}
}

// layout splits a paragraph into lines, wrapping at spaces and at explicit breaks.
func (r *renderer) layout(para *ppt.Paragraph, maxW fixed.Int26_6) []line {
	var lines []line
	var cur line
	flush := func() {
		if cur.height == 0 {
			face := r.face(defaultFontPt, false)
			cur.height, cur.ascent = metrics(face)
		}
		lines = append(lines, cur)
		cur = line{}
	}

	for _, el := range para.GetElements() {
		switch e := el.(type) {
		case *ppt.BreakElement:
			flush()
		case *ppt.TextRun:
			f := e.GetFont()
			face := r.face(f.Size, f.Bold)
			h, asc := metrics(face)
			c := toRGBA(f.Color)
			for _, word := range strings.SplitAfter(e.GetText(), " ") {
				if word == "" {
					continue
				}
				adv := font.MeasureString(face, word)
				if cur.width > 0 && cur.width+font.MeasureString(face, strings.TrimRight(word, " ")) > maxW {
					flush()
				}
				cur.spans = append(cur.spans, span{text: word, face: face, color: c})
				cur.width += adv
				cur.height = max(cur.height, h)
				cur.ascent = max(cur.ascent, asc)
			}
		}
	}
	flush()
	return lines
}

// face returns a cached face for a point size at the current scale.
func (r *renderer) face(pt int, bold bool) font.Face {
	px := max(1, int(math.Round(float64(pt)*12700*r.scaleY)))
	key := faceKey{px: px, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}
	src := regularFont
	if bold {
		src = boldFont
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	r.faces[key] = f
	return f
}

func metrics(face font.Face) (height, ascent int) {
	m := face.Metrics()
	return int(math.Ceil(float64(m.Height.Ceil()) * lineSpacing)), m.Ascent.Ceil()
}

func toRGBA(c ppt.Color) color.RGBA {
	return color.RGBA{R: c.GetRed(), G: c.GetGreen(), B: c.GetBlue(), A: 255}
}
