package inspect

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/vansh-app/techdeck/pkg/techdeck/models"
)

// PresetGeomMap maps OOXML preset geometry names to shape kind labels.
var PresetGeomMap = map[string]string{
	"rect":               models.KindRectangle,
	"roundRect":          models.KindRoundedRect,
	"ellipse":            "AutoShape-Oval",
	"diamond":            "AutoShape-Diamond",
	"triangle":           "AutoShape-IsoscelesTriangle",
	"rightArrow":         "AutoShape-RightArrow",
	"leftArrow":          "AutoShape-LeftArrow",
	"flowChartProcess":   "AutoShape-FlowchartProcess",
	"flowChartDecision":  "AutoShape-FlowchartDecision",
	"straightConnector1": models.KindLine,
	"bentConnector3":     "AutoShape-Connector",
	"line":               models.KindLine,
}

// PlaceholderName reports whether text is a missing-screenshot placeholder
// and, if so, returns the expected file name.
func PlaceholderName(text string) (string, bool) {
	if !strings.HasPrefix(text, models.PlaceholderPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(text, models.PlaceholderPrefix)), true
}

// parseSlideXML parses a slide part and returns its shapes in document order.
// A group is reported before its members.
func parseSlideXML(data []byte) []models.Shape {
	var shapes []models.Shape

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "spTree" {
			shapes = append(shapes, parseShapeTree(decoder, nil)...)
		}
	}

	return shapes
}

// parseShapeTree parses the children of spTree or grpSp. When group is not
// nil it receives the group's own id, name, and transform.
func parseShapeTree(decoder *xml.Decoder, group *models.Shape) []models.Shape {
	var shapes []models.Shape
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "sp", "pic", "cxnSp":
				shapes = append(shapes, parseShapeElement(decoder, t))
				depth--
			case "grpSp":
				g := models.Shape{Kind: models.KindGroup}
				members := parseShapeTree(decoder, &g)
				shapes = append(shapes, g)
				shapes = append(shapes, members...)
				depth--
			case "cNvPr":
				if group != nil {
					for _, attr := range t.Attr {
						switch attr.Name.Local {
						case "id":
							group.ID, _ = strconv.Atoi(attr.Value)
						case "name":
							group.Name = attr.Value
						}
					}
				}
			case "xfrm":
				if group != nil {
					group.L, group.T, group.W, group.H = parseXfrm(decoder)
					depth--
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return shapes
}

// parseShapeElement parses a single sp, pic, or cxnSp element.
func parseShapeElement(decoder *xml.Decoder, start xml.StartElement) models.Shape {
	var shape models.Shape
	var prst string
	var txBox bool
	var paragraphs []string
	var para strings.Builder
	inPara := false

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "id":
						shape.ID, _ = strconv.Atoi(attr.Value)
					case "name":
						shape.Name = attr.Value
					}
				}
			case "cNvSpPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "txBox" {
						txBox = attr.Value == "1" || attr.Value == "true"
					}
				}
			case "xfrm":
				shape.L, shape.T, shape.W, shape.H = parseXfrm(decoder)
				depth--
			case "prstGeom":
				for _, attr := range t.Attr {
					if attr.Name.Local == "prst" {
						prst = attr.Value
					}
				}
			case "p":
				inPara = true
				para.Reset()
			case "br":
				para.WriteString("\n")
			case "t":
				if txt, err := readElementText(decoder); err == nil {
					para.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "p" && inPara {
				paragraphs = append(paragraphs, para.String())
				inPara = false
			}
		}
	}

	shape.Text = strings.TrimSpace(strings.Join(paragraphs, "\n"))
	shape.Kind = shapeKind(start.Name.Local, prst, txBox, shape.Text)
	return shape
}

// shapeKind determines the kind label for a shape element.
func shapeKind(element, prst string, txBox bool, text string) string {
	switch element {
	case "pic":
		return models.KindPicture
	case "cxnSp":
		return models.KindLine
	}
	if txBox {
		return models.KindTextBox
	}
	if prst != "" {
		if label, ok := PresetGeomMap[prst]; ok {
			return label
		}
		return "AutoShape-" + prst
	}
	if text != "" {
		return models.KindTextBox
	}
	return "Unknown"
}

// parseXfrm parses the xfrm element for position and size in EMU.
func parseXfrm(decoder *xml.Decoder) (left, top, width, height int64) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "off":
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "x":
						left, _ = strconv.ParseInt(attr.Value, 10, 64)
					case "y":
						top, _ = strconv.ParseInt(attr.Value, 10, 64)
					}
				}
			case "ext":
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "cx":
						width, _ = strconv.ParseInt(attr.Value, 10, 64)
					case "cy":
						height, _ = strconv.ParseInt(attr.Value, 10, 64)
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}
