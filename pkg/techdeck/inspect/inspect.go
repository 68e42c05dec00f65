// Package inspect reads a written pptx deck back into a summary of its slides and shapes.
package inspect

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vansh-app/techdeck/pkg/techdeck/models"
)

const (
	presentationPart = "ppt/presentation.xml"
	presentationRels = "ppt/_rels/presentation.xml.rels"
)

// Inspect opens a pptx file and summarizes its page size, slides, and shapes.
func Inspect(pptxPath string) (*models.DeckSummary, error) {
	r, err := zip.OpenReader(pptxPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	summary, err := inspectPackage(&r.Reader)
	if err != nil {
		return nil, err
	}
	summary.FileName = filepath.Base(pptxPath)
	return summary, nil
}

func inspectPackage(r *zip.Reader) (*models.DeckSummary, error) {
	presXML, err := readZipFile(r, presentationPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, presentationPart, err)
	}

	width, height, slideRIDs := parsePresentation(presXML)

	// Missing rels leaves the slide list empty rather than failing.
	var targets map[string]string
	if relsXML, err := readZipFile(r, presentationRels); err == nil {
		targets = parseRels(relsXML, "ppt")
	}

	summary := &models.DeckSummary{
		Width:  width,
		Height: height,
		Slides: []models.SlideSummary{},
	}

	for i, rID := range slideRIDs {
		part, ok := targets[rID]
		if !ok {
			continue
		}
		data, err := readZipFile(r, part)
		if err != nil {
			return nil, &SlideError{Index: i + 1, Part: part, Err: err}
		}
		slide := summarizeSlide(i+1, parseSlideXML(data))
		summary.Slides = append(summary.Slides, slide)
	}

	return summary, nil
}

// parsePresentation returns the page size and the slide relationship ids in order.
func parsePresentation(data []byte) (width, height int64, rIDs []string) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "sldSz":
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "cx":
					width, _ = strconv.ParseInt(attr.Value, 10, 64)
				case "cy":
					height, _ = strconv.ParseInt(attr.Value, 10, 64)
				}
			}
		case "sldId":
			for _, attr := range se.Attr {
				// r:id carries the relationships namespace; the bare id is numeric.
				if attr.Name.Local == "id" && attr.Name.Space != "" {
					rIDs = append(rIDs, attr.Value)
				}
			}
		}
	}
	return width, height, rIDs
}

// parseRels maps relationship ids to zip entry names.
func parseRels(data []byte, baseDir string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && target != "" {
				result[rID] = resolveRelativePath(target, baseDir)
			}
		}
	}

	return result
}

// summarizeSlide counts pictures and placeholders and picks the slide title.
func summarizeSlide(index int, shapes []models.Shape) models.SlideSummary {
	s := models.SlideSummary{
		Index:  index,
		Shapes: shapes,
	}
	for _, sh := range shapes {
		if s.Title == "" && sh.Text != "" {
			s.Title = sh.Text
		}
		if sh.Kind == models.KindPicture {
			s.Pictures++
		}
		if name, ok := PlaceholderName(sh.Text); ok {
			s.Placeholders = append(s.Placeholders, name)
		}
	}
	return s
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fs.ErrNotExist
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}
