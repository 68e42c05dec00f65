package inspect

import (
	"math"

	"github.com/vansh-app/techdeck/pkg/techdeck/deck"
	"github.com/vansh-app/techdeck/pkg/techdeck/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by WriteXLSX.
const (
	SlidesSheet = "Slides"
	ShapesSheet = "Shapes"
)

var (
	slidesHeader = []interface{}{"Index", "Title", "Shapes", "Pictures", "Placeholders"}
	shapesHeader = []interface{}{"Slide", "ID", "Kind", "Name", "Text", "Left (in)", "Top (in)", "Width (in)", "Height (in)"}
)

// WriteXLSX writes the summary as a workbook with one row per slide on the
// Slides sheet and one row per shape on the Shapes sheet.
func WriteXLSX(summary *models.DeckSummary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SlidesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ShapesSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeRow(f, SlidesSheet, 1, slidesHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(SlidesSheet, 1, 1, bold); err != nil {
		return err
	}
	if err := writeRow(f, ShapesSheet, 1, shapesHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(ShapesSheet, 1, 1, bold); err != nil {
		return err
	}

	shapeRow := 2
	for i, slide := range summary.Slides {
		row := []interface{}{slide.Index, slide.Title, len(slide.Shapes), slide.Pictures, len(slide.Placeholders)}
		if err := writeRow(f, SlidesSheet, i+2, row); err != nil {
			return err
		}

		for _, sh := range slide.Shapes {
			row := []interface{}{
				slide.Index, sh.ID, sh.Kind, sh.Name, sh.Text,
				emuToInches(sh.L), emuToInches(sh.T), emuToInches(sh.W), emuToInches(sh.H),
			}
			if err := writeRow(f, ShapesSheet, shapeRow, row); err != nil {
				return err
			}
			shapeRow++
		}
	}

	return f.SaveAs(path)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// emuToInches converts EMU to inches rounded to three decimals.
func emuToInches(emu int64) float64 {
	return math.Round(deck.ToInches(emu)*1000) / 1000
}
