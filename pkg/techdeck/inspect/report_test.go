package inspect

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh-app/techdeck/pkg/techdeck/models"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	summary := &models.DeckSummary{
		FileName: "deck.pptx",
		Width:    12191695,
		Height:   6858000,
		Slides: []models.SlideSummary{
			{
				Index: 1,
				Title: "Vansh App",
				Shapes: []models.Shape{
					{ID: 2, Name: "Header", Kind: models.KindRectangle, W: 12191695, H: 1005840},
				},
			},
			{
				Index: 3,
				Title: "Observed Outputs",
				Shapes: []models.Shape{
					{ID: 4, Name: "01_tree_fixed.png", Kind: models.KindPicture, L: 822960, T: 1463040, W: 5669280, H: 4480560},
					{ID: 5, Kind: models.KindTextBox, Text: "Drop screenshot here:\n04_network_error_before.png"},
				},
				Pictures:     1,
				Placeholders: []string{"04_network_error_before.png"},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "deck.xlsx")
	require.NoError(t, WriteXLSX(summary, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SlidesSheet, ShapesSheet}, f.GetSheetList())

	slides, err := f.GetRows(SlidesSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Index", "Title", "Shapes", "Pictures", "Placeholders"},
		{"1", "Vansh App", "1", "0", "0"},
		{"3", "Observed Outputs", "2", "1", "1"},
	}, slides)

	shapes, err := f.GetRows(ShapesSheet)
	require.NoError(t, err)
	require.Len(t, shapes, 4)
	assert.Equal(t, []string{"1", "2", models.KindRectangle, "Header", "", "0", "0", "13.333", "1.1"}, shapes[1])
	assert.Equal(t, []string{"3", "4", models.KindPicture, "01_tree_fixed.png", "", "0.9", "1.6", "6.2", "4.9"}, shapes[2])
	assert.Equal(t, "Drop screenshot here:\n04_network_error_before.png", shapes[3][4])
}

func TestEmuToInches(t *testing.T) {
	tests := []struct {
		emu      int64
		expected float64
	}{
		{0, 0},
		{914400, 1},
		{12191695, 13.333},
		{1005840, 1.1},
	}

	for _, tt := range tests {
		result := emuToInches(tt.emu)
		if result != tt.expected {
			t.Errorf("emuToInches(%d) = %v, expected %v", tt.emu, result, tt.expected)
		}
	}
}
