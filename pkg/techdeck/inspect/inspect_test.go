package inspect

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presentationXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
<p:sldIdLst><p:sldId id="256" r:id="rId2"/><p:sldId id="257" r:id="rId3"/></p:sldIdLst>
<p:sldSz cx="12191695" cy="6858000"/>
<p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>`

const presentationRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="/ppt/slides/slide2.xml"/>
</Relationships>`

const titleSlideXML = `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>
<p:sp><p:nvSpPr><p:cNvPr id="2" name="Header"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr><a:prstGeom prst="rect"/></p:spPr></p:sp>
<p:sp><p:nvSpPr><p:cNvPr id="3" name="Title"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/><p:txBody><a:p><a:r><a:t>Deck</a:t></a:r></a:p></p:txBody></p:sp>
</p:spTree></p:cSld></p:sld>`

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.pptx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestParsePresentation(t *testing.T) {
	width, height, rIDs := parsePresentation([]byte(presentationXML))

	assert.Equal(t, int64(12191695), width)
	assert.Equal(t, int64(6858000), height)
	assert.Equal(t, []string{"rId2", "rId3"}, rIDs)
}

func TestParseRels(t *testing.T) {
	got := parseRels([]byte(presentationRelsXML), "ppt")
	want := map[string]string{
		"rId1": "ppt/slideMasters/slideMaster1.xml",
		"rId2": "ppt/slides/slide1.xml",
		"rId3": "ppt/slides/slide2.xml",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseRels() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"slides/slide1.xml", "ppt", "ppt/slides/slide1.xml"},
		{"../media/image1.png", "ppt/slides", "ppt/media/image1.png"},
		{"/ppt/slides/slide2.xml", "ppt", "ppt/slides/slide2.xml"},
		{"./slides/slide3.xml", "ppt", "ppt/slides/slide3.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestInspect(t *testing.T) {
	path := writeZip(t, map[string]string{
		"ppt/presentation.xml":            presentationXML,
		"ppt/_rels/presentation.xml.rels": presentationRelsXML,
		"ppt/slides/slide1.xml":           titleSlideXML,
		"ppt/slides/slide2.xml":           slideXML,
	})

	summary, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, "deck.pptx", summary.FileName)
	assert.Equal(t, int64(12191695), summary.Width)
	assert.Equal(t, int64(6858000), summary.Height)
	require.Len(t, summary.Slides, 2)

	first := summary.Slides[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "Deck", first.Title)
	assert.Len(t, first.Shapes, 2)
	assert.Empty(t, first.Placeholders)

	second := summary.Slides[1]
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, "Observed Outputs", second.Title)
	assert.Equal(t, 1, second.Pictures)
	assert.Equal(t, []string{"01_tree_fixed.png"}, second.Placeholders)

	assert.Equal(t, 10, summary.ShapeCount())
	assert.Equal(t, 1, summary.Pictures())
	assert.Equal(t, []string{"01_tree_fixed.png"}, summary.Placeholders())
}

func TestInspectNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := Inspect(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.pptx"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestInspectMissingPresentationPart(t *testing.T) {
	path := writeZip(t, map[string]string{"docProps/app.xml": "<Properties/>"})

	_, err := Inspect(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestInspectMissingSlidePart(t *testing.T) {
	path := writeZip(t, map[string]string{
		"ppt/presentation.xml":            presentationXML,
		"ppt/_rels/presentation.xml.rels": presentationRelsXML,
		"ppt/slides/slide1.xml":           titleSlideXML,
	})

	_, err := Inspect(path)
	require.Error(t, err)

	var se *SlideError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Index)
	assert.Equal(t, "ppt/slides/slide2.xml", se.Part)
}
