package techdeck

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.WithDefaults()

	assert.Equal(t, ".", opts.Root)
	assert.Equal(t, DefaultOutDir, opts.OutDir)
	assert.Equal(t, filepath.Join(DefaultOutDir, DefaultImgDir), opts.ImageDir)
	assert.Equal(t, DefaultOutFile, opts.OutFile)
	assert.NotNil(t, opts.Logger)
	assert.Equal(t, filepath.Join("docs", "ppt", "Vansh-Tech-Learnings.pptx"), opts.OutputPath())
}

func TestOptionsPaths(t *testing.T) {
	abs := t.TempDir()

	tests := []struct {
		name      string
		opts      Options
		outPath   string
		imagesDir string
	}{
		{
			name:      "relative to root",
			opts:      Options{Root: "/repo"},
			outPath:   filepath.Join("/repo", "docs", "ppt", DefaultOutFile),
			imagesDir: filepath.Join("/repo", "docs", "ppt", "images"),
		},
		{
			name:      "image dir follows out dir",
			opts:      Options{Root: "/repo", OutDir: "build"},
			outPath:   filepath.Join("/repo", "build", DefaultOutFile),
			imagesDir: filepath.Join("/repo", "build", "images"),
		},
		{
			name:      "absolute dirs ignore root",
			opts:      Options{Root: "/repo", OutDir: abs, ImageDir: filepath.Join(abs, "shots")},
			outPath:   filepath.Join(abs, DefaultOutFile),
			imagesDir: filepath.Join(abs, "shots"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts.WithDefaults()
			assert.Equal(t, tt.outPath, opts.OutputPath())
			assert.Equal(t, tt.imagesDir, opts.ImagesDir())
			assert.Equal(t, filepath.Join(tt.imagesDir, "01_tree_fixed.png"), opts.ImagePath("01_tree_fixed.png"))
		})
	}
}
