// Package techdeck builds the Vansh technical learnings presentation.
package techdeck

import (
	"path/filepath"

	"go.uber.org/zap"
)

// Default layout relative to the repository root.
const (
	DefaultOutDir  = "docs/ppt"
	DefaultImgDir  = "images"
	DefaultOutFile = "Vansh-Tech-Learnings.pptx"
)

// Options configures where the deck reads screenshots from and where it is written.
type Options struct {
	// Root is the directory relative paths resolve against. Defaults to ".".
	Root string
	// OutDir is the output directory. Defaults to docs/ppt.
	OutDir string
	// ImageDir is the screenshot directory. Defaults to <OutDir>/images.
	ImageDir string
	// OutFile is the deck file name inside OutDir.
	OutFile string
	// Logger receives build progress. If nil, logging is disabled.
	Logger *zap.Logger
}

// WithDefaults returns a copy of o with empty fields filled in.
func (o Options) WithDefaults() Options {
	if o.Root == "" {
		o.Root = "."
	}
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	if o.ImageDir == "" {
		o.ImageDir = filepath.Join(o.OutDir, DefaultImgDir)
	}
	if o.OutFile == "" {
		o.OutFile = DefaultOutFile
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// OutputDir returns the resolved output directory.
func (o Options) OutputDir() string {
	return o.resolve(o.OutDir)
}

// OutputPath returns the resolved deck path.
func (o Options) OutputPath() string {
	return filepath.Join(o.OutputDir(), o.OutFile)
}

// ImagesDir returns the resolved screenshot directory.
func (o Options) ImagesDir() string {
	return o.resolve(o.ImageDir)
}

// ImagePath returns the expected location of a named screenshot.
func (o Options) ImagePath(name string) string {
	return filepath.Join(o.ImagesDir(), name)
}

func (o Options) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Root, p)
}
