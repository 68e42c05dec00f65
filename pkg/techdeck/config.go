package techdeck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no config path is given.
const DefaultConfigFile = "techdeck.yaml"

const (
	DefaultPreviewWidth = 1280
	DefaultDebounce     = 500 * time.Millisecond
)

// PreviewConfig configures slide rasterization.
type PreviewConfig struct {
	Width int `yaml:"width,omitempty"`
}

// WatchConfig configures rebuild-on-change.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// Config models techdeck.yaml.
type Config struct {
	Root     string        `yaml:"root,omitempty"`
	OutDir   string        `yaml:"out_dir,omitempty"`
	ImageDir string        `yaml:"image_dir,omitempty"`
	OutFile  string        `yaml:"out_file,omitempty"`
	Preview  PreviewConfig `yaml:"preview,omitempty"`
	Watch    WatchConfig   `yaml:"watch,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Preview: PreviewConfig{Width: DefaultPreviewWidth},
		Watch:   WatchConfig{Debounce: DefaultDebounce},
	}
}

// LoadConfig reads a YAML config. An empty path falls back to DefaultConfigFile
// and tolerates its absence; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return cfg, nil
		}
		return cfg, err
	}

	if err := ParseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML into cfg, rejecting unknown keys. Keys absent from
// data keep their current values.
func ParseConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if cfg.Preview.Width <= 0 {
		cfg.Preview.Width = DefaultPreviewWidth
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
	return nil
}

// Options converts the config into build options.
func (c Config) Options() Options {
	return Options{
		Root:     c.Root,
		OutDir:   c.OutDir,
		ImageDir: c.ImageDir,
		OutFile:  c.OutFile,
	}.WithDefaults()
}
