// Package settings loads presentation defaults from an optional config file.
//
// The file is YAML (.yaml, .yml) or TOML (.toml):
//
//	border: heavy
//	max_rows: 40
//	max_cols: 12
//	max_col_width: 30
//	show_shape: true
//	show_types: false
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabpeek"
	"github.com/bjaus/tabpeek/internal/render"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "TABPEEK_CONFIG"

// ErrUnsupportedFile is returned for config files that are neither YAML nor
// TOML.
var ErrUnsupportedFile = errors.New("unsupported config file")

// Settings are the presentation defaults. Unset fields keep the built-in
// defaults of [render.DefaultOptions].
type Settings struct {
	Border      string `yaml:"border" toml:"border"`
	MaxRows     int    `yaml:"max_rows" toml:"max_rows"`
	MaxCols     int    `yaml:"max_cols" toml:"max_cols"`
	MaxColWidth int    `yaml:"max_col_width" toml:"max_col_width"`
	ShowShape   *bool  `yaml:"show_shape" toml:"show_shape"`
	ShowTypes   *bool  `yaml:"show_types" toml:"show_types"`
}

// Options applies s to the default render options.
func (s Settings) Options() (render.Options, error) {
	opts := render.DefaultOptions()
	if s.Border != "" {
		b, err := render.ParseBorder(s.Border)
		if err != nil {
			return opts, fmt.Errorf("%w: border: %w", tabpeek.ErrInvalidArgument, err)
		}
		opts.Border = b
	}
	for _, v := range []struct {
		key string
		n   int
	}{{"max_rows", s.MaxRows}, {"max_cols", s.MaxCols}, {"max_col_width", s.MaxColWidth}} {
		if v.n < 0 {
			return opts, fmt.Errorf("%w: %s must not be negative, got %d", tabpeek.ErrInvalidArgument, v.key, v.n)
		}
	}
	opts.MaxRows = s.MaxRows
	opts.MaxCols = s.MaxCols
	opts.MaxColWidth = s.MaxColWidth
	if s.ShowShape != nil {
		opts.ShowCaption = *s.ShowShape
	}
	if s.ShowTypes != nil {
		opts.ShowTypes = *s.ShowTypes
	}
	return opts, nil
}

// Path returns the config file to read and whether it was asked for
// explicitly. An explicit path wins over the environment, which wins over
// <UserConfigDir>/tabpeek/config.yaml. The path is empty when no default
// location exists.
func Path(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "tabpeek", "config.yaml"), false
}

// Load reads the settings at path. A missing file is an error only when
// required is set; otherwise the zero Settings are returned.
func Load(path string, required bool) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(path, data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// Decode parses data into s, choosing the syntax from the extension of
// name.
func Decode(name string, data []byte, s *Settings) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse config %s: %w", name, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return fmt.Errorf("parse config %s: %w", name, err)
		}
	default:
		return fmt.Errorf("%w: %s (want .yaml, .yml or .toml)", ErrUnsupportedFile, name)
	}
	return nil
}
