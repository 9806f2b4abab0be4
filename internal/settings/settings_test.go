package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabpeek"
	"github.com/bjaus/tabpeek/internal/render"
	"github.com/bjaus/tabpeek/internal/settings"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFormats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		name    string
		content string
	}{
		"yaml": {
			name:    "config.yaml",
			content: "border: heavy\nmax_rows: 40\nmax_cols: 12\nmax_col_width: 30\nshow_shape: false\nshow_types: false\n",
		},
		"yml": {
			name:    "config.yml",
			content: "border: heavy\nmax_rows: 40\nmax_cols: 12\nmax_col_width: 30\nshow_shape: false\nshow_types: false\n",
		},
		"toml": {
			name:    "config.toml",
			content: "border = \"heavy\"\nmax_rows = 40\nmax_cols = 12\nmax_col_width = 30\nshow_shape = false\nshow_types = false\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := settings.Load(write(t, tt.name, tt.content), true)
			require.NoError(t, err)
			opts, err := s.Options()
			require.NoError(t, err)
			assert.Equal(t, render.Options{
				Style:       render.StyleBox,
				Border:      render.BorderHeavy,
				MaxRows:     40,
				MaxCols:     12,
				MaxColWidth: 30,
			}, opts)
		})
	}
}

func TestLoadPartial(t *testing.T) {
	t.Parallel()
	s, err := settings.Load(write(t, "c.yaml", "max_cols: 3\n"), true)
	require.NoError(t, err)
	opts, err := s.Options()
	require.NoError(t, err)
	want := render.DefaultOptions()
	want.MaxCols = 3
	assert.Equal(t, want, opts)
}

func TestLoadEmptyYAML(t *testing.T) {
	t.Parallel()
	s, err := settings.Load(write(t, "c.yaml", ""), true)
	require.NoError(t, err)
	assert.Equal(t, settings.Settings{}, s)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nope.yaml")

	s, err := settings.Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, settings.Settings{}, s)

	_, err = settings.Load(path, true)
	require.ErrorIs(t, err, os.ErrNotExist)

	s, err = settings.Load("", false)
	require.NoError(t, err)
	assert.Equal(t, settings.Settings{}, s)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		name    string
		content string
		target  error
	}{
		"unknown yaml key": {name: "c.yaml", content: "colour: red\n"},
		"unknown toml key": {name: "c.toml", content: "colour = \"red\"\n"},
		"bad yaml":         {name: "c.yaml", content: "max_rows: [\n"},
		"bad toml":         {name: "c.toml", content: "max_rows = \n"},
		"json":             {name: "c.json", content: "{}", target: settings.ErrUnsupportedFile},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := settings.Load(write(t, tt.name, tt.content), true)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestOptionsErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		settings settings.Settings
		target   error
	}{
		"border":   {settings: settings.Settings{Border: "dotted"}, target: render.ErrUnsupportedBorder},
		"max_rows": {settings: settings.Settings{MaxRows: -1}, target: tabpeek.ErrInvalidArgument},
		"max_cols": {settings: settings.Settings{MaxCols: -2}, target: tabpeek.ErrInvalidArgument},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.settings.Options()
			require.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, tabpeek.ErrInvalidArgument)
		})
	}
}

func TestPathExplicit(t *testing.T) {
	t.Parallel()
	path, required := settings.Path("my.toml")
	assert.Equal(t, "my.toml", path)
	assert.True(t, required)
}

func TestPathEnv(t *testing.T) {
	t.Setenv(settings.EnvVar, "/etc/tabpeek.yaml")
	path, required := settings.Path("")
	assert.Equal(t, "/etc/tabpeek.yaml", path)
	assert.True(t, required)

	path, _ = settings.Path("flag.yaml")
	assert.Equal(t, "flag.yaml", path)
}

func TestPathDefault(t *testing.T) {
	t.Setenv(settings.EnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/u")
	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	path, required := settings.Path("")
	assert.Equal(t, filepath.Join(dir, "tabpeek", "config.yaml"), path)
	assert.False(t, required)
}
