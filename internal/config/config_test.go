package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points the home directory and working directory at empty temp dirs.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadCustomPartial(t *testing.T) {
	_, cwd := isolate(t)
	path := filepath.Join(cwd, "custom.yaml")
	writeFile(t, path, "board:\n  width: 10\ntiming:\n  gravity_ms: 500\n")

	cfg, src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height, "unset keys keep their defaults")
	assert.Equal(t, 500, cfg.Timing.GravityMS)
	assert.Equal(t, 30, cfg.Timing.TickRate)
}

func TestLoadCustomErrors(t *testing.T) {
	_, cwd := isolate(t)

	tests := []struct {
		name    string
		content string
		create  bool
		errPart string
	}{
		{"missing", "", false, "failed to read"},
		{"malformed", "board: [1, 2", true, "failed to parse"},
		{"invalid", "board:\n  width: 5\n", true, "config: board width must be >= 8, got 5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(cwd, tc.name+".yaml")
			if tc.create {
				writeFile(t, path, tc.content)
			}

			_, src, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, SourceCustom, src)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, cwd := isolate(t)
	userPath := filepath.Join(home, ".tetris", "configs", FileName)
	localPath := filepath.Join(cwd, "configs", FileName)

	writeFile(t, localPath, "board:\n  width: 12\n")
	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 12, cfg.Board.Width)

	writeFile(t, userPath, "board:\n  width: 16\n")
	cfg, src, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceUser, src, "user directory wins over ./configs")
	assert.Equal(t, 16, cfg.Board.Width)

	// A malformed user file is skipped.
	writeFile(t, userPath, "board: {width: ")
	cfg, src, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 12, cfg.Board.Width)
}

func TestLoadValidatesSearchedFiles(t *testing.T) {
	_, cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, "configs", FileName), "timing:\n  tick_rate: 0\n")

	_, src, err := Load("")
	require.Error(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Contains(t, err.Error(), "tick rate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		errPart string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"minimum board", func(c *TetrisConfig) { c.Board.Width, c.Board.Height = 8, 6 }, ""},
		{"narrow", func(c *TetrisConfig) { c.Board.Width = 7 }, "board width must be >= 8, got 7"},
		{"short", func(c *TetrisConfig) { c.Board.Height = 5 }, "board height must be >= 6, got 5"},
		{"huge", func(c *TetrisConfig) { c.Board.Width = 1000 }, "at most 256x256"},
		{"zero tick rate", func(c *TetrisConfig) { c.Timing.TickRate = 0 }, "tick rate must be between 1 and 240"},
		{"fast tick rate", func(c *TetrisConfig) { c.Timing.TickRate = 1000 }, "tick rate"},
		{"zero gravity", func(c *TetrisConfig) { c.Timing.GravityMS = 0 }, "gravity interval must be positive"},
		{"empty border", func(c *TetrisConfig) { c.Render.BorderGlyph = "" }, "border_glyph must be a single character"},
		{"long block", func(c *TetrisConfig) { c.Render.BlockGlyph = "[]" }, "block_glyph"},
		{"multibyte ok", func(c *TetrisConfig) { c.Render.InteriorGlyph = "·" }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.errPart == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestToRuntime(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Board.Width = 10
	cfg.Board.Height = 22
	cfg.Timing.TickRate = 60
	cfg.Timing.GravityMS = 400
	cfg.Render.Title = "BLOCKS"
	cfg.Render.BorderGlyph = "#"
	cfg.Render.InteriorGlyph = "·"
	cfg.Render.ASCII = true

	rc := cfg.ToRuntime()
	assert.Equal(t, 10, rc.BoardW)
	assert.Equal(t, 22, rc.BoardH)
	assert.Equal(t, 60, rc.TickRate)
	assert.Equal(t, 400*time.Millisecond, rc.GravityInterval)
	assert.Equal(t, time.Second/60, rc.FrameDuration())
	assert.Equal(t, "BLOCKS", rc.Title)
	assert.Equal(t, '#', rc.BorderGlyph)
	assert.Equal(t, '·', rc.InteriorGlyph)
	assert.Equal(t, '█', rc.BlockGlyph)
	assert.True(t, rc.ASCII)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "tick_rate: 30")
	assert.Contains(t, out, "gravity_ms: 250")
	assert.Contains(t, out, "width: 14")

	var back TetrisConfig
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, DefaultTetrisConfig(), back)
}

func TestUserDir(t *testing.T) {
	home, _ := isolate(t)
	assert.Equal(t, filepath.Join(home, ".tetris"), UserDir())
}
