package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/tinyui/engine/colors"
	"github.com/hubastard/tinyui/engine/ui"
)

func TestDefaultMatchesEngineDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, ui.DefaultStyle(), c.Style)
	assert.Equal(t, ui.DefaultCapacity(), c.Capacity)
	assert.Equal(t, colors.DarkGray, c.ClearColor())

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestParseOverlayKeepsDefaults(t *testing.T) {
	c := Default()
	err := c.Parse(`
[window]
title = "demo"

[style]
padding = 8

[log]
level = "debug"
`)
	require.NoError(t, err)

	assert.Equal(t, "demo", c.Window.Title)
	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, 8, c.Style.Padding)
	assert.Equal(t, 20, c.Style.TitleBarHeight)
	assert.Equal(t, 1024, c.Capacity.Commands)

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestParseRejects(t *testing.T) {
	for name, data := range map[string]string{
		"non-positive size":  "[style]\nbutton_width = 0",
		"zero capacity":      "[capacity]\ncommands = 0",
		"negative padding":   "[style]\npadding = -1",
		"bad color":          "[window]\nclear_color = \"red\"",
		"bad level":          "[log]\nlevel = \"loud\"",
		"unknown key":        "[style]\ncorner_radius = 4",
		"tiny window height": "[style]\nwindow_min_height = 10",
		"syntax":             "[style\n",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Default().Parse(data))
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "tinyui.toml")
	require.NoError(t, os.WriteFile(path, []byte("[capacity]\nwindows = 4\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Capacity.Windows)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsConfigureContext(t *testing.T) {
	c := Default()
	require.NoError(t, c.Parse("[style]\nwindow_width = 500\n"))

	ctx := ui.New(fixedText{}, c.Options(slog.New(slog.DiscardHandler))...)
	assert.Equal(t, 500, ctx.Style().WindowWidth)
}

type fixedText struct{}

func (fixedText) MeasureWidth(s string) int { return 7 * len(s) }
func (fixedText) LineHeight() int           { return 13 }
