package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hubastard/tinyui/engine/colors"
	"github.com/hubastard/tinyui/engine/ui"
)

//go:embed default.toml
var defaultConfig string

type Config struct {
	Window   WindowConfig `toml:"window"`
	Log      LogConfig    `toml:"log"`
	Font     FontConfig   `toml:"font"`
	Style    ui.Style     `toml:"style"`
	Capacity ui.Capacity  `toml:"capacity"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	VSync      bool   `toml:"vsync"`
	ClearColor string `toml:"clear_color"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type FontConfig struct {
	Path string  `toml:"path"`
	Size float64 `toml:"size"`
}

// Default returns the embedded configuration. It panics if the embedded
// file is broken, which only a bad build can cause.
func Default() *Config {
	c := &Config{}
	if err := c.Parse(defaultConfig); err != nil {
		panic(fmt.Sprintf("config: embedded default: %v", err))
	}
	return c
}

// Load overlays the file at path on the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := c.Parse(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes data over c. Keys absent from data keep their current
// values; unknown keys are rejected.
func (c *Config) Parse(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	if _, err := colors.ParseHex(c.Window.ClearColor); err != nil {
		errs = append(errs, fmt.Errorf("window.clear_color: %w", err))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font.size must be positive, got %g", c.Font.Size))
	}

	st := c.Style
	positive("style.window_width", st.WindowWidth)
	positive("style.window_height", st.WindowHeight)
	positive("style.window_min_width", st.WindowMinWidth)
	positive("style.window_min_height", st.WindowMinHeight)
	positive("style.title_bar_height", st.TitleBarHeight)
	positive("style.button_width", st.ButtonWidth)
	positive("style.button_height", st.ButtonHeight)
	positive("style.resize_notch", st.ResizeNotch)
	positive("style.scrollbar_width", st.ScrollbarWidth)
	positive("style.scroll_step", st.ScrollStep)
	positive("style.dropdown_rows", st.DropdownRows)
	positive("style.dropdown_width", st.DropdownWidth)
	if st.Border < 0 || st.Padding < 0 {
		errs = append(errs, errors.New("style.border and style.padding must not be negative"))
	}
	if st.WindowMinHeight <= st.TitleBarHeight+st.Border {
		errs = append(errs, errors.New("style.window_min_height must leave room for the title bar"))
	}

	positive("capacity.windows", c.Capacity.Windows)
	positive("capacity.commands", c.Capacity.Commands)
	positive("capacity.refs", c.Capacity.Refs)
	positive("capacity.text", c.Capacity.Text)

	return errors.Join(errs...)
}

func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// ClearColor returns the validated window clear color.
func (c *Config) ClearColor() colors.Color {
	col, _ := colors.ParseHex(c.Window.ClearColor)
	return col
}

// Options converts the engine sections to ui options.
func (c *Config) Options(logger *slog.Logger) []ui.Option {
	opts := []ui.Option{ui.WithStyle(c.Style), ui.WithCapacity(c.Capacity)}
	if logger != nil {
		opts = append(opts, ui.WithLogger(logger))
	}
	return opts
}
