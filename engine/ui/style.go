package ui

// Style holds the layout geometry. It changes sizes only, never behavior.
type Style struct {
	WindowWidth     int `toml:"window_width"`
	WindowHeight    int `toml:"window_height"`
	WindowMinWidth  int `toml:"window_min_width"`
	WindowMinHeight int `toml:"window_min_height"`
	TitleBarHeight  int `toml:"title_bar_height"`
	Border          int `toml:"border"`
	Padding         int `toml:"padding"`
	ButtonWidth     int `toml:"button_width"`
	ButtonHeight    int `toml:"button_height"`
	ResizeNotch     int `toml:"resize_notch"`
	ScrollbarWidth  int `toml:"scrollbar_width"`
	ScrollStep      int `toml:"scroll_step"`
	DropdownRows    int `toml:"dropdown_rows"`
	DropdownWidth   int `toml:"dropdown_width"`
}

func DefaultStyle() Style {
	return Style{
		WindowWidth:     360,
		WindowHeight:    300,
		WindowMinWidth:  120,
		WindowMinHeight: 80,
		TitleBarHeight:  20,
		Border:          2,
		Padding:         5,
		ButtonWidth:     80,
		ButtonHeight:    30,
		ResizeNotch:     12,
		ScrollbarWidth:  10,
		ScrollStep:      20,
		DropdownRows:    6,
		DropdownWidth:   200,
	}
}

// Capacity bounds every per-session and per-frame container. Nothing grows
// once the Context is built.
type Capacity struct {
	Windows  int `toml:"windows"`
	Commands int `toml:"commands"`
	Refs     int `toml:"refs"`
	Text     int `toml:"text"`
}

func DefaultCapacity() Capacity {
	return Capacity{
		Windows:  32,
		Commands: 1024,
		Refs:     64,
		Text:     16384,
	}
}
