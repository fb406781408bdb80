// Package config holds the typed, read-only configuration consumed by the
// core: durations, sizes, styles, and keybind sets. It is a plain struct of
// values — nothing here makes decisions on its own.
package config

import (
	"fmt"
	"time"
)

// Duration wraps time.Duration so TOML's human-readable suffixes ("600ms",
// "2s") decode directly via encoding.TextUnmarshaler, mirroring the
// original's config/duration.rs.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// EditMode controls whether printable keys insert or overwrite.
type EditMode string

const (
	EditModeInsert    EditMode = "insert"
	EditModeOverwrite EditMode = "overwrite"
)

// Style is a small, serializable description of a lipgloss style.
type Style struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background,omitempty"`
	Bold       bool   `toml:"bold,omitempty"`
	Italic     bool   `toml:"italic,omitempty"`
}

// EditorTheme is the style set applied to the Filter Editor in one focus
// state (focused or defocused).
type EditorTheme struct {
	Prefix            string `toml:"prefix"`
	PrefixStyle       Style  `toml:"prefix_style"`
	ActiveCharStyle   Style  `toml:"active_char_style"`
	InactiveCharStyle Style  `toml:"inactive_char_style"`
}

// EditorConfig configures the Filter Editor.
type EditorConfig struct {
	ThemeOnFocus   EditorTheme `toml:"theme_on_focus"`
	ThemeOnDefocus EditorTheme `toml:"theme_on_defocus"`
	Mode           EditMode    `toml:"mode"`
	WordBreakChars string      `toml:"word_break_chars"`
}

// JSONTheme styles each JSON node kind in the viewer.
type JSONTheme struct {
	CurlyBracketsStyle  Style `toml:"curly_brackets_style"`
	SquareBracketsStyle Style `toml:"square_brackets_style"`
	KeyStyle            Style `toml:"key_style"`
	StringValueStyle    Style `toml:"string_value_style"`
	NumberValueStyle    Style `toml:"number_value_style"`
	BooleanValueStyle   Style `toml:"boolean_value_style"`
	NullValueStyle      Style `toml:"null_value_style"`
	Indent              int   `toml:"indent"`
}

// JSONConfig configures the JSON Viewer and the Document it renders.
type JSONConfig struct {
	Theme      JSONTheme `toml:"theme"`
	MaxStreams int       `toml:"max_streams"`
}

// CompletionConfig configures the Incremental Searcher and its suggestion
// window.
type CompletionConfig struct {
	Lines                int   `toml:"lines"`
	Cursor               Style `toml:"cursor"`
	SearchResultChunkSize int  `toml:"search_result_chunk_size"`
	SearchLoadChunkSize   int  `toml:"search_load_chunk_size"`
	ActiveItemStyle       Style `toml:"active_item_style"`
	InactiveItemStyle     Style `toml:"inactive_item_style"`
}

// KeybindsConfig maps each named bind to a set of matching key events. Any
// element of the set matching an incoming key event triggers the bind.
type KeybindsConfig struct {
	MoveToTail            []string `toml:"move_to_tail"`
	MoveToHead            []string `toml:"move_to_head"`
	Backward              []string `toml:"backward"`
	Forward               []string `toml:"forward"`
	Completion            []string `toml:"completion"`
	MoveToPreviousNearest []string `toml:"move_to_previous_nearest"`
	MoveToNextNearest     []string `toml:"move_to_next_nearest"`
	Erase                 []string `toml:"erase"`
	EraseAll              []string `toml:"erase_all"`
	EraseToPreviousNearest []string `toml:"erase_to_previous_nearest"`
	EraseToNextNearest    []string `toml:"erase_to_next_nearest"`
	SearchUp              []string `toml:"search_up"`
	SearchDown            []string `toml:"search_down"`
}

// Config is the root configuration structure for the core.
type Config struct {
	QueryDebounceDuration  Duration `toml:"query_debounce_duration"`
	ResizeDebounceDuration Duration `toml:"resize_debounce_duration"`
	SpinDuration           Duration `toml:"spin_duration"`

	Editor     EditorConfig     `toml:"editor"`
	JSON       JSONConfig       `toml:"json"`
	Completion CompletionConfig `toml:"completion"`
	Keybinds   KeybindsConfig   `toml:"keybinds"`

	// HintsDisabled corresponds to the --no-hint flag; it is not itself a
	// TOML field but is threaded through the same struct the core reads.
	HintsDisabled bool `toml:"-"`
	// SuggestionsMax corresponds to --suggestions N (0 = use Completion.Lines).
	SuggestionsMax int `toml:"-"`
}

// Default returns the built-in configuration. Any field omitted from a
// loaded TOML file falls back to the corresponding value here.
func Default() *Config {
	return &Config{
		QueryDebounceDuration:  Duration(600 * time.Millisecond),
		ResizeDebounceDuration: Duration(200 * time.Millisecond),
		SpinDuration:           Duration(80 * time.Millisecond),
		Editor: EditorConfig{
			ThemeOnFocus: EditorTheme{
				Prefix:            "Filter> ",
				PrefixStyle:       Style{Foreground: "#00AFFF", Bold: true},
				ActiveCharStyle:   Style{Foreground: "#FFFFFF", Background: "#005FAF"},
				InactiveCharStyle: Style{Foreground: "#FFFFFF"},
			},
			ThemeOnDefocus: EditorTheme{
				Prefix:            "Filter> ",
				PrefixStyle:       Style{Foreground: "#6C6C6C"},
				ActiveCharStyle:   Style{Foreground: "#AAAAAA"},
				InactiveCharStyle: Style{Foreground: "#AAAAAA"},
			},
			Mode:           EditModeInsert,
			WordBreakChars: " \t.,;:!?()[]{}\"'|/\\",
		},
		JSON: JSONConfig{
			Theme: JSONTheme{
				CurlyBracketsStyle:  Style{Foreground: "#AAAAAA"},
				SquareBracketsStyle: Style{Foreground: "#AAAAAA"},
				KeyStyle:            Style{Foreground: "#00AFFF"},
				StringValueStyle:    Style{Foreground: "#5FD75F"},
				NumberValueStyle:    Style{Foreground: "#D7AF5F"},
				BooleanValueStyle:   Style{Foreground: "#D78700"},
				NullValueStyle:      Style{Foreground: "#808080", Italic: true},
				Indent:              2,
			},
			MaxStreams: 1024,
		},
		Completion: CompletionConfig{
			Lines:                 10,
			Cursor:                Style{Foreground: "#000000", Background: "#00AFFF"},
			SearchResultChunkSize: 100,
			SearchLoadChunkSize:   1000,
			ActiveItemStyle:       Style{Foreground: "#FFFFFF", Background: "#005FAF"},
			InactiveItemStyle:     Style{Foreground: "#AAAAAA"},
		},
		Keybinds: KeybindsConfig{
			MoveToTail:             []string{"end", "ctrl+e"},
			MoveToHead:             []string{"home", "ctrl+a"},
			Backward:               []string{"left", "ctrl+b"},
			Forward:                []string{"right", "ctrl+f"},
			Completion:             []string{"tab"},
			MoveToPreviousNearest:  []string{"alt+left", "alt+b"},
			MoveToNextNearest:      []string{"alt+right", "alt+f"},
			Erase:                  []string{"backspace"},
			EraseAll:               []string{"ctrl+u"},
			EraseToPreviousNearest: []string{"alt+backspace"},
			EraseToNextNearest:     []string{"alt+d"},
			SearchUp:               []string{"up"},
			SearchDown:             []string{"down", "tab"},
		},
	}
}

// Validate checks the configuration for internally-inconsistent values,
// clamping to safe defaults rather than failing the whole load.
func (c *Config) Validate() error {
	if c.QueryDebounceDuration <= 0 {
		c.QueryDebounceDuration = Duration(600 * time.Millisecond)
	}
	if c.ResizeDebounceDuration <= 0 {
		c.ResizeDebounceDuration = Duration(200 * time.Millisecond)
	}
	if c.SpinDuration <= 0 {
		c.SpinDuration = Duration(80 * time.Millisecond)
	}
	if c.JSON.Theme.Indent <= 0 {
		c.JSON.Theme.Indent = 2
	}
	if c.Completion.Lines <= 0 {
		c.Completion.Lines = 10
	}
	if c.Completion.SearchResultChunkSize <= 0 {
		c.Completion.SearchResultChunkSize = 100
	}
	if c.Completion.SearchLoadChunkSize <= 0 {
		c.Completion.SearchLoadChunkSize = 1000
	}
	if c.Editor.Mode != EditModeInsert && c.Editor.Mode != EditModeOverwrite {
		c.Editor.Mode = EditModeInsert
	}
	if c.Editor.WordBreakChars == "" {
		c.Editor.WordBreakChars = " \t.,;:!?()[]{}\"'|/\\"
	}
	return nil
}
