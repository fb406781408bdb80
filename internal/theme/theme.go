// Package theme resolves the plain-data config.Style values into lipgloss
// styles. It is the sole place the core converts configuration into
// rendering primitives, grounded on the teacher's internal/styles package
// (hex-color validation, named palette entries) but reduced to a pure
// function over config.Config since jnv-go has no per-project theming.
package theme

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/jnv/internal/config"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// Resolve converts a config.Style into a lipgloss.Style. Colors that fail
// hex validation are dropped rather than passed through to lipgloss, so a
// malformed theme degrades to plain text instead of panicking.
func Resolve(s config.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Foreground != "" && hexColorRegex.MatchString(s.Foreground) {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" && hexColorRegex.MatchString(s.Background) {
		style = style.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	return style
}

// JSONStyles is the resolved lipgloss form of config.JSONTheme, computed
// once at startup and passed by value into the JSON Viewer.
type JSONStyles struct {
	CurlyBrackets  lipgloss.Style
	SquareBrackets lipgloss.Style
	Key            lipgloss.Style
	StringValue    lipgloss.Style
	NumberValue    lipgloss.Style
	BooleanValue   lipgloss.Style
	NullValue      lipgloss.Style
	Indent         int
}

// ResolveJSON resolves a config.JSONTheme into its lipgloss form.
func ResolveJSON(t config.JSONTheme) JSONStyles {
	return JSONStyles{
		CurlyBrackets:  Resolve(t.CurlyBracketsStyle),
		SquareBrackets: Resolve(t.SquareBracketsStyle),
		Key:            Resolve(t.KeyStyle),
		StringValue:    Resolve(t.StringValueStyle),
		NumberValue:    Resolve(t.NumberValueStyle),
		BooleanValue:   Resolve(t.BooleanValueStyle),
		NullValue:      Resolve(t.NullValueStyle),
		Indent:         t.Indent,
	}
}

// EditorStyles is the resolved lipgloss form of config.EditorTheme.
type EditorStyles struct {
	Prefix            string
	PrefixStyle       lipgloss.Style
	ActiveCharStyle   lipgloss.Style
	InactiveCharStyle lipgloss.Style
}

// ResolveEditor resolves a config.EditorTheme into its lipgloss form.
func ResolveEditor(t config.EditorTheme) EditorStyles {
	return EditorStyles{
		Prefix:            t.Prefix,
		PrefixStyle:       Resolve(t.PrefixStyle),
		ActiveCharStyle:   Resolve(t.ActiveCharStyle),
		InactiveCharStyle: Resolve(t.InactiveCharStyle),
	}
}
