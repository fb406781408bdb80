package app

import (
	"github.com/mattn/go-runewidth"

	"github.com/marcus/jnv/internal/render"
	"github.com/marcus/jnv/internal/theme"
)

// View renders the full pane stack through the Terminal Renderer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Frame()
}

func (m *Model) editorPane() render.Pane {
	styles := m.editorStylesFocused
	if m.focus != FocusEditor {
		styles = m.editorStylesDefocused
	}
	return render.Pane{Content: renderEditorLine(styles, m.editor.Text(), m.width)}
}

// renderEditorLine renders the prefix and buffer text, truncating the
// buffer (by display column, not byte or rune count, so wide glyphs
// like CJK characters are not split) to fit the terminal width.
func renderEditorLine(styles theme.EditorStyles, text string, width int) string {
	prefix := styles.PrefixStyle.Render(styles.Prefix)
	if width > 0 {
		budget := width - runewidth.StringWidth(styles.Prefix)
		if budget > 0 && runewidth.StringWidth(text) > budget {
			text = runewidth.Truncate(text, budget, "")
		}
	}
	return prefix + styles.ActiveCharStyle.Render(text)
}
