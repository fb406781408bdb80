// Chroma-backed row styling. internal/community/convert.go references
// chroma only by theme name (chromaThemes, a map of background colors
// used to pick a matching theme label) and never calls its tokenizer;
// this is the first call site in the lineage to actually run a chroma
// lexer. Tokenise a line of text with the JSON lexer, then map each
// token to a lipgloss style and concatenate the rendered segments. The
// per-token style comes from the resolved config.JSONTheme
// (internal/theme) rather than a chroma built-in theme, since spec.md
// §6 defines its own per-node-kind style keys.
package viewer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jnv/internal/theme"
)

var (
	jsonLexer    = chroma.Coalesce(lexers.Get("json"))
	defaultStyle = lipgloss.NewStyle()
)

// renderTokens tokenizes text with the JSON lexer and renders each token
// through the style selected by its content, falling back to plain text
// if the lexer is unavailable or tokenizing fails.
func renderTokens(text string, styles theme.JSONStyles) string {
	if jsonLexer == nil {
		return text
	}
	iterator, err := jsonLexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var b strings.Builder
	seenColon := false
	for _, tok := range iterator.Tokens() {
		seg := strings.TrimSuffix(tok.Value, "\n")
		if seg == "" {
			continue
		}
		b.WriteString(tokenStyle(seg, tok.Type, seenColon, styles).Render(seg))
		if seg == ":" {
			seenColon = true
		}
	}
	return b.String()
}

func tokenStyle(text string, tt chroma.TokenType, afterColon bool, s theme.JSONStyles) lipgloss.Style {
	switch {
	case text == "{" || text == "}":
		return s.CurlyBrackets
	case text == "[" || text == "]":
		return s.SquareBrackets
	case text == "true" || text == "false":
		return s.BooleanValue
	case text == "null":
		return s.NullValue
	case tt.Category() == chroma.LiteralString || tt.Category() == chroma.String:
		if !afterColon {
			return s.Key
		}
		return s.StringValue
	case tt.Category() == chroma.LiteralNumber || tt.Category() == chroma.Number:
		return s.NumberValue
	default:
		return defaultStyle
	}
}
