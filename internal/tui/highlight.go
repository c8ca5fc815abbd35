package tui

import (
	"bytes"
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultChromaStyleName = "catppuccin-mocha"

// highlightCode returns source with ANSI syntax colors for the language of
// filename, falling back to content analysis when the name is not enough.
// On any failure the source is returned unchanged.
func highlightCode(source, filename string) string {
	lexer := detectLexer(filename, source)
	if lexer == nil {
		return source
	}
	lexer = chroma.Coalesce(lexer)

	styleName := activeTheme.ChromaStyleName
	if styleName == "" {
		styleName = defaultChromaStyleName
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}

	result := buf.String()
	if !strings.HasSuffix(source, "\n") {
		result = strings.TrimRight(result, "\n")
	}
	return result
}

// detectLexer picks a lexer by base name, then by analysing source, which
// catches extensionless scripts with a shebang.
func detectLexer(filename, source string) chroma.Lexer {
	name := path.Base(filename)
	if filename == "" || name == "." || name == "/" {
		return nil
	}
	if lexer := lexers.Match(name); lexer != nil {
		return lexer
	}
	if source == "" {
		return nil
	}
	return lexers.Analyse(source)
}
