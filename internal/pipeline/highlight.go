package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownLanguage indicates no Chroma lexer exists for the requested language.
var ErrUnknownLanguage = errors.New("unknown highlight language")

// AutoLanguage selects a lexer per block by content analysis.
const AutoLanguage = "auto"

// DefaultHighlightStyle is used when no style is named.
const DefaultHighlightStyle = "github"

// verbatimBlock matches a <pre> block produced by .Vb/.Ve.
var verbatimBlock = regexp.MustCompile(`(?s)<pre>(.*?)</pre>`)

// Highlighter rewrites verbatim blocks of a rendered document.
type Highlighter interface {
	Highlight(ctx context.Context, htmlContent string) (string, error)
}

// ChromaHighlighter highlights verbatim blocks with inline-styled spans, so
// no extra style sheet is needed.
type ChromaHighlighter struct {
	lexer     chroma.Lexer // nil means analyse each block
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for language ("" or "auto" to
// detect) using the named Chroma style. Unknown styles fall back to Chroma's
// default style.
func NewChromaHighlighter(language, styleName string) (*ChromaHighlighter, error) {
	var lexer chroma.Lexer
	if language != "" && !strings.EqualFold(language, AutoLanguage) {
		lexer = lexers.Get(language)
		if lexer == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
		}
		lexer = chroma.Coalesce(lexer)
	}

	if styleName == "" {
		styleName = DefaultHighlightStyle
	}

	return &ChromaHighlighter{
		lexer:     lexer,
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.PreventSurroundingPre(true)),
	}, nil
}

// Highlight replaces the content of every plain-text verbatim block with
// highlighted markup. Blocks that already carry markup (font escapes inside
// .Vb) are left untouched.
func (h *ChromaHighlighter) Highlight(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var firstErr error
	out := verbatimBlock.ReplaceAllStringFunc(htmlContent, func(block string) string {
		if firstErr != nil {
			return block
		}
		inner := block[len("<pre>") : len(block)-len("</pre>")]
		if strings.Contains(inner, "<") || strings.TrimSpace(inner) == "" {
			return block
		}
		highlighted, err := h.highlightCode(html.UnescapeString(inner))
		if err != nil {
			firstErr = err
			return block
		}
		return "<pre>" + highlighted + "</pre>"
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func (h *ChromaHighlighter) highlightCode(code string) (string, error) {
	lexer := h.lexer
	if lexer == nil {
		lexer = lexers.Analyse(code)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising verbatim block: %w", err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting verbatim block: %w", err)
	}
	return b.String(), nil
}
