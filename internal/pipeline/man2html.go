package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-man2html/internal/troff"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Source is the input of one document conversion.
type Source struct {
	Lines     []string
	CSS       string // appended to the built-in style sheet, "</" escaped
	RecordAll bool   // keep lines that precede .TH
}

// Document is a converted man page.
type Document struct {
	HTML     string
	Info     troff.DocumentInfo
	Headings []troff.Heading
}

// HTMLConverter abstracts man page to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, src Source) (*Document, error)
}

// TroffConverter converts man pages with the troff Transducer.
// Each call uses its own Transducer, so a TroffConverter is safe for
// concurrent use.
type TroffConverter struct{}

// NewTroffConverter creates a TroffConverter.
func NewTroffConverter() *TroffConverter {
	return &TroffConverter{}
}

// ToHTML converts src to a standalone HTML document.
// The Transducer has no suspension points, so cancellation is honored via
// goroutine + select.
func (c *TroffConverter) ToHTML(ctx context.Context, src Source) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		doc *Document
		err error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, r)}
			}
		}()

		var opts []troff.Option
		if src.RecordAll {
			opts = append(opts, troff.WithRecordAll())
		}
		t := troff.New(opts...)
		html := t.Document(src.Lines, sanitizeCSS(src.CSS))
		done <- result{doc: &Document{
			HTML:     html,
			Info:     t.Info(),
			Headings: t.Headings(),
		}}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.doc, r.err
	}
}

// sanitizeCSS escapes sequences that could close the document's <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
