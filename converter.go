package man2html

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-man2html/internal/assets"
	"github.com/alnah/go-man2html/internal/fileutil"
	"github.com/alnah/go-man2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.SourceSplitter = (*pipeline.LineSplitter)(nil)
	_ pipeline.HTMLConverter  = (*pipeline.TroffConverter)(nil)
	_ pipeline.Highlighter    = (*pipeline.ChromaHighlighter)(nil)
	_ pdfConverter            = (*rodConverter)(nil)
	_ pdfRenderer             = (*rodRenderer)(nil)
)

// Converter orchestrates the man page conversion pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
// A Converter may be used by one goroutine at a time; use ConverterPool for
// parallel work.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	splitter      pipeline.SourceSplitter
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle, WithAssetPath).
// Returns error if the asset path or the style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		assetLoader:   assets.NewEmbeddedLoader(),
		splitter:      &pipeline.LineSplitter{},
		htmlConverter: pipeline.NewTroffConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// Tests inject a mock before this point.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the pipeline and returns the HTML document, plus a PDF when
// input.PDF is set. The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	lines := input.Lines
	if lines == nil {
		lines = c.splitter.SplitLines(ctx, input.Source)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Converter style first, user CSS last so it can override.
	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		if cssContent != "" {
			cssContent += "\n"
		}
		cssContent += input.CSS
	}

	doc, err := c.htmlConverter.ToHTML(ctx, pipeline.Source{
		Lines:     lines,
		CSS:       cssContent,
		RecordAll: input.RecordAll,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent := doc.HTML
	if input.Highlight != nil {
		htmlContent, err = c.highlight(ctx, htmlContent, input.Highlight)
		if err != nil {
			return nil, fmt.Errorf("highlighting verbatim blocks: %w", err)
		}
	}

	res := &ConvertResult{
		HTML:     []byte(htmlContent),
		Name:     doc.Info.Name,
		Section:  doc.Info.Section,
		Headings: len(doc.Headings),
	}

	if !input.PDF {
		return res, nil
	}

	pdfOpts := &pdfOptions{
		Page:  input.Page,
		Label: footerLabel(doc.Info.Name, doc.Info.Section),
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// highlight applies Chroma highlighting to verbatim blocks.
func (c *Converter) highlight(ctx context.Context, htmlContent string, h *Highlight) (string, error) {
	style := h.Style
	if style == "" {
		style = c.cfg.highStyle
	}
	highlighter, err := pipeline.NewChromaHighlighter(h.Language, style)
	if err != nil {
		return "", err
	}
	return highlighter.Highlight(ctx, htmlContent)
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// With no style configured the built-in default style is used.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	switch fileutil.ClassifyStyle(input) {
	case fileutil.StyleInline:
		c.cfg.resolvedStyle = input
		return nil
	case fileutil.StylePath:
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks that required fields are present and valid.
//
// Library users building Input by hand reach this check directly; CLI input
// has already passed Config.Validate().
func (c *Converter) validateInput(input Input) error {
	if input.Lines == nil && input.Source == "" {
		return ErrEmptySource
	}
	if input.PDF {
		if err := input.Page.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// footerLabel renders "NAME(SECTION)" for the PDF footer.
func footerLabel(name, section string) string {
	if name == "" {
		return ""
	}
	if section == "" {
		return name
	}
	return name + "(" + section + ")"
}
