package man2html

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil. Zero values mean "use the default".
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if p.Size != "" && !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.Orientation != "" && !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// paperSizes holds portrait dimensions in inches.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// dimensions returns the paper width and height in inches.
// A nil receiver yields the default page.
func (p *PageSettings) dimensions() (width, height float64) {
	if p == nil {
		p = DefaultPageSettings()
	}
	size, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		size = paperSizes[PageSizeLetter]
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		return size[1], size[0]
	}
	return size[0], size[1]
}

// margin returns the page margin, falling back to DefaultMargin.
func (p *PageSettings) margin() float64 {
	if p == nil || p.Margin == 0 {
		return DefaultMargin
	}
	return p.Margin
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	_, ok := paperSizes[strings.ToLower(size)]
	return ok
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Highlight configures syntax highlighting of verbatim (.Vb/.Ve) blocks.
type Highlight struct {
	Language string // Chroma lexer name, "" or "auto" to detect per block
	Style    string // Chroma style name, "" for the default
}

// Input contains conversion parameters.
type Input struct {
	Source    string        // man page source (required unless Lines is set)
	Lines     []string      // pre-split source lines, takes precedence over Source
	CSS       string        // extra CSS appended after the converter style (optional)
	Highlight *Highlight    // verbatim block highlighting (optional, nil = off)
	Page      *PageSettings // PDF page settings (optional, nil = defaults)
	PDF       bool          // also render a PDF through headless Chrome
	RecordAll bool          // keep lines that precede .TH
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML     []byte
	PDF      []byte // nil unless Input.PDF was set
	Name     string // from .TH, empty when the page has none
	Section  string
	Headings int // number of table of contents entries
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	styleInput    string // name, file path, or CSS content
	resolvedStyle string // CSS content after resolution
	assetPath     string
	highStyle     string // Chroma style when Highlight.Style is empty
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("man2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the style injected into every document: a built-in or
// custom style name, a path to a CSS file, or raw CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/ subdirectory overrides the
// built-in styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithHighlightStyle sets the Chroma style used for verbatim blocks when
// Input.Highlight does not name one.
func WithHighlightStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.highStyle = style
	}
}
