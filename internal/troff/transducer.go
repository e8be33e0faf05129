package troff

import (
	"strings"
)

// DefaultFontSize is the font size, in points, restored by \s0.
const DefaultFontSize = 10

// Transducer converts man page markup to HTML, one line at a time.
// Create with New; a Transducer must not be shared between goroutines.
type Transducer struct {
	level1Open bool // .SH section
	level2Open bool // .SS subsection
	level3Open bool // .IP tagged paragraph
	preOpen    bool // between .Vb and .Ve

	closing  closingStack
	fontSize int

	recording bool
	recordAll bool

	headerSeq int
	headings  []Heading

	titled    bool
	info      DocumentInfo
	pageTitle string
}

// Option configures a Transducer.
type Option func(*Transducer)

// WithRecordAll keeps lines that precede the title declaration.
// Useful for converting fragments that have no .TH line.
func WithRecordAll() Option {
	return func(t *Transducer) {
		t.recordAll = true
	}
}

// New creates a Transducer with a pristine state.
func New(opts ...Option) *Transducer {
	t := &Transducer{fontSize: DefaultFontSize}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Reset discards all interpretation state so the Transducer can convert
// another document. Options given to New are preserved.
func (t *Transducer) Reset() {
	*t = Transducer{fontSize: DefaultFontSize, recordAll: t.recordAll}
}

// Line rewrites one raw input line into HTML. The result may be empty when
// the line only carried a state change.
func (t *Transducer) Line(raw string) string {
	line := escapeAngles(raw)
	line = strings.TrimSpace(line)
	line = substituteLiterals(line)
	line = t.resolveFontRegions(line)
	line = t.resolveFontSizes(line)
	line = t.dispatch(line)
	if !t.preOpen {
		line = linkify(line)
	}
	return line
}

// Body runs the line pipeline over lines and joins the recorded output
// with newlines. Lines before the title declaration are dropped unless
// WithRecordAll was given.
func (t *Transducer) Body(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, raw := range lines {
		out := t.Line(raw)
		if t.keeping() {
			kept = append(kept, out)
		}
	}
	return strings.Join(kept, "\n")
}

// Document converts a complete man page. styles is appended verbatim to the
// built-in style sheet.
func (t *Transducer) Document(lines []string, styles string) string {
	body := t.Body(lines)

	var b strings.Builder
	b.Grow(len(documentHeadStart) + len(styles) + len(body) + 1024)
	b.WriteString(documentHeadStart)
	b.WriteString(styles)
	b.WriteString(documentHeadEnd)
	b.WriteString(t.pageTitle)
	b.WriteString(t.contents())
	b.WriteString(body)
	b.WriteString(t.closeLevels(1))
	b.WriteString("</span>")
	b.WriteString(t.info.footerBanner())
	b.WriteString(documentFoot)
	return b.String()
}

// Info returns the metadata parsed from the .TH line.
func (t *Transducer) Info() DocumentInfo {
	return t.info
}

// Headings returns the registered headings in document order.
func (t *Transducer) Headings() []Heading {
	out := make([]Heading, len(t.headings))
	copy(out, t.headings)
	return out
}

// FontSize returns the current font size in points.
func (t *Transducer) FontSize() int {
	return t.fontSize
}

func (t *Transducer) keeping() bool {
	return t.recording || t.recordAll
}

// escapeAngles must run before any markup is injected.
func escapeAngles(line string) string {
	if !strings.ContainsAny(line, "<>") {
		return line
	}
	return strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(line)
}

func substituteLiterals(line string) string {
	for _, r := range literals {
		line = strings.ReplaceAll(line, r.key, r.value)
	}
	return line
}
