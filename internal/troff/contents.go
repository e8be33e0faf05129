package troff

import (
	"fmt"
	"strings"
)

// Heading is a section or subsection registered for the table of contents.
type Heading struct {
	ID    string // anchor id, "header-N"
	Title string
	Level int // 1 for .SH, 2 for .SS
}

// registerHeading allocates the next anchor id. The heading is listed in
// the table of contents only if the line will be recorded.
func (t *Transducer) registerHeading(title string, level int) string {
	t.headerSeq++
	id := fmt.Sprintf("header-%d", t.headerSeq)
	if t.keeping() {
		t.headings = append(t.headings, Heading{ID: id, Title: title, Level: level})
	}
	return id
}

// contents renders the nested table of contents.
func (t *Transducer) contents() string {
	var b strings.Builder
	b.WriteString(`<div class="contents">`)

	open := 0
	for i, h := range t.headings {
		switch {
		case i == 0 || h.Level > t.headings[i-1].Level:
			b.WriteString("<ul>")
			open++
		case h.Level < t.headings[i-1].Level:
			b.WriteString("</ul>")
			open--
		}
		fmt.Fprintf(&b, `<li><a href="#%s">%s</a></li>`, h.ID, h.Title)
	}

	if len(t.headings) > 0 {
		b.WriteString(strings.Repeat("</ul>", max(open, 1)))
	}
	b.WriteString("</div>")
	return b.String()
}
