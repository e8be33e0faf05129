package troff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Closing fragments for each block level.
const (
	level1Close = "</div>"
	level2Close = "</div>"
	level3Close = "</div><br />"
)

const (
	displayBlock  = "display:block;"
	displayInline = "display:inline;"
)

var (
	// paragraphArgs captures the tag and indent of `.IP "tag" indent`.
	paragraphArgs = regexp.MustCompile(`"(.*)" (\d+)`)
	quotedTitle   = regexp.MustCompile(`"(.*)"`)
)

// dispatch recognizes at most one macro at the start of line. State macros
// are consulted before templates.
func (t *Transducer) dispatch(line string) string {
	for _, m := range stateMacros {
		if strings.HasPrefix(line, m.name) {
			return t.handle(m.kind, line[len(m.name):])
		}
	}
	for _, r := range templateMacros {
		if strings.HasPrefix(line, r.key) {
			arg := strings.TrimSpace(line[len(r.key):])
			return strings.Replace(r.value, argPlaceholder, arg, 1)
		}
	}
	return line
}

// handle runs the handler for kind with the untrimmed remainder of the line.
func (t *Transducer) handle(kind macroKind, args string) string {
	switch kind {
	case macroParagraph:
		return t.openParagraph(args)
	case macroSection:
		return t.openSection(args)
	case macroSubsection:
		return t.openSubsection(args)
	case macroIndentOpen:
		return openIndent(args)
	case macroIndentClose:
		return "</div>"
	case macroVerbatimOpen:
		t.preOpen = true
		return "<pre>"
	case macroVerbatimClose:
		t.preOpen = false
		return "</pre>"
	case macroTitle:
		t.declareTitle(args)
		return ""
	case macroAltTitle:
		t.recording = true
		return `<h1 class="TH">` + strings.TrimSpace(args) + "</h1>"
	default:
		panic(fmt.Sprintf("troff: unhandled macro kind %d", kind))
	}
}

// closeLevels closes every open block at depth or deeper, innermost first.
func (t *Transducer) closeLevels(depth int) string {
	var b strings.Builder
	if depth <= 3 && t.level3Open {
		b.WriteString(level3Close)
		t.level3Open = false
	}
	if depth <= 2 && t.level2Open {
		b.WriteString(level2Close)
		t.level2Open = false
	}
	if depth <= 1 && t.level1Open {
		b.WriteString(level1Close)
		t.level1Open = false
	}
	return b.String()
}

// openParagraph handles .IP. A tagged paragraph renders its tag run-in with
// the body; an untagged one renders as a block.
func (t *Transducer) openParagraph(args string) string {
	closing := t.closeLevels(3)
	t.level3Open = true

	tag, indent, display := "", "", displayBlock
	if m := paragraphArgs.FindStringSubmatch(args); m != nil {
		tag, indent = m[1], m[2]
		if isRunInTag(tag) {
			display = displayInline
			indent = "0"
		}
	}
	return fmt.Sprintf(`%s<h4 style="%s">%s</h4><div style="padding-left: %sem;%s">`,
		closing, display, tag, indent, display)
}

// isRunInTag reports whether an .IP tag is a short label such as "1.",
// "-v" or a bullet. Every non-empty tag ends in a single character, so
// every non-empty tag qualifies.
func isRunInTag(tag string) bool {
	return tag != ""
}

func (t *Transducer) openSubsection(args string) string {
	closing := t.closeLevels(2)
	t.level2Open = true

	title := headingTitle(args)
	id := t.registerHeading(title, 2)
	// Opens h3 but closes h2, matching historical output.
	return fmt.Sprintf(`%s<h3 id="%s">%s</h2><div style="padding-left: 3em;">`, closing, id, title)
}

func (t *Transducer) openSection(args string) string {
	closing := t.closeLevels(1)
	t.level1Open = true

	title := headingTitle(args)
	id := t.registerHeading(title, 1)
	return fmt.Sprintf(`%s<h2 id="%s">%s</h2><div style="padding-left: 3em;">`, closing, id, title)
}

// headingTitle prefers a quoted title and falls back to the whole argument.
func headingTitle(args string) string {
	if m := quotedTitle.FindStringSubmatch(args); m != nil {
		return m[1]
	}
	return strings.TrimSpace(args)
}

// openIndent handles .RS. A missing or malformed depth means 1.
func openIndent(args string) string {
	depth, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		depth = 1
	}
	return fmt.Sprintf(`<div style="padding-left: %dem;">`, depth)
}
