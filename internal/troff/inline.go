package troff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// closingStack holds the closing tags of open font regions, innermost last.
type closingStack []string

func (s *closingStack) push(tag string) {
	*s = append(*s, tag)
}

func (s *closingStack) pop() (string, bool) {
	if len(*s) == 0 {
		return "", false
	}
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top, true
}

func (s closingStack) peek() (string, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[len(s)-1], true
}

// drain pops every pending tag, innermost first.
func (s *closingStack) drain() string {
	var b strings.Builder
	for {
		tag, ok := s.pop()
		if !ok {
			return b.String()
		}
		b.WriteString(tag)
	}
}

// resolveFontRegions replaces font region escapes left to right until none remain.
func (t *Transducer) resolveFontRegions(line string) string {
	for {
		next, changed := t.resolveFontRegion(line)
		if !changed {
			return line
		}
		line = next
	}
}

// resolveFontRegion replaces the single earliest font escape in line.
// A close escape wins only when it precedes every open escape.
func (t *Transducer) resolveFontRegion(line string) (string, bool) {
	openAt := len(line)
	var region *fontRegion
	for i := range fontRegions {
		if idx := strings.Index(line, fontRegions[i].escape); idx != -1 && idx < openAt {
			openAt = idx
			region = &fontRegions[i]
		}
	}

	for _, esc := range closeAllEscapes {
		if idx := strings.Index(line, esc); idx != -1 && idx < openAt {
			return replaceAt(line, idx, len(esc), t.closing.drain()), true
		}
	}

	for _, esc := range closeRecentEscapes {
		if idx := strings.Index(line, esc); idx != -1 && idx < openAt {
			tag, ok := t.closing.pop()
			if !ok {
				tag = unknownClose
			}
			return replaceAt(line, idx, len(esc), tag), true
		}
	}

	if region == nil {
		return line, false
	}

	// Italic inside italic collapses into the outer region.
	if top, ok := t.closing.peek(); ok && top == italicClose && region.close == italicClose {
		return replaceAt(line, openAt, len(region.escape), ""), true
	}

	t.closing.push(region.close)
	return replaceAt(line, openAt, len(region.escape), region.open), true
}

// fontSizeEscape matches \sN, \s+N and \s-N.
var fontSizeEscape = regexp.MustCompile(`\\s([+-]?)(\d+)`)

const fontSizeSpan = `</span><span style="font-size:%dpt;">`

// resolveFontSizes applies size escapes left to right, each one replaced by
// a span carrying the size in effect after it.
func (t *Transducer) resolveFontSizes(line string) string {
	for {
		m := fontSizeEscape.FindStringSubmatchIndex(line)
		if m == nil {
			return line
		}
		t.applyFontSize(line[m[2]:m[3]], line[m[4]:m[5]])
		line = line[:m[0]] + fmt.Sprintf(fontSizeSpan, t.fontSize) + line[m[1]:]
	}
}

// applyFontSize resets on a literal 0 and otherwise adds the signed delta.
// The size is a running total, not a stack.
func (t *Transducer) applyFontSize(sign, magnitude string) {
	if magnitude == "0" {
		t.fontSize = DefaultFontSize
		return
	}
	delta, err := strconv.Atoi(magnitude)
	if err != nil {
		return
	}
	if sign == "-" {
		delta = -delta
	}
	t.fontSize += delta
}

func replaceAt(s string, idx, n int, with string) string {
	return s[:idx] + with + s[idx+n:]
}
