package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SourceSplitter turns raw man page source into input lines.
type SourceSplitter interface {
	SplitLines(ctx context.Context, content string) []string
}

// LineSplitter splits on newlines after normalizing line endings.
type LineSplitter struct{}

// SplitLines returns one entry per source line. A trailing newline does not
// produce an extra empty line.
func (s *LineSplitter) SplitLines(ctx context.Context, content string) []string {
	if ctx.Err() != nil {
		return nil
	}

	content = normalizeLineEndings(content)
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
