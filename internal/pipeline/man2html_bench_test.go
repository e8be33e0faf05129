//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkTroffToHTML benchmarks man page to HTML conversion.
func BenchmarkTroffToHTML(b *testing.B) {
	converter := NewTroffConverter()
	ctx := context.Background()

	for _, n := range []int{10, 50, 200} {
		lines := generateManPage(n)
		b.Run(fmt.Sprintf("sections_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := converter.ToHTML(ctx, Source{Lines: lines}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func generateManPage(sections int) []string {
	lines := []string{`.TH BENCH 1 "2024-01-01" "bench 1.0"`}
	for i := 0; i < sections; i++ {
		lines = append(lines,
			fmt.Sprintf(`.SH "SECTION %d"`, i),
			`.IP "\fB\-v\fR" 4`,
			strings.Repeat(`see \fIls\fR(1) and https://example.com/ `, 3),
			`.SS Details`,
			`\s+2larger\s0 text with \f(CWcode\fP`,
		)
	}
	return lines
}
