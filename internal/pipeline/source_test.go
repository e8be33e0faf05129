package pipeline

import (
	"context"
	"reflect"
	"testing"
)

func TestLineSplitter_SplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single newline", content: "\n", want: nil},
		{name: "no trailing newline", content: ".TH A 1\ntext", want: []string{".TH A 1", "text"}},
		{name: "trailing newline", content: ".TH A 1\ntext\n", want: []string{".TH A 1", "text"}},
		{name: "blank line kept", content: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "final blank line kept", content: "a\n\n", want: []string{"a", ""}},
		{name: "CRLF", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "CR only", content: "a\rb", want: []string{"a", "b"}},
	}

	s := &LineSplitter{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.SplitLines(context.Background(), tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestLineSplitter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &LineSplitter{}
	if got := s.SplitLines(ctx, "a\nb"); got != nil {
		t.Errorf("SplitLines() on cancelled context = %q, want nil", got)
	}
}
