package troff

import "testing"

func TestResolveFontRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold closed by previous-font escape",
			in:   `123\fBls\fR`,
			want: "123<b>ls</b>",
		},
		{
			name: "bold closed by close-all escape",
			in:   `123\fBls\fP`,
			want: "123<b>ls</b>",
		},
		{
			name: "nested regions close innermost first",
			in:   `123\fBls \fIls\fR\fR`,
			want: "123<b>ls <i>ls</i></b>",
		},
		{
			name: "close-all drains every region",
			in:   `\fBa\f(CWb\fIc\fP`,
			want: `<b>a<span class="CW">b<i>c</i></span></b>`,
		},
		{
			name: "italic inside italic collapses",
			in:   `\fIa\fIb\fR`,
			want: "<i>ab</i>",
		},
		{
			name: "close without open degrades to sentinel",
			in:   `text\fR`,
			want: "text" + unknownClose,
		},
		{
			name: "close-all without open is removed",
			in:   `text\fP`,
			want: "text",
		},
		{
			name: "sequential regions",
			in:   `\fBa\fR and \fIb\fR`,
			want: "<b>a</b> and <i>b</i>",
		},
		{
			name: "named span regions",
			in:   `\f(BIx\fR\f(IBy\fR\f(CIz\fR\f(CBw\fR`,
			want: `<span class="BI">x</span><span class="IB">y</span><span class="CI">z</span><span class="CB">w</span>`,
		},
		{
			name: "no escapes",
			in:   "plain text",
			want: "plain text",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := New()
			if got := tr.resolveFontRegions(tt.in); got != tt.want {
				t.Errorf("resolveFontRegions(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveFontRegions_SpansLines(t *testing.T) {
	t.Parallel()

	got := body(`\fBfirst`, `second\fR`)
	if want := "<b>firstsecond</b>"; got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestResolveFontSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		want     string
		wantSize int
	}{
		{
			name:     "increase",
			in:       `a\s+2b`,
			want:     `a</span><span style="font-size:12pt;">b`,
			wantSize: 12,
		},
		{
			name:     "decrease",
			in:       `a\s-1b`,
			want:     `a</span><span style="font-size:9pt;">b`,
			wantSize: 9,
		},
		{
			name:     "unsigned adds",
			in:       `a\s3b`,
			want:     `a</span><span style="font-size:13pt;">b`,
			wantSize: 13,
		},
		{
			name: "left to right with reset",
			in:   `\s+2a\s-1b\s0c`,
			want: `</span><span style="font-size:12pt;">a` +
				`</span><span style="font-size:11pt;">b` +
				`</span><span style="font-size:10pt;">c`,
			wantSize: DefaultFontSize,
		},
		{
			name:     "accumulates without restoring",
			in:       `\s+2a\s+2b`,
			want:     `</span><span style="font-size:12pt;">a</span><span style="font-size:14pt;">b`,
			wantSize: 14,
		},
		{
			name:     "no escapes",
			in:       "plain",
			want:     "plain",
			wantSize: DefaultFontSize,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := New()
			if got := tr.resolveFontSizes(tt.in); got != tt.want {
				t.Errorf("resolveFontSizes(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if tr.FontSize() != tt.wantSize {
				t.Errorf("FontSize() = %d, want %d", tr.FontSize(), tt.wantSize)
			}
		})
	}
}

func TestClosingStack(t *testing.T) {
	t.Parallel()

	var s closingStack
	if _, ok := s.pop(); ok {
		t.Fatal("pop() on empty stack reported ok")
	}

	s.push("</b>")
	s.push("</i>")
	if top, _ := s.peek(); top != "</i>" {
		t.Errorf("peek() = %q, want %q", top, "</i>")
	}
	if got := s.drain(); got != "</i></b>" {
		t.Errorf("drain() = %q, want %q", got, "</i></b>")
	}
	if len(s) != 0 {
		t.Errorf("stack has %d entries after drain, want 0", len(s))
	}
}
