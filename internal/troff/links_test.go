package troff

import "testing"

func TestLinkURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "http URL",
			in:   "test http://google.com/ 123",
			want: `test <a href="http://google.com/">http://google.com/</a> 123`,
		},
		{
			name: "https URL is case insensitive",
			in:   "see HTTPS://Example.org/docs",
			want: `see <a href="HTTPS://Example.org/docs">HTTPS://Example.org/docs</a>`,
		},
		{
			name: "ftp URL",
			in:   "ftp://ftp.gnu.org/gnu/",
			want: `<a href="ftp://ftp.gnu.org/gnu/">ftp://ftp.gnu.org/gnu/</a>`,
		},
		{
			name: "file URL",
			in:   "file:///usr/share/doc",
			want: `<a href="file:///usr/share/doc">file:///usr/share/doc</a>`,
		},
		{
			name: "email address",
			in:   "test admin@localhost.ru 123",
			want: `test <a href="mailto:admin@localhost.ru">admin@localhost.ru</a> 123`,
		},
		{
			name: "plain text",
			in:   "nothing to link",
			want: "nothing to link",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := linkURLs(tt.in); got != tt.want {
				t.Errorf("linkURLs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinkManRefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"bash(1)", `<a href="bash#1">bash</a>(1)`},
		{"gcc(12)", `<a href="gcc#12">gcc</a>(12)`},
		{"see ls(1) and cp(1).", `see <a href="ls#1">ls</a>(1) and <a href="cp#1">cp</a>(1).`},
		{"<i>ls</i>(1)", `<i><a href="ls#1">ls</a></i>(1)`},
		{"<b>git-log</b>(1)", `<b><a href="git-log#1">git-log</a></b>(1)`},
		{"f(x)", "f(x)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := linkManRefs(tt.in); got != tt.want {
				t.Errorf("linkManRefs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLine_LinksSkippedInVerbatim(t *testing.T) {
	t.Parallel()

	got := body(".Vb", "curl http://example.com/", ".Ve", "http://example.com/")
	want := `<pre>curl http://example.com/</pre><a href="http://example.com/">http://example.com/</a>`
	if got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}

func TestLine_StyledReference(t *testing.T) {
	t.Parallel()

	if got, want := body(`\fIls\fR(1)`), `<i><a href="ls#1">ls</a></i>(1)`; got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
}
