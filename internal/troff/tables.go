package troff

import "sort"

// macroKind identifies a macro whose handler reads or mutates interpreter state.
type macroKind int

const (
	macroParagraph     macroKind = iota // .IP "tag" indent
	macroSection                        // .SH / .Sh
	macroSubsection                     // .SS
	macroIndentOpen                     // .RS [n]
	macroIndentClose                    // .RE
	macroVerbatimOpen                   // .Vb
	macroVerbatimClose                  // .Ve
	macroTitle                          // .TH name section date version
	macroAltTitle                       // .Dt
)

// stateMacro binds a request name to its handler kind.
type stateMacro struct {
	name string
	kind macroKind
}

// stateMacros is consulted before templateMacros. Order matters only for
// names sharing a prefix, and none of these do.
var stateMacros = []stateMacro{
	{".IP", macroParagraph},
	{".SH", macroSection},
	{".Sh", macroSection},
	{".RS", macroIndentOpen},
	{".RE", macroIndentClose},
	{".SS", macroSubsection},
	{".Vb", macroVerbatimOpen},
	{".Ve", macroVerbatimClose},
	{".TH", macroTitle},
	{".Dt", macroAltTitle},
}

// replacement maps a key to its output. For templates, "{}" in value is
// replaced by the trimmed macro argument.
type replacement struct {
	key   string
	value string
}

// argPlaceholder marks where a template receives its argument.
const argPlaceholder = "{}"

// templateMacros render a fixed template without touching state.
var templateMacros = byKeyLength([]replacement{
	{".de", ""},
	{".ds", ""},
	{".nr", ""},
	{".}f", ""},
	{".ll", ""},
	{".in", ""},
	{".ti", ""},
	{".el", ""},
	{".ie", ""},
	{"..", ""},
	{".if", ""},
	{".nh", ""},
	{".zY", ""},
	{".LP", "<br />"},
	{".IB", "<b><i>{}</i></b>"},
	{".FN", "<i>{}</i>"},
	{".SM", `<span style="font-size: 9pt;"></span>`},
	{".RB", "<b>{}</b>"},
	{".PD", "<!--{}-->"},
	{`.\"`, "<!--{}-->"},
	{".B", "<b>{}</b>"},
	{`\.B`, "<b>{}</b>"},
	{".BR", "<b>{}</b>"},
	{".I", "<i>{}</i>"},
	{".IR", "<i>{}</i>"},
	{".PP", "<br />"},
	{".P", "<br />"},
	{".TP", "<br />"},
	{".br", "<br />"},
	{".IX ", `</div><div style="padding-left: 4em;">`},
	{`\&`, `<span style="margin-right: 1em">{}</span>`},
})

// literals are replaced everywhere in a line. No value contains a key, so
// substitution is idempotent.
var literals = byKeyLength([]replacement{
	{`\(dq`, `"`},
	{`\(bv`, "|"},
	{".zZ", ""},
	{`\\$1`, ""},
	{`\*(L"`, `"`},
	{`\*(R"`, `"`},
	{".nf", "<p>"},
	{".fi", "</p>"},
	{`\(co`, "©"},
	{".Os", ""},
	{`\|`, ""},
	{"\\`", "`"},
	{`("`, `"`},
	{`\-`, "-"},
	{".Sp", "<br />"},
	{"C`", `"`},
	{"C'", `"`},
	{`\*(`, ""},
	{`\|_`, "_"},
	{`\fB\f(BI`, `<span class="BI">`},
	{`\fB\f(CB`, `<span class="CB">`},
	{`\fB\fR`, "</span>"},
	{`\e`, `\`},
	{`\(aq`, "'"},
	{`\(bu`, "•"},
})

// byKeyLength orders replacements longest key first so that a short key
// never shadows a longer key it prefixes. Ties keep declaration order.
func byKeyLength(r []replacement) []replacement {
	sort.SliceStable(r, func(i, j int) bool {
		return len(r[i].key) > len(r[j].key)
	})
	return r
}

// fontRegion is an inline escape that opens a tag closed later by \fR or \fP.
type fontRegion struct {
	escape string
	open   string
	close  string
}

const (
	italicClose  = "</i>"
	unknownClose = "</.....>"
)

var fontRegions = []fontRegion{
	{`\fB`, "<b>", "</b>"},
	{`\f(BI`, `<span class="BI">`, "</span>"},
	{`\f(IB`, `<span class="IB">`, "</span>"},
	{`\f(CW`, `<span class="CW">`, "</span>"},
	{`\f(CI`, `<span class="CI">`, "</span>"},
	{`\f(CB`, `<span class="CB">`, "</span>"},
	{`\fI`, "<i>", italicClose},
}

var (
	closeRecentEscapes = []string{`\fR`}
	closeAllEscapes    = []string{`\fP`}
)
