// Package troff implements the man page interpreter at the heart of man2html.
//
// A Transducer reads troff/man markup one line at a time and rewrites each line
// into an HTML fragment. It keeps a small amount of state between lines:
//
//   - three nested block levels (section, subsection, tagged paragraph)
//   - a stack of pending closing tags for inline font regions
//   - a running font size driven by \s escapes
//   - the recording gate, closed until the .TH title declaration
//   - the heading registry used to build the table of contents
//
// # Line Pipeline
//
// Every line passes through the same stages, in order:
//
//  1. Escape literal angle brackets
//  2. Trim surrounding whitespace
//  3. Substitute literal escapes (\(co, \e, \-, ...), longest key first
//  4. Resolve inline font regions (\fB, \fI, \f(CW ... closed by \fR or \fP)
//  5. Resolve font size escapes (\s+2, \s-1, \s0)
//  6. Dispatch at most one macro (.SH, .SS, .IP, .RS, .B, ...)
//  7. Link URLs, email addresses and name(section) references
//
// Only a hand-picked subset of troff requests is honored. Anything else passes
// through unchanged.
//
// # Ownership
//
// A Transducer is not safe for concurrent use. Use one instance per document,
// or call Reset between documents.
package troff
