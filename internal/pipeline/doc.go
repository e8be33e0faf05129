// Package pipeline implements the man page to HTML conversion stages.
//
// The stages are:
//   - source splitting (line ending normalization, one string per input line)
//   - troff interpretation via internal/troff, one fresh Transducer per document
//   - optional syntax highlighting of verbatim (.Vb/.Ve) blocks via Chroma
//
// PDF export is handled separately by the root man2html package using
// headless Chrome (go-rod).
package pipeline
