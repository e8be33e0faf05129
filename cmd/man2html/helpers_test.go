package main

// Notes:
// - This file contains mocks and helpers shared by the cmd tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap"

	man2html "github.com/alnah/go-man2html"
	"github.com/alnah/go-man2html/internal/assets"
)

// samplePage is a minimal man page with a title and two sections.
const samplePage = ".TH LS 1 2024-01-01 coreutils\n.SH NAME\nls \\- list directory contents\n.SH DESCRIPTION\nList information about the \\fBFILE\\fRs.\n"

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a fixed result.
type mockConverter struct {
	mu     sync.Mutex
	inputs []man2html.Input
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input man2html.Input) (*man2html.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return &man2html.ConvertResult{
		HTML:     []byte("<html>" + input.Source + "</html>"),
		PDF:      []byte("%PDF-1.4 mock"),
		Name:     "LS",
		Section:  "1",
		Headings: 2,
	}, nil
}

func (m *mockConverter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// mockPool hands out a single shared converter.
type mockPool struct {
	conv    *mockConverter
	size    int
	initErr error // non-nil makes Acquire fail
	closed  bool
}

func (p *mockPool) Acquire() CLIConverter {
	if p.initErr != nil {
		return nil
	}
	return p.conv
}

func (p *mockPool) Release(CLIConverter) {}
func (p *mockPool) Size() int            { return p.size }
func (p *mockPool) InitError() error     { return p.initErr }

func (p *mockPool) Close() error {
	p.closed = true
	return nil
}

// testEnv returns an environment writing to buffers, with pools built by newPool.
func testEnv(newPool func(size int, opts ...man2html.Option) Pool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Stdout:      stdout,
		Stderr:      stderr,
		Logger:      zap.NewNop(),
		AssetLoader: assets.NewEmbeddedLoader(),
		NewPool:     newPool,
	}, stdout, stderr
}

// mockPoolFactory returns a factory that always hands out pool.
func mockPoolFactory(pool *mockPool) func(int, ...man2html.Option) Pool {
	return func(int, ...man2html.Option) Pool { return pool }
}

// testParams returns HTML conversion parameters with a no-op logger.
func testParams() *conversionParams {
	return &conversionParams{logger: zap.NewNop()}
}

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeGzip creates a gzip-compressed file at path.
func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	writeFile(t, path, buf.String())
}

// clearManEnv unsets MAN2HTML_* variables for the test.
func clearManEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
}
