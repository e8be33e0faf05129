package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose writes debug entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(true, &buf)
		logger.Debug("converted", zap.String("input", "ls.1"))
		_ = logger.Sync()

		out := buf.String()
		if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "converted") || !strings.Contains(out, "ls.1") {
			t.Errorf("log output = %q", out)
		}
	})

	t.Run("quiet logger discards", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(false, &buf)
		logger.Info("ignored")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}
