package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	man2html "github.com/alnah/go-man2html"
	"github.com/alnah/go-man2html/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, logging, style listing, and pool construction.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *zap.Logger
	AssetLoader assets.AssetLoader
	NewPool     func(size int, opts ...man2html.Option) Pool
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Logger:      zap.NewNop(),
		AssetLoader: assets.NewEmbeddedLoader(),
		NewPool:     newConverterPool,
	}
}
