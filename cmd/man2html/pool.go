package main

import (
	"context"
	"fmt"

	man2html "github.com/alnah/go-man2html"
)

// CLIConverter is the interface for a single-page converter.
type CLIConverter interface {
	Convert(ctx context.Context, input man2html.Input) (*man2html.ConvertResult, error)
}

// Compile-time interface implementation checks.
var (
	_ CLIConverter = (*man2html.Converter)(nil)
	_ Pool         = (*poolAdapter)(nil)
)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	// Acquire returns nil when no converter could be created.
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
	InitError() error
	Close() error
}

// poolAdapter adapts *man2html.ConverterPool to the Pool interface.
type poolAdapter struct {
	pool *man2html.ConverterPool
}

// newConverterPool builds the production pool.
func newConverterPool(size int, opts ...man2html.Option) Pool {
	return &poolAdapter{pool: man2html.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire() CLIConverter {
	conv := a.pool.Acquire()
	if conv == nil {
		// Avoid a non-nil interface holding a nil pointer.
		return nil
	}
	return conv
}

// Release panics on a converter that did not come from Acquire.
func (a *poolAdapter) Release(c CLIConverter) {
	if c == nil {
		return
	}
	conv, ok := c.(*man2html.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int        { return a.pool.Size() }
func (a *poolAdapter) InitError() error { return a.pool.InitError() }
func (a *poolAdapter) Close() error     { return a.pool.Close() }
