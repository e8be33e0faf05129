package man2html

import (
	"runtime"
	"sync"

	"go.uber.org/multierr"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ConverterPool manages a pool of Converter instances for parallel processing.
// Each converter owns its own browser, so PDF rendering runs truly in parallel.
// Converters are created lazily on first acquire to avoid startup delay.
type ConverterPool struct {
	size       int
	opts       []Option
	converters []*Converter
	sem        chan *Converter
	mu         sync.Mutex
	created    int
	closed     bool
	initErr    error
}

// NewConverterPool creates a pool with capacity for n Converter instances,
// each built with opts. Converters are created when acquired.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < 1 {
		n = 1
	}

	return &ConverterPool{
		size:       n,
		opts:       opts,
		converters: make([]*Converter, 0, n),
		sem:        make(chan *Converter, n),
	}
}

// Acquire gets a converter from the pool, creating one if needed.
// Blocks if all converters are in use. Returns nil if a converter could not
// be created; InitError reports why.
func (p *ConverterPool) Acquire() *Converter {
	select {
	case conv := <-p.sem:
		return conv
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Created outside the lock: style resolution may read files.
		conv, err := NewConverter(p.opts...)

		p.mu.Lock()
		if err != nil {
			p.created--
			p.initErr = err
			p.mu.Unlock()
			return nil
		}
		p.converters = append(p.converters, conv)
		p.mu.Unlock()

		return conv
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a converter to the pool.
// The lock is released before sending to avoid deadlock when channel is full.
func (p *ConverterPool) Release(conv *Converter) {
	if conv == nil {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.sem <- conv
}

// InitError returns the last error met while creating a converter.
func (p *ConverterPool) InitError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initErr
}

// Close releases all browser resources.
// Returns the combined error of every converter that failed to close.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	converters := p.converters
	p.mu.Unlock()

	var errs error
	for _, conv := range converters {
		errs = multierr.Append(errs, conv.Close())
	}
	return errs
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size.
// An explicit worker count wins; otherwise it derives from GOMAXPROCS,
// which automaxprocs adjusts for container CPU quotas.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
