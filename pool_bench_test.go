//go:build bench

package man2html

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// BenchmarkResolvePoolSize benchmarks pool size calculation.
func BenchmarkResolvePoolSize(b *testing.B) {
	for _, w := range []int{0, 1, 2, 4, 8} {
		name := fmt.Sprintf("%d", w)
		if w == 0 {
			name = "auto"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = ResolvePoolSize(w)
			}
		})
	}
}

// BenchmarkConverterPoolAcquireRelease benchmarks the acquire/release cycle.
// HTML-only converters never start a browser.
func BenchmarkConverterPoolAcquireRelease(b *testing.B) {
	for _, size := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			pool := NewConverterPool(size)
			defer pool.Close()

			// Pre-warm the pool.
			convs := make([]*Converter, size)
			for i := range convs {
				convs[i] = pool.Acquire()
			}
			for _, c := range convs {
				pool.Release(c)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				pool.Release(pool.Acquire())
			}
		})
	}
}

// BenchmarkConverterPoolParallelHTML converts pages concurrently through the pool.
func BenchmarkConverterPoolParallelHTML(b *testing.B) {
	const page = ".TH BENCH 1\n.SH NAME\nbench \\- benchmark page\n.SH DESCRIPTION\n\\fBbold\\fR and \\fIitalic\\fR text.\n"

	pool := NewConverterPool(4)
	defer pool.Close()

	b.ReportAllocs()
	b.ResetTimer()

	var wg sync.WaitGroup
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv := pool.Acquire()
			defer pool.Release(conv)
			if _, err := conv.Convert(context.Background(), Input{Source: page}); err != nil {
				b.Error(err)
			}
		}()
	}
	wg.Wait()
}
