//go:build integration

package man2html

// Notes:
// - Integration test setup: shared ConverterPool for all integration tests
// - testPool is initialized in TestMain and closed after all tests complete
// - acquireConverter helper provides automatic cleanup via t.Cleanup()
// - Pool size is capped at 4 for CI environments to avoid resource exhaustion

import (
	"os"
	"testing"
	"time"
)

// testTimeout is the standard timeout for integration test operations.
const testTimeout = 30 * time.Second

// testPool is the shared ConverterPool for all integration tests.
// Safe for concurrent use: tests only Acquire/Release, never modify the pool.
var testPool *ConverterPool

func TestMain(m *testing.M) {
	poolSize := ResolvePoolSize(0)
	if poolSize > 4 {
		poolSize = 4
	}

	testPool = NewConverterPool(poolSize, WithTimeout(testTimeout))

	code := m.Run()

	testPool.Close()
	os.Exit(code)
}

// acquireConverter gets a converter from the shared pool with automatic cleanup.
func acquireConverter(t *testing.T) *Converter {
	t.Helper()
	conv := testPool.Acquire()
	if conv == nil {
		t.Fatalf("acquiring converter: %v", testPool.InitError())
	}
	t.Cleanup(func() { testPool.Release(conv) })
	return conv
}
