package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = 2 * time.Second

// GoroutineChecker detects goroutines left running by a test
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until the goroutine count drops back within tolerance of
// the recorded baseline, failing the test if it never does.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	var after int
	for {
		runtime.Gosched()
		after = runtime.NumGoroutine()
		if after-g.before <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}
