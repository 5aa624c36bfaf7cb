package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// AddInt64 adds two non-negative balances, saturating at math.MaxInt64.
func AddInt64(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// PickIndex maps a roll in [0,1) onto an index in [0,n). Rolls outside the
// range are clamped so a misbehaving source can never index out of bounds.
func PickIndex(roll float64, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(math.Floor(roll * float64(n)))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
