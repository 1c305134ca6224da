// kernels/bounds.go
package kernels

import "math"

// PrimeCountBound returns an upper bound on the number of primes <= n,
// the capacity a caller must give SieveInto. It never underestimates the
// true prime count and never exceeds n+1, so a buffer of n+1 slots is
// always a safe over-allocation.
//
// For n >= 17 this is the Rosser-Schoenfeld inequality
// pi(n) <= 1.25506*n/ln(n), rounded up one extra slot to absorb the
// float truncation. Below 17 the inequality does not hold, so a dense
// small-n bound is used instead.
func PrimeCountBound(n int) int {
	if n < 2 {
		return 0
	}
	if n < 17 {
		// Covers 2 plus every odd candidate in [3, n].
		return n/2 + 1
	}
	return int(1.25506*float64(n)/math.Log(float64(n))) + 1
}
