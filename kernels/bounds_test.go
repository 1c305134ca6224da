package kernels

import "testing"

func TestPrimeCountBound_SizingFormulaIsSufficient(t *testing.T) {
	// GIVEN every bound up to 5000, crossing the dense/Rosser-Schoenfeld
	// switchover at 17
	for n := -1; n <= 5000; n++ {
		// WHEN the sizing formula and the true prime count are compared
		bound := PrimeCountBound(n)
		actual := len(Sieve(n))

		// THEN the formula never underestimates and never exceeds the
		// n+1 safe over-allocation
		if bound < actual {
			t.Fatalf("PrimeCountBound(%d) = %d underestimates true count %d", n, bound, actual)
		}
		if n >= 0 && bound > n+1 {
			t.Fatalf("PrimeCountBound(%d) = %d exceeds n+1", n, bound)
		}
	}
}

func TestPrimeCountBound_ExactCapacityBufferSuffices(t *testing.T) {
	// GIVEN buffers sized exactly to the formula, no slack
	for _, n := range []int{2, 16, 17, 100, 10000, 100000} {
		buf := make([]int, PrimeCountBound(n))

		// WHEN SieveInto fills them
		count := SieveInto(n, buf)

		// THEN the write fits (a contract violation would have panicked
		// on the bounds check) and the count is positive
		if count == 0 {
			t.Fatalf("SieveInto(%d) wrote no primes", n)
		}
	}
}

func TestPrimeCountBound_Degenerate(t *testing.T) {
	// GIVEN bounds below the first prime
	for _, n := range []int{-10, 0, 1} {
		// THEN the required capacity is zero
		if got := PrimeCountBound(n); got != 0 {
			t.Errorf("PrimeCountBound(%d) = %d, want 0", n, got)
		}
	}
}
