// kernels/sieve.go
package kernels

// Sieve returns every prime in [2, n] in ascending order using the Sieve
// of Eratosthenes. For n < 2 it returns an empty slice: there are no
// primes below 2, and negative n never indexes the table.
//
// The candidate loop is bounded by the integer-only test p*p <= n rather
// than a sqrt(n) cast, so no floating-point rounding can skip the last
// elimination pass. Marking for each surviving candidate p starts at p*p;
// smaller multiples were already marked by smaller factors.
//
// The boolean table is n+1 entries and lives only for this call. If the
// allocation fails for a very large n the runtime aborts the process;
// the kernel never returns a truncated result.
func Sieve(n int) []int {
	if n < 2 {
		return []int{}
	}

	isPrime := newSieveTable(n)
	for p := 2; p*p <= n; p++ {
		if isPrime[p] {
			for k := p * p; k <= n; k += p {
				isPrime[k] = false
			}
		}
	}

	// Single ascending collection pass; this pass fixes the output order.
	primes := make([]int, 0, PrimeCountBound(n))
	for i := 2; i <= n; i++ {
		if isPrime[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// SieveInto is the raw-buffer form of Sieve for hosts without managed
// collection support. It writes the primes <= n into out[0:count] and
// returns count. For n < 2 it returns 0 having written nothing.
//
// PRECONDITION: len(out) >= PrimeCountBound(n). The caller owns out
// before and after the call; the kernel only writes the first count
// slots and never reads, frees, or reallocates the buffer. An undersized
// buffer is a contract violation, not a recoverable condition: the write
// loop is bounds-checked by the runtime, so a violation panics instead
// of corrupting memory, but callers must size out correctly rather than
// rely on that.
func SieveInto(n int, out []int) int {
	if n < 2 {
		return 0
	}

	isPrime := newSieveTable(n)
	for p := 2; p*p <= n; p++ {
		if isPrime[p] {
			for k := p * p; k <= n; k += p {
				isPrime[k] = false
			}
		}
	}

	count := 0
	for i := 2; i <= n; i++ {
		if isPrime[i] {
			out[count] = i
			count++
		}
	}
	return count
}

// newSieveTable allocates the n+1 entry table with 0 and 1 marked
// non-prime and every other index presumed prime.
func newSieveTable(n int) []bool {
	isPrime := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		isPrime[i] = true
	}
	return isPrime
}
