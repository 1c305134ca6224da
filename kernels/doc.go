// Package kernels provides the two numerical kernels exposed to host
// processes for cross-language benchmarking: prime enumeration via the
// Sieve of Eratosthenes and trapezoidal quadrature of x^2.
//
// # Reading Guide
//
//   - sieve.go: Sieve (managed-return form) and SieveInto (caller-owned
//     buffer form) plus the buffer-sizing contract between them
//   - bounds.go: PrimeCountBound, the sizing formula the SieveInto
//     precondition is stated against
//   - trapezoid.go: Trapezoid, the composite trapezoidal rule with the
//     exact accumulation order hosts compare against
//
// # Call Model
//
// Every kernel is a pure function: no package state, no I/O, no
// goroutines, all working storage allocated at entry and dropped at
// return. Concurrent calls are safe as long as each call's output buffer
// is private to that call.
package kernels
