// kernels/trapezoid.go
package kernels

// Trapezoid approximates the integral of x^2 over [a, b] with the
// composite trapezoidal rule on n equal-width subintervals. For n <= 0
// there are no subintervals and the result is 0 (this also keeps the
// width h = (b-a)/n from dividing by zero).
//
// The accumulation order is part of the contract with hosts that compare
// results across language implementations: the two endpoints are seeded
// first at half weight, interior nodes are added in increasing index
// order at full weight, and the scale by h happens last. Reordering the
// sum changes the low bits of the result. Non-finite a or b propagate
// through the arithmetic as usual for IEEE 754.
func Trapezoid(a, b float64, n int) float64 {
	if n <= 0 {
		return 0.0
	}

	h := (b - a) / float64(n)
	s := 0.5 * (a*a + b*b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		s += x * x
	}
	return s * h
}
