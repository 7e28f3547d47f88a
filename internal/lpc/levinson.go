package lpc

// Coefficients holds the per-order LP coefficient vectors produced by one
// Levinson-Durbin recursion, indexed [order-1][0..order-1].
type Coefficients struct {
	// ByOrder[o-1] is the coefficient vector for prediction order o.
	ByOrder [][]float64
	// Err[o-1] is the accumulated prediction error at order o.
	Err []float64
}

// Order returns the coefficient vector for the given prediction order, or
// nil if it was not computed.
func (c *Coefficients) Order(order int) []float64 {
	if order < 1 || order > len(c.ByOrder) {
		return nil
	}
	return c.ByOrder[order-1]
}

// Levinson runs the Levinson-Durbin recursion over autocorrelation values r
// (length maxOrder+1, as produced by Autocorrelate) and returns the LP
// coefficients for every order 1..maxOrder.
//
// Callers must treat r[0] == 0 as a degenerate all-silence block themselves.
// Levinson only guards the division: while the running error is zero it
// leaves the reflection coefficient at zero, so an all-zero r yields all-zero
// coefficients.
func Levinson(r []float64, maxOrder int) *Coefficients {
	c := &Coefficients{
		ByOrder: make([][]float64, maxOrder),
		Err:     make([]float64, maxOrder),
	}
	lpc := make([]float64, maxOrder)
	err := r[0]
	for i := 0; i < maxOrder; i++ {
		acc := r[i+1]
		for j := 0; j < i; j++ {
			acc -= lpc[j] * r[i-j]
		}
		var k float64
		if err != 0 {
			k = acc / err
		}
		// Update coefficients in place: new[j] = old[j] - k*old[i-1-j].
		tmp := make([]float64, i)
		copy(tmp, lpc[:i])
		for j := 0; j < i; j++ {
			lpc[j] = tmp[j] - k*tmp[i-1-j]
		}
		lpc[i] = k
		err *= 1 - k*k

		order := make([]float64, i+1)
		copy(order, lpc[:i+1])
		c.ByOrder[i] = order
		c.Err[i] = err
	}
	return c
}
