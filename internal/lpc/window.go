// Package lpc implements the windowing, autocorrelation, Levinson-Durbin
// recursion and coefficient quantization that turn a block of PCM samples
// into a set of quantized linear-prediction coefficients.
package lpc

import "math"

// Window holds a Tukey(0.5) analysis window precomputed for a fixed length.
// The frame encoder builds a new Window for every frame it compresses, over
// that frame's own sample count; a Window is not kept across blocks, and a
// short final block is windowed over its own length, not block_size.
type Window struct {
	coeffs []float64
}

// NewWindow precomputes a Tukey window with alpha = 0.5 over n samples.
//
//	Np = floor(alpha/2 * n) - 1
//	w[i] = (1 - cos(pi*i/Np)) / 2                   for i <= Np
//	w[i] = (1 - cos(pi*(n-i-1)/Np)) / 2              for i >= n-Np-1
//	w[i] = 1                                         otherwise
func NewWindow(n int) *Window {
	w := &Window{coeffs: make([]float64, n)}
	if n == 0 {
		return w
	}
	const alpha = 0.5
	np := int(alpha/2*float64(n)) - 1
	for i := range w.coeffs {
		w.coeffs[i] = 1
	}
	if np > 0 {
		for i := 0; i <= np && i < n; i++ {
			w.coeffs[i] = (1 - math.Cos(math.Pi*float64(i)/float64(np))) / 2
		}
		for i := n - np - 1; i < n; i++ {
			if i < 0 {
				continue
			}
			w.coeffs[i] = (1 - math.Cos(math.Pi*float64(n-i-1)/float64(np))) / 2
		}
	}
	return w
}

// Apply multiplies samples by the window, writing the result into dst. dst
// and samples must share the window's configured length.
func (w *Window) Apply(dst []float64, samples []int32) {
	for i, s := range samples {
		dst[i] = w.coeffs[i] * float64(s)
	}
}
