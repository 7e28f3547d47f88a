// Package predictor implements the adaptive integer LPC predictor shared by
// the encoder and decoder: a fixed-point recurrence whose coefficients
// self-adjust from the sign of the residual as each sample is processed.
package predictor

import (
	ibits "github.com/mewkiz/alac/internal/bits"
)

// sign returns -1, 0 or 1 according to the sign of v.
func sign(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// predict returns the base sample and the rounded, shifted prediction
// contributed by coeffs at position i of samples, which must already hold
// valid values at indices i-order-1 .. i-1. Both EncodeResiduals and
// DecodeSamples call this with a samples slice filled up to i-1 — on encode
// because the whole block is already known, on decode because earlier
// samples were already reconstructed.
func predict(coeffs []int32, samples []int32, i, order int) (base, lpc int64) {
	base = int64(samples[i-order-1])
	acc := int64(1) << 8
	for j := 0; j < order; j++ {
		acc += int64(coeffs[j]) * (int64(samples[i-j-1]) - base)
	}
	return base, acc >> 9
}

// adapt applies the self-adjusting coefficient update driven by the sign of
// err. It is shared verbatim by the encoder and the decoder so both walk
// identical coefficient trajectories and never drift apart: the encoder
// calls it with the residual it just emitted, the decoder with the residual
// it just consumed, before either one modifies it further.
//
// hist holds the order samples immediately preceding the current position,
// s[i-order] .. s[i-1], in that order; base is s[i-order-1].
func adapt(coeffs []int32, hist []int64, base, err int64) {
	order := len(coeffs)
	switch {
	case err > 0:
		for j := 0; j < order; j++ {
			diff := base - hist[j]
			s := sign(diff)
			coeffs[order-j-1] -= int32(s)
			err -= ((diff * s) >> 9) * int64(j+1)
			if err <= 0 {
				break
			}
		}
	case err < 0:
		for j := 0; j < order; j++ {
			diff := base - hist[j]
			s := -sign(diff)
			coeffs[order-j-1] -= int32(s)
			err -= ((diff * s) >> 9) * int64(j+1)
			if err >= 0 {
				break
			}
		}
	}
}

func history(samples []int32, i, order int) []int64 {
	hist := make([]int64, order)
	for j := 0; j < order; j++ {
		hist[j] = int64(samples[i-order+j])
	}
	return hist
}

// EncodeResiduals computes the residual stream for samples under the given
// quantized coefficients, mutating coeffs in place as the adaptive update
// runs. sampleSize bounds the two's-complement truncation applied to every
// residual and to the warm-up first differences.
func EncodeResiduals(coeffs []int32, samples []int32, sampleSize uint) []int32 {
	n := len(samples)
	order := len(coeffs)
	res := make([]int32, n)
	if n == 0 {
		return res
	}
	res[0] = samples[0]
	for i := 1; i <= order && i < n; i++ {
		res[i] = int32(ibits.Truncate(int64(samples[i])-int64(samples[i-1]), sampleSize))
	}
	for i := order + 1; i < n; i++ {
		base, lpc := predict(coeffs, samples, i, order)
		err := ibits.Truncate(int64(samples[i])-base-lpc, sampleSize)
		res[i] = int32(err)
		adapt(coeffs, history(samples, i, order), base, err)
	}
	return res
}

// DecodeSamples reconstructs the sample stream from a residual stream under
// the given quantized coefficients, mutating coeffs in place identically to
// EncodeResiduals so the two stay in lock-step.
func DecodeSamples(coeffs []int32, residuals []int32, sampleSize uint) []int32 {
	n := len(residuals)
	order := len(coeffs)
	samples := make([]int32, n)
	if n == 0 {
		return samples
	}
	samples[0] = residuals[0]
	for i := 1; i <= order && i < n; i++ {
		samples[i] = int32(ibits.Truncate(int64(samples[i-1])+int64(residuals[i]), sampleSize))
	}
	for i := order + 1; i < n; i++ {
		base, lpc := predict(coeffs, samples, i, order)
		err := int64(residuals[i])
		samples[i] = int32(ibits.Truncate(base+lpc+err, sampleSize))
		adapt(coeffs, history(samples, i, order), base, err)
	}
	return samples
}
