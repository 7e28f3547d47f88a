package frame

import (
	ibits "github.com/mewkiz/alac/internal/bits"
	"github.com/mewkiz/alac/internal/lpc"
	"github.com/mewkiz/alac/internal/predictor"
	"github.com/mewkiz/alac/internal/rice"
)

// subframeCandidate is one channel's chosen predictor order: the original
// (pre-adaptation) quantized coefficients the header must carry, and a
// recorder already holding that channel's rice-coded residual block.
type subframeCandidate struct {
	coeffs     []int16
	residual   *ibits.Recorder
	totalBits  int64
}

// chooseSubframe windows and autocorrelates samples, runs Levinson-Durbin,
// quantizes at orders 4 and 8, computes residuals for both and rice-codes
// them, then keeps whichever order yields the smaller residual block —
// order 4 unless order 8's residual block is at least 64 bits smaller, the
// cost of its extra coefficients.
//
// A silent block (R[0] == 0) skips the order-8 attempt entirely and commits
// to an all-zero order-4 predictor, per the spec's degenerate-block rule.
func chooseSubframe(samples []int32, sampleSize int, win *lpc.Window, p Params) (subframeCandidate, error) {
	n := len(samples)
	windowed := make([]float64, n)
	win.Apply(windowed, samples)
	r := lpc.Autocorrelate(windowed, MaxLPCOrder)

	build := func(order int) (subframeCandidate, error) {
		var coeffs []int16
		if r[0] == 0 {
			coeffs = make([]int16, order)
		} else {
			lv := lpc.Levinson(r, MaxLPCOrder)
			coeffs = lpc.Quantize(lv.Order(order))
		}
		working := make([]int32, len(coeffs))
		for i, c := range coeffs {
			working[i] = int32(c)
		}
		residuals := predictor.EncodeResiduals(working, samples, uint(sampleSize))
		rec := ibits.NewRecorder()
		if err := rice.EncodeBlock(rec.Writer(), residuals, sampleSize, riceParams(p)); err != nil {
			return subframeCandidate{}, err
		}
		headerBits := int64(16 + 16*len(coeffs))
		return subframeCandidate{coeffs: coeffs, residual: rec, totalBits: headerBits + rec.BitsWritten()}, nil
	}

	c4, err := build(4)
	if err != nil {
		return subframeCandidate{}, err
	}
	if r[0] == 0 {
		return c4, nil
	}
	c8, err := build(8)
	if err != nil {
		return subframeCandidate{}, err
	}
	if c4.residual.BitsWritten() < c8.residual.BitsWritten()+64 {
		return c4, nil
	}
	return c8, nil
}

// decodeSubframe reconstructs one channel's samples from its subframe
// header and the following rice-coded residual block.
func decodeSubframe(r *ibits.Reader, h subframeHeader, n, sampleSize int, p Params) ([]int32, error) {
	coeffs := make([]int32, len(h.Coeffs))
	for i, c := range h.Coeffs {
		coeffs[i] = int32(c)
	}
	residuals, err := rice.DecodeBlock(r, n, sampleSize, riceParams(p))
	if err != nil {
		return nil, err
	}
	return predictor.DecodeSamples(coeffs, residuals, uint(sampleSize)), nil
}
