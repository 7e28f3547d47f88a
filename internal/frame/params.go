// Package frame implements one ALAC frame: a compressed or uncompressed
// encoding of one or two channels of a block, and the fixed channel-group
// layout that splits a frameset's channels into frames.
package frame

import (
	"errors"

	"github.com/mewkiz/alac/internal/rice"
)

// Per-stream tuning constants fixed by the wire format.
const (
	MaxLPCOrder     = 8
	QuantPrecision  = 16
	QuantShift      = 9
	MaxCoefficients = 31
	// InterlacingShift is the shift the encoder always emits; decode honours
	// whatever 8-bit value is present on the wire.
	InterlacingShift = 2
	// MinCompressibleSamples is the minimum frame length the compressed path
	// accepts; shorter frames always fall back to uncompressed.
	MinCompressibleSamples = 10
)

// Params carries the residual coder and leftweight-search tuning that an
// encoder or decoder was configured with.
type Params struct {
	InitialHistory    int
	HistoryMultiplier int
	MaximumK          int
	MinLeftWeight     int
	MaxLeftWeight     int
}

func riceParams(p Params) rice.Params {
	return rice.Params{
		InitialHistory:    p.InitialHistory,
		HistoryMultiplier: p.HistoryMultiplier,
		MaximumK:          p.MaximumK,
	}
}

// Errors surfaced by frame decoding. The root package maps these onto its
// own exported sentinels via errors.Is.
var (
	ErrInvalidPredictionType    = errors.New("frame: prediction_type must be 0")
	ErrInvalidFrameChannelCount = errors.New("frame: channel count must be 1 or 2")
	ErrFrameBlockSizeMismatch   = errors.New("frame: decoded sample count exceeds stream block size")
	ErrInvalidCoeffCount        = errors.New("frame: coeff_count exceeds the maximum coefficient count")
	ErrExcessiveFramesetChannels = errors.New("frame: frameset carries more channel groups than the stream declares")
)
