package alac

import (
	"errors"

	"github.com/mewkiz/alac/internal/frame"
)

// Sentinel errors returned across the package boundary. Callers should use
// errors.Is, since they may arrive wrapped with positional context.
var (
	ErrInvalidArgument           = errors.New("alac: invalid argument")
	ErrUnsupportedBitDepth       = errors.New("alac: bits_per_sample must be 16 or 24")
	ErrInvalidBlockSize          = errors.New("alac: block_size must be positive")
	ErrInvalidFrameChannelCount  = errors.New("alac: frame channel count must be 1 or 2")
	ErrExcessiveFramesetChannels = errors.New("alac: frameset carries more channels than the stream declares")
	ErrFrameBlockSizeMismatch    = errors.New("alac: decoded sample count exceeds the stream block size")
	ErrInvalidPredictionType     = errors.New("alac: prediction_type must be 0")
)

// translateFrameErr maps an internal/frame sentinel onto the matching
// exported one, so callers never need to import the internal package to use
// errors.Is. Any other error (I/O, EOF) passes through unchanged.
func translateFrameErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, frame.ErrInvalidFrameChannelCount):
		return ErrInvalidFrameChannelCount
	case errors.Is(err, frame.ErrExcessiveFramesetChannels):
		return ErrExcessiveFramesetChannels
	case errors.Is(err, frame.ErrFrameBlockSizeMismatch):
		return ErrFrameBlockSizeMismatch
	case errors.Is(err, frame.ErrInvalidPredictionType):
		return ErrInvalidPredictionType
	default:
		return err
	}
}
