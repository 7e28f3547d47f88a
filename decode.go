package alac

import (
	"errors"
	"io"

	ibits "github.com/mewkiz/alac/internal/bits"
	"github.com/mewkiz/alac/internal/frame"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
)

// A Decoder drives the frame/frameset layer, decoding one frameset's worth
// of sample frames per call to Next.
type Decoder struct {
	r      *ibits.Reader
	params Params
	fp     frame.Params
}

// NewDecoder returns a new ALAC decoder reading from br, configured with the
// channel count, block size and sample depth the encoder used.
func NewDecoder(br *ibits.Reader, params Params) (*Decoder, error) {
	if params.Channels <= 0 {
		return nil, errutil.Newf("%w: channels must be positive", ErrInvalidArgument)
	}
	if params.BlockSize <= 0 {
		return nil, errutil.Err(ErrInvalidBlockSize)
	}
	if params.BitsPerSample != 16 && params.BitsPerSample != 24 {
		return nil, errutil.Err(ErrUnsupportedBitDepth)
	}
	return &Decoder{
		r:      br,
		params: params,
		fp: frame.Params{
			InitialHistory:    params.InitialHistory,
			HistoryMultiplier: params.HistoryMultiplier,
			MaximumK:          params.MaximumK,
		},
	}, nil
}

// Next decodes and returns the next frameset as one sample slice per
// channel, in stream channel order. It returns io.EOF once the underlying
// reader is exhausted.
func (d *Decoder) Next() ([][]int32, error) {
	dbg.Println("alac: decoding frameset")
	group, err := frame.ReadFrameset(d.r, d.params.Channels, d.params.BlockSize, d.params.BitsPerSample, d.fp)
	if err != nil {
		// io.EOF is the iterator's normal termination signal and must reach
		// the caller unwrapped; errutil.ErrInfo has no Unwrap, so wrapping it
		// here would hide exhaustion behind an opaque error.
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, errutil.Err(translateFrameErr(err))
	}
	return group, nil
}
