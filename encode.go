package alac

import (
	"io"

	ibits "github.com/mewkiz/alac/internal/bits"
	"github.com/mewkiz/alac/internal/frame"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
)

// An Encoder drives the frame/frameset layer over successive blocks pulled
// from a PCMSource, writing the compressed stream to an OutputSink.
type Encoder struct {
	sink OutputSink
	w    *ibits.Writer

	channels      int
	bitsPerSample int
	opts          Options
	params        frame.Params
}

// NewEncoder returns a new ALAC encoder writing to sink, for the given
// channel count and sample depth. opts tunes the block size and residual
// coder; the zero Options is not valid, pass DefaultOptions() adjusted as
// needed.
func NewEncoder(sink OutputSink, channels, bitsPerSample int, opts Options) (*Encoder, error) {
	if channels <= 0 {
		return nil, errutil.Newf("%w: channels must be positive", ErrInvalidArgument)
	}
	opts.BitsPerSample = bitsPerSample
	if err := opts.validate(); err != nil {
		return nil, errutil.Err(err)
	}
	enc := &Encoder{
		sink:          sink,
		w:             ibits.NewWriter(sink),
		channels:      channels,
		bitsPerSample: bitsPerSample,
		opts:          opts,
		params: frame.Params{
			InitialHistory:    opts.InitialHistory,
			HistoryMultiplier: opts.HistoryMultiplier,
			MaximumK:          opts.MaximumK,
			MinLeftWeight:     opts.MinLeftWeight,
			MaxLeftWeight:     opts.MaxLeftWeight,
		},
	}
	return enc, nil
}

// EncodeAll reads successive blocks of opts.BlockSize sample frames from src
// until exhaustion, writing one frameset per block. It returns the byte size
// and sample count of every frameset written, in order; a real container
// muxer uses these to build its chunk offset / sample-to-chunk tables.
func (enc *Encoder) EncodeAll(src PCMSource) ([]FramesetSize, error) {
	if src.Channels() != enc.channels {
		return nil, errutil.Newf("%w: source has %d channels, encoder configured for %d", ErrInvalidArgument, src.Channels(), enc.channels)
	}

	buf := make([][]int32, enc.channels)
	for c := range buf {
		buf[c] = make([]int32, enc.opts.BlockSize)
	}

	var sizes []FramesetSize
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			group := buf
			short := n < enc.opts.BlockSize
			if short {
				group = make([][]int32, enc.channels)
				for c := range group {
					group[c] = buf[c][:n]
				}
			}
			// The size is counted in bits written rather than read from the
			// sink, since the bit writer may still hold bytes not yet passed
			// on; a frameset always ends byte-aligned.
			before := enc.w.BitsWritten()
			dbg.Println("alac: encoding frameset of", n, "samples")
			if err := frame.WriteFrameset(enc.w, group, enc.bitsPerSample, short, uint32(n), enc.params); err != nil {
				return nil, errutil.Err(translateFrameErr(err))
			}
			after := enc.w.BitsWritten()
			sizes = append(sizes, FramesetSize{ByteSize: int((after - before) / 8), PCMFrames: n})
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, errutil.Err(readErr)
		}
	}
	return sizes, nil
}

// FramesetSize reports the on-wire size and sample count of one encoded
// frameset, in the order EncodeAll wrote them.
type FramesetSize struct {
	ByteSize  int
	PCMFrames int
}

// Close flushes any pending bits to the underlying sink. It does not close
// the sink itself; callers own that lifecycle.
func (enc *Encoder) Close() error {
	if _, err := enc.w.ByteAlign(); err != nil {
		return errutil.Err(err)
	}
	return errutil.Err(enc.w.Close())
}
