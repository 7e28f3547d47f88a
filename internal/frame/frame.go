package frame

import (
	ibits "github.com/mewkiz/alac/internal/bits"
	"github.com/mewkiz/alac/internal/rice"
)

// WriteFrame encodes one channel group (1 or 2 channels, all of equal
// length) as a single frame. Frames shorter than MinCompressibleSamples, and
// any compressed attempt whose residual overflows the available sample
// size, are transparently re-emitted as uncompressed: the compressed
// attempt is built into a scratch recorder first and only copied into w on
// success, so a failed attempt never corrupts the real stream.
func WriteFrame(w *ibits.Writer, group [][]int32, bitsPerSample int, hasSampleCount bool, sampleCount uint32, p Params) error {
	rec := ibits.NewRecorder()
	n := len(group[0])

	wroteCompressed := false
	if n >= MinCompressibleSamples {
		err := tryWriteCompressedFrame(rec.Writer(), group, bitsPerSample, hasSampleCount, sampleCount, p)
		switch err {
		case nil:
			wroteCompressed = true
		case rice.ErrOverflow:
			rec.Reset()
		default:
			return err
		}
	}
	if !wroteCompressed {
		if err := writeUncompressedFrame(rec.Writer(), group, bitsPerSample, hasSampleCount, sampleCount); err != nil {
			return err
		}
	}
	return rec.CopyInto(w)
}

// ReadFrame decodes one frame of the given channel count. blockSize is the
// stream's configured block size, used when the frame carries no explicit
// sample count.
func ReadFrame(r *ibits.Reader, channels, blockSize, bitsPerSample int, p Params) ([][]int32, error) {
	h, err := readFrameHeader(r)
	if err != nil {
		return nil, err
	}
	n := blockSize
	if h.HasSampleCount {
		n = int(h.SampleCount)
	}
	if n > blockSize {
		return nil, ErrFrameBlockSizeMismatch
	}
	if h.Uncompressed {
		return readUncompressedFrame(r, channels, n, bitsPerSample)
	}
	return readCompressedFrame(r, channels, n, bitsPerSample, h.UncompressedLSBs, p)
}
