package frame

import (
	ibits "github.com/mewkiz/alac/internal/bits"
)

// terminator is the 3-bit channel-count tag that ends a frameset.
const terminator = 7

// WriteFrameset encodes every channel of one block as the fixed sequence of
// 1- or 2-channel frames the stream's channel count maps to, each preceded
// by its 3-bit channel-count-minus-one tag, ending with the terminator tag
// and a byte alignment.
func WriteFrameset(w *ibits.Writer, channels [][]int32, bitsPerSample int, hasSampleCount bool, sampleCount uint32, p Params) error {
	for _, idxs := range Layout(len(channels)) {
		if err := w.WriteUnsigned(uint64(len(idxs)-1), 3); err != nil {
			return err
		}
		group := make([][]int32, len(idxs))
		for i, idx := range idxs {
			group[i] = channels[idx]
		}
		if err := WriteFrame(w, group, bitsPerSample, hasSampleCount, sampleCount, p); err != nil {
			return err
		}
	}
	if err := w.WriteUnsigned(terminator, 3); err != nil {
		return err
	}
	_, err := w.ByteAlign()
	return err
}

// ReadFrameset decodes one frameset covering channels channels, returning
// the per-channel sample slices in stream channel order.
func ReadFrameset(r *ibits.Reader, channels, blockSize, bitsPerSample int, p Params) ([][]int32, error) {
	out := make([][]int32, channels)
	groups := Layout(channels)
	gi := 0
	for {
		tag, err := r.ReadUnsigned(3)
		if err != nil {
			return nil, err
		}
		if tag == terminator {
			r.ByteAlign()
			break
		}
		n := int(tag) + 1
		if n != 1 && n != 2 {
			return nil, ErrInvalidFrameChannelCount
		}
		if gi >= len(groups) {
			return nil, ErrExcessiveFramesetChannels
		}
		idxs := groups[gi]
		if len(idxs) != n {
			return nil, ErrInvalidFrameChannelCount
		}
		group, err := ReadFrame(r, n, blockSize, bitsPerSample, p)
		if err != nil {
			return nil, err
		}
		for i, idx := range idxs {
			out[idx] = group[i]
		}
		gi++
	}
	return out, nil
}
