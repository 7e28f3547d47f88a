package frame

import (
	ibits "github.com/mewkiz/alac/internal/bits"
)

func writeUncompressedFrame(w *ibits.Writer, group [][]int32, bitsPerSample int, hasSampleCount bool, sampleCount uint32) error {
	if err := writeFrameHeader(w, hasSampleCount, 0, true, sampleCount); err != nil {
		return err
	}
	n := len(group[0])
	for i := 0; i < n; i++ {
		for _, channel := range group {
			if err := w.WriteSigned(int64(channel[i]), uint8(bitsPerSample)); err != nil {
				return err
			}
		}
	}
	return nil
}

func readUncompressedFrame(r *ibits.Reader, channels, n, bitsPerSample int) ([][]int32, error) {
	out := make([][]int32, channels)
	for c := range out {
		out[c] = make([]int32, n)
	}
	for i := 0; i < n; i++ {
		for c := 0; c < channels; c++ {
			v, err := r.ReadSigned(uint8(bitsPerSample))
			if err != nil {
				return nil, err
			}
			out[c][i] = int32(v)
		}
	}
	return out, nil
}
