package frame

import (
	ibits "github.com/mewkiz/alac/internal/bits"
	"github.com/mewkiz/alac/internal/lpc"
	"github.com/mewkiz/alac/internal/stereo"
)

// splitLSBs extracts the low 8*u bits of every sample in channel into a
// separate raw stream, returning the remainder shifted down to the
// predictor's working width. u is zero for bits_per_sample <= 16, in which
// case msb is just a copy of channel.
func splitLSBs(channel []int32, u int) (msb []int32, lsb []uint32) {
	msb = make([]int32, len(channel))
	if u == 0 {
		copy(msb, channel)
		return msb, nil
	}
	lsb = make([]uint32, len(channel))
	mask := int32(1)<<(8*u) - 1
	for i, s := range channel {
		lsb[i] = uint32(s) & uint32(mask)
		msb[i] = s >> uint(8*u)
	}
	return msb, lsb
}

func joinLSBs(msb []int32, lsb []uint32, u int) []int32 {
	if u == 0 {
		return msb
	}
	out := make([]int32, len(msb))
	for i := range msb {
		out[i] = (msb[i] << uint(8*u)) | int32(lsb[i])
	}
	return out
}

// tryWriteCompressedFrame attempts the full compressed encoding of one
// channel group. It returns rice.ErrOverflow when any residual could not be
// coded at the available sample size; the caller then discards whatever was
// written and retries as an uncompressed frame.
func tryWriteCompressedFrame(w *ibits.Writer, group [][]int32, bitsPerSample int, hasSampleCount bool, sampleCount uint32, p Params) error {
	channels := len(group)
	n := len(group[0])
	u := 0
	if bitsPerSample > 16 {
		u = (bitsPerSample - 16) / 8
	}
	effectiveBits := bitsPerSample - 8*u

	msb := make([][]int32, channels)
	lsb := make([][]uint32, channels)
	for c := range group {
		msb[c], lsb[c] = splitLSBs(group[c], u)
	}

	win := lpc.NewWindow(n)

	type winner struct {
		leftweight int
		channels   []subframeCandidate
		total      int64
	}
	var best *winner

	if channels == 2 {
		sampleSize := effectiveBits + 1
		for lw := p.MinLeftWeight; lw <= p.MaxLeftWeight; lw++ {
			c0 := make([]int32, n)
			c1 := make([]int32, n)
			stereo.Encode(c0, c1, msb[0], msb[1], InterlacingShift, int32(lw))

			cand0, err := chooseSubframe(c0, sampleSize, win, p)
			if err != nil {
				return err
			}
			cand1, err := chooseSubframe(c1, sampleSize, win, p)
			if err != nil {
				return err
			}
			total := cand0.totalBits + cand1.totalBits
			if best == nil || total < best.total {
				best = &winner{leftweight: lw, channels: []subframeCandidate{cand0, cand1}, total: total}
			}
		}
	} else {
		cand, err := chooseSubframe(msb[0], effectiveBits, win, p)
		if err != nil {
			return err
		}
		best = &winner{leftweight: 0, channels: []subframeCandidate{cand}}
	}

	if err := writeFrameHeader(w, hasSampleCount, uint8(u), false, sampleCount); err != nil {
		return err
	}
	shift := 0
	if channels == 2 {
		shift = InterlacingShift
	}
	if err := w.WriteUnsigned(uint64(shift), 8); err != nil {
		return err
	}
	if err := w.WriteUnsigned(uint64(uint8(best.leftweight)), 8); err != nil {
		return err
	}
	for _, cand := range best.channels {
		if err := writeSubframeHeader(w, cand.coeffs); err != nil {
			return err
		}
	}
	if u > 0 {
		for i := 0; i < n; i++ {
			for c := 0; c < channels; c++ {
				if err := w.WriteUnsigned(uint64(lsb[c][i]), uint8(8*u)); err != nil {
					return err
				}
			}
		}
	}
	for _, cand := range best.channels {
		if err := cand.residual.CopyInto(w); err != nil {
			return err
		}
	}
	return nil
}

func readCompressedFrame(r *ibits.Reader, channels, n, bitsPerSample int, uLSB uint8, p Params) ([][]int32, error) {
	u := int(uLSB)
	effectiveBits := bitsPerSample - 8*u

	shift, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	leftweight, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}

	headers := make([]subframeHeader, channels)
	for c := 0; c < channels; c++ {
		h, err := readSubframeHeader(r)
		if err != nil {
			return nil, err
		}
		headers[c] = h
	}

	lsb := make([][]uint32, channels)
	if u > 0 {
		for c := range lsb {
			lsb[c] = make([]uint32, n)
		}
		for i := 0; i < n; i++ {
			for c := 0; c < channels; c++ {
				v, err := r.ReadUnsigned(uint8(8 * u))
				if err != nil {
					return nil, err
				}
				lsb[c][i] = uint32(v)
			}
		}
	}

	sampleSize := effectiveBits
	if channels == 2 {
		sampleSize++
	}

	msb := make([][]int32, channels)
	for c := 0; c < channels; c++ {
		samples, err := decodeSubframe(r, headers[c], n, sampleSize, p)
		if err != nil {
			return nil, err
		}
		msb[c] = samples
	}

	out := make([][]int32, channels)
	if channels == 2 {
		left := make([]int32, n)
		right := make([]int32, n)
		stereo.Decode(left, right, msb[0], msb[1], uint(shift), int32(leftweight))
		out[0], out[1] = left, right
	} else {
		out[0] = msb[0]
	}

	for c := range out {
		out[c] = joinLSBs(out[c], lsb[c], u)
	}
	return out, nil
}
