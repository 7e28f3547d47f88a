package frame

import (
	ibits "github.com/mewkiz/alac/internal/bits"
)

// subframeHeader is the per-channel LPC header: prediction_type is always 0
// on encode, shift_needed always 9 (the quantizer's fractional shift),
// rice_modifier always 4.
type subframeHeader struct {
	ShiftNeeded  uint8
	RiceModifier uint8
	Coeffs       []int16
}

func writeSubframeHeader(w *ibits.Writer, coeffs []int16) error {
	if err := w.WriteUnsigned(0, 4); err != nil { // prediction_type
		return err
	}
	if err := w.WriteUnsigned(QuantShift, 4); err != nil { // shift_needed
		return err
	}
	if err := w.WriteUnsigned(4, 3); err != nil { // rice_modifier
		return err
	}
	if err := w.WriteUnsigned(uint64(len(coeffs)), 5); err != nil {
		return err
	}
	for _, c := range coeffs {
		if err := w.WriteSigned(int64(c), 16); err != nil {
			return err
		}
	}
	return nil
}

func readSubframeHeader(r *ibits.Reader) (subframeHeader, error) {
	predType, err := r.ReadUnsigned(4)
	if err != nil {
		return subframeHeader{}, err
	}
	if predType != 0 {
		return subframeHeader{}, ErrInvalidPredictionType
	}
	shift, err := r.ReadUnsigned(4)
	if err != nil {
		return subframeHeader{}, err
	}
	riceMod, err := r.ReadUnsigned(3)
	if err != nil {
		return subframeHeader{}, err
	}
	count, err := r.ReadUnsigned(5)
	if err != nil {
		return subframeHeader{}, err
	}
	if count > MaxCoefficients {
		return subframeHeader{}, ErrInvalidCoeffCount
	}
	coeffs := make([]int16, count)
	for i := range coeffs {
		v, err := r.ReadSigned(16)
		if err != nil {
			return subframeHeader{}, err
		}
		coeffs[i] = int16(v)
	}
	return subframeHeader{ShiftNeeded: uint8(shift), RiceModifier: uint8(riceMod), Coeffs: coeffs}, nil
}

// writeFrameHeader writes the 16 reserved bits, has_sample_count,
// uncompressed_LSBs and the uncompressed flag, followed by the optional
// 32-bit sample count.
//
// The wire field the spec calls "not_uncompressed" is, by the scenario
// values it documents, 1 exactly when the frame IS the uncompressed
// fallback and 0 for a compressed frame — the opposite of its literal
// English reading. uncompressed below follows that observed wire meaning.
func writeFrameHeader(w *ibits.Writer, hasSampleCount bool, uncompressedLSBs uint8, uncompressed bool, sampleCount uint32) error {
	if err := w.WriteUnsigned(0, 16); err != nil {
		return err
	}
	if err := w.WriteUnsigned(boolBit(hasSampleCount), 1); err != nil {
		return err
	}
	if err := w.WriteUnsigned(uint64(uncompressedLSBs), 2); err != nil {
		return err
	}
	if err := w.WriteUnsigned(boolBit(uncompressed), 1); err != nil {
		return err
	}
	if hasSampleCount {
		if err := w.WriteUnsigned(uint64(sampleCount), 32); err != nil {
			return err
		}
	}
	return nil
}

type frameHeader struct {
	HasSampleCount   bool
	UncompressedLSBs uint8
	Uncompressed     bool
	SampleCount      uint32
}

func readFrameHeader(r *ibits.Reader) (frameHeader, error) {
	if _, err := r.ReadUnsigned(16); err != nil { // reserved
		return frameHeader{}, err
	}
	hasSampleCount, err := r.ReadUnsigned(1)
	if err != nil {
		return frameHeader{}, err
	}
	uLSB, err := r.ReadUnsigned(2)
	if err != nil {
		return frameHeader{}, err
	}
	uncompressed, err := r.ReadUnsigned(1)
	if err != nil {
		return frameHeader{}, err
	}
	h := frameHeader{
		HasSampleCount:   hasSampleCount != 0,
		UncompressedLSBs: uint8(uLSB),
		Uncompressed:     uncompressed != 0,
	}
	if h.HasSampleCount {
		sc, err := r.ReadUnsigned(32)
		if err != nil {
			return frameHeader{}, err
		}
		h.SampleCount = uint32(sc)
	}
	return h, nil
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
