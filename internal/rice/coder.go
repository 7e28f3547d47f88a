// Package rice implements the adaptive Rice-style residual coder: a
// Golomb-like code whose parameter k tracks a running history register, with
// a zero-run shortcut for near-silent stretches and an escape to raw bits
// when a residual's folded magnitude would otherwise overflow.
package rice

import (
	"errors"
	"math/bits"

	ibits "github.com/mewkiz/alac/internal/bits"
)

// ErrOverflow is returned by EncodeBlock when a residual's folded magnitude
// reaches 2^sampleSize or more. It never escapes the frame encoder: the
// caller catches it and re-emits the frame as uncompressed.
var ErrOverflow = errors.New("rice: residual overflows sample size")

// Params carries the running-history tuning constants that the rest of a
// stream's residual coding is parameterised by.
type Params struct {
	InitialHistory    int
	HistoryMultiplier int
	MaximumK          int
}

// log2Floor returns floor(log2(v)) for v > 0, and 0 for v <= 0 — the
// position of the highest set bit, which is how the spec's "log2" is
// defined throughout the parameter-selection formulas below.
func log2Floor(v int64) int {
	if v <= 0 {
		return 0
	}
	return bits.Len64(uint64(v)) - 1
}

func historyK(history int64, maxK int) uint {
	k := log2Floor((history>>9)+3) + 0
	if k > maxK {
		k = maxK
	}
	if k < 1 {
		k = 1
	}
	return uint(k)
}

func zeroRunK(history int64, maxK int) uint {
	k := 7 - log2Floor(history) + int((history+16)>>6)
	if k > maxK {
		k = maxK
	}
	if k < 1 {
		k = 1
	}
	return uint(k)
}

func updateHistory(history int64, u uint64, historyMultiplier int64) int64 {
	if u <= 0xFFFF {
		history += int64(u)*historyMultiplier - ((history * historyMultiplier) >> 9)
	} else {
		history = 0xFFFF
	}
	return history
}

// writeCodedValue writes v using parameter k and escape width escBits,
// escaping to escBits raw bits whenever the quotient would need more than
// eight unary one-bits.
func writeCodedValue(w *ibits.Writer, v uint64, k uint, escBits uint) error {
	denom := uint64(1)<<k - 1
	msb := v / denom
	if msb > 8 {
		if err := w.WriteUnsigned(0x1FF, 9); err != nil {
			return err
		}
		return w.WriteUnsigned(v, uint8(escBits))
	}
	for ; msb > 0; msb-- {
		if err := w.WriteUnsigned(1, 1); err != nil {
			return err
		}
	}
	if err := w.WriteUnsigned(0, 1); err != nil {
		return err
	}
	if k > 1 {
		lsb := v % denom
		if lsb > 0 {
			return w.WriteUnsigned(lsb+1, uint8(k))
		}
		return w.WriteUnsigned(0, uint8(k-1))
	}
	return nil
}

// readCodedValue reads back a value written by writeCodedValue.
func readCodedValue(r *ibits.Reader, k uint, escBits uint) (uint64, error) {
	ones := 0
	for ones < 9 {
		bit, err := r.ReadUnsigned(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		ones++
	}
	if ones == 9 {
		return r.ReadUnsigned(uint8(escBits))
	}
	msb := uint64(ones)
	denom := uint64(1)<<k - 1
	if k <= 1 {
		return msb * denom, nil
	}
	high, err := r.ReadUnsigned(uint8(k - 1))
	if err != nil {
		return 0, err
	}
	if high == 0 {
		return msb * denom, nil
	}
	low, err := r.ReadUnsigned(1)
	if err != nil {
		return 0, err
	}
	full := high<<1 | low
	return msb*denom + full - 1, nil
}

// EncodeBlock codes one frame's worth of residuals, maintaining the running
// history register and the zero-run shortcut across the whole block.
// sampleSize bounds both the overflow check and the escape width used for
// ordinary (non-run-length) values.
func EncodeBlock(w *ibits.Writer, residuals []int32, sampleSize int, p Params) error {
	history := int64(p.InitialHistory)
	var signModifier uint64
	n := len(residuals)
	for i := 0; i < n; {
		u := uint64(ibits.Fold(residuals[i]))
		if u >= uint64(1)<<uint(sampleSize) {
			return ErrOverflow
		}
		k := historyK(history, p.MaximumK)
		if err := writeCodedValue(w, u-signModifier, k, uint(sampleSize)); err != nil {
			return err
		}
		signModifier = 0
		history = updateHistory(history, u, int64(p.HistoryMultiplier))
		i++

		if history < 128 && i < n {
			kPrime := zeroRunK(history, p.MaximumK)
			run := 0
			for i+run < n && residuals[i+run] == 0 {
				run++
			}
			if err := writeCodedValue(w, uint64(run), kPrime, 16); err != nil {
				return err
			}
			history = 0
			i += run
			if run < 0xFFFF {
				signModifier = 1
			} else {
				signModifier = 0
			}
		}
	}
	return nil
}

// DecodeBlock reads n residuals coded by EncodeBlock.
func DecodeBlock(r *ibits.Reader, n int, sampleSize int, p Params) ([]int32, error) {
	history := int64(p.InitialHistory)
	var signModifier uint64
	res := make([]int32, n)
	for i := 0; i < n; {
		k := historyK(history, p.MaximumK)
		v, err := readCodedValue(r, k, uint(sampleSize))
		if err != nil {
			return nil, err
		}
		u := v + signModifier
		signModifier = 0
		res[i] = ibits.Unfold(uint32(u))
		history = updateHistory(history, u, int64(p.HistoryMultiplier))
		i++

		if history < 128 && i < n {
			kPrime := zeroRunK(history, p.MaximumK)
			run, err := readCodedValue(r, kPrime, 16)
			if err != nil {
				return nil, err
			}
			for j := uint64(0); j < run && i < n; j++ {
				res[i] = 0
				i++
			}
			history = 0
			if run < 0xFFFF {
				signModifier = 1
			}
		}
	}
	return res, nil
}
