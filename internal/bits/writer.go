package bits

import (
	"io"

	"github.com/icza/bitio"
)

// Writer is a big-endian, MSB-first bit writer. It wraps bitio.Writer and
// additionally tracks the number of bits written so far, which the frame
// encoder needs to compare the size of competing encodings (LPC order 4 vs
// 8, and every candidate leftweight).
type Writer struct {
	bw    *bitio.Writer
	nbits int64
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteUnsigned writes the n lowest bits of v, n in [0, 64].
func (w *Writer) WriteUnsigned(v uint64, n uint8) error {
	if n == 0 {
		return nil
	}
	if err := w.bw.WriteBits(v, n); err != nil {
		return err
	}
	w.nbits += int64(n)
	return nil
}

// WriteSigned writes the two's complement representation of v using its low
// n bits.
func (w *Writer) WriteSigned(v int64, n uint8) error {
	return w.WriteUnsigned(uint64(v)&(1<<n-1), n)
}

// ByteAlign pads the stream with zero bits up to the next byte boundary and
// returns the number of padding bits written.
func (w *Writer) ByteAlign() (uint8, error) {
	skipped, err := w.bw.Align()
	if err != nil {
		return 0, err
	}
	w.nbits += int64(skipped)
	return skipped, nil
}

// BitsWritten returns the total number of bits written through this Writer,
// including bits still cached pending a byte-aligned flush.
func (w *Writer) BitsWritten() int64 {
	return w.nbits
}

// Close flushes any cached bits. It does not close the underlying io.Writer.
func (w *Writer) Close() error {
	return w.bw.Close()
}
