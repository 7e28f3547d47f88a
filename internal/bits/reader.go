package bits

import (
	"io"

	"github.com/icza/bitio"
)

// Reader is a big-endian, MSB-first bit reader. It wraps bitio.Reader and
// tracks the absolute bit position consumed so far, reported by BitsRead.
type Reader struct {
	br    *bitio.Reader
	src   io.Reader
	seek  io.Seeker
	nbits int64
}

// NewReader returns a Reader that reads from r. If r also implements
// io.Seeker, Seek becomes available.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{br: bitio.NewReader(r), src: r}
	if s, ok := r.(io.Seeker); ok {
		rd.seek = s
	}
	return rd
}

// ReadUnsigned reads and returns the next n bits as an unsigned integer,
// n in [0, 64].
func (r *Reader) ReadUnsigned(n uint8) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	v, err := r.br.ReadBits(n)
	if err != nil {
		return 0, err
	}
	r.nbits += int64(n)
	return v, nil
}

// ReadSigned reads the next n bits and sign-extends them from bit n-1.
func (r *Reader) ReadSigned(n uint8) (int64, error) {
	v, err := r.ReadUnsigned(n)
	if err != nil {
		return 0, err
	}
	return IntN(v, uint(n)), nil
}

// ByteAlign discards any unread bits in the current byte and returns how
// many were skipped.
func (r *Reader) ByteAlign() uint8 {
	skipped := r.br.Align()
	r.nbits += int64(skipped)
	return skipped
}

// BitsRead returns the total number of bits consumed so far.
func (r *Reader) BitsRead() int64 {
	return r.nbits
}

// Seek repositions the underlying byte source, if it supports seeking, and
// discards any cached, not-yet-consumed bits. It is used by container-level
// code to position the reader at the start of the compressed payload; the
// core decode loop itself never seeks mid-stream.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.seek == nil {
		return 0, io.ErrClosedPipe
	}
	pos, err := r.seek.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	r.br = bitio.NewReader(r.src)
	return pos, nil
}
