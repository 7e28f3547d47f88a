package bits

import "bytes"

// Recorder is a Writer that buffers its output in memory instead of writing
// to an external sink. The frame encoder uses recorders to build several
// candidate encodings (LPC order 4 vs 8, every leftweight under
// consideration) and compare their bit lengths before committing the
// smallest one to the real output stream.
type Recorder struct {
	buf *bytes.Buffer
	w   *Writer
}

// NewRecorder returns a ready-to-use Recorder.
func NewRecorder() *Recorder {
	buf := new(bytes.Buffer)
	return &Recorder{buf: buf, w: NewWriter(buf)}
}

// Writer returns the underlying bit writer; all writes against it are
// captured in memory.
func (rec *Recorder) Writer() *Writer {
	return rec.w
}

// BitsWritten returns the number of bits written to the recorder so far.
func (rec *Recorder) BitsWritten() int64 {
	return rec.w.BitsWritten()
}

// Reset discards any buffered bits, returning the recorder to its initial
// empty state.
func (rec *Recorder) Reset() {
	rec.buf.Reset()
	rec.w = NewWriter(rec.buf)
}

// CopyInto writes exactly the bits recorded so far into w, bit for bit. The
// recorder need not be byte-aligned: frames are spliced into the frameset
// stream at arbitrary bit boundaries, with byte alignment only enforced once
// per frameset, after its terminator.
func (rec *Recorder) CopyInto(w *Writer) error {
	total := rec.w.BitsWritten()
	// Flush the writer's cache into the buffer; any padding this adds lives
	// past the first `total` bits and is never read back.
	if _, err := rec.w.ByteAlign(); err != nil {
		return err
	}
	r := NewReader(bytes.NewReader(rec.buf.Bytes()))
	for total > 0 {
		n := int64(32)
		if total < n {
			n = total
		}
		v, err := r.ReadUnsigned(uint8(n))
		if err != nil {
			return err
		}
		if err := w.WriteUnsigned(v, uint8(n)); err != nil {
			return err
		}
		total -= n
	}
	return nil
}

// Swap exchanges the contents of rec and other in O(1) by swapping their
// backing buffers and writers, without copying any bytes.
func (rec *Recorder) Swap(other *Recorder) {
	rec.buf, other.buf = other.buf, rec.buf
	rec.w, other.w = other.w, rec.w
}
