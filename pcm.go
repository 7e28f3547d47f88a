package alac

import (
	"bytes"
	"io"
)

// PCMSource supplies per-channel sample blocks to an Encoder. Read
// fills buf, one slice per channel, with up to len(buf[0]) sample frames per
// call and returns the number of frames actually filled. A final short read
// followed by io.EOF is the normal way to signal the end of the source; a
// zero-length read with io.EOF is also accepted.
type PCMSource interface {
	Channels() int
	BitsPerSample() int
	Read(buf [][]int32) (n int, err error)
}

// OutputSink receives the encoded byte stream. Pos reports the number of
// bytes that have reached the sink so far; EncodeAll does not use it, and
// measures frameset sizes from the bits it writes. Seek is used only to
// rewrite framing metadata after the
// fact; a sink that never needs that may implement it as a no-op returning
// its current position.
type OutputSink interface {
	io.Writer
	Pos() (int64, error)
	Seek(offset int64, whence int) (int64, error)
}

// sliceSource adapts an in-memory channel-major sample buffer to PCMSource,
// used by tests and by callers that already hold decoded PCM in memory.
type sliceSource struct {
	channels      int
	bitsPerSample int
	data          [][]int32
	pos           int
}

// NewSliceSource returns a PCMSource that reads sequentially from data, a
// per-channel slice of sample frames.
func NewSliceSource(data [][]int32, bitsPerSample int) PCMSource {
	return &sliceSource{channels: len(data), bitsPerSample: bitsPerSample, data: data}
}

func (s *sliceSource) Channels() int      { return s.channels }
func (s *sliceSource) BitsPerSample() int { return s.bitsPerSample }

func (s *sliceSource) Read(buf [][]int32) (int, error) {
	if s.channels == 0 {
		return 0, io.EOF
	}
	total := len(s.data[0])
	remaining := total - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	n := len(buf[0])
	if n > remaining {
		n = remaining
	}
	for c := 0; c < s.channels; c++ {
		copy(buf[c][:n], s.data[c][s.pos:s.pos+n])
	}
	s.pos += n
	var err error
	if s.pos >= total {
		err = io.EOF
	}
	return n, err
}

// BufferSink is an in-memory OutputSink backed by a bytes.Buffer, used by
// tests and by callers happy to hold the whole encoded stream in memory.
type BufferSink struct {
	buf bytes.Buffer
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Pos returns the number of bytes written so far.
func (s *BufferSink) Pos() (int64, error) {
	return int64(s.buf.Len()), nil
}

// Seek is a no-op for BufferSink: writes are always appended, and this
// always reports the current length regardless of offset/whence.
func (s *BufferSink) Seek(offset int64, whence int) (int64, error) {
	return int64(s.buf.Len()), nil
}

// Bytes returns the encoded stream accumulated so far.
func (s *BufferSink) Bytes() []byte {
	return s.buf.Bytes()
}
