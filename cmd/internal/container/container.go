// Package container implements the minimal file format the alac2wav and
// wav2alac commands use to round-trip a raw ALAC bitstream to and from disk.
// It is explicitly not QuickTime/MP4; it exists only so the CLI tools have
// something to read and write end to end.
package container

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// Magic is the 4-byte signature every container file begins with.
const Magic = "ALC1"

// ErrBadMagic is returned by ReadHeader when the file does not begin with
// Magic.
var ErrBadMagic = errors.New("container: bad magic, not an ALC1 file")

// Header carries the stream layout a Decoder needs to reconstruct PCM: the
// fields a real muxer would otherwise store in an ALACSpecificConfig atom.
type Header struct {
	Channels      uint8
	BitsPerSample uint8
	SampleRate    uint32
	BlockSize     uint32
}

const headerSize = 4 + 1 + 1 + 4 + 4

// WriteHeader writes the magic and Header to w.
func WriteHeader(w io.Writer, h Header) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return err
	}
	buf := make([]byte, headerSize-4)
	buf[0] = h.Channels
	buf[1] = h.BitsPerSample
	binary.BigEndian.PutUint32(buf[2:6], h.SampleRate)
	binary.BigEndian.PutUint32(buf[6:10], h.BlockSize)
	_, err := w.Write(buf)
	return err
}

// ReadHeader reads and validates the magic, returning the Header that
// follows it.
func ReadHeader(r io.Reader) (Header, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return Header{}, err
	}
	if string(magic) != Magic {
		return Header{}, ErrBadMagic
	}
	buf := make([]byte, headerSize-4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, err
	}
	return Header{
		Channels:      buf[0],
		BitsPerSample: buf[1],
		SampleRate:    binary.BigEndian.Uint32(buf[2:6]),
		BlockSize:     binary.BigEndian.Uint32(buf[6:10]),
	}, nil
}

// FramesetEntry records one frameset's byte size and PCM frame count, the
// same pair a real MP4 muxer would store per sample-to-chunk entry.
type FramesetEntry struct {
	ByteSize  uint32
	PCMFrames uint32
}

// WriteFooter appends the frameset index and an 8-byte trailer giving the
// footer's own offset, so a reader can seek to end-8, read the trailer, and
// jump straight to the index without scanning the whole file.
func WriteFooter(w io.WriteSeeker, entries []FramesetEntry) error {
	footerOffset, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := binary.Write(w, binary.BigEndian, e); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.BigEndian, uint64(footerOffset))
}

// ReadFooter locates and reads the frameset index written by WriteFooter.
func ReadFooter(r io.ReadSeeker) ([]FramesetEntry, error) {
	if _, err := r.Seek(-8, io.SeekEnd); err != nil {
		return nil, err
	}
	var footerOffset uint64
	if err := binary.Read(r, binary.BigEndian, &footerOffset); err != nil {
		return nil, err
	}
	if _, err := r.Seek(int64(footerOffset), io.SeekStart); err != nil {
		return nil, err
	}
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, err
	}
	entries := make([]FramesetEntry, count)
	for i := range entries {
		if err := binary.Read(r, binary.BigEndian, &entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// FileSink adapts an *os.File to alac.OutputSink.
type FileSink struct {
	f *os.File
}

// NewFileSink wraps f as an OutputSink.
func NewFileSink(f *os.File) *FileSink {
	return &FileSink{f: f}
}

func (s *FileSink) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

// Pos reports the file's current write offset.
func (s *FileSink) Pos() (int64, error) {
	return s.f.Seek(0, io.SeekCurrent)
}

// Seek repositions the underlying file.
func (s *FileSink) Seek(offset int64, whence int) (int64, error) {
	return s.f.Seek(offset, whence)
}
