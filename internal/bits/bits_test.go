package bits

import (
	"bytes"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	values := []struct {
		v uint64
		n uint8
	}{
		{0x3, 3}, {0x1FF, 9}, {0, 1}, {1, 1}, {0xABCD, 16}, {5, 4},
	}
	for _, val := range values {
		if err := w.WriteUnsigned(val.v, val.n); err != nil {
			t.Fatalf("WriteUnsigned: %v", err)
		}
	}
	if _, err := w.ByteAlign(); err != nil {
		t.Fatalf("ByteAlign: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	for _, val := range values {
		got, err := r.ReadUnsigned(val.n)
		if err != nil {
			t.Fatalf("ReadUnsigned: %v", err)
		}
		if got != val.v {
			t.Errorf("value mismatch: want 0x%X, got 0x%X", val.v, got)
		}
	}
}

func TestRecorderCopyIntoUnaligned(t *testing.T) {
	rec := NewRecorder()
	w := rec.Writer()
	if err := w.WriteUnsigned(0b101, 3); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteUnsigned(0b11001, 5); err != nil {
		t.Fatal(err)
	}
	if rec.BitsWritten() != 8 {
		t.Fatalf("expected 8 bits written, got %d", rec.BitsWritten())
	}

	out := new(bytes.Buffer)
	dst := NewWriter(out)
	// Splice the recorder's 8 bits after an unaligned 3-bit prefix, the way
	// a frame's channel-count tag precedes the frame body.
	if err := dst.WriteUnsigned(0b010, 3); err != nil {
		t.Fatal(err)
	}
	if err := rec.CopyInto(dst); err != nil {
		t.Fatal(err)
	}
	if _, err := dst.ByteAlign(); err != nil {
		t.Fatal(err)
	}
	if err := dst.Close(); err != nil {
		t.Fatal(err)
	}

	r := NewReader(bytes.NewReader(out.Bytes()))
	prefix, err := r.ReadUnsigned(3)
	if err != nil {
		t.Fatal(err)
	}
	if prefix != 0b010 {
		t.Errorf("prefix mismatch: got %b", prefix)
	}
	a, err := r.ReadUnsigned(3)
	if err != nil {
		t.Fatal(err)
	}
	if a != 0b101 {
		t.Errorf("first field mismatch: got %b", a)
	}
	b, err := r.ReadUnsigned(5)
	if err != nil {
		t.Fatal(err)
	}
	if b != 0b11001 {
		t.Errorf("second field mismatch: got %b", b)
	}
}

func TestRecorderSwap(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	if err := a.Writer().WriteUnsigned(0xAA, 8); err != nil {
		t.Fatal(err)
	}
	if err := b.Writer().WriteUnsigned(0xBB, 8); err != nil {
		t.Fatal(err)
	}
	a.Swap(b)

	out := new(bytes.Buffer)
	dst := NewWriter(out)
	if err := a.CopyInto(dst); err != nil {
		t.Fatal(err)
	}
	if err := dst.Close(); err != nil {
		t.Fatal(err)
	}
	if out.Bytes()[0] != 0xBB {
		t.Errorf("expected swapped recorder a to hold 0xBB, got 0x%X", out.Bytes()[0])
	}
}
