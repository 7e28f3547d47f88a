package rice

import (
	"bytes"
	"math"
	"testing"

	ibits "github.com/mewkiz/alac/internal/bits"
)

func defaultParams() Params {
	return Params{InitialHistory: 10, HistoryMultiplier: 40, MaximumK: 14}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	residuals := make([]int32, 512)
	for i := range residuals {
		residuals[i] = int32(200*math.Sin(float64(i)*0.13)) % 1000
	}

	buf := new(bytes.Buffer)
	w := ibits.NewWriter(buf)
	if err := EncodeBlock(w, residuals, 16, defaultParams()); err != nil {
		t.Fatalf("EncodeBlock: %v", err)
	}
	if _, err := w.ByteAlign(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r := ibits.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := DecodeBlock(r, len(residuals), 16, defaultParams())
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	for i := range residuals {
		if got[i] != residuals[i] {
			t.Fatalf("residual %d mismatch: want %d, got %d", i, residuals[i], got[i])
		}
	}
}

func TestEncodeDecodeAllZeroTriggersZeroRun(t *testing.T) {
	residuals := make([]int32, 256)

	buf := new(bytes.Buffer)
	w := ibits.NewWriter(buf)
	if err := EncodeBlock(w, residuals, 16, defaultParams()); err != nil {
		t.Fatalf("EncodeBlock: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	// An all-zero block should compress to far fewer than 256*17 bits.
	if buf.Len()*8 >= len(residuals)*17 {
		t.Errorf("expected the zero run to shrink the block substantially, got %d bits", buf.Len()*8)
	}

	r := ibits.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := DecodeBlock(r, len(residuals), 16, defaultParams())
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	for i, v := range got {
		if v != 0 {
			t.Fatalf("residual %d: want 0, got %d", i, v)
		}
	}
}

func TestEncodeOverflowReturnsErrOverflow(t *testing.T) {
	residuals := []int32{1 << 20, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	buf := new(bytes.Buffer)
	w := ibits.NewWriter(buf)
	err := EncodeBlock(w, residuals, 16, defaultParams())
	if err != ErrOverflow {
		t.Fatalf("want ErrOverflow, got %v", err)
	}
}

func TestWriteReadCodedValueEscape(t *testing.T) {
	buf := new(bytes.Buffer)
	w := ibits.NewWriter(buf)
	// msb = v/denom must exceed 8 to force the escape path.
	v := uint64(1_000_000)
	if err := writeCodedValue(w, v, 4, 24); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	r := ibits.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := readCodedValue(r, 4, 24)
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("want %d, got %d", v, got)
	}
}

func TestWriteReadCodedValueSmall(t *testing.T) {
	for k := uint(1); k <= 10; k++ {
		denom := uint64(1)<<k - 1
		for v := uint64(0); v < denom*3; v++ {
			buf := new(bytes.Buffer)
			w := ibits.NewWriter(buf)
			if err := writeCodedValue(w, v, k, 16); err != nil {
				t.Fatalf("k=%d v=%d: write: %v", k, v, err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}
			r := ibits.NewReader(bytes.NewReader(buf.Bytes()))
			got, err := readCodedValue(r, k, 16)
			if err != nil {
				t.Fatalf("k=%d v=%d: read: %v", k, v, err)
			}
			if got != v {
				t.Fatalf("k=%d v=%d: got %d", k, v, got)
			}
		}
	}
}

func TestLog2Floor(t *testing.T) {
	golden := []struct {
		v    int64
		want int
	}{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {127, 6}, {128, 7}}
	for _, g := range golden {
		if got := log2Floor(g.v); got != g.want {
			t.Errorf("log2Floor(%d): want %d, got %d", g.v, g.want, got)
		}
	}
}
