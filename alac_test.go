package alac

import (
	"bytes"
	"io"
	"math"
	"testing"

	ibits "github.com/mewkiz/alac/internal/bits"
)

func synth(n int, phase float64) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = int32(5000 * math.Sin(float64(i)*0.07+phase))
	}
	return s
}

func encodeDecode(t *testing.T, data [][]int32, bitsPerSample int, opts Options) [][]int32 {
	t.Helper()
	// NewEncoder takes the sample depth from its own argument; the decoder
	// params below are derived from opts, so opts must carry the same depth.
	opts.BitsPerSample = bitsPerSample
	sink := NewBufferSink()
	enc, err := NewEncoder(sink, len(data), bitsPerSample, opts)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	sizes, err := enc.EncodeAll(NewSliceSource(data, bitsPerSample))
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	total := 0
	for _, sz := range sizes {
		total += sz.PCMFrames
	}
	if want := len(data[0]); total != want {
		t.Fatalf("sizes report %d total frames, want %d", total, want)
	}

	br := ibits.NewReader(bytes.NewReader(sink.Bytes()))
	params := ParamsFromOptions(len(data), opts)
	dec, err := NewDecoder(br, params)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	got := make([][]int32, len(data))
	for c := range got {
		got[c] = make([]int32, 0, len(data[0]))
	}
	for {
		group, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		for c := range group {
			got[c] = append(got[c], group[c]...)
		}
	}
	return got
}

func assertEqual(t *testing.T, want, got [][]int32) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("channel count: want %d, got %d", len(want), len(got))
	}
	for c := range want {
		if len(want[c]) != len(got[c]) {
			t.Fatalf("channel %d: want %d samples, got %d", c, len(want[c]), len(got[c]))
		}
		for i, v := range want[c] {
			if got[c][i] != v {
				t.Fatalf("channel %d sample %d: want %d, got %d", c, i, v, got[c][i])
			}
		}
	}
}

// S1: 16-bit mono, block_size 4096, all-zero input.
func TestScenarioS1AllZeroMono(t *testing.T) {
	data := [][]int32{make([]int32, 4096)}
	got := encodeDecode(t, data, 16, DefaultOptions())
	assertEqual(t, data, got)
}

// S2: 16-bit stereo, identical channels, leftweight collapses to 0.
func TestScenarioS2IdenticalStereoChannels(t *testing.T) {
	ch := make([]int32, 4096)
	for i := range ch {
		ch[i] = int32(i % 256)
	}
	data := [][]int32{ch, append([]int32(nil), ch...)}
	got := encodeDecode(t, data, 16, DefaultOptions())
	assertEqual(t, data, got)
}

// S3: 24-bit stereo random signal, exercising the LSB split path.
func TestScenarioS3TwentyFourBitStereo(t *testing.T) {
	n := 4096
	data := [][]int32{make([]int32, n), make([]int32, n)}
	for i := 0; i < n; i++ {
		data[0][i] = int32((i*2654435761)%(1<<23) - 1<<22)
		data[1][i] = int32((i*40503)%(1<<23) - 1<<22)
	}
	got := encodeDecode(t, data, 24, DefaultOptions())
	assertEqual(t, data, got)
}

// S4: 16-bit mono, a final block shorter than block_size forces the
// uncompressed, has_sample_count path.
func TestScenarioS4ShortFinalBlock(t *testing.T) {
	data := [][]int32{{1, -2, 3, 4, -5}}
	got := encodeDecode(t, data, 16, DefaultOptions())
	assertEqual(t, data, got)
}

// S5: an input engineered to overflow the compressed residual coder must
// still round-trip exactly, by falling back to an uncompressed frame.
func TestScenarioS5ResidualOverflowFallsBackToUncompressed(t *testing.T) {
	n := 4096
	left := make([]int32, n)
	right := make([]int32, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			left[i] = math.MaxInt16 - 1
			right[i] = math.MinInt16 + 1
		} else {
			left[i] = math.MinInt16 + 1
			right[i] = math.MaxInt16 - 1
		}
	}
	data := [][]int32{left, right}
	// Leftweights 0..4 keep the mid channel between the two inputs, so no
	// residual can overflow. Widening the search to 7 makes the first mid
	// sample s1 + (7*(s0-s1))>>2 = 81915, which does not fit the 17-bit stereo
	// sample size, so the compressed attempt overflows.
	opts := DefaultOptions()
	opts.MaxLeftWeight = 7
	got := encodeDecode(t, data, 16, opts)
	assertEqual(t, data, got)
}

// S6: a six-channel frameset exercises the fixed channel-group layout.
func TestScenarioS6SixChannelLayout(t *testing.T) {
	data := make([][]int32, 6)
	for c := range data {
		data[c] = synth(4096, float64(c))
	}
	got := encodeDecode(t, data, 16, DefaultOptions())
	assertEqual(t, data, got)
}

// Round-trip law: decode(encode(x)) == x for arbitrary block counts,
// including a multi-block stream with a short trailing block.
func TestEncodeDecodeRoundTripMultiBlock(t *testing.T) {
	n := 4096*2 + 137
	data := [][]int32{synth(n, 0), synth(n, 1.1)}
	got := encodeDecode(t, data, 16, DefaultOptions())
	assertEqual(t, data, got)
}

func TestNewEncoderRejectsBadOptions(t *testing.T) {
	sink := NewBufferSink()
	if _, err := NewEncoder(sink, 1, 20, DefaultOptions()); err == nil {
		t.Fatal("want error for unsupported bit depth")
	}
}

func TestNewDecoderRejectsBadParams(t *testing.T) {
	br := ibits.NewReader(bytes.NewReader(nil))
	if _, err := NewDecoder(br, Params{Channels: 1, BlockSize: 0, BitsPerSample: 16}); err == nil {
		t.Fatal("want error for zero block size")
	}
}
