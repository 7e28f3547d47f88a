package predictor

import (
	"math"
	"testing"
)

func synthSamples(n int) []int32 {
	samples := make([]int32, n)
	for i := range samples {
		samples[i] = int32(1000*math.Sin(float64(i)*0.05) + 0.3*float64(i))
	}
	return samples
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	samples := synthSamples(512)
	for _, order := range []int{1, 4, 8} {
		coeffsEnc := make([]int32, order)
		for j := range coeffsEnc {
			coeffsEnc[j] = int32(100 - 10*j)
		}
		coeffsDec := make([]int32, order)
		copy(coeffsDec, coeffsEnc)

		res := EncodeResiduals(coeffsEnc, samples, 16)
		got := DecodeSamples(coeffsDec, res, 16)

		for i := range samples {
			if got[i] != samples[i] {
				t.Fatalf("order %d: sample %d mismatch: want %d, got %d", order, i, samples[i], got[i])
			}
		}
		for j := range coeffsEnc {
			if coeffsEnc[j] != coeffsDec[j] {
				t.Errorf("order %d: coefficient %d diverged: encoder %d, decoder %d", order, j, coeffsEnc[j], coeffsDec[j])
			}
		}
	}
}

func TestEncodeDecodeZeroCoefficients(t *testing.T) {
	samples := synthSamples(64)
	coeffs := make([]int32, 4)
	res := EncodeResiduals(coeffs, samples, 16)
	decoded := DecodeSamples(make([]int32, 4), res, 16)
	for i := range samples {
		if decoded[i] != samples[i] {
			t.Fatalf("sample %d mismatch: want %d, got %d", i, samples[i], decoded[i])
		}
	}
}

func TestFirstResidualIsVerbatimSample(t *testing.T) {
	samples := []int32{42, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	coeffs := make([]int32, 4)
	res := EncodeResiduals(coeffs, samples, 16)
	if res[0] != 42 {
		t.Errorf("want verbatim first residual 42, got %d", res[0])
	}
}

func TestAllZeroInputProducesAllZeroResiduals(t *testing.T) {
	samples := make([]int32, 32)
	coeffs := make([]int32, 4)
	res := EncodeResiduals(coeffs, samples, 16)
	for i, r := range res {
		if r != 0 {
			t.Fatalf("residual %d: want 0, got %d", i, r)
		}
	}
}

func TestSignHelper(t *testing.T) {
	golden := []struct {
		v    int64
		want int64
	}{{5, 1}, {-5, -1}, {0, 0}}
	for _, g := range golden {
		if got := sign(g.v); got != g.want {
			t.Errorf("sign(%d): want %d, got %d", g.v, g.want, got)
		}
	}
}
