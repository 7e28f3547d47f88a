package bits

import "testing"

func TestIntN(t *testing.T) {
	golden := []struct {
		x    uint64
		n    uint
		want int64
	}{
		{x: 0b011, n: 3, want: 3},
		{x: 0b010, n: 3, want: 2},
		{x: 0b001, n: 3, want: 1},
		{x: 0b000, n: 3, want: 0},
		{x: 0b111, n: 3, want: -1},
		{x: 0b110, n: 3, want: -2},
		{x: 0b101, n: 3, want: -3},
		{x: 0b100, n: 3, want: -4},
	}
	for _, g := range golden {
		got := IntN(g.x, g.n)
		if g.want != got {
			t.Errorf("result mismatch of IntN(x=0b%03b, n=%d); expected %d, got %d", g.x, g.n, g.want, got)
			continue
		}
	}
}

func TestTruncate(t *testing.T) {
	golden := []struct {
		v    int64
		n    uint
		want int64
	}{
		{v: 0, n: 16, want: 0},
		{v: 32767, n: 16, want: 32767},
		{v: 32768, n: 16, want: -32768},
		{v: -32769, n: 16, want: 32767},
		{v: 1 << 40, n: 16, want: 0},
		{v: -1, n: 8, want: -1},
	}
	for _, g := range golden {
		got := Truncate(g.v, g.n)
		if g.want != got {
			t.Errorf("result mismatch of Truncate(v=%d, n=%d); expected %d, got %d", g.v, g.n, g.want, got)
			continue
		}
	}
}
