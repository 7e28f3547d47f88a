package bits

import "testing"

func TestFold(t *testing.T) {
	golden := []struct {
		n    int32
		want uint32
	}{
		{n: 0, want: 0},
		{n: -1, want: 1},
		{n: 1, want: 2},
		{n: -2, want: 3},
		{n: 2, want: 4},
		{n: -3, want: 5},
		{n: 3, want: 6},
	}
	for _, g := range golden {
		got := Fold(g.n)
		if g.want != got {
			t.Errorf("result mismatch of Fold(n=%d); expected %d, got %d", g.n, g.want, got)
		}
	}
}

func TestUnfold(t *testing.T) {
	golden := []struct {
		u    uint32
		want int32
	}{
		{u: 0, want: 0},
		{u: 1, want: -1},
		{u: 2, want: 1},
		{u: 3, want: -2},
		{u: 4, want: 2},
		{u: 5, want: -3},
		{u: 6, want: 3},
	}
	for _, g := range golden {
		got := Unfold(g.u)
		if g.want != got {
			t.Errorf("result mismatch of Unfold(u=%d); expected %d, got %d", g.u, g.want, got)
		}
	}
}

func TestFoldUnfoldRoundTrip(t *testing.T) {
	for n := int32(-5000); n <= 5000; n++ {
		if got := Unfold(Fold(n)); got != n {
			t.Fatalf("round-trip mismatch for n=%d: got %d", n, got)
		}
	}
}
