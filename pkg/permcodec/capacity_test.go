package permcodec

import "testing"

func TestCapacityKnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},  // log2(2) = 1
		{3, 2},  // log2(6) = 2.58
		{4, 4},  // log2(24) = 4.58
		{5, 6},  // log2(120) = 6.9
		{10, 21},
		{20, 61},
	}
	for _, tc := range cases {
		if got := Capacity(tc.n); got != tc.want {
			t.Errorf("Capacity(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestCapacityMonotonic(t *testing.T) {
	prev := Capacity(0)
	for n := 1; n <= 2000; n++ {
		c := Capacity(n)
		if c < prev {
			t.Fatalf("Capacity(%d) = %d is less than Capacity(%d) = %d", n, c, n-1, prev)
		}
		prev = c
	}
}

func TestCapacityContinuousAcrossExactCutover(t *testing.T) {
	// n = 21 switches from exact factorial bit length to log-gamma; the
	// two methods must agree around the boundary. log2(21!) = 65.47.
	if got := Capacity(21); got != 65 {
		t.Errorf("Capacity(21) = %d, want 65", got)
	}
	if got := Capacity(22); got != 69 { // log2(22!) = 69.93
		t.Errorf("Capacity(22) = %d, want 69", got)
	}
}

func TestGuaranteedCapacityBounds(t *testing.T) {
	if got := GuaranteedCapacity(4); got != 4 {
		t.Errorf("GuaranteedCapacity(4) = %d, want 4", got)
	}
	for n := 0; n <= 200; n++ {
		g, c := GuaranteedCapacity(n), Capacity(n)
		if g > c {
			t.Fatalf("GuaranteedCapacity(%d) = %d exceeds Capacity(%d) = %d", n, g, n, c)
		}
	}
}

func TestPadBits(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3}, {1024, 10},
	}
	for _, tc := range cases {
		if got := padBits(tc.n); got != tc.want {
			t.Errorf("padBits(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}
