package permcodec

import (
	"math"
	"math/bits"
)

// Capacity returns floor(log2(n!)), the number of message bits a
// permutation of n distinguishable elements can carry. Up to n = 20 the
// factorial fits in a uint64 and the floor is taken exactly from its bit
// length; beyond that the log-gamma function avoids overflow and the
// result is nowhere near an integer boundary.
func Capacity(n int) int {
	if n < 2 {
		return 0
	}
	if n <= 20 {
		f := uint64(1)
		for i := uint64(2); i <= uint64(n); i++ {
			f *= i
		}
		return bits.Len64(f) - 1
	}
	lg, _ := math.Lgamma(float64(n) + 1)
	return int(lg / math.Ln2)
}

// GuaranteedCapacity returns the number of message bits that are fully
// absorbed by Encode regardless of content, sum(floor(log2(p))) for pool
// sizes p = 2..n. A window over a pool of p elements collapses after at
// least floor(log2(p)) bits, so messages up to this length always survive
// the round trip. Between this and Capacity(n) the round trip depends on
// the bit pattern: runs of '1' collapse windows at their fastest and can
// exhaust the pool before the message is spent.
func GuaranteedCapacity(n int) int {
	total := 0
	for p := 2; p <= n; p++ {
		total += bits.Len(uint(p)) - 1
	}
	return total
}

// padBits returns floor(log2(n)), the number of zero bits appended to a
// message before encoding so the partition window always collapses.
func padBits(n int) int {
	if n < 2 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
