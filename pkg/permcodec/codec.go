// Package permcodec implements the bijection between bit strings and
// permutations of a reference index sequence. A message is mapped onto a
// facet order by repeated binary partition of a shrinking candidate pool;
// decoding observes an order and walks the partitions backwards.
package permcodec

import (
	"fmt"
	"strings"
)

// CapacityError reports a message longer than the permutation can carry.
type CapacityError struct {
	Bits     int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("permcodec: message of %d bits exceeds capacity of %d bits", e.Bits, e.Capacity)
}

// DesyncError reports an observed order that is not a permutation of the
// reference's element set. Decoding fails fast instead of emitting
// garbage bits.
type DesyncError struct {
	Reason string
}

func (e *DesyncError) Error() string {
	return "permcodec: order out of sync with reference: " + e.Reason
}

// Encode maps a bit string onto a permutation of ref. Conceptually each
// bit halves a window over the pool of not-yet-emitted elements: '1'
// keeps the upper half, '0' the lower. When the window narrows to one
// element it is emitted and removed by swapping with the pool's last
// element. The message is padded with floor(log2(n)) zero bits so that
// short messages still collapse whole windows; any elements left over
// once all bits are spent are appended as deterministic filler.
//
// Only the first Capacity(len(ref)) bits round-trip; longer messages are
// refused with a CapacityError.
func Encode(ref []int, bits string) ([]int, error) {
	n := len(ref)
	if err := checkBits(bits); err != nil {
		return nil, err
	}
	if max := Capacity(n); len(bits) > max {
		return nil, &CapacityError{Bits: len(bits), Capacity: max}
	}
	if n == 0 {
		return []int{}, nil
	}

	pool := append([]int(nil), ref...)
	ord := make([]int, 0, n)
	id, q := 0, n

	total := len(bits) + padBits(n)
	for k := 0; k < total; k++ {
		if len(pool) == 1 {
			break
		}
		bit := byte('0')
		if k < len(bits) {
			bit = bits[k]
		}
		if bit == '1' {
			id += (q + 1) / 2 // upper half: skip ceil(q/2)
			q = q / 2
		} else {
			q -= q / 2 // lower half: ceil(q/2) candidates remain
		}
		if q == 1 {
			ord = append(ord, pool[id])
			pool[id] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
			id = 0
			q = len(pool)
		}
	}

	// Bits exhausted: the pool's first element goes out as-is, the rest
	// in reverse. The filler keeps ord a total permutation; its bit
	// content is not meaningful.
	if len(pool) > 0 {
		ord = append(ord, pool[0])
		for i := len(pool) - 1; i >= 1; i-- {
			ord = append(ord, pool[i])
		}
	}

	return ord, nil
}

// Decode recovers the bit string carried by ord relative to ref. For each
// observed element its position inside the shrinking pool is re-expressed
// as a sequence of half-window choices, mirroring Encode's removal policy
// exactly. The result includes Encode's padding and filler bits; callers
// truncate to the expected message length.
//
// A nil ord decodes the identity sequence 0..n-1, which is how a receiver
// extracts from a stego file: its facets are already in embedded order.
func Decode(ref, ord []int) (string, error) {
	n := len(ref)
	if ord == nil {
		ord = make([]int, n)
		for i := range ord {
			ord[i] = i
		}
	}
	if len(ord) != n {
		return "", &DesyncError{Reason: fmt.Sprintf("order has %d elements, reference has %d", len(ord), n)}
	}

	pool := append([]int(nil), ref...)
	var bits strings.Builder

	for _, e := range ord {
		id := -1
		for i, v := range pool {
			if v == e {
				id = i
				break
			}
		}
		if id < 0 {
			return "", &DesyncError{Reason: fmt.Sprintf("element %d is duplicated or not in the reference", e)}
		}

		q := len(pool)
		pool[id] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		for q > 1 {
			half := (q + 1) / 2
			if id >= half {
				bits.WriteByte('1')
				id -= half
				q = q / 2
			} else {
				bits.WriteByte('0')
				q = half
			}
		}
	}

	return bits.String(), nil
}

func checkBits(bits string) error {
	for i := 0; i < len(bits); i++ {
		if c := bits[i]; c != '0' && c != '1' {
			return fmt.Errorf("permcodec: message byte %d is %q, want '0' or '1'", i, c)
		}
	}
	return nil
}
