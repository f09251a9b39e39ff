package layout

import (
	"container/heap"
	"fmt"
)

// Distribute splits extra cells across slots in proportion to weights.
//
// Every slot first receives the whole part of its ideal share
// extra*weight/total. The cells left over by rounding down are then handed
// out one at a time to the slot with the largest remaining fractional claim,
// lowest index first on ties. The result always sums to extra and no slot
// is more than one cell away from its ideal share.
//
// When extra is not positive, or every weight is zero, nothing is
// distributed and all slots receive 0. Negative weights count as zero.
func Distribute(weights []int, extra int) []int {
	out := make([]int, len(weights))
	if extra <= 0 || len(weights) == 0 {
		return out
	}

	var total int64
	for _, w := range weights {
		total += int64(Clamp(w))
	}
	if total == 0 {
		return out
	}

	remaining := int64(extra)
	claims := make(claimHeap, 0, len(weights))
	var given int64
	for i, w := range weights {
		share := remaining * int64(Clamp(w))
		out[i] = int(share / total)
		given += share / total
		if rem := share % total; rem > 0 {
			claims = append(claims, claim{index: i, residual: rem})
		}
	}

	leftover := remaining - given
	if leftover < 0 || leftover > int64(len(claims)) {
		panic(fmt.Sprintf("layout: %d leftover cells for %d fractional claims", leftover, len(claims)))
	}

	heap.Init(&claims)
	for ; leftover > 0; leftover-- {
		c := heap.Pop(&claims).(claim)
		out[c.index]++
	}

	return out
}

// claim is a slot's fractional share, scaled by the total weight.
type claim struct {
	index    int
	residual int64
}

// claimHeap is a max-heap on residual, ordered by index on ties.
type claimHeap []claim

func (h claimHeap) Len() int { return len(h) }

func (h claimHeap) Less(i, j int) bool {
	if h[i].residual != h[j].residual {
		return h[i].residual > h[j].residual
	}
	return h[i].index < h[j].index
}

func (h claimHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *claimHeap) Push(x any) { *h = append(*h, x.(claim)) }

func (h *claimHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}
