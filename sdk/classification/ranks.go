package classification

import (
	"math/bits"

	"github.com/lox/holdem/poker"
)

// valueMask returns a mask with bit v set for every face value v (2-14)
// present in h. An ace also sets bit 1 so wheel runs are contiguous.
func valueMask(h poker.Hand) uint16 {
	mask := h.GetRankMask() << 2
	if mask&(1<<14) != 0 {
		mask |= 1 << 1
	}
	return mask
}

// longestRun returns the longest run of consecutive set bits in mask.
func longestRun(mask uint16) int {
	best := 0
	for mask != 0 {
		mask &= mask << 1
		best++
	}
	return best
}

// windowCount counts values present in the five-value window starting at low.
func windowCount(mask uint16, low int) int {
	return bits.OnesCount16(mask & (0x1F << low))
}
