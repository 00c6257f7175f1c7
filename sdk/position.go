package sdk

import "fmt"

// Player positions
const (
	PositionButton     = "Button"
	PositionSmallBlind = "Small Blind"
	PositionBigBlind   = "Big Blind"
	PositionUTG        = "UTG"
	PositionHijack     = "Hijack"
	PositionCutoff     = "Cutoff"
)

// PositionName names the seat that sits offset places after the button
// among dealt players. Heads-up the button also posts the small blind and
// is reported as the button.
func PositionName(offset, dealt int) string {
	if dealt < 2 || offset < 0 || offset >= dealt {
		return ""
	}
	switch {
	case offset == 0:
		return PositionButton
	case dealt == 2:
		return PositionBigBlind
	case offset == 1:
		return PositionSmallBlind
	case offset == 2:
		return PositionBigBlind
	}

	// Seats between the big blind and the button.
	slot, slots := offset-3, dealt-3
	switch {
	case slots >= 2 && slot == slots-1:
		return PositionCutoff
	case slots >= 3 && slot == slots-2:
		return PositionHijack
	case slot == 0:
		return PositionUTG
	default:
		return fmt.Sprintf("%s+%d", PositionUTG, slot)
	}
}
