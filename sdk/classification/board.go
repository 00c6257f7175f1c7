package classification

import (
	"math/bits"

	"github.com/lox/holdem/poker"
)

// Dryness grades how many draws a board supports.
type Dryness int

const (
	Dry Dryness = iota
	SemiDry
	SemiWet
	Wet
)

func (d Dryness) String() string {
	switch d {
	case Dry:
		return "dry"
	case SemiDry:
		return "semi-dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	default:
		return "unknown"
	}
}

// BoardTexture summarises the community cards.
type BoardTexture struct {
	Monotone      bool // three or more cards of one suit
	TwoTone       bool // largest suit group is exactly two
	Paired        bool
	RankSpread    int // highest minus lowest distinct value, ace low on wheel boards
	Connectedness int // longest run of consecutive values
	Dryness       Dryness
}

// AnalyzeBoard describes the texture of a flop, turn or river board.
// Boards with fewer than three cards are Dry with zero counts.
func AnalyzeBoard(board []poker.Card) BoardTexture {
	cards := poker.NewHand(board...)
	if cards.CountCards() < 3 {
		return BoardTexture{Dryness: Dry}
	}

	maxSuit := 0
	for suit := range uint8(4) {
		maxSuit = max(maxSuit, bits.OnesCount16(cards.GetSuitMask(suit)))
	}

	mask := valueMask(cards)
	texture := BoardTexture{
		Monotone:      maxSuit >= 3,
		TwoTone:       maxSuit == 2,
		Paired:        bits.OnesCount16(cards.GetRankMask()) < cards.CountCards(),
		RankSpread:    rankSpread(mask),
		Connectedness: longestRun(mask),
	}
	texture.Dryness = dryness(texture)
	return texture
}

// rankSpread measures with the ace high, or low when every other value is
// five or below.
func rankSpread(mask uint16) int {
	if low := mask &^ (1 << 14); mask&(1<<14) != 0 && bits.Len16(low)-1 <= 5 {
		return bits.Len16(low) - 1 - bits.TrailingZeros16(low)
	}
	high := mask &^ (1 << 1)
	return bits.Len16(high) - 1 - bits.TrailingZeros16(high)
}

func dryness(t BoardTexture) Dryness {
	score := 0
	if t.Monotone {
		score += 3
	}
	if t.TwoTone {
		score++
	}
	if t.Paired {
		score++
	}
	switch {
	case t.Connectedness >= 3:
		score += 3
	case t.Connectedness == 2:
		score++
	}
	switch {
	case t.RankSpread <= 4:
		score += 2
	case t.RankSpread <= 6:
		score++
	}

	switch {
	case score >= 6:
		return Wet
	case score >= 4:
		return SemiWet
	case score >= 2:
		return SemiDry
	default:
		return Dry
	}
}
