// Package classification derives draw and board texture information from
// hole and community cards for bot decision logic.
package classification

import (
	"math/bits"

	"github.com/lox/holdem/poker"
)

// StraightDrawKind distinguishes two-ended from one-card straight draws.
type StraightDrawKind int

const (
	OpenEnded StraightDrawKind = iota
	Gutshot
)

func (k StraightDrawKind) String() string {
	switch k {
	case OpenEnded:
		return "open-ended"
	case Gutshot:
		return "gutshot"
	default:
		return "unknown"
	}
}

// Outs for each draw type, counted against a full deck.
const (
	FlushDrawOuts = 9
	OpenEndedOuts = 8
	GutshotOuts   = 4
)

// FlushDraw is four cards to a flush.
type FlushDraw struct {
	Suit uint8
	Outs int
}

// StraightDraw is four cards to a straight.
type StraightDraw struct {
	Kind StraightDrawKind
	Outs int
}

// DrawInfo contains the draws present in a hand. Nil means no such draw.
type DrawInfo struct {
	FlushDraw    *FlushDraw
	StraightDraw *StraightDraw
}

// HasDraw reports whether any draw was found.
func (d DrawInfo) HasDraw() bool {
	return d.FlushDraw != nil || d.StraightDraw != nil
}

// IsComboDraw reports a flush draw combined with a straight draw.
func (d DrawInfo) IsComboDraw() bool {
	return d.FlushDraw != nil && d.StraightDraw != nil
}

func (d DrawInfo) String() string {
	switch {
	case d.IsComboDraw():
		return "flush draw + " + d.StraightDraw.Kind.String()
	case d.FlushDraw != nil:
		return "flush draw"
	case d.StraightDraw != nil:
		return d.StraightDraw.Kind.String()
	default:
		return "no draw"
	}
}

// DetectDraws reports flush and straight draws made from the hole and
// community cards together. A flush or straight that is already complete
// is not reported as a draw.
func DetectDraws(hole, board []poker.Card) DrawInfo {
	cards := poker.NewHand(hole...) | poker.NewHand(board...)

	var info DrawInfo
	if suit, ok := flushDraw(cards); ok {
		info.FlushDraw = &FlushDraw{Suit: suit, Outs: FlushDrawOuts}
	}
	if kind, ok := straightDraw(valueMask(cards)); ok {
		outs := GutshotOuts
		if kind == OpenEnded {
			outs = OpenEndedOuts
		}
		info.StraightDraw = &StraightDraw{Kind: kind, Outs: outs}
	}
	return info
}

func flushDraw(cards poker.Hand) (uint8, bool) {
	var drawSuit uint8
	found := false
	for suit := range uint8(4) {
		switch bits.OnesCount16(cards.GetSuitMask(suit)) {
		case 4:
			drawSuit, found = suit, true
		case 5, 6, 7:
			return 0, false
		}
	}
	return drawSuit, found
}

func straightDraw(mask uint16) (StraightDrawKind, bool) {
	if longestRun(mask) >= 5 {
		return 0, false
	}
	// Four in a row with a free value on both sides: 1 < low and high < 14.
	for low := 2; low <= 10; low++ {
		if mask>>low&0xF == 0xF {
			return OpenEnded, true
		}
	}
	for low := 1; low <= 10; low++ {
		if windowCount(mask, low) == 4 {
			return Gutshot, true
		}
	}
	return 0, false
}
