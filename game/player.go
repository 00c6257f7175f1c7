package game

import (
	"slices"

	"github.com/lox/holdem/poker"
)

// Seat describes a player joining a hand.
type Seat struct {
	ID    string
	Name  string
	Chips int
}

// Player is one seat at the table during a hand.
type Player struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Seat        int          `json:"seat"`
	Chips       int          `json:"chips"`
	Bet         int          `json:"bet"`       // Chips put in on the current street
	TotalBet    int          `json:"total_bet"` // Chips put in during the whole hand
	Folded      bool         `json:"folded"`
	AllIn       bool         `json:"all_in"`
	HoleCards   []poker.Card `json:"hole_cards,omitempty"`
	Acted       bool         `json:"acted"`                  // Acted since the last bet or raise
	RaiseClosed bool         `json:"raise_closed,omitempty"` // Acted, then faced less than a full raise: call or fold only
	SittingOut  bool         `json:"sitting_out"`            // No chips at hand start, dealt out
}

// InHand reports whether the player can still win a pot.
func (p Player) InHand() bool {
	return !p.SittingOut && !p.Folded
}

// CanAct reports whether the player still makes decisions this hand.
func (p Player) CanAct() bool {
	return p.InHand() && !p.AllIn
}

func (p Player) clone() Player {
	p.HoleCards = slices.Clone(p.HoleCards)
	return p
}

// contribute moves up to amount chips from the stack into the bet and
// returns what was actually put in.
func (p *Player) contribute(amount int) int {
	amount = min(amount, p.Chips)
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
	return amount
}
