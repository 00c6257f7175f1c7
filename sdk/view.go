// Package sdk gives bot logic a read-only view of a hand: its own cards,
// public table information and the derived hand strength, draws and board
// texture. Pot tiers and eligibility never leave the engine.
package sdk

import (
	"errors"
	"fmt"

	"github.com/lox/holdem/game"
	"github.com/lox/holdem/poker"
	"github.com/lox/holdem/sdk/classification"
)

// ErrUnknownSeat is returned when a view is requested for a seat that is not at the table.
var ErrUnknownSeat = errors.New("unknown seat")

// Opponent is the public information about another seat.
type Opponent struct {
	Name     string `json:"name"`
	Seat     int    `json:"seat"`
	Chips    int    `json:"chips"`
	Bet      int    `json:"bet"` // Amount bet in current betting round
	Position string `json:"position,omitempty"`
	Folded   bool   `json:"folded"`
	AllIn    bool   `json:"all_in"`
}

// BotView is everything a bot may know when deciding on an action.
type BotView struct {
	HandID     string       `json:"hand_id"`
	Seat       int          `json:"seat"`
	Phase      game.Phase   `json:"phase"`
	Position   string       `json:"position,omitempty"`
	HoleCards  []poker.Card `json:"hole_cards"`
	Board      []poker.Card `json:"board"`
	Chips      int          `json:"chips"`
	Bet        int          `json:"bet"`
	ToCall     int          `json:"to_call"`
	CurrentBet int          `json:"current_bet"`
	MinRaise   int          `json:"min_raise"`
	BigBlind   int          `json:"big_blind"`
	Pot        int          `json:"pot"` // Total of every pot, current street included

	ToAct   bool              `json:"to_act"`
	Actions []game.ActionKind `json:"actions,omitempty"`

	Strength float64                     `json:"strength"` // Score over the royal flush score
	Hand     poker.HandResult            `json:"-"`
	Preflop  poker.HoleCardCategory      `json:"preflop"`
	Draws    classification.DrawInfo     `json:"-"`
	Texture  classification.BoardTexture `json:"texture"`

	Opponents []Opponent `json:"opponents"`
}

// ViewFor builds the view seat has of state. Other seats' hole cards are
// never included.
func ViewFor(state game.GameState, seat int) (BotView, error) {
	if seat < 0 || seat >= len(state.Players) {
		return BotView{}, fmt.Errorf("view for seat %d of %d: %w", seat, len(state.Players), ErrUnknownSeat)
	}
	p := state.Players[seat]
	hole := append([]poker.Card(nil), p.HoleCards...)
	board := append([]poker.Card(nil), state.Community...)
	positions := positions(state)

	v := BotView{
		HandID:     state.HandID,
		Seat:       seat,
		Phase:      state.Phase,
		Position:   positions[seat],
		HoleCards:  hole,
		Board:      board,
		Chips:      p.Chips,
		Bet:        p.Bet,
		ToCall:     state.ToCall(seat),
		CurrentBet: state.CurrentBet,
		MinRaise:   state.MinRaise,
		BigBlind:   state.BigBlind,
		Pot:        state.PotTotal(),
		ToAct:      state.CurrentPlayer == seat,
		Actions:    state.LegalActions(seat),
		Hand:       poker.Evaluate(hole, board),
		Preflop:    poker.CategorizeHoleCards(hole),
		Draws:      classification.DetectDraws(hole, board),
		Texture:    classification.AnalyzeBoard(board),
	}
	v.Strength = v.Hand.Strength()

	for _, other := range state.Players {
		if other.Seat == seat || other.SittingOut {
			continue
		}
		v.Opponents = append(v.Opponents, Opponent{
			Name:     other.Name,
			Seat:     other.Seat,
			Chips:    other.Chips,
			Bet:      other.Bet,
			Position: positions[other.Seat],
			Folded:   other.Folded,
			AllIn:    other.AllIn,
		})
	}
	return v, nil
}

// PotOdds returns the share of the final pot the bot pays to call.
func (v BotView) PotOdds() float64 {
	if v.ToCall == 0 {
		return 0
	}
	return float64(v.ToCall) / float64(v.Pot+v.ToCall)
}

// ActiveOpponents counts opponents who have not folded.
func (v BotView) ActiveOpponents() int {
	n := 0
	for _, o := range v.Opponents {
		if !o.Folded {
			n++
		}
	}
	return n
}

// CanTake reports whether the action kind is legal for the bot right now.
func (v BotView) CanTake(kind game.ActionKind) bool {
	for _, k := range v.Actions {
		if k == kind {
			return true
		}
	}
	return false
}

// NormalizedStrength scores the best hand from hole and board in [0, 1].
// Fewer than five cards score 0.
func NormalizedStrength(hole, board []poker.Card) float64 {
	return poker.Evaluate(hole, board).Strength()
}

func positions(state game.GameState) map[int]string {
	var dealt []int
	n := len(state.Players)
	for i := range n {
		seat := (state.Button + i) % n
		if !state.Players[seat].SittingOut {
			dealt = append(dealt, seat)
		}
	}
	names := make(map[int]string, len(dealt))
	for offset, seat := range dealt {
		names[seat] = PositionName(offset, len(dealt))
	}
	return names
}
