package game

import (
	"slices"

	"github.com/lox/holdem/poker"
)

// GameState is a complete snapshot of one hand. It is a value: the engine
// clones it before every change and never modifies a state it was given.
type GameState struct {
	HandID        string
	Phase         Phase
	Players       []Player // Indexed by seat
	Community     []poker.Card
	Deck          poker.Deck
	Button        int
	CurrentPlayer int // Seat to act, -1 when nobody is due
	CurrentBet    int // Highest Bet on this street
	MinRaise      int // Smallest legal bet or raise increment
	SmallBlind    int
	BigBlind      int
	Pots          []Pot
	StartingTotal int  // Chips on the table when the hand began
	Awarded       bool // Pots have been paid out
	Log           []Event
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	out := s
	out.Players = cloneEach(s.Players, Player.clone)
	out.Community = slices.Clone(s.Community)
	out.Pots = cloneEach(s.Pots, Pot.clone)
	out.Log = cloneEach(s.Log, Event.clone)
	return out
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// PotTotal returns the chips in all pots, including bets on the current street.
func (s GameState) PotTotal() int {
	total := 0
	for _, pot := range s.Pots {
		total += pot.Amount
	}
	return total
}

// ToCall returns the chips seat needs to put in to match the current bet.
func (s GameState) ToCall(seat int) int {
	if seat < 0 || seat >= len(s.Players) {
		return 0
	}
	p := s.Players[seat]
	return min(max(s.CurrentBet-p.Bet, 0), p.Chips)
}

// InHand returns the seats still contesting the pot.
func (s GameState) InHand() []int {
	var seats []int
	for _, p := range s.Players {
		if p.InHand() {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// Player returns the player with the given ID.
func (s GameState) Player(id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Player{}, false
}

// nextSeat returns the first seat after from, in table order, that matches.
func (s GameState) nextSeat(from int, match func(Player) bool) int {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		seat := ((from+i)%n + n) % n
		if match(s.Players[seat]) {
			return seat
		}
	}
	return -1
}

func (s GameState) countPlayers(match func(Player) bool) int {
	n := 0
	for _, p := range s.Players {
		if match(p) {
			n++
		}
	}
	return n
}

// seatOrder returns the position of seat counting from the first seat left
// of the button, used to break remainder ties.
func (s GameState) seatOrder(seat int) int {
	n := len(s.Players)
	return ((seat-s.Button-1)%n + n) % n
}
