package game

import (
	"fmt"
	"slices"

	"github.com/lox/holdem/poker"
)

// PotResult describes how one pot was paid.
type PotResult struct {
	Index   int
	Amount  int
	Winners []int // Seats, in remainder order
	Share   int   // Chips each winner received before the remainder
	Odd     int   // Remainder chips handed out one at a time
}

// ShowdownResult is the outcome of ResolveShowdown.
type ShowdownResult struct {
	Pots        []PotResult
	Awards      map[int]int              // Seat to chips won
	Hands       map[int]poker.HandResult // Seat to best hand, empty when uncontested
	Uncontested bool
}

// ResolveShowdown pays every pot. A hand everyone else folded goes to the
// last player without evaluation. Otherwise each pot is split equally
// between the eligible players with the best hand, and chips that do not
// divide evenly go one at a time to those winners in seat order starting
// left of the button.
func (e *Engine) ResolveShowdown(s GameState) (GameState, ShowdownResult, error) {
	if s.Phase != Showdown {
		return s, ShowdownResult{}, fmt.Errorf("resolve during %s: %w", s.Phase, ErrNotShowdown)
	}
	if s.Awarded {
		return s, ShowdownResult{}, fmt.Errorf("resolve hand %s: %w", s.HandID, ErrAlreadyAwarded)
	}

	contenders := s.InHand()
	result := ShowdownResult{
		Awards:      make(map[int]int),
		Hands:       make(map[int]poker.HandResult),
		Uncontested: len(contenders) == 1,
	}
	if !result.Uncontested && len(s.Community) < 5 {
		return s, ShowdownResult{}, fmt.Errorf("showdown with %d community cards: %w", len(s.Community), ErrIncompleteBoard)
	}

	next := s.Clone()
	if !result.Uncontested {
		// Players show in seat order starting left of the button.
		slices.SortFunc(contenders, func(a, b int) int { return next.seatOrder(a) - next.seatOrder(b) })
		for _, seat := range contenders {
			p := next.Players[seat]
			hand := poker.Evaluate(p.HoleCards, next.Community)
			result.Hands[seat] = hand
			e.record(&next, Event{Kind: EventShow, Seat: seat, Player: p.Name, Cards: p.HoleCards, Detail: hand.Description})
		}
	}

	for i := range next.Pots {
		pot := &next.Pots[i]
		winners := potWinners(next, *pot, result.Hands, result.Uncontested)
		if len(winners) == 0 {
			panic(fmt.Errorf("%w: %s of %d has no eligible winner", ErrChipConservation, potName(i), pot.Amount))
		}

		pr := PotResult{
			Index:   i,
			Amount:  pot.Amount,
			Winners: winners,
			Share:   pot.Amount / len(winners),
			Odd:     pot.Amount % len(winners),
		}
		for j, seat := range winners {
			won := pr.Share
			if j < pr.Odd {
				won++
			}
			if won == 0 {
				continue
			}
			next.Players[seat].Chips += won
			result.Awards[seat] += won
			e.record(&next, Event{Kind: EventAward, Seat: seat, Player: next.Players[seat].Name, Amount: won, Detail: potName(i)})
		}
		pot.Amount = 0
		result.Pots = append(result.Pots, pr)
	}
	next.Awarded = true
	checkChips(next)

	e.logger.Debug().
		Str("hand_id", next.HandID).
		Bool("uncontested", result.Uncontested).
		Int("pots", len(result.Pots)).
		Msg("showdown resolved")
	return next, result, nil
}

// potWinners returns the eligible seats holding the best hand, ordered from
// the first seat left of the button.
func potWinners(s GameState, pot Pot, hands map[int]poker.HandResult, uncontested bool) []int {
	var winners []int
	best := -1
	for _, seat := range pot.Eligible {
		if !s.Players[seat].InHand() {
			continue
		}
		score := 0
		if !uncontested {
			score = hands[seat].Score
		}
		switch {
		case score > best:
			best = score
			winners = []int{seat}
		case score == best:
			winners = append(winners, seat)
		}
	}
	slices.SortFunc(winners, func(a, b int) int { return s.seatOrder(a) - s.seatOrder(b) })
	return winners
}
