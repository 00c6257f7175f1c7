package game

import (
	"fmt"

	"github.com/lox/holdem/poker"
)

// AdvancePhase moves a hand forward once its betting round is complete.
// Betting streets return any uncalled bet, clear the street's bets and deal
// the next street's community cards (three on the flop, one on the turn and
// river, none at showdown). From Showdown, once the pots are awarded, the
// hand is cleared and the table returns to Waiting. Starting the next hand
// from Waiting is NextHand.
func (e *Engine) AdvancePhase(s GameState) (GameState, error) {
	switch {
	case s.Phase == Waiting:
		return s, fmt.Errorf("advance from waiting, use NextHand: %w", ErrIllegalAction)
	case s.Phase == Showdown:
		if !s.Awarded {
			return s, fmt.Errorf("clear hand %s: %w", s.HandID, ErrPotsNotAwarded)
		}
		return e.clearHand(s), nil
	case !isRoundComplete(s):
		return s, fmt.Errorf("advance from %s: %w", s.Phase, ErrRoundInProgress)
	}

	next := s.Clone()
	e.closeStreet(&next)
	next.Phase++

	if n := next.Phase.communityCards(); n > 0 {
		cards, deck, err := next.Deck.Deal(n)
		if err != nil {
			return s, fmt.Errorf("deal %s: %w", next.Phase, err)
		}
		next.Deck = deck
		next.Community = append(next.Community, cards...)
		e.record(&next, Event{Kind: EventStreet, Seat: -1, Cards: next.Community})
	}

	next.CurrentPlayer = -1
	if next.Phase.IsBetting() && !isRoundComplete(next) {
		next.CurrentPlayer = next.nextToAct(next.Button)
	}
	checkChips(next)

	e.logger.Debug().
		Str("hand_id", next.HandID).
		Stringer("phase", next.Phase).
		Str("board", poker.FormatCards(next.Community)).
		Int("pot", next.PotTotal()).
		Msg("phase advanced")
	return next, nil
}

// closeStreet returns the uncalled bet and resets per-street betting.
func (e *Engine) closeStreet(s *GameState) {
	players, refund := ReturnUncalled(s.Players)
	s.Players = players
	if refund.Amount > 0 {
		p := s.Players[refund.Seat]
		e.record(s, Event{Kind: EventRefund, Seat: refund.Seat, Player: p.Name, Amount: refund.Amount})
	}
	for i := range s.Players {
		s.Players[i].Bet = 0
		s.Players[i].Acted = false
		s.Players[i].RaiseClosed = false
	}
	s.CurrentBet = 0
	s.MinRaise = s.BigBlind
	s.Pots = BuildPots(s.Players)
}

// endUncontested finishes a hand where everyone else has folded.
func (e *Engine) endUncontested(s *GameState) {
	e.closeStreet(s)
	s.Phase = Showdown
	s.CurrentPlayer = -1
	e.logger.Debug().
		Str("hand_id", s.HandID).
		Ints("winner", s.InHand()).
		Msg("hand ended uncontested")
}

// clearHand returns the table to Waiting with the final stacks. The log of
// the finished hand is kept until the next hand starts.
func (e *Engine) clearHand(s GameState) GameState {
	next := s.Clone()
	next.Phase = Waiting
	next.Community = nil
	next.Pots = nil
	next.Deck = poker.Deck{}
	next.CurrentPlayer = -1
	next.CurrentBet = 0
	next.MinRaise = next.BigBlind
	next.Awarded = false
	next.StartingTotal = 0
	for i := range next.Players {
		p := &next.Players[i]
		*p = Player{ID: p.ID, Name: p.Name, Seat: p.Seat, Chips: p.Chips, SittingOut: p.Chips == 0}
		next.StartingTotal += p.Chips
	}
	checkChips(next)
	return next
}
