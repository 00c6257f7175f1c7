package game

import "errors"

var (
	// ErrNotYourTurn is returned when a seat acts out of turn.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrIllegalAction is returned when the action is not allowed in the current situation.
	ErrIllegalAction = errors.New("illegal action")
	// ErrInvalidAmount is returned for non-positive bet or raise amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrBelowMinimum is returned for a bet or raise smaller than the minimum that is not all-in.
	ErrBelowMinimum = errors.New("amount below minimum")
	// ErrNoBettingRound is returned when acting outside preflop, flop, turn or river.
	ErrNoBettingRound = errors.New("no betting round in progress")
	// ErrRoundInProgress is returned when advancing before the betting round is complete.
	ErrRoundInProgress = errors.New("betting round still in progress")
	// ErrHandInProgress is returned when starting a new hand before the current one is cleared.
	ErrHandInProgress = errors.New("hand in progress")
	// ErrNotShowdown is returned when resolving a hand that has not reached showdown.
	ErrNotShowdown = errors.New("hand is not at showdown")
	// ErrAlreadyAwarded is returned when resolving a showdown twice.
	ErrAlreadyAwarded = errors.New("pots already awarded")
	// ErrPotsNotAwarded is returned when clearing a hand whose pots are still unpaid.
	ErrPotsNotAwarded = errors.New("pots not awarded")
	// ErrNotEnoughPlayers is returned when fewer than two seats have chips.
	ErrNotEnoughPlayers = errors.New("not enough players")
	// ErrIncompleteBoard is returned when a contested showdown has fewer than five community cards.
	ErrIncompleteBoard = errors.New("incomplete board")
	// ErrInvalidBlinds is returned for non-positive blinds or a small blind above the big blind.
	ErrInvalidBlinds = errors.New("invalid blinds")
	// ErrChipConservation reports chips created or destroyed. No legal sequence of
	// actions can produce it, so the engine panics with it.
	ErrChipConservation = errors.New("chip conservation violated")
)
