package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lox/holdem/poker"
)

// Engine applies the rules of Texas Hold'em to GameState values. It holds no
// game state of its own and is safe to share across tables and goroutines.
type Engine struct {
	logger zerolog.Logger
	clock  quartz.Clock
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger.With().Str("component", "engine").Logger()
	}
}

// WithClock sets the clock used to timestamp log events.
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// NewEngine creates an engine. Without options it logs nothing and uses the
// real clock.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: zerolog.Nop(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandOption configures a hand during StartHand.
type HandOption func(*handConfig)

type handConfig struct {
	deck   *poker.Deck
	handID string
}

// WithDeck deals from deck instead of shuffling a new one.
func WithDeck(deck poker.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = &deck
	}
}

// WithHandID sets the hand ID instead of generating a UUID.
func WithHandID(id string) HandOption {
	return func(c *handConfig) {
		c.handID = id
	}
}

// StartHand deals a new hand: blinds are posted, two hole cards go to every
// seat with chips and the first player to act is set. Seats with no chips
// sit the hand out. If the button seat has no chips the button moves to the
// next seat that does. The rng is required; a nil rng or a button outside
// the table is a programming error and panics.
func (e *Engine) StartHand(rng *rand.Rand, seats []Seat, button, smallBlind, bigBlind int, opts ...HandOption) (GameState, error) {
	if rng == nil {
		panic("rng is required to start a hand")
	}
	if button < 0 || button >= len(seats) {
		panic(fmt.Sprintf("button %d out of range for %d seats", button, len(seats)))
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		return GameState{}, fmt.Errorf("%w: %d/%d", ErrInvalidBlinds, smallBlind, bigBlind)
	}

	cfg := handConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.handID == "" {
		cfg.handID = uuid.NewString()
	}

	s := GameState{
		HandID:        cfg.handID,
		Phase:         PreFlop,
		Players:       make([]Player, len(seats)),
		CurrentPlayer: -1,
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
		MinRaise:      bigBlind,
	}
	for i, seat := range seats {
		s.Players[i] = Player{
			ID:         seat.ID,
			Name:       seat.Name,
			Seat:       i,
			Chips:      seat.Chips,
			SittingOut: seat.Chips <= 0,
		}
		s.StartingTotal += seat.Chips
	}
	funded := s.countPlayers(func(p Player) bool { return !p.SittingOut })
	if funded < 2 {
		return GameState{}, fmt.Errorf("start hand with %d funded seats: %w", funded, ErrNotEnoughPlayers)
	}

	s.Button = button
	if s.Players[button].SittingOut {
		s.Button = s.nextSeat(button, Player.InHand)
	}

	if cfg.deck != nil {
		s.Deck = *cfg.deck
	} else {
		s.Deck = poker.NewShuffledDeck(rng)
	}

	e.record(&s, Event{Kind: EventHandStart, Seat: s.Button, Player: s.Players[s.Button].Name, Detail: s.HandID})

	sb := s.nextSeat(s.Button, Player.InHand)
	if funded == 2 {
		// Heads-up the button posts the small blind.
		sb = s.Button
	}
	bb := s.nextSeat(sb, Player.InHand)
	e.postBlind(&s, sb, smallBlind, "small blind")
	e.postBlind(&s, bb, bigBlind, "big blind")
	s.CurrentBet = bigBlind

	// One card at a time, starting left of the button.
	for round := 0; round < 2; round++ {
		seat := s.Button
		for range funded {
			seat = s.nextSeat(seat, Player.InHand)
			cards, deck, err := s.Deck.Deal(1)
			if err != nil {
				return GameState{}, fmt.Errorf("deal hole cards: %w", err)
			}
			s.Deck = deck
			s.Players[seat].HoleCards = append(s.Players[seat].HoleCards, cards[0])
		}
	}

	s.Pots = BuildPots(s.Players)
	if !isRoundComplete(s) {
		s.CurrentPlayer = s.nextToAct(bb)
	}
	checkChips(s)

	e.logger.Debug().
		Str("hand_id", s.HandID).
		Int("button", s.Button).
		Int("players", funded).
		Int("small_blind", smallBlind).
		Int("big_blind", bigBlind).
		Msg("hand started")
	return s, nil
}

// NextHand starts the following hand from a cleared Waiting state, with the
// button moved to the next seat that still has chips.
func (e *Engine) NextHand(rng *rand.Rand, s GameState, opts ...HandOption) (GameState, error) {
	if s.Phase != Waiting {
		return GameState{}, fmt.Errorf("next hand during %s: %w", s.Phase, ErrHandInProgress)
	}
	seats := make([]Seat, len(s.Players))
	for i, p := range s.Players {
		seats[i] = Seat{ID: p.ID, Name: p.Name, Chips: p.Chips}
	}
	button := s.nextSeat(s.Button, func(p Player) bool { return p.Chips > 0 })
	if button < 0 {
		return GameState{}, fmt.Errorf("next hand: %w", ErrNotEnoughPlayers)
	}
	return e.StartHand(rng, seats, button, s.SmallBlind, s.BigBlind, opts...)
}

func (e *Engine) postBlind(s *GameState, seat, amount int, name string) {
	p := &s.Players[seat]
	posted := p.contribute(amount)
	e.record(s, Event{
		Kind:   EventBlind,
		Seat:   seat,
		Player: p.Name,
		Amount: posted,
		AllIn:  p.AllIn,
		Detail: name,
	})
}

// record appends an event to the state's log.
func (e *Engine) record(s *GameState, ev Event) {
	ev = ev.clone()
	ev.At = e.clock.Now()
	ev.Phase = s.Phase
	s.Log = append(s.Log, ev)
}
