// Package game implements the Texas Hold'em betting state machine, side pot
// construction and showdown resolution.
//
// The main types are GameState, a plain value describing one hand, and
// Engine, which turns one GameState into the next. Every Engine method takes
// a state by value and returns a new one; the input is never modified, so
// states can be kept for replay or undo and shared freely between goroutines.
//
// # Basic Usage
//
//	engine := game.NewEngine()
//	rng := randutil.New(42)
//	seats := []game.Seat{
//	    {ID: "p1", Name: "Alice", Chips: 1000},
//	    {ID: "p2", Name: "Bob", Chips: 1000},
//	}
//	state, err := engine.StartHand(rng, seats, 0, 5, 10)
//	state, err = engine.Call(state, state.CurrentPlayer)
//	state, err = engine.Check(state, state.CurrentPlayer)
//	if engine.IsRoundComplete(state) {
//	    state, err = engine.AdvancePhase(state)
//	}
//
// Once the hand reaches Showdown, ResolveShowdown awards the pots and
// AdvancePhase returns the table to Waiting. NextHand starts the next hand
// with the button moved and stacks carried over.
//
// # Deterministic Testing
//
// All randomness comes from the *rand.Rand passed to StartHand and NextHand.
// Use a fixed seed, or WithDeck to stack the deck completely:
//
//	deck, _ := poker.NewDeckFromCards(poker.MustParseCards("AhAdKcKd..."))
//	state, err := engine.StartHand(rng, seats, 0, 5, 10, game.WithDeck(deck))
package game
