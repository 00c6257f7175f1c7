package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/poker"
)

var testEpoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(testEpoch)
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return NewEngine(WithClock(clock), WithLogger(logger)), clock
}

func seats(chips ...int) []Seat {
	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	out := make([]Seat, len(chips))
	for i, c := range chips {
		out[i] = Seat{ID: names[i], Name: names[i], Chips: c}
	}
	return out
}

// stackedDeck orders the deck so seats receive holes[seat] and the board
// comes out in order. Every seat must have chips.
func stackedDeck(t *testing.T, button int, holes []string, board string) poker.Deck {
	t.Helper()
	n := len(holes)
	parsed := make([][]poker.Card, n)
	for i, h := range holes {
		parsed[i] = poker.MustParseCards(h)
	}
	var order []poker.Card
	for round := 0; round < 2; round++ {
		for i := 1; i <= n; i++ {
			order = append(order, parsed[(button+i)%n][round])
		}
	}
	order = append(order, poker.MustParseCards(board)...)
	used := poker.NewHand(order...)
	for _, c := range poker.NewDeck().Cards() {
		if !used.HasCard(c) {
			order = append(order, c)
		}
	}
	deck, err := poker.NewDeckFromCards(order)
	require.NoError(t, err)
	return deck
}

func start(t *testing.T, e *Engine, button int, table []Seat, opts ...HandOption) GameState {
	t.Helper()
	s, err := e.StartHand(randutil.New(1), table, button, 5, 10, opts...)
	require.NoError(t, err)
	return s
}

func act(t *testing.T, e *Engine, s GameState, seat int, action Action) GameState {
	t.Helper()
	next, err := e.Apply(s, seat, action)
	require.NoError(t, err, "seat %d %s", seat, action)
	return next
}

func raise(t *testing.T, amount int) Action {
	t.Helper()
	a, err := Raise(amount)
	require.NoError(t, err)
	return a
}

func bet(t *testing.T, amount int) Action {
	t.Helper()
	a, err := Bet(amount)
	require.NoError(t, err)
	return a
}

// runOut advances through streets nobody can bet on, then resolves.
func runOut(t *testing.T, e *Engine, s GameState) (GameState, ShowdownResult) {
	t.Helper()
	for s.Phase != Showdown {
		require.Equal(t, -1, s.CurrentPlayer, "expected no action during %s", s.Phase)
		var err error
		s, err = e.AdvancePhase(s)
		require.NoError(t, err)
	}
	s, result, err := e.ResolveShowdown(s)
	require.NoError(t, err)
	return s, result
}

func chips(s GameState) []int {
	out := make([]int, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Chips
	}
	return out
}
