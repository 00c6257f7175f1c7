package game

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/randutil"
)

// randomAction picks a legal action for the current player.
func randomAction(t *testing.T, e *Engine, s GameState, rng *rand.Rand) Action {
	t.Helper()
	kinds := e.LegalActions(s, s.CurrentPlayer)
	require.NotEmpty(t, kinds)
	switch kinds[rng.IntN(len(kinds))] {
	case ActionFold:
		// Fold less often so more hands reach showdown.
		if rng.IntN(3) > 0 {
			return randomAction(t, e, s, rng)
		}
		return Fold()
	case ActionCheck:
		return Check()
	case ActionCall:
		return Call()
	case ActionBet:
		a, err := Bet(s.MinRaise + rng.IntN(300))
		require.NoError(t, err)
		return a
	default:
		a, err := Raise(s.MinRaise + rng.IntN(300))
		require.NoError(t, err)
		return a
	}
}

// playHand drives a hand with random legal actions until the pots are paid
// and the table is back to Waiting.
func playHand(t *testing.T, e *Engine, s GameState, rng *rand.Rand) GameState {
	t.Helper()
	var err error
	for steps := 0; s.Phase != Showdown; steps++ {
		require.Less(t, steps, 500, "hand did not finish")
		if s.CurrentPlayer >= 0 {
			s, err = e.Apply(s, s.CurrentPlayer, randomAction(t, e, s, rng))
		} else {
			s, err = e.AdvancePhase(s)
		}
		require.NoError(t, err)
	}

	before := s.PotTotal()
	stacks := 0
	for _, p := range s.Players {
		stacks += p.Chips
	}
	s, result, err := e.ResolveShowdown(s)
	require.NoError(t, err)

	awarded := 0
	for _, won := range result.Awards {
		awarded += won
	}
	require.Equal(t, before, awarded, "every pot chip is awarded")
	for _, pot := range s.Pots {
		require.Zero(t, pot.Amount)
	}
	after := 0
	for _, p := range s.Players {
		after += p.Chips
	}
	require.Equal(t, stacks+before, after)

	s, err = e.AdvancePhase(s)
	require.NoError(t, err)
	return s
}

func TestRandomPlayConservesChips(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	for seed := int64(0); seed < 40; seed++ {
		rng := randutil.New(seed)
		table := seats(500, 800, 300, 1000, 150, 600)[:2+seed%5]
		total := 0
		for _, seat := range table {
			total += seat.Chips
		}

		s, err := e.StartHand(rng, table, int(seed)%len(table), 5, 10)
		require.NoError(t, err)
		for hand := 0; hand < 25; hand++ {
			s = playHand(t, e, s, rng)
			require.Equal(t, total, s.StartingTotal)

			next, err := e.NextHand(rng, s)
			if err != nil {
				require.ErrorIs(t, err, ErrNotEnoughPlayers)
				break
			}
			s = next
		}
	}
}
