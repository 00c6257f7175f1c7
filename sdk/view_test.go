package sdk

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/game"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/poker"
	"github.com/lox/holdem/sdk/classification"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// threeHanded deals Alice (button) Ah Kh, Bob 2c 7d and Carol 9s 9d, with a
// Qh Jh 3s flop.
func threeHanded(t *testing.T) (*game.Engine, game.GameState) {
	t.Helper()
	order := poker.MustParseCards("2c 9s Ah 7d 9d Kh Qh Jh 3s 4c 8d")
	used := poker.NewHand(order...)
	for _, c := range poker.NewDeck().Cards() {
		if !used.HasCard(c) {
			order = append(order, c)
		}
	}
	deck, err := poker.NewDeckFromCards(order)
	require.NoError(t, err)

	e := game.NewEngine()
	seats := []game.Seat{
		{ID: "alice", Name: "Alice", Chips: 1000},
		{ID: "bob", Name: "Bob", Chips: 1000},
		{ID: "carol", Name: "Carol", Chips: 1000},
	}
	s, err := e.StartHand(randutil.New(1), seats, 0, 5, 10, game.WithDeck(deck))
	require.NoError(t, err)
	return e, s
}

func TestViewForPreflop(t *testing.T) {
	t.Parallel()
	_, s := threeHanded(t)

	v, err := ViewFor(s, 0)
	require.NoError(t, err)

	assert.Equal(t, game.PreFlop, v.Phase)
	assert.Equal(t, PositionButton, v.Position)
	assert.Equal(t, "Ah Kh", poker.FormatCards(v.HoleCards))
	assert.Empty(t, v.Board)
	assert.True(t, v.ToAct)
	assert.Equal(t, 10, v.ToCall)
	assert.Equal(t, 15, v.Pot)
	assert.Equal(t, 1000, v.Chips)
	assert.InDelta(t, 0.4, v.PotOdds(), 1e-9)
	assert.Equal(t, []game.ActionKind{game.ActionFold, game.ActionCall, game.ActionRaise}, v.Actions)
	assert.True(t, v.CanTake(game.ActionRaise))
	assert.False(t, v.CanTake(game.ActionCheck))

	assert.Equal(t, poker.CategoryPremium, v.Preflop)
	assert.True(t, v.Hand.Incomplete)
	assert.Zero(t, v.Strength)
	assert.False(t, v.Draws.HasDraw())
	assert.Equal(t, classification.Dry, v.Texture.Dryness)

	require.Len(t, v.Opponents, 2)
	assert.Equal(t, Opponent{Name: "Bob", Seat: 1, Chips: 995, Bet: 5, Position: PositionSmallBlind}, v.Opponents[0])
	assert.Equal(t, Opponent{Name: "Carol", Seat: 2, Chips: 990, Bet: 10, Position: PositionBigBlind}, v.Opponents[1])
	assert.Equal(t, 2, v.ActiveOpponents())
}

func TestViewForFlop(t *testing.T) {
	t.Parallel()
	e, s := threeHanded(t)

	var err error
	s, err = e.Call(s, 0)
	require.NoError(t, err)
	s, err = e.Call(s, 1)
	require.NoError(t, err)
	s, err = e.Check(s, 2)
	require.NoError(t, err)
	s, err = e.AdvancePhase(s)
	require.NoError(t, err)

	v, err := ViewFor(s, 0)
	require.NoError(t, err)

	assert.Equal(t, game.Flop, v.Phase)
	assert.Equal(t, "Qh Jh 3s", poker.FormatCards(v.Board))
	assert.False(t, v.ToAct)
	assert.Nil(t, v.Actions)
	assert.Equal(t, 30, v.Pot)
	assert.Zero(t, v.ToCall)
	assert.Zero(t, v.PotOdds())

	assert.Equal(t, poker.HighCard, v.Hand.Category)
	assert.InDelta(t, v.Hand.Strength(), v.Strength, 1e-12)
	assert.Greater(t, v.Strength, 0.0)

	require.NotNil(t, v.Draws.FlushDraw)
	assert.Equal(t, poker.Hearts, v.Draws.FlushDraw.Suit)
	require.NotNil(t, v.Draws.StraightDraw)
	assert.Equal(t, classification.Gutshot, v.Draws.StraightDraw.Kind)
	assert.True(t, v.Draws.IsComboDraw())

	assert.True(t, v.Texture.TwoTone)
	assert.False(t, v.Texture.Paired)
	assert.Equal(t, classification.SemiDry, v.Texture.Dryness)
}

func TestViewForHidesOpponentCards(t *testing.T) {
	t.Parallel()
	_, s := threeHanded(t)

	v, err := ViewFor(s, 1)
	require.NoError(t, err)
	assert.Equal(t, "2c 7d", poker.FormatCards(v.HoleCards))
	assert.Equal(t, poker.CategoryTrash, v.Preflop)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Ah")
	assert.NotContains(t, string(data), "9s")
	assert.NotContains(t, string(data), "eligible")
}

func TestViewForUnknownSeat(t *testing.T) {
	t.Parallel()
	_, s := threeHanded(t)

	_, err := ViewFor(s, 3)
	require.ErrorIs(t, err, ErrUnknownSeat)
	_, err = ViewFor(s, -1)
	require.ErrorIs(t, err, ErrUnknownSeat)
}

func TestNormalizedStrength(t *testing.T) {
	t.Parallel()

	royal := NormalizedStrength(poker.MustParseCards("As Ks"), poker.MustParseCards("Qs Js Ts 2c 3d"))
	assert.InDelta(t, 1.0, royal, 1e-12)

	pair := NormalizedStrength(poker.MustParseCards("2c 2d"), poker.MustParseCards("7h 9s Kd"))
	assert.Greater(t, pair, 0.0)
	assert.Less(t, pair, royal)

	assert.Zero(t, NormalizedStrength(poker.MustParseCards("As Ks"), nil))
}

func TestPositionName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dealt int
		want  []string
	}{
		{2, []string{"Button", "Big Blind"}},
		{3, []string{"Button", "Small Blind", "Big Blind"}},
		{4, []string{"Button", "Small Blind", "Big Blind", "UTG"}},
		{6, []string{"Button", "Small Blind", "Big Blind", "UTG", "Hijack", "Cutoff"}},
		{8, []string{"Button", "Small Blind", "Big Blind", "UTG", "UTG+1", "UTG+2", "Hijack", "Cutoff"}},
	}
	for _, tt := range tests {
		for offset, want := range tt.want {
			assert.Equal(t, want, PositionName(offset, tt.dealt), "offset %d of %d", offset, tt.dealt)
		}
	}
	assert.Empty(t, PositionName(0, 1))
	assert.Empty(t, PositionName(5, 3))
}
