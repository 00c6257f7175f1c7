package poker

import (
	"sort"
	"testing"

	"github.com/lox/holdem/internal/randutil"
)

func five(t *testing.T, s string) [5]Card {
	t.Helper()
	cards := MustParseCards(s)
	if len(cards) != 5 {
		t.Fatalf("need five cards, got %d", len(cards))
	}
	return [5]Card{cards[0], cards[1], cards[2], cards[3], cards[4]}
}

func TestEvaluateFiveCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards       string
		category    HandCategory
		description string
	}{
		{"AsKsQsJsTs", RoyalFlush, "Royal Flush"},
		{"9h8h7h6h5h", StraightFlush, "Straight Flush, Nine high"},
		{"5d4d3d2dAd", StraightFlush, "Straight Flush, Five high"},
		{"QcQdQhQs2c", FourOfAKind, "Four of a Kind, Queens"},
		{"KcKdKh5s5c", FullHouse, "Full House, Kings full of Fives"},
		{"6c6d6h9s9c", FullHouse, "Full House, Sixes full of Nines"},
		{"AhJh8h4h2h", Flush, "Flush, Ace high"},
		{"As2d3c4h5s", Straight, "Straight, Five high"},
		{"TsJdQcKhAs", Straight, "Straight, Ace high"},
		{"AcAdAh9s2c", ThreeOfAKind, "Three of a Kind, Aces"},
		{"KcKd2h2s9c", TwoPair, "Two Pair, Kings and Twos"},
		{"KcKd9h5s2c", OnePair, "Pair of Kings"},
		{"Ac9d7h5s3c", HighCard, "High Card, Ace"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			t.Parallel()
			r := EvaluateFive(five(t, tt.cards))
			if r.Category != tt.category {
				t.Errorf("%s: category = %s, want %s", tt.cards, r.Category, tt.category)
			}
			if r.Description != tt.description {
				t.Errorf("%s: description = %q, want %q", tt.cards, r.Description, tt.description)
			}
			if len(r.Cards) != 5 {
				t.Errorf("%s: expected 5 cards, got %d", tt.cards, len(r.Cards))
			}
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()
	// Weakest hand of each category against the strongest of the one below.
	ladder := []string{
		"AcKdQhJs9c", // best high card
		"2c2d3h4s5c", // worst pair
		"AcAdKhKsQc", // best two pair
		"2c2d2h3s4c", // worst trips
		"AcAdAhKsQc", // best trips
		"As2d3c4h5s", // wheel
		"TsJdQcKhAs", // broadway
		"2h3h4h5h7h", // worst flush
		"AhKhQhJh9h", // best flush
		"2c2d2h3s3c", // worst full house
		"AcAdAhKsKc", // best full house
		"2c2d2h2s3c", // worst quads
		"AcAdAhAsKc", // best quads
		"5d4d3d2dAd", // steel wheel
		"KdQdJdTd9d", // king high straight flush
		"AsKsQsJsTs",
	}
	prev := 0
	for _, hand := range ladder {
		r := EvaluateFive(five(t, hand))
		if r.Score <= prev {
			t.Errorf("%s (%s) scored %d, not above previous %d", hand, r.Description, r.Score, prev)
		}
		prev = r.Score
	}
	if prev != MaxScore {
		t.Errorf("royal flush should score MaxScore %d, got %d", MaxScore, prev)
	}
}

func TestWheelBelowSixHighStraight(t *testing.T) {
	t.Parallel()
	wheel := EvaluateFive(five(t, "Ac2d3h4s5c"))
	six := EvaluateFive(five(t, "2d3h4s5c6d"))
	if Compare(six, wheel) != 1 {
		t.Errorf("six high straight should beat the wheel: %d vs %d", six.Score, wheel.Score)
	}
	if wheel.Cards[4].Rank() != Ace {
		t.Errorf("wheel ace should be listed last, got %s", FormatCards(wheel.Cards))
	}
}

func TestKickersAndTies(t *testing.T) {
	t.Parallel()
	a := EvaluateFive(five(t, "AcAd9h5s3c"))
	b := EvaluateFive(five(t, "AhAs9c5d2c"))
	if Compare(a, b) != 1 {
		t.Error("third kicker should decide")
	}

	c := EvaluateFive(five(t, "AhKhQh9h2h"))
	d := EvaluateFive(five(t, "AsKsQs9s2s"))
	if Compare(c, d) != 0 {
		t.Error("identical ranks in different suits should tie")
	}
}

func TestEvaluateSevenCards(t *testing.T) {
	t.Parallel()
	board := MustParseCards("AcKh2s2d9c")
	aces := Evaluate(MustParseCards("AhAs"), board)
	kings := Evaluate(MustParseCards("KcKd"), board)

	if aces.Category != FullHouse || aces.Description != "Full House, Aces full of Twos" {
		t.Errorf("aces = %s", aces)
	}
	if kings.Category != FullHouse || kings.Description != "Full House, Kings full of Twos" {
		t.Errorf("kings = %s", kings)
	}
	if Compare(aces, kings) != 1 {
		t.Error("aces full should beat kings full")
	}
}

func TestEvaluateIncomplete(t *testing.T) {
	t.Parallel()
	r := Evaluate(MustParseCards("AsAh"), MustParseCards("Kd2c"))
	if !r.Incomplete || r.Score != 0 || r.Category != HighCard {
		t.Errorf("expected incomplete result, got %+v", r)
	}
	if r.Strength() != 0 {
		t.Errorf("incomplete strength = %f", r.Strength())
	}
}

func TestStrengthBounds(t *testing.T) {
	t.Parallel()
	royal := EvaluateFive(five(t, "AsKsQsJsTs"))
	if royal.Strength() != 1 {
		t.Errorf("royal strength = %f", royal.Strength())
	}
	low := EvaluateFive(five(t, "7c5d4h3s2c"))
	if s := low.Strength(); s <= 0 || s >= 0.1 {
		t.Errorf("seven high strength = %f", s)
	}
}

// referenceKey ranks five cards with a straightforward grouping approach
// so the scorer can be cross-checked against something independent.
func referenceKey(cards [5]Card) []int {
	count := map[int]int{}
	suits := map[uint8]bool{}
	for _, c := range cards {
		count[c.Value()]++
		suits[c.Suit()] = true
	}
	type group struct{ value, n int }
	groups := make([]group, 0, len(count))
	for v, n := range count {
		groups = append(groups, group{v, n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].n != groups[j].n {
			return groups[i].n > groups[j].n
		}
		return groups[i].value > groups[j].value
	})

	flush := len(suits) == 1
	straightHigh := 0
	if len(groups) == 5 {
		if groups[0].value-groups[4].value == 4 {
			straightHigh = groups[0].value
		} else if groups[0].value == 14 && groups[1].value == 5 {
			straightHigh = 5
		}
	}

	var cat int
	switch {
	case straightHigh > 0 && flush:
		cat = 8
	case groups[0].n == 4:
		cat = 7
	case groups[0].n == 3 && groups[1].n == 2:
		cat = 6
	case flush:
		cat = 5
	case straightHigh > 0:
		cat = 4
	case groups[0].n == 3:
		cat = 3
	case groups[0].n == 2 && groups[1].n == 2:
		cat = 2
	case groups[0].n == 2:
		cat = 1
	}

	key := []int{cat}
	if straightHigh > 0 {
		return append(key, straightHigh)
	}
	for _, g := range groups {
		key = append(key, g.value)
	}
	return key
}

func compareKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func TestEvaluateFiveMatchesReference(t *testing.T) {
	t.Parallel()
	rng := randutil.New(2024)
	for i := 0; i < 20000; i++ {
		cards, _, err := NewShuffledDeck(rng).Deal(10)
		if err != nil {
			t.Fatal(err)
		}
		a := [5]Card{cards[0], cards[1], cards[2], cards[3], cards[4]}
		b := [5]Card{cards[5], cards[6], cards[7], cards[8], cards[9]}

		got := Compare(EvaluateFive(a), EvaluateFive(b))
		want := compareKeys(referenceKey(a), referenceKey(b))
		if got != want {
			t.Fatalf("%s vs %s: Compare = %d, reference = %d",
				FormatCards(a[:]), FormatCards(b[:]), got, want)
		}
	}
}

func TestEvaluateCardsIsBestSubset(t *testing.T) {
	t.Parallel()
	rng := randutil.New(99)
	for i := 0; i < 2000; i++ {
		cards, _, err := NewShuffledDeck(rng).Deal(7)
		if err != nil {
			t.Fatal(err)
		}
		best := EvaluateCards(cards)

		max := 0
		for skipA := 0; skipA < 7; skipA++ {
			for skipB := skipA + 1; skipB < 7; skipB++ {
				var sub [5]Card
				n := 0
				for k, c := range cards {
					if k != skipA && k != skipB {
						sub[n] = c
						n++
					}
				}
				if s := EvaluateFive(sub).Score; s > max {
					max = s
				}
			}
		}
		if best.Score != max {
			t.Fatalf("%s: EvaluateCards = %d, best subset = %d", FormatCards(cards), best.Score, max)
		}
		for _, c := range best.Cards {
			if !NewHand(cards...).HasCard(c) {
				t.Fatalf("%s: result uses foreign card %s", FormatCards(cards), c)
			}
		}
	}
}

func BenchmarkEvaluateSeven(b *testing.B) {
	cards := MustParseCards("AsKhQd7c5s3h2d")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EvaluateCards(cards)
	}
}
