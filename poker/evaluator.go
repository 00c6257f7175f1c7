package poker

import (
	"fmt"
	"sort"
)

// HandCategory enumerates hand categories from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Scores are category*15^5 plus five tie-break digits in base 15. Digits are
// face values (2-14, or 1 for the wheel ace) so they never carry into the
// next category.
const scoreBase = 15

// MaxScore is the score of a royal flush, the strongest possible hand.
var MaxScore = scoreOf(RoyalFlush, [5]int{14, 13, 12, 11, 10})

// HandResult is the best five-card hand found among the supplied cards.
type HandResult struct {
	Category    HandCategory
	Score       int    // Higher is stronger; equal scores are exact ties
	Description string // e.g. "Two Pair, Kings and Twos"
	Cards       []Card // The five cards, most significant first
	Incomplete  bool   // Fewer than five cards were supplied
}

// Strength returns the score normalised to [0, 1].
func (r HandResult) Strength() float64 {
	if r.Incomplete || r.Score <= 0 {
		return 0
	}
	return float64(r.Score) / float64(MaxScore)
}

// String returns the description with the five cards.
func (r HandResult) String() string {
	if r.Incomplete {
		return r.Description
	}
	return fmt.Sprintf("%s [%s]", r.Description, FormatCards(r.Cards))
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 for a tie.
func Compare(a, b HandResult) int {
	switch {
	case a.Score > b.Score:
		return 1
	case a.Score < b.Score:
		return -1
	default:
		return 0
	}
}

// Evaluate returns the best five-card hand from hole and community cards.
// With fewer than five cards in total it returns an incomplete result.
func Evaluate(hole, community []Card) HandResult {
	cards := make([]Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)
	return EvaluateCards(cards)
}

// EvaluateCards scores every five-card subset of cards and keeps the best.
func EvaluateCards(cards []Card) HandResult {
	n := len(cards)
	if n < 5 {
		return HandResult{
			Category:    HighCard,
			Description: "Incomplete hand",
			Incomplete:  true,
		}
	}

	var best HandResult
	var five [5]Card
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five = [5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						if r := EvaluateFive(five); r.Score > best.Score {
							best = r
						}
					}
				}
			}
		}
	}
	return best
}

// EvaluateFive classifies and scores exactly five cards.
func EvaluateFive(five [5]Card) HandResult {
	ordered := five
	var counts [15]int
	for _, c := range ordered {
		counts[c.Value()]++
	}
	// Larger groups first, then higher values.
	sort.Slice(ordered[:], func(i, j int) bool {
		vi, vj := ordered[i].Value(), ordered[j].Value()
		if counts[vi] != counts[vj] {
			return counts[vi] > counts[vj]
		}
		if vi != vj {
			return vi > vj
		}
		return ordered[i].Suit() > ordered[j].Suit()
	})

	var digits [5]int
	for i, c := range ordered {
		digits[i] = c.Value()
	}

	flush := true
	for _, c := range ordered[1:] {
		if c.Suit() != ordered[0].Suit() {
			flush = false
			break
		}
	}

	distinct := counts[digits[0]] == 1 && counts[digits[1]] == 1
	straight := false
	if distinct && digits[0]-digits[4] == 4 {
		straight = true
	} else if distinct && digits == [5]int{14, 5, 4, 3, 2} {
		// Wheel: the ace plays low.
		straight = true
		digits = [5]int{5, 4, 3, 2, 1}
		ordered = [5]Card{ordered[1], ordered[2], ordered[3], ordered[4], ordered[0]}
	}

	var category HandCategory
	switch first, second := counts[digits[0]], counts[ordered[2].Value()]; {
	case straight && flush && digits[0] == 14:
		category = RoyalFlush
	case straight && flush:
		category = StraightFlush
	case first == 4:
		category = FourOfAKind
	case first == 3 && counts[digits[3]] == 2:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case first == 3:
		category = ThreeOfAKind
	case first == 2 && second == 2:
		category = TwoPair
	case first == 2:
		category = OnePair
	default:
		category = HighCard
	}

	cards := make([]Card, 5)
	copy(cards, ordered[:])
	return HandResult{
		Category:    category,
		Score:       scoreOf(category, digits),
		Description: describe(category, ordered),
		Cards:       cards,
	}
}

func scoreOf(category HandCategory, digits [5]int) int {
	score := int(category)
	for _, d := range digits {
		score = score*scoreBase + d
	}
	return score
}

// describe names the hand from cards ordered by significance.
func describe(category HandCategory, cards [5]Card) string {
	r := func(i int) uint8 { return cards[i].Rank() }
	switch category {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", RankName(r(0)))
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", RankPlural(r(0)))
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", RankPlural(r(0)), RankPlural(r(3)))
	case Flush:
		return fmt.Sprintf("Flush, %s high", RankName(r(0)))
	case Straight:
		return fmt.Sprintf("Straight, %s high", RankName(r(0)))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", RankPlural(r(0)))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", RankPlural(r(0)), RankPlural(r(2)))
	case OnePair:
		return fmt.Sprintf("Pair of %s", RankPlural(r(0)))
	default:
		return fmt.Sprintf("High Card, %s", RankName(r(0)))
	}
}
