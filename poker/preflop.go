package poker

// HoleCardCategory buckets a starting hand by preflop strength.
type HoleCardCategory uint8

const (
	CategoryUnknown HoleCardCategory = iota
	CategoryTrash
	CategoryWeak
	CategoryMedium
	CategoryStrong
	CategoryPremium
)

func (c HoleCardCategory) String() string {
	switch c {
	case CategoryPremium:
		return "Premium"
	case CategoryStrong:
		return "Strong"
	case CategoryMedium:
		return "Medium"
	case CategoryWeak:
		return "Weak"
	case CategoryTrash:
		return "Trash"
	default:
		return "Unknown"
	}
}

// CategorizeHoleCards buckets two hole cards: Premium (JJ+, AK), Strong (TT,
// AQ, AJ), Medium (77-99, suited broadway), Weak (22-66, suited cards within
// two ranks) and Trash for the rest. Anything other than two distinct valid
// cards is Unknown.
func CategorizeHoleCards(hole []Card) HoleCardCategory {
	if len(hole) != 2 || !hole[0].IsValid() || !hole[1].IsValid() || hole[0] == hole[1] {
		return CategoryUnknown
	}
	high, low := hole[0].Value(), hole[1].Value()
	if low > high {
		high, low = low, high
	}
	pair := high == low
	suited := hole[0].Suit() == hole[1].Suit()

	switch {
	case pair && high >= 11, high == 14 && low == 13:
		return CategoryPremium
	case pair && high == 10, high == 14 && low >= 11:
		return CategoryStrong
	case pair && high >= 7, suited && low >= 10:
		return CategoryMedium
	case pair, suited && high-low <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}

// StartingHand returns the shorthand for two hole cards, e.g. "AKs", "T9o" or "77".
func StartingHand(a, b Card) string {
	if b.Value() > a.Value() {
		a, b = b, a
	}
	out := []byte{rankChars[a.Rank()], rankChars[b.Rank()]}
	switch {
	case a.Rank() == b.Rank():
	case a.Suit() == b.Suit():
		out = append(out, 's')
	default:
		out = append(out, 'o')
	}
	return string(out)
}
