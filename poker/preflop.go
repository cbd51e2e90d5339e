package poker

import "fmt"

// PreflopStrength estimates the strength of two hole cards before any
// community cards are dealt. Classification needs a five-card hand to say
// anything about draws, so preflop play uses this closed-form table
// instead. The scale is deliberately separate from the classifier's
// bands; the two are never compared against each other.
func PreflopStrength(a, b Card) (float64, error) {
	if !a.Valid() || !b.Valid() {
		return 0, fmt.Errorf("%w: preflop cards %s %s", ErrInvalidInput, a, b)
	}

	high, low := a.Rank(), b.Rank()
	if high < low {
		high, low = low, high
	}
	suited := a.Suit() == b.Suit()

	// Pocket pairs
	if high == low {
		switch {
		case high == Ace:
			return 0.95, nil
		case high >= Seven:
			return 0.85 + float64(high-Seven)*0.03, nil
		case high >= Five:
			return 0.65 + float64(high-Five)*0.05, nil
		default:
			return 0.50 + float64(high)*0.05, nil
		}
	}

	// Ace-high hands
	if high == Ace {
		switch {
		case low >= Nine:
			return suitedBonus(0.65, 0.10, suited), nil
		case low >= Seven:
			return suitedBonus(0.55, 0.15, suited), nil
		default:
			return suitedBonus(0.40, 0.15, suited), nil
		}
	}

	// Connected cards with a decent high card
	if high-low == 1 && high >= Eight {
		return suitedBonus(0.35, 0.15, suited), nil
	}

	if high >= Eight {
		return suitedBonus(0.30, 0.10, suited), nil
	}

	return suitedBonus(0.20, 0.10, suited), nil
}

func suitedBonus(base, bonus float64, suited bool) float64 {
	if suited {
		return base + bonus
	}
	return base
}
