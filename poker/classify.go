package poker

import (
	"fmt"
	"math/bits"
)

// Category enumerates hand categories from weakest to strongest. With
// only three suits four of a kind cannot occur, so it has no value here.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
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
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score bands per category. Scores are monotone with category and, within
// a category, with the deciding ranks. The straight flush score is fixed
// at 0.99 regardless of rank; that asymmetry is intentional.
const (
	highCardBase      = 0.10
	heldPairBase      = 0.30
	boardPairBase     = 0.25
	pairCap           = 0.44
	twoPairBase       = 0.45
	threeOfAKindBase  = 0.60
	straightBase      = 0.70
	flushBase         = 0.80
	fullHouseBase     = 0.90
	straightFlushBody = 0.99
)

// HandValue is the result of classification: the category, a normalized
// strength score in [0,1], and the deciding ranks for display.
type HandValue struct {
	Category Category
	Score    float64
	High     uint8 // deciding rank (pair rank, straight high, ...)
	Second   uint8 // secondary rank (low pair, full house filler), 255 if unused
}

const noRank = 255

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ace",
}

var rankPlurals = [NumRanks]string{
	"Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights", "Nines", "Aces",
}

// String returns a description like "Pair of Sevens" or "Straight, Nine high".
func (hv HandValue) String() string {
	switch hv.Category {
	case HighCard:
		return fmt.Sprintf("%s High", rankNames[hv.High])
	case Pair:
		return fmt.Sprintf("Pair of %s", rankPlurals[hv.High])
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", rankPlurals[hv.High], rankPlurals[hv.Second])
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", rankPlurals[hv.High])
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankNames[hv.High])
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankNames[hv.High])
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", rankPlurals[hv.High], rankPlurals[hv.Second])
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", rankNames[hv.High])
	default:
		return "Unknown"
	}
}

// Classify determines the best 5-card category across the hole and board
// cards and produces the normalized strength score. The hole cards are
// the player's own two cards; they matter because a pair made with a hole
// card scores higher than a pair sitting entirely on the board.
//
// At least two hole cards are required. The caller guarantees the cards
// are distinct; board may hold 0-5 cards.
func Classify(hole []Card, board []Card) (HandValue, error) {
	if len(hole) < 2 {
		return HandValue{}, fmt.Errorf("%w: need 2 hole cards, got %d", ErrInsufficientCards, len(hole))
	}
	if len(hole) > 2 || len(board) > 5 {
		return HandValue{}, fmt.Errorf("%w: at most 2 hole and 5 board cards", ErrInvalidInput)
	}

	var suitMasks [NumSuits]uint16
	var rankCount [NumRanks]uint8
	tally := func(cards []Card) error {
		for _, c := range cards {
			if !c.Valid() {
				return fmt.Errorf("%w: card %s", ErrInvalidInput, c)
			}
			suitMasks[c.Suit()] |= 1 << c.Rank()
			rankCount[c.Rank()]++
		}
		return nil
	}
	if err := tally(hole); err != nil {
		return HandValue{}, err
	}
	if err := tally(board); err != nil {
		return HandValue{}, err
	}

	rankMask := suitMasks[0] | suitMasks[1] | suitMasks[2]

	// Flush: any suit with five or more cards. At most one suit can
	// qualify out of seven cards.
	flushSuit := -1
	for suit, mask := range suitMasks {
		if bits.OnesCount16(mask) >= 5 {
			flushSuit = suit
			break
		}
	}

	// Straight flush outranks everything; the score is a fixed 0.99
	// regardless of the straight's rank.
	if flushSuit >= 0 {
		if high := straightHigh(suitMasks[flushSuit]); high >= 0 {
			return HandValue{
				Category: StraightFlush,
				Score:    straightFlushBody,
				High:     uint8(high),
				Second:   noRank,
			}, nil
		}
	}

	// Rank multiples. Three suits cap any rank at a count of three.
	var tripsMask, pairsMask uint16
	for r := uint8(0); r < NumRanks; r++ {
		switch rankCount[r] {
		case 3:
			tripsMask |= 1 << r
		case 2:
			pairsMask |= 1 << r
		}
	}

	if tripsMask != 0 {
		trip := uint8(bits.Len16(tripsMask) - 1)
		if pairsMask != 0 {
			pair := uint8(bits.Len16(pairsMask) - 1)
			score := fullHouseBase + rankFrac(trip)*0.07 + rankFrac(pair)*0.01
			return HandValue{Category: FullHouse, Score: score, High: trip, Second: pair}, nil
		}
		if second := tripsMask &^ (1 << trip); second != 0 {
			// Two sets of trips and no real pair: the lower trips
			// fill the house, scored on the top trips alone.
			filler := uint8(bits.Len16(second) - 1)
			score := fullHouseBase + rankFrac(trip)*0.08
			return HandValue{Category: FullHouse, Score: score, High: trip, Second: filler}, nil
		}
	}

	if flushSuit >= 0 {
		high := uint8(bits.Len16(suitMasks[flushSuit]) - 1)
		score := flushBase + rankFrac(high)*0.09
		return HandValue{Category: Flush, Score: score, High: high, Second: noRank}, nil
	}

	if high := straightHigh(rankMask); high >= 0 {
		score := straightBase + rankFrac(uint8(high))*0.09
		return HandValue{Category: Straight, Score: score, High: uint8(high), Second: noRank}, nil
	}

	if tripsMask != 0 {
		trip := uint8(bits.Len16(tripsMask) - 1)
		score := threeOfAKindBase + rankFrac(trip)*0.09
		return HandValue{Category: ThreeOfAKind, Score: score, High: trip, Second: noRank}, nil
	}

	if bits.OnesCount16(pairsMask) >= 2 {
		top := uint8(bits.Len16(pairsMask) - 1)
		second := uint8(bits.Len16(pairsMask&^(1<<top)) - 1)
		score := twoPairBase + rankFrac(top)*0.10 + rankFrac(second)*0.04
		return HandValue{Category: TwoPair, Score: score, High: top, Second: second}, nil
	}

	if pairsMask != 0 {
		pair := uint8(bits.Len16(pairsMask) - 1)

		// A pair made with a hole card is worth more than one that
		// sits entirely on the board.
		held := hole[0].Rank() == pair || hole[1].Rank() == pair

		var kickerBonus float64
		if rest := rankMask &^ (1 << pair); rest != 0 {
			kicker := uint8(bits.Len16(rest) - 1)
			kickerBonus = 0.03 * rankFrac(kicker)
		}

		var score float64
		if held {
			score = heldPairBase + rankFrac(pair)*0.12 + kickerBonus
		} else {
			score = boardPairBase + rankFrac(pair)*0.10 + kickerBonus
		}
		return HandValue{Category: Pair, Score: min(pairCap, score), High: pair, Second: noRank}, nil
	}

	high := uint8(bits.Len16(rankMask) - 1)
	score := highCardBase + rankFrac(high)*0.14
	return HandValue{Category: HighCard, Score: score, High: high, Second: noRank}, nil
}

// rankFrac normalizes a rank to [0,1] with the ace at 1.
func rankFrac(rank uint8) float64 {
	return float64(rank) / float64(Ace)
}

// straightHigh returns the high rank of the best straight in a 9-bit rank
// mask, or -1 if none. Two wraps are specific to this deck: the wheel
// 2-3-4-5-A plays the ace low (high = Five) and 6-7-8-9-A plays it high.
// The 6-7-8-9-A run is consecutive in rank indices {4..8} so the cascade
// already covers it; only the wheel needs a special case, checked last so
// a higher run always wins.
func straightHigh(mask uint16) int {
	const allRanks = (1 << NumRanks) - 1
	const wheelMask = (1 << Ace) | (1 << Five) | (1 << Four) | (1 << Three) | (1 << Two)

	mask &= allRanks

	// Bitwise cascade identifies five consecutive ranks in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := bits.Len16(seq) - 1
		return low + 4
	}

	if mask&wheelMask == wheelMask {
		return int(Five)
	}

	return -1
}
