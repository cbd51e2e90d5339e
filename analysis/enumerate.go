package analysis

import (
	"fmt"

	"github.com/lox/trideck/poker"
)

// Extreme is one end of the range of possible hands on a board.
type Extreme struct {
	Hole  [2]poker.Card
	Value poker.HandValue
	Desc  string
}

// BoardRange is the outcome of exhaustively enumerating every possible
// two-card holding against a fixed board.
type BoardRange struct {
	Best   Extreme
	Worst  Extreme
	Combos int
}

// EnumerateBoard classifies every unordered pair of cards remaining in
// the deck against the given community cards and reports the strongest
// and weakest possible holdings. With at most 27 cards this is at most
// C(27,2) = 351 classifications, cheap enough to run synchronously.
func EnumerateBoard(board []poker.Card) (BoardRange, error) {
	if len(board) > 5 {
		return BoardRange{}, fmt.Errorf("%w: more than 5 board cards", poker.ErrInvalidInput)
	}
	if err := poker.CardsDistinct(board); err != nil {
		return BoardRange{}, err
	}

	seen := NewCardSet(board)
	remaining := make([]poker.Card, 0, poker.NumCards)
	for id := poker.Card(0); id < poker.NumCards; id++ {
		if !seen.Contains(id) {
			remaining = append(remaining, id)
		}
	}

	var br BoardRange
	hole := make([]poker.Card, 2)
	for i := 0; i < len(remaining); i++ {
		for j := i + 1; j < len(remaining); j++ {
			hole[0], hole[1] = remaining[i], remaining[j]
			hv, err := poker.Classify(hole, board)
			if err != nil {
				return BoardRange{}, err
			}

			if br.Combos == 0 || hv.Score > br.Best.Value.Score {
				br.Best = newExtreme(hole[0], hole[1], hv)
			}
			if br.Combos == 0 || hv.Score < br.Worst.Value.Score {
				br.Worst = newExtreme(hole[0], hole[1], hv)
			}
			br.Combos++
		}
	}

	return br, nil
}

func newExtreme(a, b poker.Card, hv poker.HandValue) Extreme {
	return Extreme{
		Hole:  [2]poker.Card{a, b},
		Value: hv,
		Desc:  fmt.Sprintf("%s with %s %s", hv, a, b),
	}
}

// RelativeStrength normalizes a hand's strength against the best possible
// hand on the board: 1.0 means the player holds the nuts.
func RelativeStrength(hole, board []poker.Card) (float64, error) {
	if err := poker.CardsDistinct(hole, board); err != nil {
		return 0, err
	}

	own, err := poker.Classify(hole, board)
	if err != nil {
		return 0, err
	}

	br, err := EnumerateBoard(board)
	if err != nil {
		return 0, err
	}
	if br.Combos == 0 || br.Best.Value.Score == 0 {
		return 0, fmt.Errorf("%w: no candidate holdings on board", poker.ErrInvalidInput)
	}

	return own.Score / br.Best.Value.Score, nil
}
