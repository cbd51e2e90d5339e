// Package poker implements hand evaluation for the 27-card deck used by
// trideck games: ranks 2-9 plus ace, in diamonds, hearts and spades.
// There are no face cards and no clubs, so four of a kind is impossible.
package poker

import (
	"fmt"
	"strings"
)

// Card is a compact card identifier in [0,26]: suit*9 + rank.
// NoCard marks an absent or unknown card.
type Card int8

// NoCard is the sentinel for "no card here". It never participates in
// classification and formats as "??".
const NoCard Card = -1

const (
	NumRanks = 9
	NumSuits = 3
	NumCards = NumRanks * NumSuits
)

// Rank constants (0-8). Ace is high except when it plays low in the wheel.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ace
)

// Suit constants (0-2)
const (
	Diamonds uint8 = iota
	Hearts
	Spades
)

const (
	rankChars = "23456789A"
	suitChars = "dhs"
)

// NewCard creates a card from rank and suit.
func NewCard(rank, suit uint8) (Card, error) {
	if rank >= NumRanks {
		return NoCard, fmt.Errorf("%w: rank %d out of range", ErrInvalidInput, rank)
	}
	if suit >= NumSuits {
		return NoCard, fmt.Errorf("%w: suit %d out of range", ErrInvalidInput, suit)
	}
	return Card(suit*NumRanks + rank), nil
}

// Valid reports whether the card is a real card (not NoCard, not out of range).
func (c Card) Valid() bool {
	return c >= 0 && c < NumCards
}

// Rank returns the rank of the card (0-8), or 255 for invalid cards.
func (c Card) Rank() uint8 {
	if !c.Valid() {
		return 255
	}
	return uint8(c) % NumRanks
}

// Suit returns the suit of the card (0-2), or 255 for invalid cards.
func (c Card) Suit() uint8 {
	if !c.Valid() {
		return 255
	}
	return uint8(c) / NumRanks
}

// RankValue returns the display value of the card's rank: 2-9 for number
// cards and 10 for the ace.
func (c Card) RankValue() int {
	r := c.Rank()
	if r == Ace {
		return 10
	}
	if r == 255 {
		return 0
	}
	return int(r) + 2
}

// String returns the two-character notation (e.g. "As", "7d").
// Invalid cards, including NoCard, render as "??".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// ParseCard parses two-character notation like "As" into a Card.
// Rank characters are 2-9 or A/a; suits are d, h or s, case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return NoCard, fmt.Errorf("%w: card %q must be two characters", ErrParse, s)
	}

	var rank uint8
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = s[0] - '2'
	case 'A', 'a':
		rank = Ace
	default:
		return NoCard, fmt.Errorf("%w: invalid rank %q", ErrParse, s[0])
	}

	var suit uint8
	switch s[1] {
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return NoCard, fmt.Errorf("%w: invalid suit %q", ErrParse, s[1])
	}

	return Card(suit*NumRanks + rank), nil
}

// MustParseCard parses notation and panics on failure. Test helper.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses whitespace-separated notation like "As 7d 2h".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses notation and panics on failure. Test helper.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards as space-separated notation.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// CardsDistinct verifies that no card appears twice across the given
// groups. The sentinel NoCard is ignored.
func CardsDistinct(groups ...[]Card) error {
	var seen uint32
	for _, group := range groups {
		for _, c := range group {
			if c == NoCard {
				continue
			}
			if !c.Valid() {
				return fmt.Errorf("%w: card id %d out of range", ErrInvalidInput, c)
			}
			bit := uint32(1) << uint8(c)
			if seen&bit != 0 {
				return fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
			}
			seen |= bit
		}
	}
	return nil
}

// Suited reports whether all cards share a suit.
func Suited(cards ...Card) bool {
	if len(cards) < 2 {
		return false
	}
	suit := cards[0].Suit()
	for _, c := range cards[1:] {
		if c.Suit() != suit {
			return false
		}
	}
	return true
}
