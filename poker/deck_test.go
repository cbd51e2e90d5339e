package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/trideck/internal/randutil"
)

func TestDeckDealsAllCardsOnce(t *testing.T) {
	d := NewDeck(randutil.New(1))

	seen := make(map[Card]bool)
	for i := 0; i < NumCards; i++ {
		c := d.DealOne()
		require.True(t, c.Valid())
		require.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
	}

	assert.Equal(t, NumCards, len(seen))
	assert.Equal(t, 0, d.CardsRemaining())
	assert.Equal(t, NoCard, d.DealOne())
}

func TestDeckDeal(t *testing.T) {
	d := NewDeck(randutil.New(2))

	hole := d.Deal(2)
	require.Len(t, hole, 2)
	assert.Equal(t, NumCards-2, d.CardsRemaining())

	assert.Nil(t, d.Deal(NumCards))
}

func TestDeckShuffleDeterministic(t *testing.T) {
	d1 := NewDeck(randutil.New(7))
	d2 := NewDeck(randutil.New(7))

	for i := 0; i < NumCards; i++ {
		assert.Equal(t, d1.DealOne(), d2.DealOne())
	}
}

func TestDeckReset(t *testing.T) {
	d := NewDeck(randutil.New(3))
	d.Deal(10)
	d.Reset()
	assert.Equal(t, NumCards, d.CardsRemaining())
}
