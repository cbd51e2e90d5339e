package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, hole, board string) HandValue {
	t.Helper()
	hv, err := Classify(MustParseCards(hole), MustParseCards(board))
	require.NoError(t, err)
	return hv
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		board    string
		category Category
		score    float64
		desc     string
	}{
		{
			name: "pair of aces held", hole: "As Ad", board: "3h 5d 7s",
			category: Pair, score: 0.30 + 1.0*0.12 + 0.03*(5.0/8), desc: "Pair of Aces",
		},
		{
			name: "pair of sevens held", hole: "7s 7d", board: "3h 5d 9s",
			category: Pair, score: 0.30 + (5.0/8)*0.12 + 0.03*(7.0/8), desc: "Pair of Sevens",
		},
		{
			name: "pair of twos held", hole: "2s 2d", board: "3h 5d 7s",
			category: Pair, score: 0.30 + 0 + 0.03*(5.0/8), desc: "Pair of Twos",
		},
		{
			name: "board-only pair of twos", hole: "As 7d", board: "2h 2s 5d",
			category: Pair, score: 0.25 + 0 + 0.03*1.0, desc: "Pair of Twos",
		},
		{
			name: "pocket pair no board", hole: "As Ad", board: "",
			category: Pair, score: 0.30 + 1.0*0.12, desc: "Pair of Aces",
		},
		{
			name: "two cards high card", hole: "As 9d", board: "",
			category: HighCard, score: 0.10 + 1.0*0.14, desc: "Ace High",
		},
		{
			name: "high card", hole: "2s 9d", board: "4h 6s 8d",
			category: HighCard, score: 0.10 + (7.0/8)*0.14, desc: "Nine High",
		},
		{
			name: "two pair", hole: "9s 9d", board: "7h 7s 2d",
			category: TwoPair, score: 0.45 + (7.0/8)*0.10 + (5.0/8)*0.04, desc: "Two Pair, Nines and Sevens",
		},
		{
			name: "three of a kind", hole: "As 7d", board: "7h 7s 5d",
			category: ThreeOfAKind, score: 0.60 + (5.0/8)*0.09, desc: "Three of a Kind, Sevens",
		},
		{
			name: "wheel straight ace plays low", hole: "As 2d", board: "3h 4s 5d",
			category: Straight, score: 0.70 + (3.0/8)*0.09, desc: "Straight, Five high",
		},
		{
			name: "ace-high straight", hole: "6s 7d", board: "8h 9s Ad",
			category: Straight, score: 0.70 + 1.0*0.09, desc: "Straight, Ace high",
		},
		{
			name: "six-card run takes the top straight", hole: "2d 3h", board: "4s 5d 6h 7s",
			category: Straight, score: 0.70 + (5.0/8)*0.09, desc: "Straight, Seven high",
		},
		{
			name: "wheel plus higher run prefers the run", hole: "As 2d", board: "3h 4s 5d 6h",
			category: Straight, score: 0.70 + (4.0/8)*0.09, desc: "Straight, Six high",
		},
		{
			name: "flush", hole: "As 3s", board: "5s 7s 9s",
			category: Flush, score: 0.80 + 1.0*0.09, desc: "Flush, Ace high",
		},
		{
			name: "full house sevens over twos", hole: "7s 7d", board: "7h 2s 2d",
			category: FullHouse, score: 0.90 + (5.0/8)*0.07 + 0*0.01, desc: "Full House, Sevens over Twos",
		},
		{
			name: "full house twos over sevens", hole: "2s 2d", board: "2h 7s 7d",
			category: FullHouse, score: 0.90 + 0*0.07 + (5.0/8)*0.01, desc: "Full House, Twos over Sevens",
		},
		{
			name: "double trips score on the top trips", hole: "7s 7d", board: "7h 2s 2d 2h",
			category: FullHouse, score: 0.90 + (5.0/8)*0.08, desc: "Full House, Sevens over Twos",
		},
		{
			name: "straight flush wheel", hole: "2s 3s", board: "4s 5s As",
			category: StraightFlush, score: 0.99, desc: "Straight Flush, Five high",
		},
		{
			name: "straight flush ace high scores the same", hole: "6h 7h", board: "8h 9h Ah",
			category: StraightFlush, score: 0.99, desc: "Straight Flush, Ace high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hv := classify(t, tt.hole, tt.board)
			assert.Equal(t, tt.category, hv.Category, "category")
			assert.InDelta(t, tt.score, hv.Score, 1e-9, "score")
			assert.Equal(t, tt.desc, hv.String(), "description")
		})
	}
}

func TestClassifyScoreBands(t *testing.T) {
	// Every category's score must fall inside its fixed band so that
	// scores compare correctly across categories.
	bands := map[Category][2]float64{
		HighCard:      {0.10, 0.24},
		Pair:          {0.25, 0.44},
		TwoPair:       {0.45, 0.59},
		ThreeOfAKind:  {0.60, 0.69},
		Straight:      {0.70, 0.79},
		Flush:         {0.80, 0.89},
		FullHouse:     {0.90, 0.98},
		StraightFlush: {0.99, 0.99},
	}

	hands := []struct{ hole, board string }{
		{"2s 9d", "4h 6s 8d"},
		{"2s 4d", "3h 6s 8d"},
		{"As Ad", "3h 5d 7s"},
		{"2s 2d", "3h 5d 7s"},
		{"As 7d", "2h 2s 5d"},
		{"9s 9d", "7h 7s 2d"},
		{"2s 2d", "3h 3s 5d"},
		{"As 7d", "7h 7s 5d"},
		{"As 2d", "2h 2s 5d"},
		{"As 2d", "3h 4s 5d"},
		{"6s 7d", "8h 9s Ad"},
		{"As 3s", "5s 7s 9s"},
		{"2h 4h", "5h 7h 9h"},
		{"7s 7d", "7h 2s 2d"},
		{"As Ad", "Ah 9s 9d"},
		{"2s 2d", "2h 3s 3d"},
		{"2s 3s", "4s 5s As"},
	}

	for _, h := range hands {
		hv := classify(t, h.hole, h.board)
		band, ok := bands[hv.Category]
		require.True(t, ok, "unexpected category %s", hv.Category)
		assert.GreaterOrEqual(t, hv.Score, band[0], "%s + %s (%s)", h.hole, h.board, hv.Category)
		assert.LessOrEqual(t, hv.Score, band[1], "%s + %s (%s)", h.hole, h.board, hv.Category)
	}
}

func TestClassifyCategoryMonotonicity(t *testing.T) {
	// A hand in a higher category always outscores any hand in a lower
	// one, regardless of kickers: compare the strongest example of each
	// category against the weakest example of the next.
	ladder := []struct{ hole, board string }{
		{"2s 4d", "3h 6s 8d"},      // weak high card
		{"As 9d", "4h 6s 8d"},      // best high card
		{"As 7d", "2h 2s 4d"},      // weak board pair
		{"As Ad", "3h 5d 7s"},      // strong held pair
		{"2s 2d", "3h 3s 6d"},      // weak two pair
		{"As Ad", "9h 9s 5d"},      // strong two pair
		{"4s 2d", "2h 2s 6d"},      // weak trips
		{"As Ad", "Ah 5s 9d"},      // strong trips
		{"As 2d", "3h 4s 5d"},      // wheel
		{"6s 7d", "8h 9s Ad"},      // ace-high straight
		{"2h 4h", "5h 7h 9h"},      // weak flush
		{"As 3s", "5s 7s 9s"},      // ace-high flush
		{"2s 2d", "2h 3s 3d"},      // weak full house
		{"As Ad", "Ah 9s 9d"},      // top full house
		{"2s 3s", "4s 5s As"},      // straight flush
	}

	prev := -1.0
	prevCat := Category(0)
	for _, h := range ladder {
		hv := classify(t, h.hole, h.board)
		if hv.Category > prevCat {
			assert.Greater(t, hv.Score, prev, "%s + %s must beat previous category", h.hole, h.board)
		}
		prev = hv.Score
		prevCat = hv.Category
	}
}

func TestClassifyStraightFlushBeatsEveryFullHouse(t *testing.T) {
	sf := classify(t, "2s 3s", "4s 5s As")
	assert.Equal(t, 0.99, sf.Score)

	// Aces full of nines is the strongest possible full house.
	fh := classify(t, "As Ad", "Ah 9s 9d")
	assert.InDelta(t, 0.90+0.07+(7.0/8)*0.01, fh.Score, 1e-9)
	assert.Less(t, fh.Score, sf.Score)
}

func TestClassifyHeldPairBeatsBoardPair(t *testing.T) {
	held := classify(t, "2s 7d", "7h 3h 5d")
	board := classify(t, "2s 7d", "2h 3h 5d")

	assert.Equal(t, Pair, held.Category)
	assert.Equal(t, Pair, board.Category)
	assert.Greater(t, held.Score, board.Score)
}

func TestClassifyPairClamp(t *testing.T) {
	// Held pair of aces with the best kicker pushes against the cap.
	hv := classify(t, "As Ad", "9h 5d 7s")
	assert.LessOrEqual(t, hv.Score, 0.44)
}

func TestClassifyErrors(t *testing.T) {
	_, err := Classify(MustParseCards("As"), nil)
	assert.ErrorIs(t, err, ErrInsufficientCards)

	_, err = Classify(nil, MustParseCards("2h 3h 5d"))
	assert.ErrorIs(t, err, ErrInsufficientCards)

	_, err = Classify(MustParseCards("As Ad 2h"), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Classify(MustParseCards("As Ad"), MustParseCards("2h 3h 4h 5h 6h 7h"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Classify([]Card{MustParseCard("As"), NoCard}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Classify(MustParseCards("As Ad"), []Card{Card(30)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
