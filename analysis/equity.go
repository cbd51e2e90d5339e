// Package analysis provides equity estimation and board analysis for the
// 27-card deck: Monte Carlo win-probability simulation against a random
// opponent and exhaustive enumeration of hole-card combinations.
package analysis

import (
	"fmt"
	"math"
	rand "math/rand/v2"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/trideck/internal/randutil"
	"github.com/lox/trideck/poker"
)

// DefaultTrials is the trial count used when Options.Trials is zero.
const DefaultTrials = 300

// Workers re-check the time budget every budgetCheckInterval trials.
const budgetCheckInterval = 64

// CardSet is a bitset over the 27 card ids for fast membership checks.
type CardSet uint32

// Add adds a card to the set.
func (cs *CardSet) Add(c poker.Card) {
	*cs |= 1 << uint8(c)
}

// Contains checks if a card is in the set.
func (cs CardSet) Contains(c poker.Card) bool {
	return cs&(1<<uint8(c)) != 0
}

// NewCardSet creates a CardSet from card slices.
func NewCardSet(groups ...[]poker.Card) CardSet {
	var cs CardSet
	for _, cards := range groups {
		for _, c := range cards {
			cs.Add(c)
		}
	}
	return cs
}

// Options configures a simulation run. The zero value gives DefaultTrials
// trials on all CPUs with a time-based seed and no budget.
type Options struct {
	// Trials is the number of Monte Carlo trials (default DefaultTrials).
	Trials int

	// Workers caps the worker goroutines (default NumCPU, capped at 8).
	Workers int

	// Seed makes the simulation reproducible. Worker w draws from an
	// independent stream derived from Seed and w.
	Seed int64

	// Budget optionally bounds wall-clock time. When exceeded the
	// estimate is computed from the trials completed so far.
	Budget time.Duration

	// Clock is the time source for the budget; nil uses the real clock.
	// Injected so tests can control budget expiry.
	Clock quartz.Clock
}

// EquityResult accumulates trial outcomes.
type EquityResult struct {
	Wins   int
	Ties   int
	Losses int
	Trials int

	// Categories tallies the hero's classified category per trial,
	// indexed by poker.Category.
	Categories [8]int
}

// Equity returns win probability with ties at half weight. A degenerate
// simulation with zero trials resolves to the neutral 0.5 rather than
// an error so callers always get a usable number.
func (e EquityResult) Equity() float64 {
	if e.Trials == 0 {
		return 0.5
	}
	return (float64(e.Wins) + float64(e.Ties)/2.0) / float64(e.Trials)
}

// WinRate returns the fraction of trials won outright.
func (e EquityResult) WinRate() float64 {
	if e.Trials == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Trials)
}

// TieRate returns the fraction of trials tied.
func (e EquityResult) TieRate() float64 {
	if e.Trials == 0 {
		return 0
	}
	return float64(e.Ties) / float64(e.Trials)
}

// LossRate returns the fraction of trials lost.
func (e EquityResult) LossRate() float64 {
	if e.Trials == 0 {
		return 0
	}
	return float64(e.Losses) / float64(e.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for the equity
// estimate, clamped to [0,1].
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	if e.Trials == 0 {
		return 0.5, 0.5
	}
	equity := e.Equity()
	se := math.Sqrt(equity * (1.0 - equity) / float64(e.Trials))
	margin := 1.96 * se
	return math.Max(0, equity-margin), math.Min(1, equity+margin)
}

func (e *EquityResult) merge(o EquityResult) {
	e.Wins += o.Wins
	e.Ties += o.Ties
	e.Losses += o.Losses
	e.Trials += o.Trials
	for i, n := range o.Categories {
		e.Categories[i] += n
	}
}

// EstimateEquity estimates the probability that the hole cards beat a
// uniformly random opponent at showdown. Each trial completes the board
// to five cards and the opponent to two cards from the unseen portion of
// the deck, classifies both hands and scores win=1, tie=0.5.
//
// revealed holds opponent cards already known to the player (from a
// discard or draw mechanic); they are excluded from sampling and seed
// the opponent's hand.
func EstimateEquity(hole, board, revealed []poker.Card, opts Options) (EquityResult, error) {
	if len(hole) < 2 {
		return EquityResult{}, fmt.Errorf("%w: need 2 hole cards, got %d", poker.ErrInsufficientCards, len(hole))
	}
	if len(hole) > 2 {
		return EquityResult{}, fmt.Errorf("%w: more than 2 hole cards", poker.ErrInvalidInput)
	}
	if len(board) > 5 {
		return EquityResult{}, fmt.Errorf("%w: more than 5 board cards", poker.ErrInvalidInput)
	}
	if len(revealed) > 2 {
		return EquityResult{}, fmt.Errorf("%w: more than 2 revealed opponent cards", poker.ErrInvalidInput)
	}
	// Every input card must be a real card. The NoCard sentinel never
	// participates in evaluation, so it is rejected here rather than
	// skipped the way CardsDistinct treats it.
	for _, group := range [][]poker.Card{hole, board, revealed} {
		for _, c := range group {
			if !c.Valid() {
				return EquityResult{}, fmt.Errorf("%w: card %s", poker.ErrInvalidInput, c)
			}
		}
	}
	if err := poker.CardsDistinct(hole, board, revealed); err != nil {
		return EquityResult{}, err
	}

	trials := opts.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > 8 {
		workers = 8
	}
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	seen := NewCardSet(hole, board, revealed)
	unseen := make([]poker.Card, 0, poker.NumCards)
	for id := poker.Card(0); id < poker.NumCards; id++ {
		if !seen.Contains(id) {
			unseen = append(unseen, id)
		}
	}

	need := (2 - len(revealed)) + (5 - len(board))
	if len(unseen) < need {
		// Exhausted deck: degenerate but not an error. Zero trials
		// resolve to the neutral 0.5 equity.
		return EquityResult{}, nil
	}

	var deadline time.Time
	if opts.Budget > 0 {
		deadline = clock.Now().Add(opts.Budget)
	}

	sim := &simulation{
		hole:     hole,
		board:    board,
		revealed: revealed,
		unseen:   unseen,
		deadline: deadline,
		clock:    clock,
	}

	// Worker fan-out only pays off for larger runs.
	if workers <= 1 || trials < 2*budgetCheckInterval*workers {
		return sim.run(trials, randutil.Stream(opts.Seed, 0))
	}

	perWorker := trials / workers
	remainder := trials % workers

	results := make([]EquityResult, workers)
	var g errgroup.Group
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++
		}
		rng := randutil.Stream(opts.Seed, w)
		g.Go(func() error {
			var err error
			results[w], err = sim.run(n, rng)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var total EquityResult
	for _, r := range results {
		total.merge(r)
	}
	return total, nil
}

// simulation holds the immutable trial inputs shared by all workers.
type simulation struct {
	hole     []poker.Card
	board    []poker.Card
	revealed []poker.Card
	unseen   []poker.Card
	deadline time.Time
	clock    quartz.Clock
}

// run executes trials sequentially with the given RNG. Each trial does a
// partial Fisher-Yates over a worker-owned copy of the unseen cards, so
// samples are uniform without replacement within a trial. Inputs are
// validated before workers start, so a classification failure here is a
// bug surfaced to the caller, never skipped.
func (s *simulation) run(trials int, rng *rand.Rand) (EquityResult, error) {
	var res EquityResult

	cards := make([]poker.Card, len(s.unseen))
	copy(cards, s.unseen)

	oppNeed := 2 - len(s.revealed)
	need := oppNeed + (5 - len(s.board))

	oppHole := make([]poker.Card, 2)
	copy(oppHole, s.revealed)
	fullBoard := make([]poker.Card, 5)
	copy(fullBoard, s.board)

	for i := 0; i < trials; i++ {
		if !s.deadline.IsZero() && i%budgetCheckInterval == 0 && i > 0 {
			if s.clock.Now().After(s.deadline) {
				break
			}
		}

		for k := 0; k < need; k++ {
			j := k + rng.IntN(len(cards)-k)
			cards[k], cards[j] = cards[j], cards[k]
		}
		copy(oppHole[len(s.revealed):], cards[:oppNeed])
		copy(fullBoard[len(s.board):], cards[oppNeed:need])

		hero, err := poker.Classify(s.hole, fullBoard)
		if err != nil {
			return res, err
		}
		opp, err := poker.Classify(oppHole, fullBoard)
		if err != nil {
			return res, err
		}

		switch {
		case hero.Score > opp.Score:
			res.Wins++
		case hero.Score < opp.Score:
			res.Losses++
		default:
			res.Ties++
		}
		res.Categories[hero.Category]++
		res.Trials++
	}

	return res, nil
}
