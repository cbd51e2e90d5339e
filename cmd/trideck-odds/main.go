package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/trideck/analysis"
	"github.com/lox/trideck/internal/randutil"
	"github.com/lox/trideck/poker"
)

type CLI struct {
	Hand     string        `arg:"" optional:"" help:"Hole cards, e.g. 'As 7d'. Omit to deal a random hand."`
	Board    string        `short:"b" help:"Community cards, e.g. '2s 3h 5d'"`
	Revealed string        `short:"r" help:"Known opponent cards, e.g. '9h'"`
	Trials   *int          `short:"n" help:"Number of Monte Carlo trials"`
	Workers  int           `short:"w" default:"0" help:"Worker goroutines (0 for auto)"`
	Seed     *int64        `help:"Random seed for reproducible results"`
	Budget   time.Duration `help:"Optional wall-clock budget for the simulation"`
	Config   string        `short:"c" type:"path" help:"HCL config file with simulation defaults"`
	Nuts     bool          `help:"Show strength relative to the best possible hand on the board"`
	Verbose  bool          `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trideck-odds"),
		kong.Description("Estimate equity for a 27-card deck poker hand against a random opponent."))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "odds"})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	opts := analysis.Options{
		Workers: cli.Workers,
		Seed:    seed,
		Budget:  cli.Budget,
	}
	if cli.Trials != nil {
		opts.Trials = *cli.Trials
	}
	if cli.Config != "" {
		cfg, err := LoadConfig(cli.Config)
		if err != nil {
			logger.Error("loading config", "path", cli.Config, "err", err)
			ctx.Exit(1)
		}
		applyConfig(&cli, cfg, &opts)
		logger.Debug("loaded config", "path", cli.Config,
			"trials", opts.Trials, "workers", opts.Workers)
	}

	var hole []poker.Card
	var err error
	if cli.Hand == "" {
		// No hand given: deal one at random.
		deck := poker.NewDeck(randutil.New(seed))
		hole = deck.Deal(2)
		logger.Debug("dealt random hand", "hand", poker.FormatCards(hole))
	} else {
		hole, err = poker.ParseCards(cli.Hand)
		if err != nil {
			logger.Error("parsing hand", "err", err)
			ctx.Exit(1)
		}
	}
	if len(hole) != 2 {
		logger.Error("hand must contain exactly 2 cards", "got", len(hole))
		ctx.Exit(1)
	}

	board, err := poker.ParseCards(cli.Board)
	if err != nil {
		logger.Error("parsing board", "err", err)
		ctx.Exit(1)
	}
	revealed, err := poker.ParseCards(cli.Revealed)
	if err != nil {
		logger.Error("parsing revealed cards", "err", err)
		ctx.Exit(1)
	}
	if err := poker.CardsDistinct(hole, board, revealed); err != nil {
		logger.Error("duplicate cards", "err", err)
		ctx.Exit(1)
	}

	start := time.Now()
	result, err := analysis.EstimateEquity(hole, board, revealed, opts)
	if err != nil {
		logger.Error("simulation failed", "err", err)
		ctx.Exit(1)
	}
	duration := time.Since(start)

	display(hole, board, result, cli, duration)
}

func display(hole, board []poker.Card, result analysis.EquityResult, cli CLI, duration time.Duration) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), handStyle.Render(poker.FormatCards(hole)))
	if len(board) > 0 {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("board"), handStyle.Render(poker.FormatCards(board)))
	}

	if len(board) == 0 {
		// Preflop: classification needs a board, use the heuristic table.
		if strength, err := poker.PreflopStrength(hole[0], hole[1]); err == nil {
			fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("preflop"), valueStyle.Render(fmt.Sprintf("%.3f", strength)))
		}
	} else {
		if hv, err := poker.Classify(hole, board); err == nil {
			fmt.Fprintf(w, "%s\t%s (%s)\n", headerStyle.Render("made"),
				categoryStyle.Render(hv.String()),
				valueStyle.Render(fmt.Sprintf("%.3f", hv.Score)))
		}
		if cli.Nuts {
			if rel, err := analysis.RelativeStrength(hole, board); err == nil {
				fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("vs nuts"), valueStyle.Render(fmt.Sprintf("%.1f%%", rel*100)))
			}
		}
	}

	lower, upper := result.ConfidenceInterval()
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("equity"),
		valueStyle.Render(fmt.Sprintf("%.1f%% (95%% CI %.1f-%.1f%%)", result.Equity()*100, lower*100, upper*100)))
	fmt.Fprintf(w, "%s\t%.1f%% win, %.1f%% tie, %.1f%% loss\n", headerStyle.Render("outcomes"),
		result.WinRate()*100, result.TieRate()*100, result.LossRate()*100)
	w.Flush()

	if cli.Verbose {
		displayCategories(result)
	}

	fmt.Printf("\n%d trials in %v\n", result.Trials, duration.Truncate(time.Millisecond))
}

func displayCategories(result analysis.EquityResult) {
	if result.Trials == 0 {
		return
	}
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for cat := int(poker.StraightFlush); cat >= int(poker.HighCard); cat-- {
		count := result.Categories[cat]
		if count == 0 {
			continue
		}
		pct := float64(count) / float64(result.Trials) * 100
		fmt.Fprintf(w, "%s\t%s\n",
			categoryStyle.Render(poker.Category(cat).String()),
			valueStyle.Render(fmt.Sprintf("%.1f%%", pct)))
	}
	w.Flush()
}
