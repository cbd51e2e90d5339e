package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/trideck/analysis"
	"github.com/lox/trideck/poker"
)

type CLI struct {
	Board   string `arg:"" help:"Community cards, e.g. '2s 3h 5d'"`
	Hand    string `optional:"" help:"Optional hole cards to rate against the nuts"`
	Verbose bool   `short:"v" help:"Verbose logging"`
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
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trideck-nuts"),
		kong.Description("Enumerate the best and worst possible holdings for a 27-card deck board."))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "nuts"})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	board, err := poker.ParseCards(cli.Board)
	if err != nil {
		logger.Error("parsing board", "err", err)
		ctx.Exit(1)
	}

	br, err := analysis.EnumerateBoard(board)
	if err != nil {
		logger.Error("enumerating board", "err", err)
		ctx.Exit(1)
	}
	logger.Debug("enumerated holdings", "combos", br.Combos)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("board"), handStyle.Render(poker.FormatCards(board)))
	fmt.Fprintf(w, "%s\t%s (%s)\n", headerStyle.Render("best"),
		handStyle.Render(br.Best.Desc),
		valueStyle.Render(fmt.Sprintf("%.3f", br.Best.Value.Score)))
	fmt.Fprintf(w, "%s\t%s (%s)\n", headerStyle.Render("worst"),
		handStyle.Render(br.Worst.Desc),
		valueStyle.Render(fmt.Sprintf("%.3f", br.Worst.Value.Score)))
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("combos"), br.Combos)

	if cli.Hand != "" {
		hole, err := poker.ParseCards(cli.Hand)
		if err != nil {
			logger.Error("parsing hand", "err", err)
			ctx.Exit(1)
		}
		rel, err := analysis.RelativeStrength(hole, board)
		if err != nil {
			logger.Error("rating hand", "err", err)
			ctx.Exit(1)
		}
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("vs nuts"),
			valueStyle.Render(fmt.Sprintf("%.1f%%", rel*100)))
	}

	w.Flush()
}
