// Package report is the tournament's reporting consumer. It drains finished
// rounds from the scoreboard and prints each leaderboard as a table.
package report

import (
	"fmt"
	"io"

	"battlefleet/internal/scoreboard"
)

// Minimal space allocated for a player name in the table.
const minPlayerNameSize = 12

// Printer formats finished rounds. It is driven by a single consumer
// goroutine, so it keeps its state unlocked.
type Printer struct {
	out         io.Writer
	maxNameSize int
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, maxNameSize: minPlayerNameSize}
}

// PrintRound writes one finished round's leaderboard. The name column starts
// at the minimal width and widens to the longest name seen so far.
func (p *Printer) PrintRound(rr *scoreboard.RoundResults) {
	p.printTable(fmt.Sprintf("Round %d results:", rr.RoundNum), rr.Statistics)
}

// PrintStandings writes a leaderboard under an arbitrary title, used for the
// final table after the last round.
func (p *Printer) PrintStandings(title string, stats []scoreboard.PlayerStatistics) {
	p.printTable(title, stats)
}

func (p *Printer) printTable(title string, stats []scoreboard.PlayerStatistics) {
	for _, st := range stats {
		if len(st.Name) > p.maxNameSize {
			p.maxNameSize = len(st.Name)
		}
	}

	fmt.Fprintf(p.out, "\n%s\n", title)
	fmt.Fprintf(p.out, "%-4s %-*s %-6s %-6s %-7s %-8s %-11s\n",
		"#", p.maxNameSize, "Player", "Wins", "Loses", "%", "Pts For", "Pts Against")
	for i, st := range stats {
		fmt.Fprintf(p.out, "%-4d %-*s %-6d %-6d %-7.1f %-8d %-11d\n",
			i+1, p.maxNameSize, st.Name, st.Wins, st.Loses, st.Rating, st.PointsFor, st.PointsAgainst)
	}
}

// Run loops on the scoreboard's finished-rounds queue until the scoreboard
// closes, printing every round as it arrives. onRound, when non-nil, is
// called after each printed round (metrics, live feed).
func (p *Printer) Run(sb *scoreboard.Scoreboard, onRound func(*scoreboard.RoundResults)) {
	process := func(rr *scoreboard.RoundResults) {
		p.PrintRound(rr)
		if onRound != nil {
			onRound(rr)
		}
	}
	for sb.WaitOnRoundResults(process) {
	}
}
