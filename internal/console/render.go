package console

import (
	"fmt"
	"strconv"

	"aceduel/internal/game"
	"aceduel/internal/shared"

	"github.com/pterm/pterm"
)

// ShowReveal prints both reveal cards and who opens the duel.
func (c *Console) ShowReveal(names [2]string, reveals [2]shared.PlayedCard, first int) {
	c.println(pterm.DefaultHeader.Sprint("Reveal"))
	for _, r := range reveals {
		c.println(fmt.Sprintf("%s reveals %s", names[r.Seat], FormatCard(r.Card)))
	}
	c.println(pterm.Info.Sprintf("%s plays first.", names[first]))
}

// ShowRound prints what was played, any effect or penalty, and the table state.
func (c *Console) ShowRound(r game.RoundReport) {
	if r.Played != nil {
		c.println(pterm.Bold.Sprint(fmt.Sprintf("Round %d: %s played ", r.Round, r.Names[r.Seat])) + FormatCard(r.Played.Card))
	} else {
		c.println(pterm.Bold.Sprint(fmt.Sprintf("Round %d", r.Round)))
	}

	// The suit penalty, when present, is always the last message.
	for i, m := range r.Messages {
		if r.Penalty && i == len(r.Messages)-1 {
			c.println(pterm.Warning.Sprint(m))
			continue
		}
		c.println(pterm.Info.Sprint(m))
	}

	c.println(StatusTable(r.Status))
}

// ShowResult prints the outcome.
func (c *Console) ShowResult(names [2]string, res game.Result) {
	c.println(pterm.DefaultHeader.Sprint("Game Over"))
	if res.Draw {
		c.println(pterm.Warning.Sprint(res.Summary(names)))
		return
	}
	c.println(pterm.Success.Sprint(res.Summary(names)))
}

// StatusTable renders lives, hand sizes, deck count, the next seat and the
// suit to follow.
func StatusTable(s game.Status) string {
	data := pterm.TableData{
		{"Player", "Life", "Cards"},
		{s.Names[0], strconv.Itoa(s.Lives[0]), strconv.Itoa(s.HandSizes[0])},
		{s.Names[1], strconv.Itoa(s.Lives[1]), strconv.Itoa(s.HandSizes[1])},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		table = fmt.Sprintf("%s %d | %s %d", s.Names[0], s.Lives[0], s.Names[1], s.Lives[1])
	}
	footer := fmt.Sprintf("Deck: %d  Next: %s  Suit: %s", s.DeckCount, s.Names[s.NextSeat], s.CurrentSuit)
	if s.BlockDraw {
		footer += "  (next draw blocked)"
	}
	return table + "\n" + footer
}

var _ game.Renderer = (*Console)(nil)
