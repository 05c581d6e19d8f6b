// Package console is the terminal front end: mode selection, hand prompts and
// round rendering on top of the duel engine.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"aceduel/internal/game"
	"aceduel/internal/shared"

	"github.com/pterm/pterm"
)

// ErrInputClosed is returned once the input stream has ended.
var ErrInputClosed = errors.New("input closed")

// Console reads choices from in and writes formatted output to out.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) readLine() (string, error) {
	if c.closed {
		return "", ErrInputClosed
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.closed = true
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", err
		}
	}
	return strings.TrimSpace(line), nil
}

// SelectMode asks for "1" (two humans) or "2" (against the computer) until it
// gets one of them.
func (c *Console) SelectMode() (vsComputer bool, err error) {
	c.println(pterm.DefaultHeader.Sprint("Ace Duel"))
	for {
		c.println("1) Player vs Player")
		c.println("2) Player vs Computer")
		fmt.Fprint(c.out, "Select mode: ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch line {
		case "1":
			return false, nil
		case "2":
			return true, nil
		}
		c.println(pterm.Warning.Sprintf("Invalid mode %q, enter 1 or 2.", line))
	}
}

// PlayAgain asks whether to start another duel. Only "y" or "yes" continue.
func (c *Console) PlayAgain() bool {
	fmt.Fprint(c.out, "Play again? [y/N]: ")
	line, err := c.readLine()
	if err != nil {
		return false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	}
	return false
}

// chooseIndex shows the hand and reads a 1-based pick. It returns the 0-based
// index, re-prompting on anything that is not a number in range.
func (c *Console) chooseIndex(p *shared.Player, prompt string) (int, error) {
	cards := p.Hand.Cards()
	for {
		c.println(FormatHand(cards))
		fmt.Fprintf(c.out, "%s, %s [1-%d]: ", p.Name, prompt, len(cards))
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.println(pterm.Warning.Sprintf("%q is not a number.", line))
			continue
		}
		if n < 1 || n > len(cards) {
			c.println(pterm.Warning.Sprintf("Choose between 1 and %d.", len(cards)))
			continue
		}
		return n - 1, nil
	}
}

// FormatHand lists cards with their 1-based selection numbers.
func FormatHand(cards []shared.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = fmt.Sprintf("%d) %s", i+1, FormatCard(card))
	}
	return strings.Join(parts, "  ")
}

// FormatCard colours red suits.
func FormatCard(card shared.Card) string {
	switch card.Suit {
	case shared.Hearts, shared.Diamonds:
		return pterm.LightRed(card.String())
	case shared.Joker:
		return pterm.Bold.Sprint(card.String())
	default:
		return card.String()
	}
}

// HumanController asks a person at the console for every choice. When the
// input ends it keeps the duel moving by playing the first card.
type HumanController struct {
	console *Console
}

func NewHumanController(c *Console) *HumanController {
	return &HumanController{console: c}
}

func (h *HumanController) ChooseReveal(p *shared.Player) int {
	h.console.println(pterm.Info.Sprintf("%s, pick a card to reveal.", p.Name))
	return h.choose(p, "reveal")
}

func (h *HumanController) ChooseCard(p *shared.Player, s game.Status) int {
	h.console.println(pterm.Info.Sprintf("%s to play. Suit to follow: %s", p.Name, s.CurrentSuit))
	if suit := statusSuit(s); !p.CanFollow(suit) {
		h.console.println(pterm.Warning.Sprintf("No card follows %s: any play costs %d life.", suit, game.AcePenalty))
	}
	return h.choose(p, "play")
}

func (h *HumanController) choose(p *shared.Player, prompt string) int {
	i, err := h.console.chooseIndex(p, prompt)
	if err != nil {
		h.console.println(pterm.Error.Sprintf("%v, playing first card", err))
		return 0
	}
	return i
}

// statusSuit turns the rendered suit back into a Suit; "any" means none.
func statusSuit(s game.Status) shared.Suit {
	if s.CurrentSuit == "" || s.CurrentSuit == "any" {
		return shared.NoSuit
	}
	return shared.Suit(s.CurrentSuit)
}

var _ game.Controller = (*HumanController)(nil)
