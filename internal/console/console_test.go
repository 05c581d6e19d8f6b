package console

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"aceduel/internal/game"
	"aceduel/internal/shared"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		vsComputer bool
		reprompts  int
	}{
		{"pvp", "1\n", false, 0},
		{"pve", "2\n", true, 0},
		{"garbage first", "x\n3\n\n2\n", true, 3},
		{"no trailing newline", "1", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tt.input), &out).SelectMode()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.vsComputer {
				t.Fatalf("expected vsComputer=%v, got %v", tt.vsComputer, got)
			}
			if n := strings.Count(out.String(), "Invalid mode"); n != tt.reprompts {
				t.Fatalf("expected %d re-prompts, got %d", tt.reprompts, n)
			}
		})
	}
}

func TestSelectMode_InputClosed(t *testing.T) {
	var out bytes.Buffer
	if _, err := New(strings.NewReader("9\n"), &out).SelectMode(); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func testPlayer() *shared.Player {
	p := shared.NewPlayer("Ana", false)
	p.Hand = shared.NewHand(
		shared.Card{ID: 1, Suit: shared.Hearts, Rank: shared.Ace},
		shared.Card{ID: 2, Suit: shared.Spades, Rank: shared.Ten},
		shared.Card{ID: 53, Suit: shared.Joker, Rank: shared.RankJoker},
	)
	return p
}

func TestHumanController_RepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	h := NewHumanController(New(strings.NewReader("abc\n0\n4\n2\n"), &out))

	if got := h.ChooseCard(testPlayer(), game.Status{CurrentSuit: "Spades"}); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	text := out.String()
	if !strings.Contains(text, "is not a number") {
		t.Fatalf("expected non-numeric warning in %q", text)
	}
	if strings.Count(text, "Choose between 1 and 3") != 2 {
		t.Fatalf("expected two range warnings in %q", text)
	}
	if !strings.Contains(text, "1) HA") || !strings.Contains(text, "3) Joker") {
		t.Fatalf("expected hand listing in %q", text)
	}
}

func TestHumanController_InputClosedPlaysFirst(t *testing.T) {
	var out bytes.Buffer
	h := NewHumanController(New(strings.NewReader(""), &out))
	if got := h.ChooseReveal(testPlayer()); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
}

func TestShowRoundAndResult(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	played := shared.PlayedCard{Card: shared.Card{ID: 1, Suit: shared.Hearts, Rank: shared.Ace}, Seat: 0}

	c.ShowRound(game.RoundReport{
		Status: game.Status{
			Round:       3,
			Names:       [2]string{"Ana", "Ben"},
			Lives:       [2]int{15, 13},
			DeckCount:   40,
			HandSizes:   [2]int{2, 3},
			NextSeat:    1,
			CurrentSuit: "Hearts",
		},
		Seat:     0,
		Played:   &played,
		Messages: []string{"Ana's Ace of Hearts deals 2 damage"},
	})
	c.ShowResult([2]string{"Ana", "Ben"}, game.Result{Winner: 0, Reason: game.ReasonExhausted, Lives: [2]int{15, 13}})

	text := out.String()
	for _, want := range []string{"Round 3: Ana played", "HA", "deals 2 damage", "Deck: 40", "Next: Ben", "Suit: Hearts", "Ana wins"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestStatusTable_AnySuit(t *testing.T) {
	s := StatusTable(game.Status{Names: [2]string{"A", "B"}, CurrentSuit: "any", BlockDraw: true})
	if !strings.Contains(s, "Suit: any") || !strings.Contains(s, "next draw blocked") {
		t.Fatalf("unexpected table %q", s)
	}
}

func TestConsoleDrivesFullDuel(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(strings.Repeat("1\n", 200)), &out)

	src := shared.NewSeededSource(7)
	players := [2]*shared.Player{shared.NewPlayer("Ana", false), shared.NewPlayer("Computer", true)}
	g := game.NewGame(players, true, src, zap.NewNop())

	res, err := g.Run([2]game.Controller{NewHumanController(c), game.NewComputerController(src)}, c)
	if err != nil {
		t.Fatal(err)
	}
	if res.Rounds == 0 {
		t.Fatalf("expected rounds to be played")
	}
	text := out.String()
	if !strings.Contains(text, "plays first") || !strings.Contains(text, res.Summary(g.Names())) {
		t.Fatalf("expected reveal and summary in output")
	}
}

func TestPlayAgain(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := New(strings.NewReader(tt.input), &out).PlayAgain(); got != tt.want {
			t.Fatalf("input %q: expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestHumanController_WarnsWhenNothingFollows(t *testing.T) {
	tests := []struct {
		name string
		suit string
		warn bool
	}{
		{"holds the suit", "Clubs", false},
		{"missing the suit", "Hearts", true},
		{"no suit yet", "any", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := shared.NewPlayer("Ana", false)
			p.Hand.Add(shared.Card{ID: 1, Suit: shared.Clubs, Rank: shared.Four})

			var out bytes.Buffer
			NewHumanController(New(strings.NewReader("1\n"), &out)).ChooseCard(p, game.Status{CurrentSuit: tt.suit})
			if got := strings.Contains(out.String(), "any play costs 2 life"); got != tt.warn {
				t.Fatalf("expected warning=%v, output:\n%s", tt.warn, out.String())
			}
		})
	}
}
