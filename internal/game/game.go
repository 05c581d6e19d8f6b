package game

import (
	"errors"
	"fmt"

	"aceduel/internal/protocol"
	"aceduel/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWrongPhase = errors.New("action not allowed in this phase")
	ErrHandEmpty  = errors.New("hand is empty")
	ErrMustPlay   = errors.New("cannot pass while holding cards")
)

// MessageSender receives every protocol event the duel publishes.
type MessageSender func(gameID string, message []byte)

// Game is the duel state machine. It is the only mutator of its state and is
// not safe for concurrent use.
type Game struct {
	ID      string
	Players [2]*shared.Player
	Deck    *shared.Deck
	State   State
	Reveals [2]shared.PlayedCard

	src         shared.Source
	logger      *zap.Logger
	sendMessage MessageSender
	result      *Result
}

// NewGame creates a duel between two players with a freshly shuffled deck.
func NewGame(players [2]*shared.Player, vsComputer bool, src shared.Source, logger *zap.Logger) *Game {
	if src == nil {
		src = shared.NewRandSource()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Game{
		ID:      id,
		Players: players,
		Deck:    shared.NewDeck(src),
		State: State{
			Phase:       Dealing,
			CurrentSuit: shared.NoSuit,
			VsComputer:  vsComputer,
		},
		src:    src,
		logger: logger.With(zap.String("game_id", id)),
	}
}

// SetSender installs the callback used to publish protocol events.
func (g *Game) SetSender(sender MessageSender) {
	g.sendMessage = sender
}

// Names returns both display names in seat order.
func (g *Game) Names() [2]string {
	return [2]string{g.Players[0].Name, g.Players[1].Name}
}

// Deal hands out the opening four cards to each seat.
func (g *Game) Deal() error {
	if g.State.Phase != Dealing {
		return fmt.Errorf("deal in %s: %w", g.State.Phase, ErrWrongPhase)
	}
	for _, p := range g.Players {
		p.Hand.Refill(g.Deck, OpeningHand)
	}
	g.State.Phase = Revealing
	g.logger.Info("opening hands dealt", zap.Int("deck_count", g.Deck.Count()))
	return nil
}

// Reveal consumes one chosen card (0-based) from each opening hand and decides
// who plays first. The revealed cards leave the game.
func (g *Game) Reveal(index0, index1 int) (first int, err error) {
	if g.State.Phase != Revealing {
		return 0, fmt.Errorf("reveal in %s: %w", g.State.Phase, ErrWrongPhase)
	}
	indexes := [2]int{index0, index1}
	for seat, idx := range indexes {
		if _, err := g.Players[seat].Hand.At(idx); err != nil {
			return 0, fmt.Errorf("seat %d reveal: %w", seat, err)
		}
	}
	for seat, idx := range indexes {
		card, _ := g.Players[seat].Hand.RemoveAt(idx)
		g.Reveals[seat] = shared.PlayedCard{Card: card, Seat: seat}
	}

	first, tied := shared.DetermineFirst(g.Reveals)
	if tied && g.State.VsComputer {
		first = g.src.Intn(2)
		g.logger.Info("reveal tie settled by coin flip", zap.Int("seat", first))
	}
	g.State.Turn = first
	g.State.Phase = Playing
	g.logger.Info("reveal resolved",
		zap.String("p1_card", g.Reveals[0].Card.String()),
		zap.String("p2_card", g.Reveals[1].Card.String()),
		zap.Int("first_seat", first))

	g.broadcastGameStart()
	return first, nil
}

// DrawPhase refills both hands to three cards. A pending draw block skips its
// target seat once and is cleared. The target is the opponent of whoever
// played the Ace of Diamonds, so either seat can be blocked, not only seat 2.
func (g *Game) DrawPhase() {
	for seat, p := range g.Players {
		if g.State.BlockDraw && g.State.BlockSeat == seat {
			g.State.BlockDraw = false
			g.logger.Info("draw blocked", zap.Int("seat", seat))
			continue
		}
		if n := p.Hand.Refill(g.Deck, HandTarget); n > 0 {
			g.logger.Debug("hand refilled", zap.Int("seat", seat), zap.Int("drawn", n), zap.Int("deck_count", g.Deck.Count()))
		}
	}
}

// PlayCard plays the card at a 0-based index from the active seat's hand:
// ace effect first, then the suit rule, then the turn passes.
func (g *Game) PlayCard(index int) (RoundReport, error) {
	if g.State.Phase != Playing {
		return RoundReport{}, fmt.Errorf("play in %s: %w", g.State.Phase, ErrWrongPhase)
	}
	seat := g.State.Turn
	player := g.Players[seat]
	if player.Hand.Len() == 0 {
		return RoundReport{}, fmt.Errorf("seat %d: %w", seat, ErrHandEmpty)
	}
	card, err := player.Hand.RemoveAt(index)
	if err != nil {
		return RoundReport{}, fmt.Errorf("seat %d play: %w", seat, err)
	}

	rep := RoundReport{Seat: seat, Played: &shared.PlayedCard{Card: card, Seat: seat}}
	own := &g.Players[seat].Life
	opp := &g.Players[opponent(seat)].Life

	if effect, ok := ResolveEffect(card, seat, own, opp, &g.State); ok {
		rep.Effect = effect
		rep.Messages = append(rep.Messages, effect.Message)
		if effect.Kind == EffectRestrict {
			g.logger.Warn("restrict-numbers flag raised; it is not enforced", zap.Int("seat", seat))
		}
	}
	required := g.State.CurrentSuit
	if ApplySuitRule(card, own, &g.State) {
		rep.Penalty = true
		rep.Messages = append(rep.Messages, fmt.Sprintf("%s broke suit (%s required): loses %d life", player.Name, required, AcePenalty))
	}

	g.logger.Info("card played",
		zap.Int("seat", seat),
		zap.String("card", card.String()),
		zap.Bool("penalty", rep.Penalty),
		zap.String("suit", g.State.SuitText()),
		zap.Int("p1_life", g.Players[0].Life),
		zap.Int("p2_life", g.Players[1].Life))

	return g.finishRound(rep), nil
}

// Pass forfeits the active seat's play. It is only legal with an empty hand,
// which can happen once the deck is gone.
func (g *Game) Pass() (RoundReport, error) {
	if g.State.Phase != Playing {
		return RoundReport{}, fmt.Errorf("pass in %s: %w", g.State.Phase, ErrWrongPhase)
	}
	seat := g.State.Turn
	if g.Players[seat].Hand.Len() > 0 {
		return RoundReport{}, fmt.Errorf("seat %d: %w", seat, ErrMustPlay)
	}
	g.logger.Info("seat has no cards, passing", zap.Int("seat", seat))
	rep := RoundReport{Seat: seat, Messages: []string{g.Players[seat].Name + " has no cards and passes"}}
	return g.finishRound(rep), nil
}

func (g *Game) finishRound(rep RoundReport) RoundReport {
	g.State.Round++
	g.State.Turn = opponent(g.State.Turn)
	rep.Status = g.Status()
	g.broadcastRound(rep)
	return rep
}

// Status snapshots what a presentation layer shows between rounds.
func (g *Game) Status() Status {
	return Status{
		Round:           g.State.Round,
		Names:           g.Names(),
		Lives:           [2]int{g.Players[0].Life, g.Players[1].Life},
		DeckCount:       g.Deck.Count(),
		HandSizes:       [2]int{g.Players[0].Hand.Len(), g.Players[1].Hand.Len()},
		NextSeat:        g.State.Turn,
		CurrentSuit:     g.State.SuitText(),
		BlockDraw:       g.State.BlockDraw,
		RestrictNumbers: g.State.RestrictNumbers,
	}
}

// CheckGameOver evaluates the terminal conditions and records the result.
func (g *Game) CheckGameOver() bool {
	if g.result != nil {
		return true
	}
	p1, p2 := g.Players[0], g.Players[1]
	depleted := p1.Life <= 0 || p2.Life <= 0
	exhausted := g.Deck.Count() == 0 && p1.Hand.Len() == 0 && p2.Hand.Len() == 0
	if !depleted && !exhausted {
		return false
	}

	res := Result{
		Winner: -1,
		Lives:  [2]int{p1.Life, p2.Life},
		Rounds: g.State.Round,
		Reason: ReasonExhausted,
	}
	if depleted {
		res.Reason = ReasonLifeDepleted
	}
	switch {
	case p1.Life <= 0 && p2.Life > 0:
		res.Winner = 1
	case p2.Life <= 0 && p1.Life > 0:
		res.Winner = 0
	case p1.Life > p2.Life:
		res.Winner = 0
	case p2.Life > p1.Life:
		res.Winner = 1
	default:
		res.Draw = true
	}

	g.result = &res
	g.State.Phase = GameOver
	g.logger.Info("game over",
		zap.Int("winner_seat", res.Winner),
		zap.Bool("draw", res.Draw),
		zap.String("reason", res.Reason),
		zap.Int("rounds", res.Rounds))
	g.broadcastGameOver(res)
	return true
}

// Result returns the outcome once the duel is over.
func (g *Game) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

// Run drives the duel to completion from whatever phase it is in.
// Out-of-range choices are asked for again until a controller gets it right.
func (g *Game) Run(controllers [2]Controller, view Renderer) (Result, error) {
	if g.State.Phase == Dealing {
		if err := g.Deal(); err != nil {
			return Result{}, err
		}
	}
	if g.State.Phase == Revealing {
		if err := g.runReveal(controllers, view); err != nil {
			return Result{}, err
		}
	}

	for !g.CheckGameOver() {
		g.DrawPhase()
		rep, err := g.runTurn(controllers[g.State.Turn])
		if err != nil {
			return Result{}, err
		}
		if view != nil {
			view.ShowRound(rep)
		}
	}

	res, _ := g.Result()
	if view != nil {
		view.ShowResult(g.Names(), res)
	}
	return res, nil
}

func (g *Game) runReveal(controllers [2]Controller, view Renderer) error {
	var indexes [2]int
	for seat, ctl := range controllers {
		p := g.Players[seat]
		for {
			indexes[seat] = ctl.ChooseReveal(p)
			if _, err := p.Hand.At(indexes[seat]); err == nil {
				break
			}
			g.logger.Warn("reveal choice out of range", zap.Int("seat", seat), zap.Int("index", indexes[seat]))
		}
	}
	first, err := g.Reveal(indexes[0], indexes[1])
	if err != nil {
		return err
	}
	if view != nil {
		view.ShowReveal(g.Names(), g.Reveals, first)
	}
	return nil
}

func (g *Game) runTurn(ctl Controller) (RoundReport, error) {
	seat := g.State.Turn
	if g.Players[seat].Hand.Len() == 0 {
		return g.Pass()
	}
	for {
		rep, err := g.PlayCard(ctl.ChooseCard(g.Players[seat], g.Status()))
		if errors.Is(err, shared.ErrIndexOutOfRange) {
			g.logger.Warn("card choice out of range", zap.Int("seat", seat))
			continue
		}
		return rep, err
	}
}

// --- Messaging Helpers ---

func (g *Game) broadcast(msgType string, payload interface{}) {
	if g.sendMessage == nil {
		return
	}
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		g.logger.Error("failed to encode event", zap.String("type", msgType), zap.Error(err))
		return
	}
	g.sendMessage(g.ID, msg)
}

func (g *Game) broadcastGameStart() {
	infos := make([]protocol.PlayerInfo, len(g.Players))
	for i, p := range g.Players {
		infos[i] = protocol.PlayerInfo{ID: p.ID, Name: p.Name, Seat: i, Computer: p.Computer}
	}
	g.broadcast(protocol.TypeGameStart, protocol.GameStartPayload{
		GameID:     g.ID,
		Players:    infos,
		VsComputer: g.State.VsComputer,
		Reveals:    g.Reveals,
		FirstSeat:  g.State.Turn,
	})
}

func (g *Game) broadcastRound(rep RoundReport) {
	g.broadcast(protocol.TypeRoundEnd, protocol.RoundEndPayload{
		GameID:          g.ID,
		Round:           rep.Round,
		Played:          rep.Played,
		P1Life:          rep.Lives[0],
		P2Life:          rep.Lives[1],
		DeckCount:       rep.DeckCount,
		NextSeat:        rep.NextSeat,
		CurrentSuit:     rep.CurrentSuit,
		BlockDraw:       rep.BlockDraw,
		RestrictNumbers: rep.RestrictNumbers,
		Messages:        rep.Messages,
	})
}

func (g *Game) broadcastGameOver(res Result) {
	payload := protocol.GameOverPayload{
		GameID:     g.ID,
		WinnerSeat: res.Winner,
		Draw:       res.Draw,
		Reason:     res.Reason,
		P1Life:     res.Lives[0],
		P2Life:     res.Lives[1],
		Rounds:     res.Rounds,
	}
	if !res.Draw {
		payload.WinnerID = g.Players[res.Winner].ID
	}
	g.broadcast(protocol.TypeGameOver, payload)
}
