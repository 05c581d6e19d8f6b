package game

import "aceduel/internal/shared"

// Controller supplies the choices for one seat. Both methods return a 0-based
// index into the player's hand; the engine asks again if it is out of range.
type Controller interface {
	ChooseReveal(p *shared.Player) int
	ChooseCard(p *shared.Player, s Status) int
}

// Renderer receives everything the duel wants shown.
type Renderer interface {
	ShowReveal(names [2]string, reveals [2]shared.PlayedCard, first int)
	ShowRound(r RoundReport)
	ShowResult(names [2]string, res Result)
}

// ComputerController picks uniformly at random among the held cards.
type ComputerController struct {
	src shared.Source
}

// NewComputerController returns a chooser drawing from src.
func NewComputerController(src shared.Source) *ComputerController {
	return &ComputerController{src: src}
}

func (c *ComputerController) ChooseReveal(p *shared.Player) int {
	return c.pick(p)
}

func (c *ComputerController) ChooseCard(p *shared.Player, _ Status) int {
	return c.pick(p)
}

func (c *ComputerController) pick(p *shared.Player) int {
	n := p.Hand.Len()
	if n == 0 {
		return 0
	}
	return c.src.Intn(n)
}
