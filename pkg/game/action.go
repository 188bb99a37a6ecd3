package game

import (
	"fmt"

	"twofifty-server/pkg/deck"
)

// Action is a single game-affecting request from a player. Each stage has its
// own variant, so a malformed payload fails at construction rather than deep
// inside a transition
type Action interface {
	isAction()
}

// BidAction raises the auction to Amount; anything at or below the current
// highest bid is a pass
type BidAction struct {
	Amount int
}

// PowerSuitAction names the trump suit
type PowerSuitAction struct {
	Suit deck.Suit
}

// PartnersAction names the partner cards
type PartnersAction struct {
	Cards []*deck.Card
}

// PlayAction puts a card into the current trick
type PlayAction struct {
	Card *deck.Card
}

func (BidAction) isAction()       {}
func (PowerSuitAction) isAction() {}
func (PartnersAction) isAction()  {}
func (PlayAction) isAction()      {}

// Apply dispatches an action for the named player to the stage transition
// it belongs to
func (g *Game) Apply(name string, action Action) (*Result, error) {
	switch a := action.(type) {
	case *BidAction:
		return g.PlaceBid(name, a.Amount)
	case *PowerSuitAction:
		return g.SelectPowerSuit(name, a.Suit)
	case *PartnersAction:
		return g.SelectPartners(name, a.Cards)
	case *PlayAction:
		return g.PlayCard(name, a.Card)
	}

	return nil, fmt.Errorf("unknown action %T", action)
}
