package game

import (
	"fmt"

	"twofifty-server/pkg/deck"
)

// SelectPowerSuit sets the trump suit. Only the auction winner may call this,
// and only once: the suit is immutable afterwards. Returns how many partner
// cards the winner must now name
func (g *Game) SelectPowerSuit(name string, suit deck.Suit) (*Result, error) {
	if g.stage != StagePowerSuitSelection {
		return nil, WrongStageError{Want: StagePowerSuitSelection, Got: g.stage}
	}

	if name != g.highestBidder {
		return nil, ErrNotAuctionWinner
	}

	if !deck.IsValidSuit(suit) {
		return nil, ErrInvalidSuit
	}

	g.powerSuit = suit
	g.partnerCount = (len(g.players)+1)/2 - 1
	g.stage = StagePartnerSelection

	messages := []string{fmt.Sprintf("%s chose %s as the power suit", name, suit)}
	return &Result{
		Status:       StatusOK,
		Messages:     messages,
		PartnerCount: g.partnerCount,
	}, nil
}

// SelectPartners records the partner cards named by the auction winner and
// starts play. Whoever holds a named card silently joins the winner's team;
// their identity is not broadcast until the card is played
func (g *Game) SelectPartners(name string, cards []*deck.Card) (*Result, error) {
	if g.stage != StagePartnerSelection {
		return nil, WrongStageError{Want: StagePartnerSelection, Got: g.stage}
	}

	if name != g.highestBidder {
		return nil, ErrNotAuctionWinner
	}

	if len(cards) == 0 {
		return nil, ErrNoPartnerCards
	}

	if len(cards) > g.partnerCount {
		return nil, fmt.Errorf("you cannot name %d partner cards, the max is %d", len(cards), g.partnerCount)
	}

	partnerCards := make([]*deck.Card, len(cards))
	duplicate := make(map[string]bool)
	for i, card := range cards {
		if card == nil || !deck.IsValidSuit(card.Suit) || card.Rank < 2 || card.Rank > deck.Ace {
			return nil, ErrNoCard
		}

		// rebuild server-side so power and point values can't be forged
		partnerCards[i] = deck.NewCard(card.Rank, card.Suit)

		key := deck.CardToString(partnerCards[i])
		if duplicate[key] {
			return nil, fmt.Errorf("you cannot name %s twice", partnerCards[i])
		}

		duplicate[key] = true
	}

	g.partnerCards = partnerCards
	g.teamA = map[string]bool{name: true}
	g.teamB = make(map[string]bool)
	g.resolveTeams()

	g.stage = StagePlaying
	g.turnIndex = g.playerIndex(name)
	g.trickLeader = name

	messages := []string{
		fmt.Sprintf("%s calls %s", name, deck.CardsToString(partnerCards)),
		fmt.Sprintf("%s leads the first trick", name),
	}

	return &Result{Status: StatusOK, Messages: messages}, nil
}

// resolveTeams places every player on a team. A player is confirmed into the
// bid winner's team when a partner card shows up in their hand or among their
// plays; everyone else sits in team B until proven otherwise. Runs repeatedly
// and never demotes a confirmed team A member, so a partner card that is never
// played leaves its holder scored with team B
func (g *Game) resolveTeams() {
	for _, name := range g.players {
		if g.teamA[name] {
			delete(g.teamB, name)
			continue
		}

		if g.holdsPartnerCard(name) {
			g.teamA[name] = true
			delete(g.teamB, name)
		} else {
			g.teamB[name] = true
		}
	}
}

func (g *Game) holdsPartnerCard(name string) bool {
	for _, card := range g.hands[name] {
		if g.isPartnerCard(card) {
			return true
		}
	}

	for _, pc := range g.currentTrick {
		if pc.Player == name && g.isPartnerCard(pc.Card) {
			return true
		}
	}

	return false
}

func (g *Game) isPartnerCard(card *deck.Card) bool {
	for _, pc := range g.partnerCards {
		if pc.Equal(card) {
			return true
		}
	}

	return false
}
