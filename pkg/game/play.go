package game

import (
	"fmt"

	"twofifty-server/pkg/deck"
)

// trumpBonus lifts any power suit card above every off-suit card
const trumpBonus = 100

// PlayCard plays a card into the current trick. The player must be on turn,
// must follow the led suit when able, and must actually hold the card.
// Completing a trick credits its points and puts the winner on lead
func (g *Game) PlayCard(name string, card *deck.Card) (*Result, error) {
	if g.stage != StagePlaying {
		return nil, WrongStageError{Want: StagePlaying, Got: g.stage}
	}

	if card == nil {
		return nil, ErrNoCard
	}

	if g.players[g.turnIndex] != name {
		return nil, ErrNotPlayersTurn
	}

	if led := g.LedSuit(); led != "" && card.Suit != led && g.handHasSuit(name, led) {
		return nil, ErrMustFollowSuit
	}

	played, err := g.removeFromHand(name, card)
	if err != nil {
		return nil, err
	}

	power := played.Power
	if played.Suit == g.powerSuit {
		power += trumpBonus
	}

	g.currentTrick = append(g.currentTrick, &PlayedCard{
		Player:         name,
		Card:           played,
		EffectivePower: power,
	})

	messages := []string{fmt.Sprintf("%s played %s", name, played)}

	if g.isPartnerCard(played) {
		g.teamA[name] = true
		delete(g.teamB, name)
		messages = append(messages, fmt.Sprintf("%s revealed a partner card and joins %s", name, g.highestBidder))
	}

	g.turnIndex = (g.turnIndex + 1) % len(g.players)

	res := &Result{Status: StatusOK}
	if len(g.currentTrick) == len(g.players) {
		g.finishTrick(res, &messages)
	}

	res.Messages = messages
	return res, nil
}

// finishTrick resolves a full trick: highest effective power wins, the points
// are credited to the winner and their team, and the winner leads next
func (g *Game) finishTrick(res *Result, messages *[]string) {
	winner := g.currentTrick[0]
	points := 0
	for _, pc := range g.currentTrick {
		points += pc.Card.PointValue
		if pc.EffectivePower > winner.EffectivePower {
			winner = pc
		}
	}

	g.playerScores[winner.Player] += points
	if g.teamA[winner.Player] {
		g.teamAScore += points
	} else {
		g.teamBScore += points
	}

	g.turnIndex = g.playerIndex(winner.Player)
	g.trickLeader = winner.Player
	g.currentTrick = nil

	res.TrickWinner = winner.Player
	res.TrickPoints = points
	*messages = append(*messages, fmt.Sprintf("%s won the trick for %d points", winner.Player, points))

	g.logger.WithField("winner", winner.Player).WithField("points", points).Debug("trick complete")

	g.checkForWin(res, messages)
}

// checkForWin ends the game once either team has its points. The bidding team
// needs to reach the bid; the defenders need to deny them, which takes
// strictly more than the rest of the pool
func (g *Game) checkForWin(res *Result, messages *[]string) {
	switch {
	case g.teamAScore >= g.highestBid:
		g.finishGame(g.teamNames(g.teamA), res, messages)
	case g.teamBScore > totalPoints-g.highestBid:
		g.finishGame(g.teamNames(g.teamB), res, messages)
	case g.handsEmpty():
		// a trimmed deck can shrink the pool below 250, letting the cards run
		// out before either threshold. The bid was not made, so the defenders win
		g.finishGame(g.teamNames(g.teamB), res, messages)
	}
}

func (g *Game) finishGame(winners []string, res *Result, messages *[]string) {
	g.stage = StageGameOver
	g.winners = winners

	res.GameOver = true
	*messages = append(*messages, fmt.Sprintf("Game over! %s won (%s bid %d)",
		joinNames(winners), g.highestBidder, g.highestBid))

	g.logger.WithField("winners", winners).Info("game over")
}

func (g *Game) handsEmpty() bool {
	for _, hand := range g.hands {
		if len(hand) > 0 {
			return false
		}
	}

	return true
}

func (g *Game) handHasSuit(name string, suit deck.Suit) bool {
	for _, card := range g.hands[name] {
		if card.Suit == suit {
			return true
		}
	}

	return false
}

// removeFromHand takes the matching card out of the player's hand and returns
// the server-side copy, guarding against forged power or point values
func (g *Game) removeFromHand(name string, card *deck.Card) (*deck.Card, error) {
	hand := g.hands[name]
	for i, c := range hand {
		if c.Equal(card) {
			g.hands[name] = append(hand[:i], hand[i+1:]...)
			return c, nil
		}
	}

	return nil, ErrCardNotInHand
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "no one"
	case 1:
		return names[0]
	}

	s := names[0]
	for _, name := range names[1 : len(names)-1] {
		s += ", " + name
	}

	return s + " and " + names[len(names)-1]
}
