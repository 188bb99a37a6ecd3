package game

import "fmt"

// PlaceBid handles a bid or a pass from a player. Any amount at or below the
// current highest bid is a pass and removes the player from the auction.
// A bid of 250 wins the auction on the spot
func (g *Game) PlaceBid(name string, amount int) (*Result, error) {
	if g.stage != StageAuction {
		return nil, WrongStageError{Want: StageAuction, Got: g.stage}
	}

	if !g.hasPlayer(name) {
		return nil, ErrPlayerNotFound
	}

	if g.bidders[g.currentBidIndex] != name {
		return &Result{Status: StatusWrongTurn}, nil
	}

	if amount > maxBid {
		return nil, ErrBidTooHigh
	}

	if amount > g.highestBid {
		g.highestBid = amount
		g.highestBidder = name
		messages := []string{fmt.Sprintf("%s bid %d", name, amount)}

		if amount == maxBid {
			return g.endAuction(name, messages), nil
		}

		g.currentBidIndex = (g.currentBidIndex + 1) % len(g.bidders)

		// no one left to outbid them
		if len(g.bidders) == 1 {
			return g.endAuction(name, messages), nil
		}

		return &Result{Status: StatusOK, Messages: messages}, nil
	}

	// a pass
	messages := []string{fmt.Sprintf("%s passed", name)}
	g.bidders = append(g.bidders[:g.currentBidIndex], g.bidders[g.currentBidIndex+1:]...)

	if len(g.bidders) == 0 {
		if g.highestBidder == "" {
			// everyone passed without a single bid; draft a random player
			winner := g.players[g.rng.Intn(len(g.players))]
			g.highestBid = allPassedBid
			messages = append(messages, fmt.Sprintf("Everyone passed. %s is drafted at %d", winner, allPassedBid))
			return g.endAuction(winner, messages), nil
		}

		return g.endAuction(g.highestBidder, messages), nil
	}

	g.currentBidIndex %= len(g.bidders)

	// the last bidder standing only auto-wins once they hold the high bid;
	// a player who hasn't bid yet still gets their turn
	if len(g.bidders) == 1 && g.bidders[0] == g.highestBidder {
		return g.endAuction(g.highestBidder, messages), nil
	}

	return &Result{Status: StatusOK, Messages: messages}, nil
}

// endAuction is the single exit from the auction stage
func (g *Game) endAuction(winner string, messages []string) *Result {
	g.highestBidder = winner
	g.bidders = []string{winner}
	g.currentBidIndex = 0
	g.stage = StagePowerSuitSelection

	g.logger.WithField("winner", winner).WithField("bid", g.highestBid).Info("auction won")

	messages = append(messages, fmt.Sprintf("%s won the auction at %d", winner, g.highestBid))
	return &Result{Status: StatusOK, Messages: messages}
}
