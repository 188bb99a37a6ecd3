package game

import (
	"time"

	"twofifty-server/pkg/deck"
)

// GameResult is the summary of a finished game, kept in the room's history
type GameResult struct {
	Bidder       string       `json:"bidder"`
	Bid          int          `json:"bid"`
	PowerSuit    deck.Suit    `json:"powerSuit"`
	PartnerCards []*deck.Card `json:"partnerCards"`
	TeamA        []string     `json:"teamA"`
	TeamB        []string     `json:"teamB"`
	TeamAScore   int          `json:"teamAScore"`
	TeamBScore   int          `json:"teamBScore"`
	Winners      []string     `json:"winners"`
	FinishedAt   time.Time    `json:"finishedAt"`
}

// Result returns the summary of the game, or nil if the game isn't over yet
func (g *Game) Result() *GameResult {
	if g.stage != StageGameOver {
		return nil
	}

	return &GameResult{
		Bidder:       g.highestBidder,
		Bid:          g.highestBid,
		PowerSuit:    g.powerSuit,
		PartnerCards: append([]*deck.Card{}, g.partnerCards...),
		TeamA:        g.teamNames(g.teamA),
		TeamB:        g.teamNames(g.teamB),
		TeamAScore:   g.teamAScore,
		TeamBScore:   g.teamBScore,
		Winners:      append([]string{}, g.winners...),
		FinishedAt:   time.Now(),
	}
}
