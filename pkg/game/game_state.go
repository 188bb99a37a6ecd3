package game

import (
	"twofifty-server/pkg/deck"
)

// GameState is the overall game state.
// This is safe for all players to see: hands stay private and team membership
// is only exposed through the running team scores until the game is over
type GameState struct {
	Stage         Stage          `json:"stage"`
	Players       []string       `json:"players"`
	Bidders       []string       `json:"bidders"`
	HighestBid    int            `json:"highestBid"`
	HighestBidder string         `json:"highestBidder,omitempty"`
	CurrentTurn   string         `json:"currentTurn,omitempty"`
	PowerSuit     deck.Suit      `json:"powerSuit,omitempty"`
	PartnerCards  []*deck.Card   `json:"partnerCards,omitempty"`
	PartnerCount  int            `json:"partnerCount,omitempty"`
	CurrentTrick  []*PlayedCard  `json:"currentTrick"`
	LedSuit       deck.Suit      `json:"ledSuit,omitempty"`
	TrickLeader   string         `json:"trickLeader,omitempty"`
	CardsInHand   map[string]int `json:"cardsInHand"`
	PlayerScores  map[string]int `json:"playerScores"`
	TeamAScore    int            `json:"teamAScore"`
	TeamBScore    int            `json:"teamBScore"`
	Winners       []string       `json:"winners,omitempty"`
}

// PlayerState is the game from one player's seat: the public state plus
// that player's own hand. It must only be sent to the intended player
type PlayerState struct {
	GameState *GameState   `json:"gameState"`
	Hand      []*deck.Card `json:"hand"`
}

// GameState returns the public view of the game
func (g *Game) GameState() *GameState {
	cardsInHand := make(map[string]int, len(g.players))
	playerScores := make(map[string]int, len(g.players))
	for _, name := range g.players {
		cardsInHand[name] = len(g.hands[name])
		playerScores[name] = g.playerScores[name]
	}

	trick := make([]*PlayedCard, len(g.currentTrick))
	copy(trick, g.currentTrick)

	return &GameState{
		Stage:         g.stage,
		Players:       g.Players(),
		Bidders:       append([]string{}, g.bidders...),
		HighestBid:    g.highestBid,
		HighestBidder: g.highestBidder,
		CurrentTurn:   g.CurrentActor(),
		PowerSuit:     g.powerSuit,
		PartnerCards:  append([]*deck.Card{}, g.partnerCards...),
		PartnerCount:  g.partnerCount,
		CurrentTrick:  trick,
		LedSuit:       g.LedSuit(),
		TrickLeader:   g.trickLeader,
		CardsInHand:   cardsInHand,
		PlayerScores:  playerScores,
		TeamAScore:    g.teamAScore,
		TeamBScore:    g.teamBScore,
		Winners:       append([]string{}, g.winners...),
	}
}

// GetPlayerState returns the state of the game for the player
func (g *Game) GetPlayerState(name string) (*PlayerState, error) {
	if !g.hasPlayer(name) {
		return nil, ErrPlayerNotFound
	}

	return &PlayerState{
		GameState: g.GameState(),
		Hand:      append([]*deck.Card{}, g.hands[name]...),
	}, nil
}
