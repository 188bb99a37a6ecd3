package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"twofifty-server/pkg/deck"
)

// Snapshot is the serializable form of a game. Team sets are stored as
// ordered name lists and rebuilt as sets on restore
type Snapshot struct {
	Players         []string                `json:"players"`
	Hands           map[string][]*deck.Card `json:"hands"`
	Bidders         []string                `json:"bidders"`
	CurrentBidIndex int                     `json:"currentBidIndex"`
	HighestBid      int                     `json:"highestBid"`
	HighestBidder   string                  `json:"highestBidder,omitempty"`
	PowerSuit       deck.Suit               `json:"powerSuit,omitempty"`
	PartnerCards    []*deck.Card            `json:"partnerCards,omitempty"`
	PartnerCount    int                     `json:"partnerCount,omitempty"`
	TeamA           []string                `json:"teamA"`
	TeamB           []string                `json:"teamB"`
	CurrentTrick    []*PlayedCard           `json:"currentTrick,omitempty"`
	TurnIndex       int                     `json:"turnIndex"`
	TrickLeader     string                  `json:"trickLeader,omitempty"`
	PlayerScores    map[string]int          `json:"playerScores"`
	TeamAScore      int                     `json:"teamAScore"`
	TeamBScore      int                     `json:"teamBScore"`
	Stage           Stage                   `json:"stage"`
	Winners         []string                `json:"winners,omitempty"`
	Seed            int64                   `json:"seed"`
	StartedAt       time.Time               `json:"startedAt"`
}

// Snapshot returns the serializable form of the game
func (g *Game) Snapshot() *Snapshot {
	hands := make(map[string][]*deck.Card, len(g.players))
	for _, name := range g.players {
		hands[name] = append([]*deck.Card{}, g.hands[name]...)
	}

	return &Snapshot{
		Players:         g.Players(),
		Hands:           hands,
		Bidders:         append([]string{}, g.bidders...),
		CurrentBidIndex: g.currentBidIndex,
		HighestBid:      g.highestBid,
		HighestBidder:   g.highestBidder,
		PowerSuit:       g.powerSuit,
		PartnerCards:    append([]*deck.Card{}, g.partnerCards...),
		PartnerCount:    g.partnerCount,
		TeamA:           g.teamNames(g.teamA),
		TeamB:           g.teamNames(g.teamB),
		CurrentTrick:    append([]*PlayedCard{}, g.currentTrick...),
		TurnIndex:       g.turnIndex,
		TrickLeader:     g.trickLeader,
		PlayerScores:    copyScores(g.playerScores),
		TeamAScore:      g.teamAScore,
		TeamBScore:      g.teamBScore,
		Stage:           g.stage,
		Winners:         append([]string{}, g.winners...),
		Seed:            g.seed,
		StartedAt:       g.startedAt,
	}
}

// FromSnapshot rebuilds a game from its serialized form
func FromSnapshot(logger logrus.FieldLogger, s *Snapshot) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	hands := make(map[string][]*deck.Card, len(s.Players))
	for _, name := range s.Players {
		hands[name] = append([]*deck.Card{}, s.Hands[name]...)
	}

	teamA := make(map[string]bool, len(s.TeamA))
	for _, name := range s.TeamA {
		teamA[name] = true
	}

	teamB := make(map[string]bool, len(s.TeamB))
	for _, name := range s.TeamB {
		teamB[name] = true
	}

	scores := copyScores(s.PlayerScores)
	if scores == nil {
		scores = make(map[string]int)
	}

	return &Game{
		players:         append([]string{}, s.Players...),
		hands:           hands,
		bidders:         append([]string{}, s.Bidders...),
		currentBidIndex: s.CurrentBidIndex,
		highestBid:      s.HighestBid,
		highestBidder:   s.HighestBidder,
		powerSuit:       s.PowerSuit,
		partnerCards:    append([]*deck.Card{}, s.PartnerCards...),
		partnerCount:    s.PartnerCount,
		teamA:           teamA,
		teamB:           teamB,
		currentTrick:    append([]*PlayedCard{}, s.CurrentTrick...),
		turnIndex:       s.TurnIndex,
		trickLeader:     s.TrickLeader,
		playerScores:    scores,
		teamAScore:      s.TeamAScore,
		teamBScore:      s.TeamBScore,
		stage:           s.Stage,
		winners:         append([]string{}, s.Winners...),
		seed:            s.Seed,
		rng:             rand.New(rand.NewSource(s.Seed)), // nolint:gosec
		startedAt:       s.StartedAt,
		logger:          logger,
	}
}

func copyScores(scores map[string]int) map[string]int {
	if scores == nil {
		return nil
	}

	cp := make(map[string]int, len(scores))
	for name, score := range scores {
		cp[name] = score
	}

	return cp
}
