package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"twofifty-server/pkg/deck"
)

// Stage identifies where in its lifecycle a game is
type Stage string

// game stages, in order
const (
	StageAuction            Stage = "auction"
	StagePowerSuitSelection Stage = "powerSuitSelection"
	StagePartnerSelection   Stage = "partnerSelection"
	StagePlaying            Stage = "playing"
	StageGameOver           Stage = "gameOver"
)

const (
	// openingBid is the floor every auction starts from
	openingBid = 120
	// maxBid ends the auction immediately
	maxBid = 250
	// totalPoints is the point pool in an untrimmed deck
	totalPoints = 250
	// allPassedBid is the bid assigned to the drafted winner when everyone passes
	allPassedBid = 125
)

// Status reports how a transition went
type Status string

// transition statuses
const (
	StatusOK        Status = "ok"
	StatusWrongTurn Status = "wrongTurn"
)

// Result is returned by every transition. Messages are human-readable and
// meant to be broadcast to the room by the caller
type Result struct {
	Status   Status   `json:"status"`
	Messages []string `json:"messages"`

	// PartnerCount is set when the power suit has been chosen
	PartnerCount int `json:"partnerCount,omitempty"`
	// TrickWinner and TrickPoints are set when a trick completes
	TrickWinner string `json:"trickWinner,omitempty"`
	TrickPoints int    `json:"trickPoints,omitempty"`
	GameOver    bool   `json:"gameOver,omitempty"`
}

// PlayedCard is a card sitting in the current trick
type PlayedCard struct {
	Player         string     `json:"player"`
	Card           *deck.Card `json:"card"`
	EffectivePower int        `json:"effectivePower"`
}

// Options configures a new game
type Options struct {
	// Seed drives the shuffle and the random auction choices. 0 means time-based
	Seed int64
}

// Game is a single game of Two-Fifty. It is a plain state machine: it never
// touches the transport or the store, and all methods must be called from a
// single goroutine
type Game struct {
	players []string
	hands   map[string][]*deck.Card

	bidders         []string
	currentBidIndex int
	highestBid      int
	highestBidder   string

	powerSuit    deck.Suit
	partnerCards []*deck.Card
	partnerCount int
	teamA        map[string]bool
	teamB        map[string]bool

	currentTrick []*PlayedCard
	turnIndex    int
	trickLeader  string

	playerScores map[string]int
	teamAScore   int
	teamBScore   int

	stage     Stage
	winners   []string
	seed      int64
	rng       *rand.Rand
	startedAt time.Time

	logger logrus.FieldLogger
}

// NewGame returns a new game in the auction stage.
// players must be in turn order; the first bidder is chosen at random
func NewGame(logger logrus.FieldLogger, players []string, opts Options) (*Game, error) {
	if len(players) < 4 {
		return nil, PlayerCountError{Min: 4, Got: len(players)}
	}

	seen := make(map[string]bool)
	for _, name := range players {
		if seen[name] {
			return nil, fmt.Errorf("duplicate player name: %s", name)
		}

		seen[name] = true
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed)) // nolint:gosec

	g := &Game{
		players:         append([]string{}, players...),
		hands:           make(map[string][]*deck.Card),
		bidders:         append([]string{}, players...),
		currentBidIndex: rng.Intn(len(players)),
		highestBid:      openingBid,
		teamA:           make(map[string]bool),
		teamB:           make(map[string]bool),
		playerScores:    make(map[string]int),
		stage:           StageAuction,
		seed:            seed,
		rng:             rng,
		startedAt:       time.Now(),
		logger:          logger,
	}

	for _, name := range players {
		g.playerScores[name] = 0
	}

	return g, nil
}

// Deal shuffles a deck, trims it to a multiple of the player count, and deals
// it round-robin in player order
func (g *Game) Deal() error {
	d := deck.New()
	d.Shuffle(g.seed)
	d.Trim(len(g.players))

	for i := 0; d.CardsLeft() > 0; i++ {
		card, err := d.Draw()
		if err != nil {
			return err
		}

		name := g.players[i%len(g.players)]
		g.hands[name] = append(g.hands[name], card)
	}

	g.logger.WithFields(logrus.Fields{
		"players": len(g.players),
		"seed":    g.seed,
	}).Debug("dealt hands")

	return nil
}

// Stage returns the current stage
func (g *Game) Stage() Stage {
	return g.stage
}

// Players returns the turn order
func (g *Game) Players() []string {
	return append([]string{}, g.players...)
}

// CurrentActor returns the name of the player the game is waiting on.
// Empty once the game is over
func (g *Game) CurrentActor() string {
	switch g.stage {
	case StageAuction:
		if len(g.bidders) > 0 {
			return g.bidders[g.currentBidIndex]
		}
	case StagePowerSuitSelection, StagePartnerSelection:
		return g.highestBidder
	case StagePlaying:
		return g.players[g.turnIndex]
	}

	return ""
}

// LedSuit returns the suit leading the current trick, or "" if the trick is empty
func (g *Game) LedSuit() deck.Suit {
	if len(g.currentTrick) == 0 {
		return ""
	}

	return g.currentTrick[0].Card.Suit
}

func (g *Game) playerIndex(name string) int {
	for i, p := range g.players {
		if p == name {
			return i
		}
	}

	return -1
}

func (g *Game) hasPlayer(name string) bool {
	return g.playerIndex(name) >= 0
}

// teamNames returns the members of a team in player order
func (g *Game) teamNames(team map[string]bool) []string {
	names := make([]string, 0, len(team))
	for _, name := range g.players {
		if team[name] {
			names = append(names, name)
		}
	}

	return names
}
