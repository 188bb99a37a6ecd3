package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twofifty-server/pkg/deck"
)

func auctionWon(t *testing.T, names ...string) *Game {
	t.Helper()

	g := testGame(t, names...)
	g.stage = StagePowerSuitSelection
	g.highestBid = 130
	g.highestBidder = "alice"
	g.bidders = []string{"alice"}
	g.currentBidIndex = 0

	return g
}

func TestSelectPowerSuit(t *testing.T) {
	a := assert.New(t)

	g := testGame(t)
	res, err := g.SelectPowerSuit("alice", deck.Spades)
	a.Nil(res)
	a.EqualError(err, "expected stage powerSuitSelection, the game is in stage auction")

	g = auctionWon(t)
	res, err = g.SelectPowerSuit("bob", deck.Spades)
	a.Nil(res)
	a.Equal(ErrNotAuctionWinner, err)

	res, err = g.SelectPowerSuit("alice", "stars")
	a.Nil(res)
	a.Equal(ErrInvalidSuit, err)

	res, err = g.SelectPowerSuit("alice", deck.Spades)
	require.NoError(t, err)
	a.Equal(StatusOK, res.Status)
	a.Equal(1, res.PartnerCount)
	a.Equal(deck.Spades, g.powerSuit)
	a.Equal(StagePartnerSelection, g.stage)
	a.Equal([]string{"alice chose spades as the power suit"}, res.Messages)
}

func TestSelectPowerSuit_partnerCount(t *testing.T) {
	for _, tc := range []struct {
		players  int
		expected int
	}{
		{players: 4, expected: 1},
		{players: 5, expected: 2},
		{players: 6, expected: 2},
	} {
		names := []string{"alice", "b", "c", "d", "e", "f"}[:tc.players]
		g := auctionWon(t, names...)

		res, err := g.SelectPowerSuit("alice", deck.Hearts)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, res.PartnerCount, "players=%d", tc.players)
	}
}

func TestSelectPartners(t *testing.T) {
	a := assert.New(t)

	g := auctionWon(t)
	setHands(g, map[string]string{
		"alice": "14s,13s",
		"bob":   "3h,2c",
		"carol": "4h,5d",
		"dave":  "6h,7d",
	})

	_, err := g.SelectPartners("alice", deck.CardsFromString("3h"))
	a.EqualError(err, "expected stage partnerSelection, the game is in stage powerSuitSelection")

	_, err = g.SelectPowerSuit("alice", deck.Spades)
	require.NoError(t, err)

	res, err := g.SelectPartners("bob", deck.CardsFromString("3h"))
	a.Nil(res)
	a.Equal(ErrNotAuctionWinner, err)

	res, err = g.SelectPartners("alice", nil)
	a.Nil(res)
	a.Equal(ErrNoPartnerCards, err)

	res, err = g.SelectPartners("alice", deck.CardsFromString("3h,4h"))
	a.Nil(res)
	a.EqualError(err, "you cannot name 2 partner cards, the max is 1")

	// bob holds the named card, so he joins alice's team before a card is played
	res, err = g.SelectPartners("alice", deck.CardsFromString("3h"))
	require.NoError(t, err)
	a.Equal(StatusOK, res.Status)
	a.Equal(StagePlaying, g.stage)
	a.Equal(map[string]bool{"alice": true, "bob": true}, g.teamA)
	a.Equal(map[string]bool{"carol": true, "dave": true}, g.teamB)
	a.Equal("alice", g.CurrentActor())
	a.Equal("alice", g.trickLeader)
	a.Equal([]string{"alice calls 3h", "alice leads the first trick"}, res.Messages)
}

func TestSelectPartners_duplicates(t *testing.T) {
	g := auctionWon(t, "alice", "b", "c", "d", "e")
	_, err := g.SelectPowerSuit("alice", deck.Spades)
	require.NoError(t, err)

	res, err := g.SelectPartners("alice", deck.CardsFromString("3h,3h"))
	assert.Nil(t, res)
	assert.EqualError(t, err, "you cannot name 3♡ twice")
}

func TestResolveTeams_neverDemotes(t *testing.T) {
	a := assert.New(t)

	g := testGame(t)
	setHands(g, map[string]string{
		"alice": "14s",
		"bob":   "2c",
		"carol": "4h",
		"dave":  "6h",
	})
	g.highestBidder = "alice"
	g.partnerCards = deck.CardsFromString("3h")
	g.teamA = map[string]bool{"alice": true, "bob": true} // bob already revealed
	g.teamB = make(map[string]bool)

	g.resolveTeams()
	g.resolveTeams()

	a.Equal(map[string]bool{"alice": true, "bob": true}, g.teamA)
	a.Equal(map[string]bool{"carol": true, "dave": true}, g.teamB)
}
