package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twofifty-server/pkg/deck"
)

func TestSnapshot_roundTrip(t *testing.T) {
	a := assert.New(t)

	g := playingGame(t, map[string]string{
		"alice": "14h,5s",
		"bob":   "3h,2s",
		"carol": "13h,6d",
		"dave":  "12h,7d",
	})

	_, err := g.PlayCard("alice", deck.CardFromString("14h"))
	require.NoError(t, err)

	// through JSON, the way the store persists it
	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))

	restored := FromSnapshot(nil, &snapshot)
	a.Equal(StagePlaying, restored.Stage())
	a.Equal(g.players, restored.players)
	a.Equal(g.hands, restored.hands)
	a.Equal(g.highestBid, restored.highestBid)
	a.Equal("alice", restored.highestBidder)
	a.Equal(deck.Spades, restored.powerSuit)
	a.Equal(g.partnerCards, restored.partnerCards)
	a.Equal(g.teamA, restored.teamA)
	a.Equal(g.teamB, restored.teamB)
	a.Equal(g.currentTrick, restored.currentTrick)
	a.Equal("bob", restored.CurrentActor())
	a.Equal("alice", restored.trickLeader)
	a.Equal(g.startedAt.Unix(), restored.startedAt.Unix())

	// the restored game keeps playing where the old one left off
	_, err = restored.PlayCard("bob", deck.CardFromString("3h"))
	require.NoError(t, err)
	a.Equal(map[string]bool{"alice": true, "bob": true}, restored.teamA)
}

func TestGameState_hidesHandsAndTeams(t *testing.T) {
	a := assert.New(t)

	g := playingGame(t, map[string]string{
		"alice": "14h,5s",
		"bob":   "3h,2s",
		"carol": "13h,6d",
		"dave":  "12h,7d",
	})

	state := g.GameState()
	a.Equal(StagePlaying, state.Stage)
	a.Equal("alice", state.CurrentTurn)
	a.Equal(deck.Spades, state.PowerSuit)
	a.Equal(map[string]int{"alice": 2, "bob": 2, "carol": 2, "dave": 2}, state.CardsInHand)

	data, err := json.Marshal(state)
	require.NoError(t, err)
	a.NotContains(string(data), `"hand"`)
	a.NotContains(string(data), `"teamA"`)

	ps, err := g.GetPlayerState("bob")
	require.NoError(t, err)
	a.Equal(deck.CardsFromString("3h,2s"), ps.Hand)

	_, err = g.GetPlayerState("mallory")
	a.Equal(ErrPlayerNotFound, err)
}
