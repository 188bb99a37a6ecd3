package room

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twofifty-server/pkg/game"
)

func TestRoom_LogMessages(t *testing.T) {
	a := assert.New(t)

	r := NewRoom("test")
	for i := 0; i < maxLogMessages+10; i++ {
		r.LogMessages(fmt.Sprintf("message %d", i))
	}

	a.Len(r.Messages, maxLogMessages)
	a.Equal("message 10", r.Messages[0])
	a.Equal(fmt.Sprintf("message %d", maxLogMessages+9), r.Messages[maxLogMessages-1])
}

func TestRoom_AddChat(t *testing.T) {
	a := assert.New(t)

	r := NewRoom("test")
	msg := r.AddChat("alice", "hello")
	a.NotEmpty(msg.ID)
	a.Equal("alice", msg.Sender)
	a.Equal("hello", msg.Message)
	a.False(msg.Sent.IsZero())

	for i := 0; i < maxChatHistory+5; i++ {
		r.AddChat("bob", fmt.Sprintf("chat %d", i))
	}

	a.Len(r.Chat, maxChatHistory)
	a.Equal("chat 5", r.Chat[0].Message)
}

func TestRoom_MemberNames(t *testing.T) {
	r := NewRoom("test")
	r.Members["carol"] = "c-3"
	r.Members["alice"] = "c-1"
	r.Members["bob"] = "c-2"

	assert.Equal(t, []string{"alice", "bob", "carol"}, r.MemberNames())
}

func TestRoom_dataRoundTrip(t *testing.T) {
	a := assert.New(t)

	r := NewRoom("parlor")
	r.LogMessages("alice joined the room")
	r.AddChat("alice", "anyone up for a game?")
	r.Members["alice"] = "c-1"
	r.Members["bob"] = "c-2"

	g, err := game.NewGame(logrus.StandardLogger(), []string{"alice", "bob", "carol", "dave"}, game.Options{Seed: 7})
	require.NoError(t, err)
	require.NoError(t, g.Deal())
	r.Game = g

	restored := roomFromData(nil, r.Data())
	a.Equal(r.ID, restored.ID)
	a.Equal(r.Messages, restored.Messages)
	a.Equal(r.Chat, restored.Chat)
	a.Equal(r.Members, restored.Members)
	require.NotNil(t, restored.Game)
	a.Equal(game.StageAuction, restored.Game.Stage())
	a.Equal(g.Players(), restored.Game.Players())

	// no game, no history
	empty := NewRoom("empty")
	restoredEmpty := roomFromData(nil, empty.Data())
	a.Nil(restoredEmpty.Game)
	a.Empty(restoredEmpty.History)
}
