package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twofifty-server/pkg/game"
)

func newTestRoomStore(t *testing.T) (*RoomStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewRoomStore(client, time.Hour), mr
}

func TestRoomStore_saveLoadDelete(t *testing.T) {
	a := assert.New(t)

	s, mr := newTestRoomStore(t)
	ctx := context.Background()

	g, err := game.NewGame(logrus.StandardLogger(), []string{"alice", "bob", "carol", "dave"}, game.Options{Seed: 1})
	require.NoError(t, err)
	require.NoError(t, g.Deal())

	data := &RoomData{
		ID:        "cozy-parlor",
		CreatedAt: time.Now().UTC(),
		Messages:  []string{"alice joined the room"},
		Chat: []*ChatEntry{
			{ID: "1", Sender: "alice", Message: "hello", Sent: time.Now().UTC()},
		},
		Members: map[string]string{"alice": "client-1"},
		Game:    g.Snapshot(),
	}

	require.NoError(t, s.Save(ctx, data))
	a.Equal(time.Hour, mr.TTL(roomKeyPrefix+"cozy-parlor"))

	loaded, err := s.Load(ctx, "cozy-parlor")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	a.Equal(data.ID, loaded.ID)
	a.Equal(data.Messages, loaded.Messages)
	a.Equal("alice", loaded.Chat[0].Sender)
	a.Equal(data.Members, loaded.Members)
	require.NotNil(t, loaded.Game)
	a.Equal(g.Snapshot().Hands, loaded.Game.Hands)

	require.NoError(t, s.Delete(ctx, "cozy-parlor"))
	loaded, err = s.Load(ctx, "cozy-parlor")
	a.NoError(err)
	a.Nil(loaded)
}

func TestRoomStore_loadMiss(t *testing.T) {
	s, _ := newTestRoomStore(t)

	loaded, err := s.Load(context.Background(), "never-created")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRoomStore_saveValidation(t *testing.T) {
	s, _ := newTestRoomStore(t)
	ctx := context.Background()

	assert.EqualError(t, s.Save(ctx, nil), "cannot save a room without an ID")
	assert.EqualError(t, s.Save(ctx, &RoomData{}), "cannot save a room without an ID")
}

func TestRoomStore_expiration(t *testing.T) {
	a := assert.New(t)

	s, mr := newTestRoomStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &RoomData{ID: "fleeting", CreatedAt: time.Now()}))

	mr.FastForward(30 * time.Minute)
	require.NoError(t, s.Touch(ctx, "fleeting"))
	a.Equal(time.Hour, mr.TTL(roomKeyPrefix+"fleeting"))

	mr.FastForward(2 * time.Hour)
	loaded, err := s.Load(ctx, "fleeting")
	a.NoError(err)
	a.Nil(loaded)
}
