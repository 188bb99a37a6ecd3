package room

import (
	"github.com/sirupsen/logrus"

	"twofifty-server/pkg/game"
	"twofifty-server/pkg/store"
)

// Data returns the serializable form of the room
func (r *Room) Data() *store.RoomData {
	chat := make([]*store.ChatEntry, len(r.Chat))
	for i, msg := range r.Chat {
		chat[i] = &store.ChatEntry{
			ID:      msg.ID,
			Sender:  msg.Sender,
			Message: msg.Message,
			Sent:    msg.Sent,
		}
	}

	members := make(map[string]string, len(r.Members))
	for name, clientID := range r.Members {
		members[name] = clientID
	}

	var snapshot *game.Snapshot
	if r.Game != nil {
		snapshot = r.Game.Snapshot()
	}

	return &store.RoomData{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Messages:  append([]string{}, r.Messages...),
		Chat:      chat,
		Members:   members,
		Game:      snapshot,
		History:   append([]*game.GameResult{}, r.History...),
	}
}

// roomFromData rebuilds a room from its stored form. The member bindings
// reference connections from a previous process and only mark which names
// may resume; the clients themselves are gone
func roomFromData(logger logrus.FieldLogger, data *store.RoomData) *Room {
	chat := make([]*ChatMessage, len(data.Chat))
	for i, entry := range data.Chat {
		chat[i] = &ChatMessage{
			ID:      entry.ID,
			Sender:  entry.Sender,
			Message: entry.Message,
			Sent:    entry.Sent,
		}
	}

	members := make(map[string]string, len(data.Members))
	for name, clientID := range data.Members {
		members[name] = clientID
	}

	var g *game.Game
	if data.Game != nil {
		g = game.FromSnapshot(logger, data.Game)
	}

	return &Room{
		ID:        data.ID,
		CreatedAt: data.CreatedAt,
		Messages:  append([]string{}, data.Messages...),
		Chat:      chat,
		Members:   members,
		Game:      g,
		History:   append([]*game.GameResult{}, data.History...),
	}
}
