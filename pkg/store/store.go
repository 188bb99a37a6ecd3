package store

import (
	"time"

	"twofifty-server/pkg/game"
)

// RoomData is the serializable form of a room. The room package converts to
// and from its live representation; keeping the wire shape here avoids an
// import cycle between the two
type RoomData struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Messages  []string          `json:"messages,omitempty"`
	Chat      []*ChatEntry      `json:"chat,omitempty"`
	Members   map[string]string `json:"members,omitempty"`
	Game      *game.Snapshot    `json:"game,omitempty"`
	History   []*game.GameResult `json:"history,omitempty"`
}

// ChatEntry is one persisted chat message
type ChatEntry struct {
	ID      string    `json:"id"`
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	Sent    time.Time `json:"sent"`
}
