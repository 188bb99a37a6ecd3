package room

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"twofifty-server/pkg/game"
)

// only the most recent entries survive in memory and in the store
const (
	maxLogMessages = 100
	maxChatHistory = 100
)

// ChatMessage is one user chat entry
type ChatMessage struct {
	ID      string    `json:"id"`
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	Sent    time.Time `json:"sent"`
}

// Room holds everything about one table: the system log, the user chat, the
// name bindings, the running game, and the results of past games. A room is
// only ever touched from its dealer's run loop
type Room struct {
	ID        string
	CreatedAt time.Time
	Messages  []string
	Chat      []*ChatMessage
	Members   map[string]string
	Game      *game.Game
	History   []*game.GameResult
}

// NewRoom returns an empty room
func NewRoom(id string) *Room {
	return &Room{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Members:   make(map[string]string),
	}
}

// LogMessages appends system messages, dropping the oldest past the cap
func (r *Room) LogMessages(messages ...string) {
	r.Messages = append(r.Messages, messages...)
	if n := len(r.Messages); n > maxLogMessages {
		r.Messages = r.Messages[n-maxLogMessages:]
	}
}

// AddChat appends a user chat message, dropping the oldest past the cap
func (r *Room) AddChat(sender, text string) *ChatMessage {
	msg := &ChatMessage{
		ID:      uuid.New().String(),
		Sender:  sender,
		Message: text,
		Sent:    time.Now().UTC(),
	}

	r.Chat = append(r.Chat, msg)
	if n := len(r.Chat); n > maxChatHistory {
		r.Chat = r.Chat[n-maxChatHistory:]
	}

	return msg
}

// MemberNames returns the bound player names in a stable order
func (r *Room) MemberNames() []string {
	names := make([]string, 0, len(r.Members))
	for name := range r.Members {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
