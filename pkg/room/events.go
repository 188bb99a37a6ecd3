package room

import (
	"twofifty-server/pkg/deck"
)

// PayloadIn is a message from a client. Event names the request; the other
// fields are populated per event
type PayloadIn struct {
	Event   string       `json:"event"`
	RoomID  string       `json:"roomId"`
	Name    string       `json:"name"`
	Text    string       `json:"text"`
	Amount  int          `json:"amount"`
	Suit    deck.Suit    `json:"suit"`
	Cards   []*deck.Card `json:"cards"`
	Card    *deck.Card   `json:"card"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Response is a message to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

// playedCardNotice is the broadcast echo of a card hitting the table
type playedCardNotice struct {
	PlayerName string     `json:"playerName"`
	Card       *deck.Card `json:"card"`
}

// playerTurnNotice tells one client the game is waiting on them
type playerTurnNotice struct {
	LedSuit deck.Suit `json:"ledSuit,omitempty"`
}
