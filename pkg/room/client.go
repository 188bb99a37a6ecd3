package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a single websocket connection to a room. Name stays empty until
// the client successfully joins
type Client struct {
	// ID uniquely identifies this connection
	ID string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// RoomID is the room this connection belongs to
	RoomID string

	// Name is the player name bound to this connection, set by the dealer
	// on a successful join
	Name string

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	send   chan interface{}
	dealer *Dealer
}

// NewClient returns a new client for the given room
func NewClient(conn *websocket.Conn, roomID string) *Client {
	return &Client{
		ID:     uuid.New().String(),
		Conn:   conn,
		RoomID: roomID,
		Close:  make(chan string),
		send:   make(chan interface{}, 256),
	}
}

// Send queues a message for the web client. Returns false when the client's
// buffer is full and the message was dropped
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of queued outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection
func (c *Client) String() string {
	if c.Name != "" {
		return fmt.Sprintf("%s:%s", c.Name, c.RoomID)
	}

	return fmt.Sprintf("%s:%s", c.ID, c.RoomID)
}

// ReceivedMessage is called when the server receives a message from a
// connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
