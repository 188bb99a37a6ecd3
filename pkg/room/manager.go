package room

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"twofifty-server/pkg/store"
)

const restoreTimeout = 5 * time.Second

// Manager is responsible for dispatching connections to rooms. It owns the
// set of live dealers: a dealer is created lazily when the first connection
// for a room arrives and evicted when the last one leaves. Eviction never
// deletes the stored copy, so a room survives in the store until its TTL
// runs out and a returning player can pick up where they left off
type Manager struct {
	logger     logrus.FieldLogger
	store      *store.RoomStore
	minPlayers int

	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewManager returns a new dispatch object
func NewManager(logger logrus.FieldLogger, roomStore *store.RoomStore, minPlayers int) *Manager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Manager{
		logger:     logger,
		store:      roomStore,
		minPlayers: minPlayers,
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the manager run loop
func (m *Manager) StartShift() {
	go m.runLoop()
}

func (m *Manager) runLoop() {
	for {
		select {
		case client := <-m.connect:
			m.logger.WithField("client", client.String()).Debug("client connected")
			dealer, found := m.dealers[client.RoomID]
			if !found {
				dealer = NewDealer(m, m.loadRoom(client.RoomID))
				dealer.StartShift()
				m.dealers[client.RoomID] = dealer
			}

			dealer.AddClient(client)
		case client := <-m.disconnect:
			m.logger.WithField("client", client.String()).Debug("client disconnected")
			dealer, found := m.dealers[client.RoomID]
			if !found {
				m.logger.WithField("room", client.RoomID).WithField("type", "exception").Error("room not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(m.dealers, client.RoomID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (m *Manager) ClientConnected(client *Client) {
	m.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (m *Manager) ClientDisconnected(client *Client) {
	m.disconnect <- client
}

// loadRoom restores the room from the store, falling back to a fresh one
// when it is unknown, expired, or the store is unreachable
func (m *Manager) loadRoom(id string) *Room {
	if m.store == nil {
		return NewRoom(id)
	}

	ctx, cancel := context.WithTimeout(context.Background(), restoreTimeout)
	defer cancel()

	data, err := m.store.Load(ctx, id)
	if err != nil {
		m.logger.WithField("room", id).WithError(err).Error("could not load room")
		return NewRoom(id)
	}

	if data == nil {
		return NewRoom(id)
	}

	m.logger.WithField("room", id).Debug("restored room from store")
	return roomFromData(m.logger.WithField("room", id), data)
}
