package room

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"twofifty-server/internal/rng"
	"twofifty-server/pkg/game"
	"twofifty-server/pkg/store"
)

const persistTimeout = 5 * time.Second

// Dealer runs a single room. All room and game mutations happen inside its
// run loop, one event at a time, so neither needs any locking of its own.
// Only the client set is touched from the outside and sits behind a mutex
type Dealer struct {
	manager *Manager
	room    *Room
	logger  logrus.FieldLogger

	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	persist       chan bool
	close         chan bool
}

// NewDealer creates a new dealer for the room
// This is called from a blocking state, so it needs to return quickly
func NewDealer(manager *Manager, room *Room) *Dealer {
	return &Dealer{
		manager:       manager,
		room:          room,
		logger:        manager.logger.WithField("room", room.ID),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		persist:       make(chan bool, 1),
		close:         make(chan bool),
	}
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.persist:
			// snapshot in the loop for consistency, write out of it
			go d.saveRoom(d.room.Data())
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			d.saveRoom(d.room.Data())
			return
		}
	}
}

// Clients returns a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()
}

// RemoveClient removes a client and reports whether it was the last one
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients == 0 {
		return true
	}

	d.execInRunLoop <- func() {
		if client.Name == "" || d.room.Members[client.Name] != client.ID {
			return
		}

		delete(d.room.Members, client.Name)
		d.room.LogMessages(client.Name + " left the room")
		d.broadcast(&Response{Key: "bulkMessage", Data: []string{client.Name + " left the room"}})
		d.broadcastMemberList()
		d.queuePersist()
	}

	return false
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Event {
	case "joinRoom":
		d.execInRunLoop <- func() {
			d.joinRoom(c, msg)
		}
	case "userMessage":
		d.execInRunLoop <- func() {
			d.userMessage(c, msg)
		}
	case "gameStart":
		d.execInRunLoop <- func() {
			d.startGame(c, msg.Context)
		}
	case "bidPlaced":
		d.gameAction(c, msg, &game.BidAction{Amount: msg.Amount})
	case "powerSuitSelected":
		d.gameAction(c, msg, &game.PowerSuitAction{Suit: msg.Suit})
	case "partnersSelected":
		d.gameAction(c, msg, &game.PartnersAction{Cards: msg.Cards})
	case "cardPlayed":
		d.gameAction(c, msg, &game.PlayAction{Card: msg.Card})
	default:
		d.logger.WithField("event", msg.Event).Warn("unknown event")
		c.Send(newErrorResponse(msg.Context, errors.New("unknown event: "+msg.Event)))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) joinRoom(c *Client, msg *PayloadIn) {
	name := strings.TrimSpace(msg.Name)
	if name == "" {
		c.Send(newErrorResponse(msg.Context, errors.New("a name is required")))
		return
	}

	if c.Name != "" {
		c.Send(newErrorResponse(msg.Context, errors.New("you already joined as "+c.Name)))
		return
	}

	if clientID, found := d.room.Members[name]; found && d.clientByID(clientID) != nil {
		c.Send(newErrorResponse(msg.Context, errors.New("the name "+name+" is already taken")))
		return
	}

	c.Name = name
	d.room.Members[name] = c.ID
	d.room.LogMessages(name + " joined the room")

	c.Send(OK(msg.Context))
	c.Send(&Response{Key: "chatHistory", Data: d.room.Chat})
	c.Send(&Response{Key: "bulkMessage", Data: d.room.Messages})

	for _, client := range d.Clients() {
		if client != c {
			client.Send(&Response{Key: "bulkMessage", Data: []string{name + " joined the room"}})
		}
	}

	d.broadcastMemberList()

	if d.room.Game != nil {
		d.sendGameState(c)
		d.announceTurn()
	}

	d.logger.WithField("player", c.String()).Debug("player joined")
	d.queuePersist()
}

// NOTE: must only be called from the run loop
func (d *Dealer) userMessage(c *Client, msg *PayloadIn) {
	if c.Name == "" {
		c.Send(newErrorResponse(msg.Context, errors.New("you must join the room before chatting")))
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		c.Send(newErrorResponse(msg.Context, errors.New("cannot send an empty message")))
		return
	}

	d.room.AddChat(c.Name, text)
	d.broadcast(&Response{Key: "chatHistory", Data: d.room.Chat})
	d.queuePersist()
}

// NOTE: must only be called from the run loop
func (d *Dealer) startGame(c *Client, ctx string) {
	if c.Name == "" {
		c.Send(newErrorResponse(ctx, errors.New("you must join the room before starting a game")))
		return
	}

	if g := d.room.Game; g != nil && g.Stage() != game.StageGameOver {
		c.Send(newErrorResponse(ctx, errors.New("a game is already in progress")))
		return
	}

	players := d.connectedMemberNames()
	if len(players) < d.manager.minPlayers {
		c.Send(newErrorResponse(ctx, game.PlayerCountError{Min: d.manager.minPlayers, Got: len(players)}))
		return
	}

	g, err := game.NewGame(d.logger, players, game.Options{Seed: rng.Crypto{}.Int63()})
	if err != nil {
		c.Send(newErrorResponse(ctx, err))
		return
	}

	if err := g.Deal(); err != nil {
		c.Send(newErrorResponse(ctx, err))
		return
	}

	d.room.Game = g

	messages := []string{c.Name + " started a new game"}
	d.room.LogMessages(messages...)
	d.broadcast(&Response{Key: "bulkMessage", Data: messages})
	d.broadcastGameState()
	d.announceTurn()

	d.logger.WithField("players", players).Info("game started")
	d.queuePersist()
}

// gameAction routes one typed game action through the run loop
func (d *Dealer) gameAction(c *Client, msg *PayloadIn, action game.Action) {
	d.execInRunLoop <- func() {
		g := d.room.Game
		if g == nil {
			c.Send(newErrorResponse(msg.Context, errors.New("no game in progress")))
			return
		}

		if c.Name == "" {
			c.Send(newErrorResponse(msg.Context, errors.New("you must join the room first")))
			return
		}

		res, err := g.Apply(c.Name, action)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		if res.Status == game.StatusWrongTurn {
			c.Send(&Response{Key: "message", Value: "it is not your turn", Context: msg.Context})
			return
		}

		c.Send(OK(msg.Context))

		if play, ok := action.(*game.PlayAction); ok {
			d.broadcast(&Response{Key: "cardPlayed", Data: &playedCardNotice{
				PlayerName: c.Name,
				Card:       play.Card,
			}})
		}

		d.room.LogMessages(res.Messages...)
		d.broadcast(&Response{Key: "bulkMessage", Data: res.Messages})
		d.broadcastGameState()

		if res.GameOver {
			d.room.History = append(d.room.History, g.Result())
		} else {
			d.announceTurn()
		}

		d.queuePersist()
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcastGameState() {
	for _, client := range d.Clients() {
		d.sendGameState(client)
	}
}

// sendGameState sends the public state, plus their own hand if they are
// seated in the game
// NOTE: must only be called from the run loop
func (d *Dealer) sendGameState(c *Client) {
	g := d.room.Game
	if g == nil {
		return
	}

	ps, err := g.GetPlayerState(c.Name)
	if err != nil {
		ps = &game.PlayerState{GameState: g.GameState()}
	}

	c.Send(&Response{Key: "gameStateUpdate", Data: ps})
}

// announceTurn tells whoever is up that the game is waiting on them
// NOTE: must only be called from the run loop
func (d *Dealer) announceTurn() {
	g := d.room.Game
	if g == nil || g.Stage() == game.StageGameOver {
		return
	}

	actor := g.CurrentActor()
	if client := d.clientByName(actor); client != nil {
		client.Send(&Response{Key: "playerTurn", Data: &playerTurnNotice{LedSuit: g.LedSuit()}})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcastMemberList() {
	d.broadcast(&Response{Key: "memberList", Data: d.room.MemberNames()})
}

func (d *Dealer) broadcast(res *Response) {
	for _, client := range d.Clients() {
		if !client.Send(res) {
			d.logger.WithField("client", client.String()).Warn("send buffer full, dropped message")
		}
	}
}

// connectedMemberNames returns the names of joined clients in a stable order
func (d *Dealer) connectedMemberNames() []string {
	names := make([]string, 0)
	for _, client := range d.Clients() {
		if client.Name != "" && d.room.Members[client.Name] == client.ID {
			names = append(names, client.Name)
		}
	}

	sort.Strings(names)
	return names
}

func (d *Dealer) clientByName(name string) *Client {
	if name == "" {
		return nil
	}

	for _, client := range d.Clients() {
		if client.Name == name {
			return client
		}
	}

	return nil
}

func (d *Dealer) clientByID(id string) *Client {
	for _, client := range d.Clients() {
		if client.ID == id {
			return client
		}
	}

	return nil
}

// saveRoom writes the room to the store. Storage failures are logged and
// swallowed; the in-memory copy stays authoritative
func (d *Dealer) saveRoom(data *store.RoomData) {
	if d.manager.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := d.manager.store.Save(ctx, data); err != nil {
		d.logger.WithError(err).Error("could not save room")
	}
}

// queuePersist schedules an asynchronous save. Back-to-back mutations
// coalesce into one write
// NOTE: must only be called from the run loop
func (d *Dealer) queuePersist() {
	select {
	case d.persist <- true:
	default:
	}
}
