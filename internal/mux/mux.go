package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"twofifty-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	manager *room.Manager
}

// NewMux returns a new HTTP mux. The manager must already be running
func NewMux(version string, manager *room.Manager) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		manager: manager,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/room/{id:[A-Za-z0-9_-]+}/ws").Handler(this.getRoomIDWS())

	return this
}
