// internal/handlers/game_server.go
package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/danvv/auctionfc/internal/ai"
	"github.com/danvv/auctionfc/internal/auction"
	"github.com/danvv/auctionfc/internal/room"
)

// GameServer is a high-level struct tying the room store, the auction engine
// and the AI bidder to the HTTP/WebSocket transport.
type GameServer struct {
	Store  *room.Store
	Engine *auction.Engine
	AI     *ai.Bidder
	Logger *logrus.Logger
}

// NewGameServer wires the engine's outbound hooks: the AI observes every
// auction, and broadcasts go out through the WebSocket fan-out below.
func NewGameServer(store *room.Store, engine *auction.Engine, bidder *ai.Bidder, logger *logrus.Logger) *GameServer {
	gs := &GameServer{
		Store:  store,
		Engine: engine,
		AI:     bidder,
		Logger: logger,
	}
	engine.Observer = bidder
	engine.BroadcastFn = createBroadcastFunc(logger)
	return gs
}

// createBroadcastFunc returns a function suitable for Engine.BroadcastFn.
// It is called *while the room lock is held*, so it must not re-acquire the
// lock or block: it snapshots the connections inline and writes asynchronously.
func createBroadcastFunc(logger *logrus.Logger) func(r *room.Room, ev auction.Event) {
	return func(r *room.Room, ev auction.Event) {
		conns := make([]*websocket.Conn, 0, len(r.Players))
		for _, p := range r.Players {
			if p.Connected && p.Conn != nil {
				conns = append(conns, p.Conn)
			}
		}
		if len(conns) == 0 {
			return
		}

		data := ev.Marshal()
		go func(conns []*websocket.Conn, data []byte, roomID string) {
			for _, c := range conns {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				err := c.Write(ctx, websocket.MessageText, data)
				cancel()
				if err != nil {
					logger.Warnf("Failed to write broadcast message in room %s: %v", roomID, err)
				}
			}
		}(conns, data, r.ID)
	}
}

// stateEvent builds the room:state broadcast carrying the full client view.
func stateEvent(r *room.Room) auction.Event {
	return auction.Event{Type: auction.EventRoomState, Payload: map[string]interface{}{
		"room": r.Snapshot(),
	}}
}

// errorEvent builds a room:error message for a single offender.
func errorEvent(msg string) auction.Event {
	return auction.Event{Type: auction.EventRoomError, Payload: map[string]interface{}{
		"message": msg,
	}}
}

// sendWsMessage marshals a message and writes it directly on a connection,
// outside any room lock.
func sendWsMessage(c *websocket.Conn, message interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(message)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.Write(ctx, websocket.MessageText, data)
}
