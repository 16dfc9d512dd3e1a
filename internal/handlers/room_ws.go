// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/danvv/auctionfc/internal/auction"
	"github.com/danvv/auctionfc/internal/middleware"
	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/room"
)

// RoomMessage represents the structure for incoming WebSocket messages.
type RoomMessage struct {
	Type string `json:"type"`

	// Ready toggles the sender's ready flag (room:ready). Absent means true.
	Ready *bool `json:"ready,omitempty"`

	// Name is an optional display name, used when joining or adding an AI.
	Name string `json:"name,omitempty"`

	// Difficulty selects the AI opponent's tunables (room:add-ai).
	Difficulty string `json:"difficulty,omitempty"`

	// Amount carries the bid for game:bid. JSON numbers arrive as float64;
	// the validator rejects NaN/Inf and rounds to whole currency units.
	Amount float64 `json:"amount,omitempty"`

	// Settings carries a partial settings override (room:settings).
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// RoomWSHandler upgrades the HTTP connection to WebSocket for a specific room.
// It authenticates the guest, seats or reconnects them, and then runs the
// read loop until the connection drops.
func RoomWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Extract room code from URL path: /room/ws/{code}
		pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/room/ws/"), "/")
		if len(pathParts) < 1 || pathParts[0] == "" {
			http.Error(w, "Missing room code in path (/room/ws/{code})", http.StatusBadRequest)
			return
		}
		code := strings.ToUpper(pathParts[0])

		rm, ok := gs.Store.Get(code)
		if !ok {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}

		// Cookies can only be set before the upgrade hijacks the connection.
		userID, err := EnsureGuest(w, r)
		if err != nil {
			logger.Warnf("Guest authentication failed for room %s: %v", code, err)
			http.Error(w, "authentication failed", http.StatusForbidden)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"auction"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for room %s: %v", code, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		if c.Subprotocol() != "auction" {
			logger.Warnf("Client for room %s connected with invalid subprotocol: %s", code, c.Subprotocol())
			c.Close(websocket.StatusPolicyViolation, "Client must use the 'auction' subprotocol.")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		name := r.URL.Query().Get("name")
		if name == "" {
			name = "Guest"
		}

		if err := gs.seatPlayer(rm, userID, name, c); err != nil {
			logger.Warnf("User %s rejected from room %s: %v", userID, code, err)
			c.Close(websocket.StatusPolicyViolation, err.Error())
			return
		}
		logger.Infof("User %s seated in room %s", userID, code)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		readErr := gs.readRoomMessages(ctx, c, rm, userID, logger)

		gs.handleDisconnect(rm, userID)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, readErr)
	}
}

// seatPlayer attaches the connection to an existing seat (reconnect) or
// claims a free seat while the room is still open.
func (gs *GameServer) seatPlayer(rm *room.Room, userID uuid.UUID, name string, c *websocket.Conn) error {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	if p := rm.GetPlayer(userID); p != nil {
		p.Conn = c
		p.Connected = true
		rm.Touch()
		gs.Engine.BroadcastFn(rm, stateEvent(rm))
		return nil
	}

	if rm.Status != room.StatusWaiting {
		return errors.New("game already started")
	}
	p := models.NewPlayer(name, rm.Settings.StartingBudget)
	p.ID = userID
	p.Conn = c
	if !rm.AddPlayer(p) {
		return errors.New("room is full")
	}
	rm.Touch()
	gs.Engine.BroadcastFn(rm, stateEvent(rm))
	return nil
}

// handleDisconnect marks the seat vacant but keeps it reserved so the same
// guest can reconnect mid-game.
func (gs *GameServer) handleDisconnect(rm *room.Room, userID uuid.UUID) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	p := rm.GetPlayer(userID)
	if p == nil {
		return
	}
	p.Connected = false
	p.Conn = nil
	rm.Touch()
	gs.Engine.BroadcastFn(rm, stateEvent(rm))
}

// readRoomMessages continuously reads client messages, throttled by a
// per-connection limiter, and routes them to room or engine operations.
func (gs *GameServer) readRoomMessages(ctx context.Context, c *websocket.Conn, rm *room.Room, userID uuid.UUID, logger *logrus.Logger) error {
	l := rate.NewLimiter(rate.Every(time.Millisecond*100), 10)
	for {
		if err := l.Wait(ctx); err != nil {
			return err
		}

		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("WebSocket closed normally for user %s in room %s.", userID, rm.ID)
				return nil
			}
			if strings.Contains(err.Error(), "context canceled") {
				return nil
			}
			logger.Warnf("Error reading from WebSocket for user %s in room %s: %v", userID, rm.ID, err)
			return err
		}

		if msgType != websocket.MessageText {
			continue
		}

		var msg RoomMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid JSON from user %s in room %s: %v", userID, rm.ID, err)
			sendWsMessage(c, errorEvent("Invalid JSON format."))
			continue
		}

		logger.Debugf("Received '%s' from user %s in room %s.", msg.Type, userID, rm.ID)

		switch msg.Type {
		case "room:ready":
			gs.handleReady(rm, userID, msg.Ready)

		case "room:add-ai":
			if err := gs.handleAddAI(rm, msg.Difficulty, msg.Name); err != nil {
				sendWsMessage(c, errorEvent(err.Error()))
			}

		case "room:settings":
			if err := gs.handleSettings(rm, msg.Settings); err != nil {
				sendWsMessage(c, errorEvent(err.Error()))
			}

		case "game:start":
			if err := gs.Engine.StartGame(rm); err != nil {
				if errors.Is(err, auction.ErrNotReady) {
					sendWsMessage(c, errorEvent(err.Error()))
				}
				// ErrGameInProgress is a duplicate click; drop it.
			}

		case "game:bid":
			if err := gs.Engine.AcceptBid(rm, userID, msg.Amount, false); err != nil {
				if isBidRejection(err) {
					sendWsMessage(c, errorEvent(err.Error()))
				}
				// Stale state errors (no auction, already resolved) are
				// expected under latency and dropped silently.
			}

		case "ping":
			sendWsMessage(c, map[string]string{"type": "pong"})

		default:
			sendWsMessage(c, errorEvent(fmt.Sprintf("Unknown message type: %s", msg.Type)))
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

// handleReady toggles the sender's ready flag. The room moves to ready once
// both seats are filled and ready. Status only ever advances; unreadying
// flips the flag but leaves the status alone, and StartGame re-checks
// AllReady before opening the first auction.
func (gs *GameServer) handleReady(rm *room.Room, userID uuid.UUID, ready *bool) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	p := rm.GetPlayer(userID)
	if p == nil || rm.Status == room.StatusAuction || rm.Status == room.StatusFinished {
		return
	}
	p.Ready = ready == nil || *ready
	if rm.Status == room.StatusWaiting && rm.AllReady() {
		rm.Status = room.StatusReady
	}
	rm.Touch()
	gs.Engine.BroadcastFn(rm, stateEvent(rm))
}

// handleAddAI seats an AI opponent in the free seat.
func (gs *GameServer) handleAddAI(rm *room.Room, difficulty, name string) error {
	d := models.Difficulty(difficulty)
	switch d {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	case "":
		d = models.DifficultyMedium
	default:
		return fmt.Errorf("unknown difficulty: %s", difficulty)
	}
	if name == "" {
		name = "AI Manager"
	}

	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	if rm.Status != room.StatusWaiting {
		return errors.New("game already started")
	}
	p := models.NewAIPlayer(name, rm.Settings.StartingBudget, d)
	if !rm.AddPlayer(p) {
		return errors.New("room is full")
	}
	if rm.AllReady() {
		rm.Status = room.StatusReady
	}
	rm.Touch()
	gs.Engine.BroadcastFn(rm, stateEvent(rm))
	return nil
}

// handleSettings applies a partial settings override while the room is still
// open, re-baselining every seated budget to the new starting budget.
func (gs *GameServer) handleSettings(rm *room.Room, raw map[string]interface{}) error {
	if raw == nil {
		return errors.New("missing settings payload")
	}

	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	if rm.Status == room.StatusAuction || rm.Status == room.StatusFinished {
		return errors.New("game already started")
	}
	if err := rm.Settings.Update(raw); err != nil {
		return err
	}
	for _, p := range rm.Players {
		p.Budget = rm.Settings.StartingBudget
	}
	rm.Touch()
	gs.Engine.BroadcastFn(rm, stateEvent(rm))
	return nil
}

// isBidRejection reports whether the error is a bid validation failure that
// should be surfaced to the offending client.
func isBidRejection(err error) bool {
	for _, target := range []error{
		auction.ErrInvalidAmount,
		auction.ErrBidTooLow,
		auction.ErrOverBudget,
		auction.ErrBelowIncrement,
		auction.ErrSelfOutbid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
