// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/danvv/auctionfc/internal/room"
)

// createRoomRequest carries the optional settings overrides for a new room.
// JSON numbers arrive as float64 inside the map; Settings.Update handles the
// coercion and range checks.
type createRoomRequest struct {
	Settings map[string]interface{} `json:"settings,omitempty"`
}

type createRoomResponse struct {
	Room room.Snapshot `json:"room"`
}

// CreateRoomHandler allocates a room with a fresh join code. No DB writes;
// rooms live in memory until the idle sweeper reaps them. The creator still
// joins through the WebSocket like everyone else.
func CreateRoomHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if _, err := EnsureGuest(w, r); err != nil {
			http.Error(w, "authentication failed", http.StatusForbidden)
			return
		}

		var req createRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
			http.Error(w, "bad room request payload", http.StatusBadRequest)
			return
		}

		settings := room.DefaultSettings()
		if req.Settings != nil {
			if err := settings.Update(req.Settings); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		rm := gs.Store.Create(settings)

		rm.Mu.Lock()
		snap := rm.Snapshot()
		rm.Mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(createRoomResponse{Room: snap})
	}
}

// ListRoomsHandler returns the in-memory room registry, mainly for debugging.
func ListRoomsHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := EnsureGuest(w, r); err != nil {
			http.Error(w, "authentication failed", http.StatusForbidden)
			return
		}

		rooms := gs.Store.List()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rooms)
	}
}
