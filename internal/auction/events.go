// internal/auction/events.go
package auction

import (
	"encoding/json"
	"log"
)

// Outbound event names. These are part of the client compatibility surface
// and must not change.
const (
	EventAuctionStart  = "game:auction-start"
	EventAuctionUpdate = "game:auction-update"
	EventBidPlaced     = "game:bid-placed"
	EventPlayerSold    = "game:player-sold"
	EventPlayerUnsold  = "game:player-unsold"
	EventGameFinished  = "game:finished"
	EventRoomState     = "room:state"
	EventRoomError     = "room:error"
)

// Event is a single message pushed to clients over the abstract transport.
type Event struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Marshal serializes the event for the wire. Logs and returns empty JSON on
// error so a bad payload never takes down the write loop.
func (ev Event) Marshal() []byte {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("WARNING: failed to marshal event type %s: %v", ev.Type, err)
		return []byte("{}")
	}
	return data
}
