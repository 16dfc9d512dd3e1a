// internal/room/room.go
package room

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/timing"
)

// Status is the room lifecycle state. Transitions only move forward:
// waiting -> ready -> auction -> finished.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusReady    Status = "ready"
	StatusAuction  Status = "auction"
	StatusFinished Status = "finished"
)

// Room holds the entire state for one two-party match. All mutable state is
// guarded by Mu; timer and AI callbacks re-acquire it and re-validate before
// acting (same staleness discipline as a turn-based game's turn counter).
type Room struct {
	ID        string
	Players   []*models.Player
	Status    Status
	Settings  Settings
	Queue     []*models.DraftItem
	Sold      []models.SoldRecord
	Auction   *models.Auction
	CreatedAt time.Time
	LastSeen  time.Time

	// auctionSeq increments every time a new auction is opened; stale timer
	// callbacks compare against Auction.Seq.
	AuctionSeq int

	// AIBidSeq increments on every AI decision cycle. A scheduled bid whose
	// timer already fired when its cycle was superseded survives CancelFunc,
	// so the callback re-checks this counter under the lock.
	AIBidSeq int

	// Cancel funcs for the room's live timers. At most one of each.
	TickCancel    timing.CancelFunc
	ResolveCancel timing.CancelFunc
	AICancel      timing.CancelFunc

	Mu sync.Mutex
}

// New builds an empty waiting room with the given code and settings.
func New(id string, settings Settings) *Room {
	now := time.Now()
	return &Room{
		ID:        id,
		Players:   []*models.Player{},
		Status:    StatusWaiting,
		Settings:  settings,
		CreatedAt: now,
		LastSeen:  now,
	}
}

// Touch records activity so the idle sweeper leaves the room alone.
// Assumes lock is held.
func (r *Room) Touch() {
	r.LastSeen = time.Now()
}

// AddPlayer appends a participant if a seat is free. Assumes lock is held.
func (r *Room) AddPlayer(p *models.Player) bool {
	if len(r.Players) >= 2 {
		return false
	}
	r.Players = append(r.Players, p)
	return true
}

// GetPlayer finds a participant by ID. Assumes lock is held.
func (r *Room) GetPlayer(id uuid.UUID) *models.Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Opponent returns the other participant, or nil with fewer than two seats
// filled. Assumes lock is held.
func (r *Room) Opponent(id uuid.UUID) *models.Player {
	for _, p := range r.Players {
		if p.ID != id {
			return p
		}
	}
	return nil
}

// AIPlayers returns the AI-controlled participants. Assumes lock is held.
func (r *Room) AIPlayers() []*models.Player {
	var out []*models.Player
	for _, p := range r.Players {
		if p.IsAI {
			out = append(out, p)
		}
	}
	return out
}

// AllReady reports whether both seats are filled and ready. Assumes lock is held.
func (r *Room) AllReady() bool {
	if len(r.Players) < 2 {
		return false
	}
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// HasConnectedHuman reports whether any human participant is still connected.
// Assumes lock is held.
func (r *Room) HasConnectedHuman() bool {
	for _, p := range r.Players {
		if !p.IsAI && p.Connected {
			return true
		}
	}
	return false
}

// CancelTimers stops the tick, resolution, and pending AI timers if present.
// Assumes lock is held. Idempotent.
func (r *Room) CancelTimers() {
	if r.TickCancel != nil {
		r.TickCancel()
		r.TickCancel = nil
	}
	if r.ResolveCancel != nil {
		r.ResolveCancel()
		r.ResolveCancel = nil
	}
	if r.AICancel != nil {
		r.AICancel()
		r.AICancel = nil
	}
}

// Snapshot is the wire representation of a room handed to clients.
type Snapshot struct {
	ID       string              `json:"id"`
	Status   Status              `json:"status"`
	Players  []*models.Player    `json:"players"`
	Settings Settings            `json:"settings"`
	Auction  *models.Auction     `json:"auction,omitempty"`
	Sold     []models.SoldRecord `json:"soldPlayers"`
	QueueLen int                 `json:"queueLength"`
}

// Snapshot builds the client-facing view. Assumes lock is held.
func (r *Room) Snapshot() Snapshot {
	return Snapshot{
		ID:       r.ID,
		Status:   r.Status,
		Players:  r.Players,
		Settings: r.Settings,
		Auction:  r.Auction,
		Sold:     r.Sold,
		QueueLen: len(r.Queue),
	}
}
