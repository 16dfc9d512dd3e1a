// internal/room/store.go
package room

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/danvv/auctionfc/internal/timing"
)

const (
	// roomTTL is how long an idle room survives before the sweeper reaps it.
	roomTTL = 2 * time.Hour
	// sweepInterval is how often the sweeper scans for dead rooms.
	sweepInterval = 10 * time.Minute

	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// Store is the in-memory registry of active rooms. It exclusively owns Room
// objects; the engine and AI receive references and mutate them in place.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	rng   *rand.Rand

	sweepCancel timing.CancelFunc
}

// NewStore builds an empty registry. The rng seeds room-code generation.
func NewStore(rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		rooms: make(map[string]*Room),
		rng:   rng,
	}
}

// Create allocates a room under a fresh code.
func (s *Store) Create(settings Settings) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		code = s.generateCode()
		if _, exists := s.rooms[code]; !exists {
			break
		}
	}
	r := New(code, settings)
	s.rooms[code] = r
	log.Printf("Room %s created.", code)
	return r
}

// Get looks up a room by code.
func (s *Store) Get(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, exists := s.rooms[id]
	return r, exists
}

// Delete removes a room, cancelling its timers first so no orphaned callback
// acts on a disposed room.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	r, exists := s.rooms[id]
	if exists {
		delete(s.rooms, id)
	}
	s.mu.Unlock()

	if exists {
		r.Mu.Lock()
		r.CancelTimers()
		r.Mu.Unlock()
		log.Printf("Room %s deleted.", id)
	}
}

// List returns snapshots of every active room, for the lobby listing.
func (s *Store) List() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Snapshot, 0, len(s.rooms))
	for _, r := range s.rooms {
		r.Mu.Lock()
		out = append(out, r.Snapshot())
		r.Mu.Unlock()
	}
	return out
}

// Len reports how many rooms are live.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// StartSweeper begins the periodic idle sweep on the given scheduler.
func (s *Store) StartSweeper(sched timing.Scheduler) {
	s.sweepCancel = sched.Every(sweepInterval, s.Sweep)
}

// StopSweeper cancels the periodic sweep.
func (s *Store) StopSweeper() {
	if s.sweepCancel != nil {
		s.sweepCancel()
		s.sweepCancel = nil
	}
}

// Sweep reaps rooms that have been idle past the TTL, finished games with no
// connected humans, and abandoned waiting rooms.
func (s *Store) Sweep() {
	s.mu.Lock()
	var dead []string
	now := time.Now()
	for id, r := range s.rooms {
		r.Mu.Lock()
		idle := now.Sub(r.LastSeen)
		abandoned := !r.HasConnectedHuman() && (r.Status == StatusFinished || idle > sweepInterval)
		expired := idle > roomTTL
		r.Mu.Unlock()
		if abandoned || expired {
			dead = append(dead, id)
		}
	}
	s.mu.Unlock()

	for _, id := range dead {
		log.Printf("Room %s reaped by idle sweep.", id)
		s.Delete(id)
	}
}

// generateCode produces a short join code. Assumes lock is held.
func (s *Store) generateCode() string {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeAlphabet[s.rng.Intn(len(codeAlphabet))]
	}
	return string(buf)
}
