// internal/auction/engine.go
package auction

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danvv/auctionfc/internal/catalog"
	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/room"
	"github.com/danvv/auctionfc/internal/scoring"
	"github.com/danvv/auctionfc/internal/timing"
)

// State guards. These indicate stale or out-of-order client messages and are
// silently dropped by the transport layer rather than surfaced.
var (
	ErrNotReady       = errors.New("room is not ready to start")
	ErrUnknownBidder  = errors.New("bidder is not a participant in this room")
	ErrGameInProgress = errors.New("game already in progress")
)

const (
	// bidFloorSeconds is the minimum clock guaranteed after any accepted bid,
	// preventing snipe-denial by a fast clock.
	bidFloorSeconds = 10
	// resolveDelay is the cosmetic pause between one item resolving and the
	// next auction opening.
	resolveDelay = 3 * time.Second
)

// Observer is notified of auction activity so the AI bidder can react. All
// methods are invoked with the room lock held and must not block; reactions
// are scheduled, never applied inline.
type Observer interface {
	AuctionStarted(r *room.Room)
	BidPlaced(r *room.Room, bidderID uuid.UUID)
	AuctionTick(r *room.Room)
}

// Recorder receives accepted bids and final results for out-of-band sinks
// (historian queue, result persistence). Calls are made asynchronously.
type Recorder interface {
	RecordBid(roomID string, item *models.DraftItem, bid models.Bid)
	RecordResult(roomID string, result *scoring.GameResult)
}

// Engine drives each room's auction through its lifecycle: queue -> active ->
// going_once -> going_twice -> sold/unsold -> next item or finished. All
// room mutation happens under the room's lock; timer callbacks re-validate
// the auction sequence number before acting so a stale callback is a no-op.
type Engine struct {
	Catalog   catalog.Provider
	Sched     timing.Scheduler
	Rng       *rand.Rand
	Observer  Observer   // optional
	Recorders []Recorder // optional

	// BroadcastFn pushes an event to every connected participant of the room.
	// Invoked with the room lock held; implementations must not block.
	BroadcastFn func(r *room.Room, ev Event)

	rngMu sync.Mutex
}

// NewEngine wires an engine over the given catalog, scheduler and random
// source. rng may be shared with the queue shuffles only; the engine
// serializes access internally.
func NewEngine(provider catalog.Provider, sched timing.Scheduler, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		Catalog: provider,
		Sched:   sched,
		Rng:     rng,
	}
}

// StartGame transitions ready -> auction: builds the queue and opens the
// first auction.
func (e *Engine) StartGame(r *room.Room) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.Status == room.StatusAuction || r.Status == room.StatusFinished {
		return ErrGameInProgress
	}
	if !r.AllReady() {
		return ErrNotReady
	}

	e.rngMu.Lock()
	r.Queue = BuildQueue(e.Catalog.Players(), r.Settings, e.Rng)
	e.rngMu.Unlock()

	r.Status = room.StatusAuction
	r.Touch()
	log.Printf("Room %s: game started with %d item(s) queued.", r.ID, len(r.Queue))
	e.startNextLocked(r)
	return nil
}

// AcceptBid routes a bid through the validator and applies it. The same path
// serves humans and the AI.
func (e *Engine) AcceptBid(r *room.Room, bidderID uuid.UUID, amount float64, isAI bool) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return e.AcceptBidLocked(r, bidderID, amount, isAI)
}

// AcceptBidLocked is AcceptBid for callers already holding the room lock
// (the AI's scheduled-bid callback).
func (e *Engine) AcceptBidLocked(r *room.Room, bidderID uuid.UUID, amount float64, isAI bool) error {
	if r.Status != room.StatusAuction || r.Auction == nil {
		return ErrNoAuction
	}
	a := r.Auction
	if a.Status == models.AuctionSold || a.Status == models.AuctionUnsold {
		return ErrNoAuction
	}
	bidder := r.GetPlayer(bidderID)
	if bidder == nil {
		return ErrUnknownBidder
	}

	amt, err := ValidateBid(a, bidderID, bidder.Budget, amount, r.Settings.MinBidIncrement)
	if err != nil {
		return err
	}

	id := bidderID
	a.CurrentBid = amt
	a.CurrentBidder = &id
	bid := models.Bid{BidderID: bidderID, Amount: amt, Timestamp: time.Now(), IsAI: isAI}
	a.Bids = append(a.Bids, bid)
	a.Status = models.AuctionActive
	// A bid always guarantees at least bidFloorSeconds on the clock.
	if a.TimeRemaining < bidFloorSeconds {
		a.TimeRemaining = bidFloorSeconds
	}
	r.Touch()

	e.emit(r, Event{Type: EventBidPlaced, Payload: map[string]interface{}{
		"bid":     bid,
		"auction": a,
	}})
	for _, rec := range e.Recorders {
		go rec.RecordBid(r.ID, a.Item, bid)
	}
	if e.Observer != nil {
		e.Observer.BidPlaced(r, bidderID)
	}
	return nil
}

// Tick is invoked once per second by the room's timer while an auction is
// live. A seq mismatch means the callback outlived its auction.
func (e *Engine) Tick(r *room.Room, seq int) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	a := r.Auction
	if r.Status != room.StatusAuction || a == nil || a.Seq != seq {
		return
	}

	a.TimeRemaining--
	if a.CurrentBidder != nil {
		// Countdown calls only make sense once somebody wants the item.
		switch a.TimeRemaining {
		case 5:
			a.Status = models.AuctionGoingOnce
		case 3:
			a.Status = models.AuctionGoingTwice
		}
	}

	if a.TimeRemaining <= 0 {
		e.resolveLocked(r)
		return
	}

	e.emit(r, Event{Type: EventAuctionUpdate, Payload: map[string]interface{}{
		"auction": a,
	}})
	if e.Observer != nil && (a.TimeRemaining == 5 || a.TimeRemaining == 3) {
		e.Observer.AuctionTick(r)
	}
}

// startNextLocked pops the queue head and opens its auction, or finishes the
// game when the queue is drained or both squads are at capacity.
// Assumes lock is held.
func (e *Engine) startNextLocked(r *room.Room) {
	if len(r.Queue) == 0 || e.squadsFullLocked(r) {
		e.finishLocked(r)
		return
	}

	item := r.Queue[0]
	r.Queue = r.Queue[1:]
	r.AuctionSeq++

	start := int64(math.Round(float64(item.BasePrice) * r.Settings.PriceScale))
	a := &models.Auction{
		Item:          item,
		CurrentBid:    start,
		TimeRemaining: r.Settings.AuctionTimeLimit,
		Bids:          []models.Bid{},
		Status:        models.AuctionActive,
		Seq:           r.AuctionSeq,
	}
	r.Auction = a

	seq := r.AuctionSeq
	if r.TickCancel != nil {
		r.TickCancel()
	}
	r.TickCancel = e.Sched.Every(time.Second, func() { e.Tick(r, seq) })

	e.emit(r, Event{Type: EventAuctionStart, Payload: map[string]interface{}{
		"auction": a,
	}})
	if e.Observer != nil {
		e.Observer.AuctionStarted(r)
	}
}

// resolveLocked settles the live auction on timeout. A held auction with no
// bids goes unsold; the item is discarded, not requeued. Assumes lock is held.
func (e *Engine) resolveLocked(r *room.Room) {
	a := r.Auction
	if r.TickCancel != nil {
		r.TickCancel()
		r.TickCancel = nil
	}
	if r.AICancel != nil {
		r.AICancel()
		r.AICancel = nil
	}

	if a.CurrentBidder != nil {
		buyer := r.GetPlayer(*a.CurrentBidder)
		if buyer != nil {
			buyer.Budget -= a.CurrentBid
			buyer.Squad = append(buyer.Squad, a.Item)
			record := models.SoldRecord{
				Item:     a.Item,
				BuyerID:  buyer.ID,
				Price:    a.CurrentBid,
				Sequence: len(r.Sold) + 1,
			}
			r.Sold = append(r.Sold, record)
			a.Status = models.AuctionSold
			log.Printf("Room %s: %s sold to %s for %d.", r.ID, a.Item.Name, buyer.Name, a.CurrentBid)
			e.emit(r, Event{Type: EventPlayerSold, Payload: map[string]interface{}{
				"record": record,
				"buyer":  buyer,
			}})
		}
	} else {
		a.Status = models.AuctionUnsold
		log.Printf("Room %s: %s went unsold.", r.ID, a.Item.Name)
		e.emit(r, Event{Type: EventPlayerUnsold, Payload: map[string]interface{}{
			"item": a.Item,
		}})
	}

	r.Auction = nil
	r.Touch()

	if len(r.Queue) == 0 || e.squadsFullLocked(r) {
		e.finishLocked(r)
		return
	}

	seq := r.AuctionSeq
	r.ResolveCancel = e.Sched.Schedule(resolveDelay, func() { e.continueAfterResolve(r, seq) })
}

// continueAfterResolve opens the next auction after the cosmetic delay,
// unless the room moved on (finished, deleted, new auction) in the meantime.
func (e *Engine) continueAfterResolve(r *room.Room, seq int) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	// The handle is spent either way; clear it before the staleness check.
	r.ResolveCancel = nil
	if r.Status != room.StatusAuction || r.Auction != nil || r.AuctionSeq != seq {
		return
	}
	e.startNextLocked(r)
}

// finishLocked transitions the room to finished, scores both squads, and
// hands the result to the transport and recorders. Assumes lock is held.
func (e *Engine) finishLocked(r *room.Room) {
	r.Status = room.StatusFinished
	r.CancelTimers()
	r.Touch()

	result := e.scoreLocked(r)
	if result != nil {
		log.Printf("Room %s: game finished, winner %s.", r.ID, result.WinnerID)
	}

	e.emit(r, Event{Type: EventGameFinished, Payload: map[string]interface{}{
		"result": result,
		"room":   r.Snapshot(),
	}})
	if result != nil {
		for _, rec := range e.Recorders {
			go rec.RecordResult(r.ID, result)
		}
	}
}

// scoreLocked runs the scoring engine over both squads. Assumes lock is held.
func (e *Engine) scoreLocked(r *room.Room) *scoring.GameResult {
	if len(r.Players) < 2 {
		log.Printf("Room %s: finished with %d participant(s), skipping scoring.", r.ID, len(r.Players))
		return nil
	}
	analyses := make([]*scoring.ScoreAnalysis, 2)
	for i, p := range r.Players[:2] {
		analyses[i] = scoring.AnalyzeSquad(p, purchasesFor(r.Sold, p.ID), r.Settings.StartingBudget)
	}
	return scoring.BuildGameResult(r.Players[0], r.Players[1], analyses[0], analyses[1])
}

// squadsFullLocked reports whether every participant has hit the configured
// squad capacity. Assumes lock is held.
func (e *Engine) squadsFullLocked(r *room.Room) bool {
	if len(r.Players) == 0 {
		return false
	}
	for _, p := range r.Players {
		if len(p.Squad) < r.Settings.SquadSize {
			return false
		}
	}
	return true
}

func purchasesFor(sold []models.SoldRecord, buyerID uuid.UUID) []models.SoldRecord {
	var out []models.SoldRecord
	for _, rec := range sold {
		if rec.BuyerID == buyerID {
			out = append(out, rec)
		}
	}
	return out
}

// emit broadcasts an event to the room if a transport is attached.
// Assumes lock is held.
func (e *Engine) emit(r *room.Room, ev Event) {
	if e.BroadcastFn != nil {
		e.BroadcastFn(r, ev)
	}
}
