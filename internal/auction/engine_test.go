// internal/auction/engine_test.go
package auction

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danvv/auctionfc/internal/catalog"
	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/room"
	"github.com/danvv/auctionfc/internal/timing"
)

// mockBroadcaster collects events instead of sending them over WS.
type mockBroadcaster struct {
	mu     sync.Mutex
	events []Event
}

func (mb *mockBroadcaster) broadcastFn(r *room.Room, ev Event) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.events = append(mb.events, ev)
}

func (mb *mockBroadcaster) ofType(eventType string) []Event {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	var out []Event
	for _, ev := range mb.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func (mb *mockBroadcaster) clear() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.events = nil
}

// tinyCatalog yields exactly two items with a known start price so tests can
// script a full game.
func tinyCatalog() catalog.Provider {
	return catalog.NewStatic([]*models.DraftItem{
		{ID: 1, Name: "Keeper One", Rating: 80, Position: models.PosGK, Rarity: models.RarityCommon, BasePrice: 80, Age: 25},
		{ID: 2, Name: "Striker One", Rating: 80, Position: models.PosST, Rarity: models.RarityCommon, BasePrice: 80, Age: 25},
	})
}

func tinySettings() room.Settings {
	return room.Settings{
		StartingBudget:   1000,
		SquadSize:        16,
		AuctionTimeLimit: 30,
		MinBidIncrement:  1,
		TotalPlayers:     2,
		PerPosition:      1,
		PriceScale:       1.0,
	}
}

// setupTestGame builds an engine over a manual scheduler with two ready
// human players seated.
func setupTestGame(t *testing.T, settings room.Settings) (*Engine, *room.Room, []*models.Player, *mockBroadcaster, *timing.Manual) {
	t.Helper()
	sched := timing.NewManual()
	engine := NewEngine(tinyCatalog(), sched, rand.New(rand.NewSource(1)))
	mb := &mockBroadcaster{}
	engine.BroadcastFn = mb.broadcastFn

	r := room.New("TEST01", settings)
	players := make([]*models.Player, 2)
	for i, name := range []string{"Alice", "Bob"} {
		p := models.NewPlayer(name, settings.StartingBudget)
		p.Ready = true
		players[i] = p
		require.True(t, r.AddPlayer(p))
	}
	return engine, r, players, mb, sched
}

func TestStartGameRequiresReady(t *testing.T) {
	engine, r, players, _, _ := setupTestGame(t, tinySettings())
	players[1].Ready = false

	err := engine.StartGame(r)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, room.StatusWaiting, r.Status)
}

func TestStartGameOpensFirstAuction(t *testing.T) {
	engine, r, _, mb, _ := setupTestGame(t, tinySettings())

	require.NoError(t, engine.StartGame(r))

	assert.Equal(t, room.StatusAuction, r.Status)
	require.NotNil(t, r.Auction)
	assert.Equal(t, int64(80), r.Auction.CurrentBid)
	assert.Nil(t, r.Auction.CurrentBidder)
	assert.Equal(t, 30, r.Auction.TimeRemaining)
	assert.Len(t, mb.ofType(EventAuctionStart), 1)

	// Double start is rejected.
	assert.ErrorIs(t, engine.StartGame(r), ErrGameInProgress)
}

func TestBidSequenceRaisesCurrentBid(t *testing.T) {
	engine, r, players, mb, _ := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))

	require.NoError(t, engine.AcceptBid(r, players[0].ID, 85, false))
	require.NoError(t, engine.AcceptBid(r, players[1].ID, 90, false))

	assert.Equal(t, int64(90), r.Auction.CurrentBid)
	require.NotNil(t, r.Auction.CurrentBidder)
	assert.Equal(t, players[1].ID, *r.Auction.CurrentBidder)
	assert.Len(t, r.Auction.Bids, 2)
	assert.GreaterOrEqual(t, r.Auction.TimeRemaining, 10)
	assert.Len(t, mb.ofType(EventBidPlaced), 2)

	// Budgets are only charged at resolution.
	assert.Equal(t, int64(1000), players[0].Budget)
	assert.Equal(t, int64(1000), players[1].Budget)

	// The highest bidder cannot raise against themselves.
	assert.ErrorIs(t, engine.AcceptBid(r, players[1].ID, 95, false), ErrSelfOutbid)
}

func TestBidRestoresClockFloor(t *testing.T) {
	engine, r, players, _, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))
	require.NoError(t, engine.AcceptBid(r, players[0].ID, 80, false))

	sched.Advance(25 * time.Second)
	assert.Equal(t, 5, r.Auction.TimeRemaining)
	assert.Equal(t, models.AuctionGoingOnce, r.Auction.Status)

	require.NoError(t, engine.AcceptBid(r, players[1].ID, 85, false))
	assert.Equal(t, 10, r.Auction.TimeRemaining)
	assert.Equal(t, models.AuctionActive, r.Auction.Status)
}

func TestCountdownStatuses(t *testing.T) {
	engine, r, players, _, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))
	require.NoError(t, engine.AcceptBid(r, players[0].ID, 80, false))

	sched.Advance(25 * time.Second)
	assert.Equal(t, models.AuctionGoingOnce, r.Auction.Status)
	sched.Advance(2 * time.Second)
	assert.Equal(t, models.AuctionGoingTwice, r.Auction.Status)
}

func TestCountdownSilentWithoutBidder(t *testing.T) {
	engine, r, _, _, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))

	sched.Advance(27 * time.Second)
	assert.Equal(t, 3, r.Auction.TimeRemaining)
	assert.Equal(t, models.AuctionActive, r.Auction.Status)
}

func TestResolveSoldTransfersItem(t *testing.T) {
	engine, r, players, mb, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))
	firstItem := r.Auction.Item
	require.NoError(t, engine.AcceptBid(r, players[0].ID, 80, false))

	sched.Advance(30 * time.Second)

	assert.Nil(t, r.Auction)
	assert.Equal(t, int64(920), players[0].Budget)
	require.Len(t, players[0].Squad, 1)
	assert.Equal(t, firstItem.ID, players[0].Squad[0].ID)
	require.Len(t, r.Sold, 1)
	assert.Equal(t, 1, r.Sold[0].Sequence)
	assert.Equal(t, players[0].ID, r.Sold[0].BuyerID)
	assert.Len(t, mb.ofType(EventPlayerSold), 1)

	// The next auction opens after the resolve pause.
	sched.Advance(3 * time.Second)
	require.NotNil(t, r.Auction)
	assert.NotEqual(t, firstItem.ID, r.Auction.Item.ID)
	assert.Len(t, mb.ofType(EventAuctionStart), 2)
}

func TestResolveUnsoldDiscardsItem(t *testing.T) {
	engine, r, players, mb, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))

	sched.Advance(30 * time.Second)

	assert.Len(t, mb.ofType(EventPlayerUnsold), 1)
	assert.Empty(t, r.Sold)
	assert.Empty(t, players[0].Squad)
	assert.Equal(t, int64(1000), players[0].Budget)

	sched.Advance(3 * time.Second)
	require.NotNil(t, r.Auction)
}

func TestGameFinishesWhenQueueDrains(t *testing.T) {
	engine, r, players, mb, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))

	// Alice buys everything at the start price.
	for r.Status == room.StatusAuction {
		if r.Auction != nil {
			require.NoError(t, engine.AcceptBid(r, players[0].ID, float64(r.Auction.CurrentBid), false))
		}
		sched.Advance(33 * time.Second)
	}

	assert.Equal(t, room.StatusFinished, r.Status)
	finished := mb.ofType(EventGameFinished)
	require.Len(t, finished, 1)
	assert.Contains(t, finished[0].Payload, "result")

	assert.Equal(t, len(r.Sold), len(players[0].Squad)+len(players[1].Squad))
	for _, p := range players {
		assert.GreaterOrEqual(t, p.Budget, int64(0))
	}
}

func TestStaleTickIsNoOp(t *testing.T) {
	engine, r, players, _, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))
	require.NoError(t, engine.AcceptBid(r, players[0].ID, 80, false))

	staleSeq := r.Auction.Seq
	sched.Advance(33 * time.Second) // resolves and opens the next auction

	require.NotNil(t, r.Auction)
	before := r.Auction.TimeRemaining
	engine.Tick(r, staleSeq)
	assert.Equal(t, before, r.Auction.TimeRemaining)
}

func TestStaleResolveContinuationClearsHandle(t *testing.T) {
	engine, r, players, _, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))
	require.NoError(t, engine.AcceptBid(r, players[0].ID, 80, false))

	sched.Advance(30 * time.Second) // resolve; the 3s continuation is pending
	require.Nil(t, r.Auction)
	require.NotNil(t, r.ResolveCancel)

	// The room leaves the auction phase before the continuation fires. The
	// callback must not open another round, and the spent handle must not
	// linger for CancelTimers to call.
	r.Mu.Lock()
	r.Status = room.StatusFinished
	r.Mu.Unlock()
	sched.Advance(3 * time.Second)

	assert.Nil(t, r.Auction)
	assert.Nil(t, r.ResolveCancel)
}

func TestBidHistoryReplayReproducesOutcome(t *testing.T) {
	engine, r, players, _, sched := setupTestGame(t, tinySettings())
	require.NoError(t, engine.StartGame(r))

	require.NoError(t, engine.AcceptBid(r, players[0].ID, 80, false))
	require.NoError(t, engine.AcceptBid(r, players[1].ID, 90, false))
	require.NoError(t, engine.AcceptBid(r, players[0].ID, 95, false))

	recorded := r.Auction
	sched.Advance(30 * time.Second) // resolve the round

	// Replaying the accepted history against a fresh validator must land on
	// the same closing bid and bidder.
	fresh := &models.Auction{
		Item:          recorded.Item,
		CurrentBid:    recorded.Item.BasePrice,
		TimeRemaining: 30,
		Bids:          []models.Bid{},
		Status:        models.AuctionActive,
	}
	for _, bid := range recorded.Bids {
		amt, err := ValidateBid(fresh, bid.BidderID, tinySettings().StartingBudget, float64(bid.Amount), tinySettings().MinBidIncrement)
		require.NoError(t, err)
		id := bid.BidderID
		fresh.CurrentBid = amt
		fresh.CurrentBidder = &id
	}

	assert.Equal(t, recorded.CurrentBid, fresh.CurrentBid)
	require.NotNil(t, fresh.CurrentBidder)
	assert.Equal(t, *recorded.CurrentBidder, *fresh.CurrentBidder)
}
