// internal/handlers/room_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/danvv/auctionfc/internal/ai"
	"github.com/danvv/auctionfc/internal/auction"
	"github.com/danvv/auctionfc/internal/auth"
	"github.com/danvv/auctionfc/internal/catalog"
	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/room"
	"github.com/danvv/auctionfc/internal/timing"
)

func testGameServer() *GameServer {
	auth.Init() // ephemeral keys, no DB needed
	sched := timing.NewManual()
	// One rand per component, same as the server wiring.
	store := room.NewStore(rand.New(rand.NewSource(1)))
	engine := auction.NewEngine(catalog.Builtin(), sched, rand.New(rand.NewSource(2)))
	bidder := ai.NewBidder(engine, sched, rand.New(rand.NewSource(3)))
	logger := logrus.New()
	return NewGameServer(store, engine, bidder, logger)
}

// TestCreateRoom checks that /room/create builds an in-memory room with a
// join code and applies settings overrides.
func TestCreateRoom(t *testing.T) {
	gs := testGameServer()

	body := `{"settings":{"auctionTimeLimit":20,"squadSize":11}}`
	req := httptest.NewRequest("POST", "/room/create", bytes.NewBuffer([]byte(body)))
	w := httptest.NewRecorder()

	h := CreateRoomHandler(gs)
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp createRoomResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode room: %v", err)
	}
	if len(resp.Room.ID) != 6 {
		t.Fatalf("expected a 6-character join code, got %q", resp.Room.ID)
	}
	if resp.Room.Status != room.StatusWaiting {
		t.Fatalf("new room should be waiting, got %s", resp.Room.Status)
	}
	if resp.Room.Settings.AuctionTimeLimit != 20 || resp.Room.Settings.SquadSize != 11 {
		t.Fatalf("settings overrides not applied: %+v", resp.Room.Settings)
	}
	if resp.Room.Settings.StartingBudget != room.DefaultSettings().StartingBudget {
		t.Fatalf("untouched settings should keep defaults: %+v", resp.Room.Settings)
	}

	// the guest cookie is minted on first contact
	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "auth_token" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an auth_token cookie, got %v", cookies)
	}

	if _, ok := gs.Store.Get(resp.Room.ID); !ok {
		t.Fatalf("room %s not registered in the store", resp.Room.ID)
	}
}

// TestCreateRoomRejectsBadSettings checks range validation surfaces as 400.
func TestCreateRoomRejectsBadSettings(t *testing.T) {
	gs := testGameServer()

	body := `{"settings":{"auctionTimeLimit":1}}`
	req := httptest.NewRequest("POST", "/room/create", bytes.NewBuffer([]byte(body)))
	w := httptest.NewRecorder()

	CreateRoomHandler(gs).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if gs.Store.Len() != 0 {
		t.Fatalf("no room should be created on a rejected payload")
	}
}

// TestCreateRoomMethodNotAllowed rejects anything but POST.
func TestCreateRoomMethodNotAllowed(t *testing.T) {
	gs := testGameServer()

	req := httptest.NewRequest("GET", "/room/create", nil)
	w := httptest.NewRecorder()

	CreateRoomHandler(gs).ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

// TestListRooms checks the registry listing.
func TestListRooms(t *testing.T) {
	gs := testGameServer()
	a := gs.Store.Create(room.DefaultSettings())
	b := gs.Store.Create(room.DefaultSettings())

	req := httptest.NewRequest("GET", "/room/list", nil)
	w := httptest.NewRecorder()

	ListRoomsHandler(gs).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var rooms []room.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("failed to decode room list: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	ids := map[string]bool{rooms[0].ID: true, rooms[1].ID: true}
	if !ids[a.ID] || !ids[b.ID] {
		t.Fatalf("listing missing created rooms: %v", ids)
	}
}

// TestReadyStatusNeverMovesBackward checks the pre-game status only advances:
// unreadying keeps the room at ready, and starting is gated on AllReady.
func TestReadyStatusNeverMovesBackward(t *testing.T) {
	gs := testGameServer()
	rm := gs.Store.Create(room.DefaultSettings())
	a := models.NewPlayer("Alice", rm.Settings.StartingBudget)
	b := models.NewPlayer("Bob", rm.Settings.StartingBudget)
	rm.AddPlayer(a)
	rm.AddPlayer(b)

	yes, no := true, false
	gs.handleReady(rm, a.ID, &yes)
	if rm.Status != room.StatusWaiting {
		t.Fatalf("one ready seat should leave the room waiting, got %s", rm.Status)
	}
	gs.handleReady(rm, b.ID, &yes)
	if rm.Status != room.StatusReady {
		t.Fatalf("both ready should advance the room, got %s", rm.Status)
	}

	gs.handleReady(rm, b.ID, &no)
	if rm.Status != room.StatusReady {
		t.Fatalf("unreadying must not demote the room, got %s", rm.Status)
	}
	if err := gs.Engine.StartGame(rm); !errors.Is(err, auction.ErrNotReady) {
		t.Fatalf("start with an unready seat should fail, got %v", err)
	}

	gs.handleReady(rm, b.ID, &yes)
	if err := gs.Engine.StartGame(rm); err != nil {
		t.Fatalf("start with both ready: %v", err)
	}
	if rm.Status != room.StatusAuction {
		t.Fatalf("expected the room in auction, got %s", rm.Status)
	}
}

// TestConcurrentRoomCreationAndAIDecisions runs room creation alongside AI
// decision cycles the way the live server does. Each component owns its rand
// source, so this stays clean under the race detector.
func TestConcurrentRoomCreationAndAIDecisions(t *testing.T) {
	gs := testGameServer()

	rm := gs.Store.Create(room.DefaultSettings())
	aiPlayer := models.NewAIPlayer("AI Manager", rm.Settings.StartingBudget, models.DifficultyHard)
	rm.AddPlayer(aiPlayer)
	human := models.NewPlayer("Human", rm.Settings.StartingBudget)
	human.Ready = true
	rm.AddPlayer(human)
	rm.Status = room.StatusAuction

	item := catalog.Builtin().Players()[0]
	rm.Auction = &models.Auction{
		Item:          item,
		CurrentBid:    item.BasePrice,
		TimeRemaining: 20,
		Bids:          []models.Bid{},
		Status:        models.AuctionActive,
		Seq:           1,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			gs.Store.Create(room.DefaultSettings())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			rm.Mu.Lock()
			gs.AI.Decide(rm, aiPlayer)
			rm.Mu.Unlock()
		}
	}()
	wg.Wait()

	if gs.Store.Len() != 201 {
		t.Fatalf("expected 201 rooms, got %d", gs.Store.Len())
	}
}

// TestEnsureGuestReusesValidToken checks a valid cookie keeps its identity.
func TestEnsureGuestReusesValidToken(t *testing.T) {
	auth.Init()

	req := httptest.NewRequest("GET", "/room/list", nil)
	w := httptest.NewRecorder()
	first, err := EnsureGuest(w, req)
	if err != nil {
		t.Fatalf("EnsureGuest: %v", err)
	}

	token, _ := auth.CreateJWT(first.String())
	req2 := httptest.NewRequest("GET", "/room/list", nil)
	req2.Header.Set("Cookie", "auth_token="+token)
	w2 := httptest.NewRecorder()
	second, err := EnsureGuest(w2, req2)
	if err != nil {
		t.Fatalf("EnsureGuest with cookie: %v", err)
	}
	if second != first {
		t.Fatalf("expected reused identity %v, got %v", first, second)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Fatalf("a valid token should not be reissued")
	}
}

// TestEnsureGuestReplacesForgedToken checks a bad token mints a new guest.
func TestEnsureGuestReplacesForgedToken(t *testing.T) {
	auth.Init()

	req := httptest.NewRequest("GET", "/room/list", nil)
	req.Header.Set("Cookie", "auth_token=not-a-jwt")
	w := httptest.NewRecorder()

	id, err := EnsureGuest(w, req)
	if err != nil {
		t.Fatalf("EnsureGuest: %v", err)
	}
	if id.String() == "" {
		t.Fatalf("expected a fresh guest identity")
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "auth_token" {
		t.Fatalf("expected a replacement auth_token cookie, got %v", cookies)
	}
}
