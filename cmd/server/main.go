// cmd/server/main.go
package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/danvv/auctionfc/internal/ai"
	"github.com/danvv/auctionfc/internal/auction"
	"github.com/danvv/auctionfc/internal/auth"
	"github.com/danvv/auctionfc/internal/cache"
	"github.com/danvv/auctionfc/internal/catalog"
	"github.com/danvv/auctionfc/internal/database"
	"github.com/danvv/auctionfc/internal/handlers"
	"github.com/danvv/auctionfc/internal/middleware"
	"github.com/danvv/auctionfc/internal/room"
	"github.com/danvv/auctionfc/internal/timing"
)

func main() {
	initAuth()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	provider := loadCatalog(logger)

	sched := timing.NewReal()

	// Each component serializes access to its own rand; sharing one source
	// across them would race.
	store := room.NewStore(rand.New(rand.NewSource(time.Now().UnixNano())))
	engine := auction.NewEngine(provider, sched, rand.New(rand.NewSource(time.Now().UnixNano())))
	bidder := ai.NewBidder(engine, sched, rand.New(rand.NewSource(time.Now().UnixNano())))

	if os.Getenv("REDIS_ADDR") != "" {
		if err := cache.ConnectRedis(); err != nil {
			logger.Warnf("Redis unavailable, bid history disabled: %v", err)
		} else if h := cache.NewHistorian(); h != nil {
			engine.Recorders = append(engine.Recorders, h)
		}
	}
	if database.ConnectDB() {
		if rs := database.NewResultStore(); rs != nil {
			engine.Recorders = append(engine.Recorders, rs)
		}
	}

	srv := handlers.NewGameServer(store, engine, bidder, logger)
	store.StartSweeper(sched)

	mux := http.NewServeMux()

	mux.Handle("/room/create", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.CreateRoomHandler(srv),
	)))
	mux.Handle("/room/list", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.ListRoomsHandler(srv),
	)))
	mux.Handle("/room/ws/", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.RoomWSHandler(logger, srv),
	)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// initAuth loads the signing key pair from AUTH_PRIVATE_KEY_FILE /
// AUTH_PUBLIC_KEY_FILE when both are set, so sessions survive restarts.
// Otherwise keys are generated fresh and guests re-identify on reconnect.
func initAuth() {
	privPath := os.Getenv("AUTH_PRIVATE_KEY_FILE")
	pubPath := os.Getenv("AUTH_PUBLIC_KEY_FILE")
	if privPath != "" && pubPath != "" {
		if err := auth.InitFromPath(privPath, pubPath); err != nil {
			log.Fatalf("failed to load auth keys: %v", err)
		}
		return
	}
	auth.Init()
}

// loadCatalog prefers a CATALOG_FILE on disk, falling back to the built-in
// fictional pool.
func loadCatalog(logger *logrus.Logger) catalog.Provider {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		provider, err := catalog.LoadFile(path)
		if err != nil {
			logger.Fatalf("failed to load catalog from %s: %v", path, err)
		}
		logger.Infof("Loaded catalog from %s (%d players)", path, len(provider.Players()))
		return provider
	}
	return catalog.Builtin()
}
