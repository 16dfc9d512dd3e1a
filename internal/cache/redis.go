// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/scoring"
)

// Rdb is the global Redis client. Connect it once at application startup.
var Rdb *redis.Client

// Queue names for the historian microservice's consumers.
var (
	DefaultBidQueueName    = "auctionfc_bids"
	DefaultResultQueueName = "auctionfc_results"
)

// BidRecord is the replay log entry for one accepted bid. The historian can
// reconstruct any auction by replaying its records in order.
type BidRecord struct {
	RoomID    string `json:"room_id"`
	ItemID    int    `json:"item_id"`
	ItemName  string `json:"item_name"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	IsAI      bool   `json:"is_ai"`
	Timestamp int64  `json:"timestamp"`
}

// ResultRecord wraps a finished game's result for the queue.
type ResultRecord struct {
	RoomID    string              `json:"room_id"`
	Result    *scoring.GameResult `json:"result"`
	Timestamp int64               `json:"timestamp"`
}

// ConnectRedis initializes the global Redis client with environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
func ConnectRedis() error {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return nil
}

// Historian pushes auction activity onto Redis lists for out-of-band
// consumers. A nil Historian (Redis unconfigured) is a valid no-op recorder.
type Historian struct{}

// NewHistorian returns a Historian if the global client is connected, else nil.
func NewHistorian() *Historian {
	if Rdb == nil {
		return nil
	}
	return &Historian{}
}

// RecordBid serializes the bid and pushes it to the bid queue. Called
// asynchronously by the engine; a push failure only costs the log entry.
func (h *Historian) RecordBid(roomID string, item *models.DraftItem, bid models.Bid) {
	if h == nil || Rdb == nil {
		return
	}
	rec := BidRecord{
		RoomID:    roomID,
		ItemID:    item.ID,
		ItemName:  item.Name,
		BidderID:  bid.BidderID.String(),
		Amount:    bid.Amount,
		IsAI:      bid.IsAI,
		Timestamp: bid.Timestamp.UnixMilli(),
	}
	if err := push(getEnv("HISTORIAN_BID_QUEUE", DefaultBidQueueName), rec); err != nil {
		log.Printf("historian: failed to record bid for room %s: %v", roomID, err)
	}
}

// RecordResult serializes the final result and pushes it to the result queue.
func (h *Historian) RecordResult(roomID string, result *scoring.GameResult) {
	if h == nil || Rdb == nil {
		return
	}
	rec := ResultRecord{
		RoomID:    roomID,
		Result:    result,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := push(getEnv("HISTORIAN_RESULT_QUEUE", DefaultResultQueueName), rec); err != nil {
		log.Printf("historian: failed to record result for room %s: %v", roomID, err)
	}
}

func push(queueName string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.RPush(ctx, queueName, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", queueName, err)
	}
	return nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
