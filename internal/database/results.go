// internal/database/results.go
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/scoring"
)

// DB is the global connection pool. ConnectDB is optional; the server runs
// fully in-memory when DATABASE_URL is unset.
var DB *pgxpool.Pool

// ConnectDB opens the pool from DATABASE_URL. Returns false when the variable
// is unset so the caller can skip result persistence.
func ConnectDB() bool {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		return false
	}

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("unable to parse pgx config: %v", err)
	}

	DB, err = pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalf("unable to create pgx pool: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := DB.Ping(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	log.Printf("Connected to results database")
	return true
}

// ResultStore persists finished games. Bids are not persisted here; the
// historian queue owns the bid log.
type ResultStore struct{}

// NewResultStore returns a store if a pool is connected, else nil. A nil
// store is a valid no-op recorder.
func NewResultStore() *ResultStore {
	if DB == nil {
		return nil
	}
	return &ResultStore{}
}

// RecordBid is a no-op; per-bid persistence goes through the historian queue.
func (s *ResultStore) RecordBid(roomID string, item *models.DraftItem, bid models.Bid) {}

// RecordResult writes the game row and one result row per competitor in a
// single transaction.
func (s *ResultStore) RecordResult(roomID string, result *scoring.GameResult) {
	if s == nil || DB == nil || result == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := recordResultTx(ctx, roomID, result); err != nil {
		log.Printf("failed to persist result for room %s: %v", roomID, err)
	}
}

func recordResultTx(ctx context.Context, roomID string, result *scoring.GameResult) error {
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		upsertGame := `
			INSERT INTO games (room_id, winner_id, win_by_default, tie_break, finished_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (room_id) DO UPDATE
			SET winner_id = $2, win_by_default = $3, tie_break = $4, finished_at = now()
		`
		if _, err := tx.Exec(ctx, upsertGame, roomID, result.WinnerID, result.WinByDefault, result.TieBreak); err != nil {
			return fmt.Errorf("upsert game: %w", err)
		}

		for _, analysis := range []*scoring.ScoreAnalysis{result.Winner, result.Loser} {
			if analysis == nil {
				continue
			}
			breakdown, err := json.Marshal(analysis)
			if err != nil {
				return fmt.Errorf("marshal analysis: %w", err)
			}
			q := `
				INSERT INTO game_results (room_id, player_id, final_score, did_win, breakdown)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (room_id, player_id)
				DO UPDATE SET final_score = $3, did_win = $4, breakdown = $5
			`
			didWin := analysis.PlayerID == result.WinnerID
			if _, err := tx.Exec(ctx, q, roomID, analysis.PlayerID, analysis.FinalScore, didWin, breakdown); err != nil {
				return fmt.Errorf("upsert game result: %w", err)
			}
		}
		return nil
	})
}
