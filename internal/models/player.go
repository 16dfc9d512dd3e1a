// internal/models/player.go
package models

import (
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Difficulty selects the AI tunable set for an AI-controlled participant.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Player is one of the two competitors in a room, human or AI. Budget and
// Squad are mutated only by the auction engine when a bid is won.
type Player struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Budget     int64           `json:"budget"`
	Squad      []*DraftItem    `json:"squad"`
	Ready      bool            `json:"ready"`
	Connected  bool            `json:"connected"`
	IsAI       bool            `json:"isAI"`
	Difficulty Difficulty      `json:"difficulty,omitempty"`
	Conn       *websocket.Conn `json:"-"`
}

// NewPlayer builds a connected human participant with a fresh identity.
func NewPlayer(name string, budget int64) *Player {
	return &Player{
		ID:        uuid.New(),
		Name:      name,
		Budget:    budget,
		Squad:     []*DraftItem{},
		Connected: true,
	}
}

// NewAIPlayer builds a ready AI participant at the given difficulty.
func NewAIPlayer(name string, budget int64, difficulty Difficulty) *Player {
	p := NewPlayer(name, budget)
	p.IsAI = true
	p.Ready = true
	p.Difficulty = difficulty
	return p
}

// SquadCount returns how many squad members play in the given broad line.
func (p *Player) SquadCount(group PositionGroup) int {
	n := 0
	for _, item := range p.Squad {
		if item.Position.Group() == group {
			n++
		}
	}
	return n
}

// TotalSpent sums what the player has paid so far, derived from the starting
// budget handed in by the caller.
func (p *Player) TotalSpent(startingBudget int64) int64 {
	return startingBudget - p.Budget
}
