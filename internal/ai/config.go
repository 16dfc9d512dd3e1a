// internal/ai/config.go
package ai

import (
	"time"

	"github.com/danvv/auctionfc/internal/models"
)

// Config holds the per-difficulty tunables of the autonomous bidder.
type Config struct {
	// BidProbability gates each decision cycle; halved for items below
	// RatingThreshold.
	BidProbability float64
	// MaxBidPercentage caps any single bid as a fraction of remaining budget.
	MaxBidPercentage float64
	// Aggressiveness stretches the proposed raise above the minimum
	// increment toward currentBid x Aggressiveness.
	Aggressiveness float64
	// Reaction delay window simulating human latency.
	ReactionTimeMin time.Duration
	ReactionTimeMax time.Duration
	// PositionAwareness scales how much positional need moves the item
	// evaluation.
	PositionAwareness float64
	// RatingThreshold: items rated below this are mostly ignored.
	RatingThreshold int
}

var difficultyConfigs = map[models.Difficulty]Config{
	models.DifficultyEasy: {
		BidProbability:    0.40,
		MaxBidPercentage:  0.15,
		Aggressiveness:    1.10,
		ReactionTimeMin:   1500 * time.Millisecond,
		ReactionTimeMax:   4 * time.Second,
		PositionAwareness: 0.3,
		RatingThreshold:   75,
	},
	models.DifficultyMedium: {
		BidProbability:    0.65,
		MaxBidPercentage:  0.25,
		Aggressiveness:    1.25,
		ReactionTimeMin:   800 * time.Millisecond,
		ReactionTimeMax:   2500 * time.Millisecond,
		PositionAwareness: 0.6,
		RatingThreshold:   70,
	},
	models.DifficultyHard: {
		BidProbability:    0.85,
		MaxBidPercentage:  0.35,
		Aggressiveness:    1.45,
		ReactionTimeMin:   400 * time.Millisecond,
		ReactionTimeMax:   1500 * time.Millisecond,
		PositionAwareness: 0.9,
		RatingThreshold:   65,
	},
}

// ConfigFor returns the tunables for a difficulty, defaulting to medium for
// anything unrecognized.
func ConfigFor(d models.Difficulty) Config {
	if cfg, ok := difficultyConfigs[d]; ok {
		return cfg
	}
	return difficultyConfigs[models.DifficultyMedium]
}
