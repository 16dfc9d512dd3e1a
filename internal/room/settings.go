// internal/room/settings.go
package room

import "fmt"

// Settings is the per-room auction configuration. Fixed defaults, overridable
// at room creation.
type Settings struct {
	StartingBudget   int64   `json:"startingBudget"`   // currency units each participant starts with
	SquadSize        int     `json:"squadSize"`        // max squad capacity per participant
	AuctionTimeLimit int     `json:"auctionTimeLimit"` // seconds on the clock for each item
	MinBidIncrement  int64   `json:"minBidIncrement"`  // bid grid step above the current bid
	TotalPlayers     int     `json:"totalPlayers"`     // number of items auctioned in one game
	PerPosition      int     `json:"perPosition"`      // items drawn per detailed position when building the queue
	PriceScale       float64 `json:"priceScale"`       // multiplier applied to catalog base prices
}

// DefaultSettings returns the standard two-player game configuration.
func DefaultSettings() Settings {
	return Settings{
		StartingBudget:   1_000_000_000,
		SquadSize:        16,
		AuctionTimeLimit: 30,
		MinBidIncrement:  1_000_000,
		TotalPlayers:     36,
		PerPosition:      3,
		PriceScale:       1.0,
	}
}

// Update applies a partial settings payload from the client. Unknown keys are
// ignored; present keys must carry sane values. JSON numbers arrive as
// float64.
func (s *Settings) Update(raw map[string]interface{}) error {
	assignInt64 := func(field *int64, key string, min int64) error {
		if val, exists := raw[key]; exists && val != nil {
			f, ok := val.(float64)
			if !ok {
				return fmt.Errorf("invalid type for %s", key)
			}
			v := int64(f)
			if v < min {
				return fmt.Errorf("%s must be at least %d", key, min)
			}
			*field = v
		}
		return nil
	}
	assignInt := func(field *int, key string, min int) error {
		if val, exists := raw[key]; exists && val != nil {
			f, ok := val.(float64)
			if !ok {
				return fmt.Errorf("invalid type for %s", key)
			}
			v := int(f)
			if v < min {
				return fmt.Errorf("%s must be at least %d", key, min)
			}
			*field = v
		}
		return nil
	}

	if err := assignInt64(&s.StartingBudget, "startingBudget", 1); err != nil {
		return err
	}
	if err := assignInt(&s.SquadSize, "squadSize", 1); err != nil {
		return err
	}
	if err := assignInt(&s.AuctionTimeLimit, "auctionTimeLimit", 5); err != nil {
		return err
	}
	if err := assignInt64(&s.MinBidIncrement, "minBidIncrement", 1); err != nil {
		return err
	}
	if err := assignInt(&s.TotalPlayers, "totalPlayers", 2); err != nil {
		return err
	}
	if err := assignInt(&s.PerPosition, "perPosition", 1); err != nil {
		return err
	}
	if val, exists := raw["priceScale"]; exists && val != nil {
		f, ok := val.(float64)
		if !ok {
			return fmt.Errorf("invalid type for priceScale")
		}
		if f <= 0 {
			return fmt.Errorf("priceScale must be positive")
		}
		s.PriceScale = f
	}
	return nil
}
