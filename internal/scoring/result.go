// internal/scoring/result.go
package scoring

import (
	"math"

	"github.com/google/uuid"

	"github.com/danvv/auctionfc/internal/models"
)

// Tie-break identifiers reported on the result.
const (
	TieBreakNone      = ""
	TieBreakAvgRating = "avg_rating"
	TieBreakBudget    = "budget"
)

// GameResult compares both squads' analyses and declares the match outcome,
// plus narrative awards that don't affect gameplay.
type GameResult struct {
	WinnerID     uuid.UUID `json:"winnerId"`
	LoserID      uuid.UUID `json:"loserId"`
	WinByDefault bool      `json:"winByDefault"`
	TieBreak     string    `json:"tieBreak,omitempty"`

	Winner *ScoreAnalysis `json:"winner"`
	Loser  *ScoreAnalysis `json:"loser"`

	MVP              *models.DraftItem  `json:"mvp,omitempty"`
	BestTacticalFit  string             `json:"bestTacticalFit,omitempty"`
	BestValueSigning *models.SoldRecord `json:"bestValueSigning,omitempty"`
	ClosestPillar    string             `json:"closestPillar,omitempty"`
	DominantPillar   string             `json:"dominantPillar,omitempty"`
}

// BuildGameResult decides the winner: both squads invalid compares raw
// scores, exactly one valid wins outright, both valid compares final scores
// with average rating then remaining budget breaking ties.
func BuildGameResult(pa, pb *models.Player, sa, sb *ScoreAnalysis) *GameResult {
	res := &GameResult{}

	var aWins bool
	switch {
	case !sa.Validation.IsValid && !sb.Validation.IsValid:
		aWins = sa.RawScore >= sb.RawScore
	case sa.Validation.IsValid != sb.Validation.IsValid:
		aWins = sa.Validation.IsValid
		res.WinByDefault = true
	default:
		switch {
		case sa.FinalScore != sb.FinalScore:
			aWins = sa.FinalScore > sb.FinalScore
		case sa.AvgRating != sb.AvgRating:
			aWins = sa.AvgRating > sb.AvgRating
			res.TieBreak = TieBreakAvgRating
		default:
			aWins = pa.Budget >= pb.Budget
			res.TieBreak = TieBreakBudget
		}
	}

	winner, loser := pa, pb
	res.Winner, res.Loser = sa, sb
	if !aWins {
		winner, loser = pb, pa
		res.Winner, res.Loser = sb, sa
	}
	res.WinnerID = winner.ID
	res.LoserID = loser.ID

	res.MVP = highestRated(winner.Squad)
	res.BestTacticalFit = res.Winner.Formation
	res.BestValueSigning = bestValue(append(append([]models.SoldRecord{}, sa.Purchases...), sb.Purchases...))
	res.ClosestPillar, res.DominantPillar = pillarGaps(res.Winner, res.Loser)
	return res
}

func highestRated(squad []*models.DraftItem) *models.DraftItem {
	var best *models.DraftItem
	for _, item := range squad {
		if best == nil || item.Rating > best.Rating {
			best = item
		}
	}
	return best
}

// bestValue finds the purchase with the highest nominal-to-paid ratio across
// both squads.
func bestValue(purchases []models.SoldRecord) *models.SoldRecord {
	var best *models.SoldRecord
	bestRatio := 0.0
	for i := range purchases {
		rec := purchases[i]
		if rec.Price <= 0 {
			continue
		}
		ratio := float64(rec.Item.BasePrice) / float64(rec.Price)
		if best == nil || ratio > bestRatio {
			best = &purchases[i]
			bestRatio = ratio
		}
	}
	return best
}

// pillarGaps returns the pillars with the smallest and largest winner/loser
// margins.
func pillarGaps(winner, loser *ScoreAnalysis) (closest, dominant string) {
	gaps := []struct {
		name string
		gap  float64
	}{
		{"power", math.Abs(winner.Power - loser.Power)},
		{"tactical", math.Abs(winner.Tactical - loser.Tactical)},
		{"chemistry", math.Abs(winner.Chemistry - loser.Chemistry)},
		{"balance", math.Abs(winner.Balance - loser.Balance)},
		{"managerIQ", math.Abs(winner.ManagerIQ - loser.ManagerIQ)},
	}
	closest, dominant = gaps[0].name, gaps[0].name
	minGap, maxGap := gaps[0].gap, gaps[0].gap
	for _, g := range gaps[1:] {
		if g.gap < minGap {
			minGap = g.gap
			closest = g.name
		}
		if g.gap > maxGap {
			maxGap = g.gap
			dominant = g.name
		}
	}
	return closest, dominant
}
