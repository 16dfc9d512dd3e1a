// internal/scoring/manageriq.go
package scoring

import (
	"math"

	"github.com/danvv/auctionfc/internal/models"
)

// Steal-bid thresholds on the base-price / paid-price ratio.
const (
	strongStealRatio = 1.5
	mildStealRatio   = 1.1
	overpayRatio     = 0.9
	badOverpayRatio  = 0.6

	// completionWindow: finishing the eleven within this many purchases
	// earns the early-completion bonus.
	completionWindow = 15
)

// managerIQScore is the Manager IQ pillar: budget efficiency, bargain
// hunting, squad completion, and spend risk management. Sub-scores cap at
// 30/30/20/20.
func managerIQScore(p *models.Player, purchases []models.SoldRecord, startingBudget int64, power float64) float64 {
	efficiency := efficiencyScore(p, startingBudget, power)
	steals := stealScore(purchases)
	completion := completionScore(p, purchases)
	risk := riskScore(p, purchases, startingBudget)
	return clamp(efficiency+steals+completion+risk, 0, 100)
}

// efficiencyScore rewards power bought per million spent.
func efficiencyScore(p *models.Player, startingBudget int64, power float64) float64 {
	spentM := float64(p.TotalSpent(startingBudget)) / 1_000_000
	if spentM < 1 {
		spentM = 1
	}
	return clamp(power/spentM*75, 0, 30)
}

// stealScore starts from a neutral 15 and moves per purchase on the ratio of
// nominal value to price paid: clear steals earn, heavy overpays cost.
func stealScore(purchases []models.SoldRecord) float64 {
	score := 15.0
	for _, rec := range purchases {
		if rec.Price <= 0 {
			continue
		}
		ratio := float64(rec.Item.BasePrice) / float64(rec.Price)
		switch {
		case ratio > strongStealRatio:
			score += 3
		case ratio > mildStealRatio:
			score += 1.5
		case ratio < badOverpayRatio:
			score -= 3
		case ratio < overpayRatio:
			score -= 1
		}
	}
	return clamp(score, 0, 30)
}

// completionScore rewards reaching a playable eleven, with extra credit for
// getting there inside the first purchases of the draft.
func completionScore(p *models.Player, purchases []models.SoldRecord) float64 {
	if len(p.Squad) >= minSquadSize {
		score := 12.0
		if len(purchases) >= minSquadSize && purchases[minSquadSize-1].Sequence <= completionWindow {
			score += 8
		}
		return score
	}
	return float64(len(p.Squad)) / float64(minSquadSize) * 6
}

// riskScore rewards even spending (low coefficient of variation across
// purchases) and penalizes burning nearly the whole budget while the squad
// is still short of eleven.
func riskScore(p *models.Player, purchases []models.SoldRecord, startingBudget int64) float64 {
	if len(purchases) == 0 {
		return 10
	}

	mean := 0.0
	for _, rec := range purchases {
		mean += float64(rec.Price)
	}
	mean /= float64(len(purchases))

	variance := 0.0
	for _, rec := range purchases {
		d := float64(rec.Price) - mean
		variance += d * d
	}
	variance /= float64(len(purchases))
	cov := 0.0
	if mean > 0 {
		cov = math.Sqrt(variance) / mean
	}

	score := 8 + clamp(12*(1-cov), 0, 12)
	if p.Budget < startingBudget/20 && len(p.Squad) < minSquadSize {
		score -= 8
	}
	return clamp(score, 0, 20)
}
