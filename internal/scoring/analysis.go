// internal/scoring/analysis.go
package scoring

import (
	"math"

	"github.com/google/uuid"

	"github.com/danvv/auctionfc/internal/models"
)

// Pillar weights. Fixed; they sum to 1.
const (
	weightPower     = 0.30
	weightTactical  = 0.20
	weightChemistry = 0.20
	weightBalance   = 0.15
	weightManagerIQ = 0.15

	// invalidSquadFactor is the 70% penalty an ineligible squad takes on its
	// retained weighted score.
	invalidSquadFactor = 0.3
)

// ScoreAnalysis is the scoring engine's output for one squad: five pillar
// sub-scores, the weighted final score, and the validity gate.
type ScoreAnalysis struct {
	PlayerID uuid.UUID `json:"playerId"`

	Power     float64 `json:"power"`
	Tactical  float64 `json:"tactical"`
	Chemistry float64 `json:"chemistry"`
	Balance   float64 `json:"balance"`
	ManagerIQ float64 `json:"managerIQ"`

	// RawScore is the weighted blend before any validity penalty.
	RawScore   float64 `json:"rawScore"`
	FinalScore float64 `json:"finalScore"`

	AvgRating  float64         `json:"avgRating"`
	Formation  string          `json:"formation"`
	Validation SquadValidation `json:"validation"`

	Purchases []models.SoldRecord `json:"-"`
}

// AnalyzeSquad computes the full five-pillar analysis for one participant's
// drafted roster. purchases is the participant's slice of the room's sold
// history; startingBudget anchors the Manager IQ spend metrics.
func AnalyzeSquad(p *models.Player, purchases []models.SoldRecord, startingBudget int64) *ScoreAnalysis {
	squad := p.Squad
	a := &ScoreAnalysis{
		PlayerID:   p.ID,
		Validation: ValidateSquad(squad),
		AvgRating:  round1(averageRating(squad)),
		Purchases:  purchases,
	}

	a.Power = round1(powerScore(squad))
	tactical, formation := tacticalScore(squad)
	a.Tactical = round1(tactical)
	a.Formation = formation
	a.Chemistry = round1(chemistryScore(squad))
	a.Balance = round1(balanceScore(squad))
	a.ManagerIQ = round1(managerIQScore(p, purchases, startingBudget, a.Power))

	raw := a.Power*weightPower +
		a.Tactical*weightTactical +
		a.Chemistry*weightChemistry +
		a.Balance*weightBalance +
		a.ManagerIQ*weightManagerIQ
	a.RawScore = round1(raw)
	if a.Validation.IsValid {
		a.FinalScore = round1(raw)
	} else {
		a.FinalScore = round1(raw * invalidSquadFactor)
	}
	return a
}

func averageRating(squad []*models.DraftItem) float64 {
	if len(squad) == 0 {
		return 0
	}
	sum := 0
	for _, item := range squad {
		sum += item.Rating
	}
	return float64(sum) / float64(len(squad))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
