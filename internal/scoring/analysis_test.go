// internal/scoring/analysis_test.go
package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danvv/auctionfc/internal/catalog"
	"github.com/danvv/auctionfc/internal/models"
)

func fieldPlayer(id int, pos models.Position, rating int) *models.DraftItem {
	return &models.DraftItem{
		ID:        id,
		Name:      fmt.Sprintf("Player %d", id),
		Rating:    rating,
		Position:  pos,
		Rarity:    models.RarityCommon,
		Stats:     models.Stats{Pace: rating, Shooting: rating, Passing: rating, Dribbling: rating, Defending: rating, Physical: rating},
		BasePrice: catalog.BasePriceFor(rating, models.RarityCommon),
		Club:      "Test FC",
		League:    "Test League",
		Nation:    "Testland",
		Age:       26,
	}
}

// fullEleven is an exact 4-3-3: GK, back four, three centre mids, front three.
func fullEleven() []*models.DraftItem {
	positions := []models.Position{
		models.PosGK,
		models.PosLB, models.PosCB, models.PosCB, models.PosRB,
		models.PosCM, models.PosCM, models.PosCM,
		models.PosLW, models.PosST, models.PosRW,
	}
	squad := make([]*models.DraftItem, len(positions))
	for i, pos := range positions {
		squad[i] = fieldPlayer(i+1, pos, 80)
	}
	return squad
}

// keeperlessEleven has eleven players but no goalkeeper: four defenders, four
// midfielders, three forwards.
func keeperlessEleven() []*models.DraftItem {
	positions := []models.Position{
		models.PosLB, models.PosCB, models.PosCB, models.PosRB,
		models.PosCM, models.PosCM, models.PosCDM, models.PosCAM,
		models.PosLW, models.PosST, models.PosRW,
	}
	squad := make([]*models.DraftItem, len(positions))
	for i, pos := range positions {
		squad[i] = fieldPlayer(i+1, pos, 80)
	}
	return squad
}

func TestValidateSquadAcceptsFullEleven(t *testing.T) {
	v := ValidateSquad(fullEleven())

	assert.True(t, v.IsValid)
	assert.True(t, v.HasGoalkeeper)
	assert.Empty(t, v.Errors)
	assert.Equal(t, 1, v.Goalkeepers)
	assert.Equal(t, 4, v.Defenders)
	assert.Equal(t, 3, v.Midfielders)
	assert.Equal(t, 3, v.Forwards)
}

func TestValidateSquadRequiresGoalkeeper(t *testing.T) {
	v := ValidateSquad(keeperlessEleven())

	assert.False(t, v.IsValid)
	assert.False(t, v.HasGoalkeeper)
	assert.Zero(t, v.Goalkeepers)
	assert.Contains(t, v.Errors, "squad has no goalkeeper")
}

func TestValidateSquadFlagsShortSquad(t *testing.T) {
	squad := fullEleven()[:5]
	v := ValidateSquad(squad)

	assert.False(t, v.IsValid)
	assert.Contains(t, v.Errors, "squad has only 5 player(s), 11 required")
}

func TestValidateSquadFlagsDuplicates(t *testing.T) {
	squad := fullEleven()
	squad[10] = squad[9]
	v := ValidateSquad(squad)

	assert.False(t, v.IsValid)
	require.NotEmpty(t, v.Errors)
	assert.Contains(t, v.Errors, fmt.Sprintf("duplicate player in squad: %s", squad[9].Name))
}

func TestAnalyzeValidSquadKeepsRawScore(t *testing.T) {
	p := models.NewPlayer("Alice", 1_000_000_000)
	p.Squad = fullEleven()

	a := AnalyzeSquad(p, nil, 1_000_000_000)

	assert.True(t, a.Validation.IsValid)
	assert.Equal(t, a.RawScore, a.FinalScore)
	assert.Equal(t, 80.0, a.AvgRating)
	assert.NotEmpty(t, a.Formation)
}

func TestAnalyzeInvalidSquadTakesPenalty(t *testing.T) {
	p := models.NewPlayer("Bob", 1_000_000_000)
	p.Squad = keeperlessEleven()

	a := AnalyzeSquad(p, nil, 1_000_000_000)

	assert.False(t, a.Validation.IsValid)
	assert.Greater(t, a.RawScore, 0.0)
	assert.Less(t, a.FinalScore, a.RawScore)
	assert.InDelta(t, a.RawScore*invalidSquadFactor, a.FinalScore, 0.1)
}

func TestAnalyzePillarsStayInBounds(t *testing.T) {
	squads := [][]*models.DraftItem{
		nil,
		fullEleven()[:3],
		fullEleven(),
		keeperlessEleven(),
	}
	for _, squad := range squads {
		p := models.NewPlayer("Any", 1_000_000_000)
		p.Squad = squad
		a := AnalyzeSquad(p, nil, 1_000_000_000)

		for name, pillar := range map[string]float64{
			"power":     a.Power,
			"tactical":  a.Tactical,
			"chemistry": a.Chemistry,
			"balance":   a.Balance,
			"managerIQ": a.ManagerIQ,
		} {
			assert.GreaterOrEqual(t, pillar, 0.0, "%s with %d player(s)", name, len(squad))
			assert.LessOrEqual(t, pillar, 100.0, "%s with %d player(s)", name, len(squad))
		}
		assert.GreaterOrEqual(t, a.FinalScore, 0.0)
		assert.LessOrEqual(t, a.FinalScore, 100.0)
	}
}

func TestTacticalExactFormationScoresFull(t *testing.T) {
	score, formation := tacticalScore(fullEleven())

	assert.Equal(t, "4-3-3", formation)
	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestTacticalKeeperlessSquadPenalized(t *testing.T) {
	with, _ := tacticalScore(fullEleven())
	without, _ := tacticalScore(keeperlessEleven())

	assert.Less(t, without, with)
}

func TestChemistrySharedClubBeatsStrangers(t *testing.T) {
	together := fullEleven()

	strangers := fullEleven()
	for i, item := range strangers {
		item.Club = fmt.Sprintf("Club %d", i)
		item.League = fmt.Sprintf("League %d", i)
		item.Nation = fmt.Sprintf("Nation %d", i)
	}

	assert.Greater(t, chemistryScore(together), chemistryScore(strangers))
}

func TestBalanceIncompleteSquadScaled(t *testing.T) {
	full := balanceScore(fullEleven())
	partial := balanceScore(fullEleven()[:6])

	assert.Less(t, partial, full)
	assert.Greater(t, full, 0.0)
}

func TestEfficiencyRewardsCheaperPower(t *testing.T) {
	frugal := models.NewPlayer("Frugal", 1_000_000_000)
	frugal.Squad = fullEleven()
	frugal.Budget = 900_000_000 // spent 100M

	lavish := models.NewPlayer("Lavish", 1_000_000_000)
	lavish.Squad = fullEleven()
	lavish.Budget = 200_000_000 // spent 800M

	power := powerScore(frugal.Squad)
	assert.Greater(t,
		efficiencyScore(frugal, 1_000_000_000, power),
		efficiencyScore(lavish, 1_000_000_000, power))
}

func validAnalysis(id *models.Player, final float64) *ScoreAnalysis {
	return &ScoreAnalysis{
		PlayerID:   id.ID,
		RawScore:   final,
		FinalScore: final,
		Validation: SquadValidation{IsValid: true, HasGoalkeeper: true},
	}
}

func TestBuildGameResultHigherScoreWins(t *testing.T) {
	pa := models.NewPlayer("Alice", 1_000_000_000)
	pb := models.NewPlayer("Bob", 1_000_000_000)
	sa := validAnalysis(pa, 72.5)
	sb := validAnalysis(pb, 68.0)

	res := BuildGameResult(pa, pb, sa, sb)

	assert.Equal(t, pa.ID, res.WinnerID)
	assert.Equal(t, pb.ID, res.LoserID)
	assert.False(t, res.WinByDefault)
	assert.Empty(t, res.TieBreak)
	assert.Same(t, sa, res.Winner)
	assert.Same(t, sb, res.Loser)
}

func TestBuildGameResultTieBreaksOnAvgRating(t *testing.T) {
	pa := models.NewPlayer("Alice", 1_000_000_000)
	pb := models.NewPlayer("Bob", 1_000_000_000)
	sa := validAnalysis(pa, 70.0)
	sa.AvgRating = 81.2
	sb := validAnalysis(pb, 70.0)
	sb.AvgRating = 79.8

	res := BuildGameResult(pa, pb, sa, sb)

	assert.Equal(t, pa.ID, res.WinnerID)
	assert.Equal(t, TieBreakAvgRating, res.TieBreak)
}

func TestBuildGameResultTieBreaksOnBudget(t *testing.T) {
	pa := models.NewPlayer("Alice", 1_000_000_000)
	pa.Budget = 50_000_000
	pb := models.NewPlayer("Bob", 1_000_000_000)
	pb.Budget = 10_000_000
	sa := validAnalysis(pa, 70.0)
	sa.AvgRating = 80.0
	sb := validAnalysis(pb, 70.0)
	sb.AvgRating = 80.0

	res := BuildGameResult(pa, pb, sa, sb)

	assert.Equal(t, pa.ID, res.WinnerID)
	assert.Equal(t, TieBreakBudget, res.TieBreak)
}

func TestBuildGameResultValidSquadWinsByDefault(t *testing.T) {
	pa := models.NewPlayer("Alice", 1_000_000_000)
	pb := models.NewPlayer("Bob", 1_000_000_000)
	sa := validAnalysis(pa, 40.0)
	sb := &ScoreAnalysis{
		PlayerID:   pb.ID,
		RawScore:   85.0,
		FinalScore: 25.5,
		Validation: SquadValidation{IsValid: false, Errors: []string{"squad has no goalkeeper"}},
	}

	res := BuildGameResult(pa, pb, sa, sb)

	assert.Equal(t, pa.ID, res.WinnerID)
	assert.True(t, res.WinByDefault)
}

func TestBuildGameResultBothInvalidComparesRaw(t *testing.T) {
	pa := models.NewPlayer("Alice", 1_000_000_000)
	pb := models.NewPlayer("Bob", 1_000_000_000)
	sa := &ScoreAnalysis{PlayerID: pa.ID, RawScore: 55.0, FinalScore: 16.5, Validation: SquadValidation{}}
	sb := &ScoreAnalysis{PlayerID: pb.ID, RawScore: 60.0, FinalScore: 18.0, Validation: SquadValidation{}}

	res := BuildGameResult(pa, pb, sa, sb)

	assert.Equal(t, pb.ID, res.WinnerID)
	assert.False(t, res.WinByDefault)
}

func TestBuildGameResultAwards(t *testing.T) {
	pa := models.NewPlayer("Alice", 1_000_000_000)
	pa.Squad = fullEleven()
	pa.Squad[9].Rating = 93 // the striker
	pb := models.NewPlayer("Bob", 1_000_000_000)
	pb.Squad = fullEleven()

	sa := validAnalysis(pa, 75.0)
	sa.Purchases = []models.SoldRecord{
		{Item: pa.Squad[0], BuyerID: pa.ID, Price: pa.Squad[0].BasePrice * 2, Sequence: 1},
		{Item: pa.Squad[9], BuyerID: pa.ID, Price: pa.Squad[9].BasePrice / 2, Sequence: 2},
	}
	sb := validAnalysis(pb, 60.0)

	res := BuildGameResult(pa, pb, sa, sb)

	require.NotNil(t, res.MVP)
	assert.Equal(t, 93, res.MVP.Rating)
	require.NotNil(t, res.BestValueSigning)
	assert.Equal(t, pa.Squad[9].ID, res.BestValueSigning.Item.ID)
	assert.NotEmpty(t, res.ClosestPillar)
	assert.NotEmpty(t, res.DominantPillar)
}
