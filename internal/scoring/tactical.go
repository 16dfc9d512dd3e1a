// internal/scoring/tactical.go
package scoring

import (
	"sort"

	"github.com/danvv/auctionfc/internal/models"
)

// Slot assignment bonuses for the four passes of decreasing strictness, and
// the default penalty for a slot nobody can fill.
const (
	bonusExactMatch  = 10.0
	bonusAltMatch    = 8.0
	bonusCompatMatch = 5.0
	penaltyDefault   = -5.0
	penaltyGKSlot    = -10.0

	fitPenaltyPerUnassigned = 15.0
)

// formation is an ordered set of 11 position slots.
type formation struct {
	Name  string
	Slots []models.Position
}

// formationCatalog lists the formations the auto-selector chooses from.
var formationCatalog = []formation{
	{"4-3-3", []models.Position{models.PosGK, models.PosLB, models.PosCB, models.PosCB, models.PosRB, models.PosCM, models.PosCM, models.PosCM, models.PosLW, models.PosST, models.PosRW}},
	{"4-4-2", []models.Position{models.PosGK, models.PosLB, models.PosCB, models.PosCB, models.PosRB, models.PosLM, models.PosCM, models.PosCM, models.PosRM, models.PosST, models.PosST}},
	{"4-2-3-1", []models.Position{models.PosGK, models.PosLB, models.PosCB, models.PosCB, models.PosRB, models.PosCDM, models.PosCDM, models.PosLM, models.PosCAM, models.PosRM, models.PosST}},
	{"3-5-2", []models.Position{models.PosGK, models.PosCB, models.PosCB, models.PosCB, models.PosLM, models.PosCDM, models.PosCM, models.PosCAM, models.PosRM, models.PosST, models.PosST}},
	{"5-3-2", []models.Position{models.PosGK, models.PosLB, models.PosCB, models.PosCB, models.PosCB, models.PosRB, models.PosCM, models.PosCM, models.PosCM, models.PosST, models.PosST}},
	{"4-1-4-1", []models.Position{models.PosGK, models.PosLB, models.PosCB, models.PosCB, models.PosRB, models.PosCDM, models.PosLM, models.PosCM, models.PosCM, models.PosRM, models.PosST}},
	{"4-3-2-1", []models.Position{models.PosGK, models.PosLB, models.PosCB, models.PosCB, models.PosRB, models.PosCM, models.PosCM, models.PosCM, models.PosCAM, models.PosCAM, models.PosST}},
}

// positionCompat is the fixed adjacency map for the third assignment pass: a
// player whose main position is the key can cover the listed slots at a
// reduced bonus.
var positionCompat = map[models.Position][]models.Position{
	models.PosGK:  {},
	models.PosCB:  {models.PosCDM, models.PosLB, models.PosRB},
	models.PosLB:  {models.PosLM, models.PosLW, models.PosCB},
	models.PosRB:  {models.PosRM, models.PosRW, models.PosCB},
	models.PosCDM: {models.PosCM, models.PosCB},
	models.PosCM:  {models.PosCDM, models.PosCAM},
	models.PosCAM: {models.PosCM, models.PosST, models.PosLW, models.PosRW},
	models.PosLM:  {models.PosLW, models.PosLB, models.PosCM},
	models.PosRM:  {models.PosRW, models.PosRB, models.PosCM},
	models.PosLW:  {models.PosLM, models.PosST, models.PosRW},
	models.PosRW:  {models.PosRM, models.PosST, models.PosLW},
	models.PosST:  {models.PosCAM, models.PosLW, models.PosRW},
}

// tacticalScore is the Tactical pillar: greedy four-pass assignment of the
// squad onto an auto-selected formation, blended with formation fit and role
// balance at fixed 0.5/0.3/0.2 weights.
func tacticalScore(squad []*models.DraftItem) (float64, string) {
	if len(squad) == 0 {
		return 0, ""
	}

	f := selectFormation(squad)
	bonusTotal, unfilled := assignToFormation(squad, f)

	perPlayer := bonusTotal / float64(len(f.Slots)) * 10
	fit := clamp(100-fitPenaltyPerUnassigned*float64(unfilled), 0, 100)
	role := roleBalance(squad)

	score := clamp(0.5*perPlayer+0.3*fit+0.2*role, 0, 100)
	return score, f.Name
}

// selectFormation picks the catalog formation whose line counts best match
// the squad's composition. Ties resolve to the earlier catalog entry.
func selectFormation(squad []*models.DraftItem) formation {
	have := map[models.PositionGroup]int{}
	for _, item := range squad {
		have[item.Position.Group()]++
	}

	best := formationCatalog[0]
	bestMismatch := -1
	for _, f := range formationCatalog {
		need := map[models.PositionGroup]int{}
		for _, slot := range f.Slots {
			need[slot.Group()]++
		}
		mismatch := 0
		for _, g := range []models.PositionGroup{models.GroupGK, models.GroupDEF, models.GroupMID, models.GroupATT} {
			d := need[g] - have[g]
			if d < 0 {
				d = -d
			}
			mismatch += d
		}
		if bestMismatch == -1 || mismatch < bestMismatch {
			best = f
			bestMismatch = mismatch
		}
	}
	return best
}

// assignToFormation runs the four passes and returns the accumulated slot
// bonuses and the count of slots left unfilled. Higher-rated players are
// considered first within each pass.
func assignToFormation(squad []*models.DraftItem, f formation) (float64, int) {
	ordered := make([]*models.DraftItem, len(squad))
	copy(ordered, squad)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Rating > ordered[j].Rating })

	usedPlayer := make([]bool, len(ordered))
	filledSlot := make([]bool, len(f.Slots))
	bonusTotal := 0.0

	assign := func(matches func(item *models.DraftItem, slot models.Position) bool, bonus float64) {
		for si, slot := range f.Slots {
			if filledSlot[si] {
				continue
			}
			for pi, item := range ordered {
				if usedPlayer[pi] {
					continue
				}
				if matches(item, slot) {
					usedPlayer[pi] = true
					filledSlot[si] = true
					bonusTotal += bonus
					break
				}
			}
		}
	}

	// Pass 1: exact main-position match.
	assign(func(item *models.DraftItem, slot models.Position) bool {
		return item.Position == slot
	}, bonusExactMatch)

	// Pass 2: alternate-position match.
	assign(func(item *models.DraftItem, slot models.Position) bool {
		for _, alt := range item.AltPositions {
			if alt == slot {
				return true
			}
		}
		return false
	}, bonusAltMatch)

	// Pass 3: compatibility-table match.
	assign(func(item *models.DraftItem, slot models.Position) bool {
		for _, c := range positionCompat[item.Position] {
			if c == slot {
				return true
			}
		}
		return false
	}, bonusCompatMatch)

	// Pass 4: unfilled slots take the compatibility-table penalty. A missing
	// goalkeeper costs double.
	unfilled := 0
	for si, filled := range filledSlot {
		if !filled {
			if f.Slots[si] == models.PosGK {
				bonusTotal += penaltyGKSlot
			} else {
				bonusTotal += penaltyDefault
			}
			unfilled++
		}
	}
	return bonusTotal, unfilled
}

// roleBalance penalizes squads missing the spine of a team: a goalkeeper, a
// striker, and enough centre-backs.
func roleBalance(squad []*models.DraftItem) float64 {
	score := 100.0

	hasGK := false
	hasStriker := false
	centreBacks := 0
	for _, item := range squad {
		if item.Position == models.PosGK {
			hasGK = true
		}
		if item.PlaysPosition(models.PosST) {
			hasStriker = true
		}
		if item.Position == models.PosCB {
			centreBacks++
		}
	}

	if !hasGK {
		score -= 40
	}
	if !hasStriker {
		score -= 25
	}
	if centreBacks < 2 {
		score -= float64(2-centreBacks) * 10
	}
	return clamp(score, 0, 100)
}
