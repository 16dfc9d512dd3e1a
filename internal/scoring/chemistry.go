// internal/scoring/chemistry.go
package scoring

import (
	"math"

	"github.com/danvv/auctionfc/internal/models"
)

// Chemistry link points per shared attribute between two squad members.
const (
	linkClub   = 4.0
	linkLeague = 2.0
	linkNation = 2.0

	// maxPairPoints is the most a single pair can contribute.
	maxPairPoints = linkClub + linkLeague + linkNation
)

// chemistryScore is the Chemistry pillar: pairwise link density across the
// squad, plus cross-line connections and a rarity-mix bonus.
func chemistryScore(squad []*models.DraftItem) float64 {
	n := len(squad)
	if n < 2 {
		return 0
	}

	points := 0.0
	crossLinks := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := squad[i], squad[j]
			shared := 0.0
			if a.Club != "" && a.Club == b.Club {
				shared += linkClub
			}
			if a.League != "" && a.League == b.League {
				shared += linkLeague
			}
			if a.Nation != "" && a.Nation == b.Nation {
				shared += linkNation
			}
			points += shared

			if crossLine(a.Position.Group(), b.Position.Group()) &&
				((a.Club != "" && a.Club == b.Club) || (a.Nation != "" && a.Nation == b.Nation)) {
				crossLinks++
			}
		}
	}

	maxPoints := float64(n*(n-1)/2) * maxPairPoints
	density := points / maxPoints

	crossBonus := math.Min(float64(crossLinks)*1.5, 15)
	rarityBonus := rarityMix(squad)

	return clamp(density*70+crossBonus+rarityBonus, 0, 100)
}

// crossLine reports whether two lines pass to each other directly: defence
// to midfield, or midfield to attack.
func crossLine(a, b models.PositionGroup) bool {
	if a == models.GroupDEF && b == models.GroupMID || a == models.GroupMID && b == models.GroupDEF {
		return true
	}
	if a == models.GroupMID && b == models.GroupATT || a == models.GroupATT && b == models.GroupMID {
		return true
	}
	return false
}

// rarityMix rewards stacking the squad with high-tier cards, capped at 15.
func rarityMix(squad []*models.DraftItem) float64 {
	bonus := 0.0
	for _, item := range squad {
		switch item.Rarity {
		case models.RarityLegendary:
			bonus += 3
		case models.RarityEpic:
			bonus += 1.5
		}
	}
	return math.Min(bonus, 15)
}
