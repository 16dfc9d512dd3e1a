// internal/scoring/power.go
package scoring

import "github.com/danvv/auctionfc/internal/models"

// powerScore is the Power pillar: 0.6 x average rating plus 0.3 x the
// position-weighted key-stat blend, scaled by 1.1, with flat bonuses for
// 90+ rated and legendary players. Capped at 100.
func powerScore(squad []*models.DraftItem) float64 {
	if len(squad) == 0 {
		return 0
	}

	ratingSum := 0.0
	keySum := 0.0
	bonus := 0.0
	for _, item := range squad {
		ratingSum += float64(item.Rating)
		keySum += keyStat(item)
		if item.Rating >= 90 {
			bonus += 3
		}
		if item.Rarity == models.RarityLegendary {
			bonus += 2
		}
	}
	n := float64(len(squad))
	avgRating := ratingSum / n
	avgKey := keySum / n

	score := (0.6*avgRating + 0.3*avgKey) * 1.1
	return clamp(score+bonus, 0, 100)
}

// keyStat blends the stats that matter for the player's line: finishing pace
// up front, distribution and ball carrying in midfield, stopping power at
// the back. Goalkeepers proxy on raw rating since outfield stats don't
// describe them.
func keyStat(item *models.DraftItem) float64 {
	s := item.Stats
	switch item.Position.Group() {
	case models.GroupATT:
		return 0.6*float64(s.Shooting) + 0.4*float64(s.Pace)
	case models.GroupMID:
		return 0.4*float64(s.Passing) + 0.3*float64(s.Dribbling) + 0.3*float64(s.Physical)
	case models.GroupDEF:
		return 0.4*float64(s.Defending) + 0.35*float64(s.Physical) + 0.25*float64(s.Pace)
	default:
		return float64(item.Rating)
	}
}
