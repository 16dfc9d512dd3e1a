// internal/scoring/balance.go
package scoring

import "github.com/danvv/auctionfc/internal/models"

// Ideal line counts for a 16-player drafted squad.
var idealCounts = map[models.PositionGroup]int{
	models.GroupGK:  2,
	models.GroupDEF: 5,
	models.GroupMID: 5,
	models.GroupATT: 4,
}

// balanceScore is the Balance pillar: deviation from the ideal position
// distribution, wing coverage, squad age, and completeness.
func balanceScore(squad []*models.DraftItem) float64 {
	if len(squad) == 0 {
		return 0
	}

	counts := map[models.PositionGroup]int{}
	left, right := 0, 0
	ageSum := 0
	for _, item := range squad {
		counts[item.Position.Group()]++
		switch item.Position {
		case models.PosLB, models.PosLM, models.PosLW:
			left++
		case models.PosRB, models.PosRM, models.PosRW:
			right++
		}
		ageSum += item.Age
	}

	score := 100.0

	// No goalkeeper is a severe structural hole; otherwise light deviation
	// penalties per line.
	if counts[models.GroupGK] == 0 {
		score -= 35
	} else if d := counts[models.GroupGK] - idealCounts[models.GroupGK]; d != 0 {
		if d < 0 {
			d = -d
		}
		score -= float64(d) * 5
	}
	if deficit := idealCounts[models.GroupDEF] - counts[models.GroupDEF]; deficit > 0 {
		score -= float64(deficit) * 6
	}
	if deficit := idealCounts[models.GroupMID] - counts[models.GroupMID]; deficit > 0 {
		score -= float64(deficit) * 6
	}
	if deficit := idealCounts[models.GroupATT] - counts[models.GroupATT]; deficit > 0 {
		score -= float64(deficit) * 6
	}
	if excess := counts[models.GroupATT] - idealCounts[models.GroupATT] - 1; excess > 0 {
		score -= float64(excess) * 4
	}

	// Lopsided wing coverage.
	imbalance := left - right
	if imbalance < 0 {
		imbalance = -imbalance
	}
	if imbalance > 1 {
		score -= float64(imbalance-1) * 5
	}

	// Ageing squads lose legs.
	avgAge := float64(ageSum) / float64(len(squad))
	if avgAge > 31 {
		score -= (avgAge - 31) * 4
	}

	score = clamp(score, 0, 100)

	// An incomplete squad scores proportionally to how close it is to a
	// full eleven.
	if len(squad) < minSquadSize {
		score *= float64(len(squad)) / float64(minSquadSize)
	}
	return score
}
