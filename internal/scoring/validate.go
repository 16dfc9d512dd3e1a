// internal/scoring/validate.go
package scoring

import (
	"fmt"

	"github.com/danvv/auctionfc/internal/models"
)

// Trophy-eligibility floor: a scoring squad needs a full eleven with at
// least one goalkeeper, three defenders, two midfielders, and one forward.
const (
	minSquadSize   = 11
	minGoalkeepers = 1
	minDefenders   = 3
	minMidfielders = 2
	minForwards    = 1
)

// SquadValidation is the gate result attached to every score analysis. An
// invalid squad keeps its weighted score but takes a 70% penalty.
type SquadValidation struct {
	IsValid       bool     `json:"isValid"`
	HasGoalkeeper bool     `json:"hasGoalkeeper"`
	Goalkeepers   int      `json:"goalkeepers"`
	Defenders     int      `json:"defenders"`
	Midfielders   int      `json:"midfielders"`
	Forwards      int      `json:"forwards"`
	Errors        []string `json:"errors,omitempty"`
}

// ValidateSquad checks the drafted roster against the trophy-eligibility
// requirements. It never rejects play; it only gates the score.
func ValidateSquad(squad []*models.DraftItem) SquadValidation {
	v := SquadValidation{}
	for _, item := range squad {
		switch item.Position.Group() {
		case models.GroupGK:
			v.Goalkeepers++
		case models.GroupDEF:
			v.Defenders++
		case models.GroupMID:
			v.Midfielders++
		case models.GroupATT:
			v.Forwards++
		}
	}
	v.HasGoalkeeper = v.Goalkeepers >= minGoalkeepers

	if len(squad) < minSquadSize {
		v.Errors = append(v.Errors, fmt.Sprintf("squad has only %d player(s), %d required", len(squad), minSquadSize))
	}
	if !v.HasGoalkeeper {
		v.Errors = append(v.Errors, "squad has no goalkeeper")
	}
	if v.Defenders < minDefenders {
		v.Errors = append(v.Errors, fmt.Sprintf("squad has only %d defender(s), %d required", v.Defenders, minDefenders))
	}
	if v.Midfielders < minMidfielders {
		v.Errors = append(v.Errors, fmt.Sprintf("squad has only %d midfielder(s), %d required", v.Midfielders, minMidfielders))
	}
	if v.Forwards < minForwards {
		v.Errors = append(v.Errors, "squad has no forward")
	}

	seen := make(map[int]bool, len(squad))
	for _, item := range squad {
		if seen[item.ID] {
			v.Errors = append(v.Errors, fmt.Sprintf("duplicate player in squad: %s", item.Name))
		}
		seen[item.ID] = true
	}

	v.IsValid = len(v.Errors) == 0
	return v
}
