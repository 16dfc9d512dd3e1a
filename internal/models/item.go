// internal/models/item.go
package models

// Position is a detailed on-pitch position.
type Position string

const (
	PosGK  Position = "GK"
	PosCB  Position = "CB"
	PosLB  Position = "LB"
	PosRB  Position = "RB"
	PosCDM Position = "CDM"
	PosCM  Position = "CM"
	PosCAM Position = "CAM"
	PosLM  Position = "LM"
	PosRM  Position = "RM"
	PosLW  Position = "LW"
	PosRW  Position = "RW"
	PosST  Position = "ST"
)

// AllPositions lists every detailed position in queue-draw order.
var AllPositions = []Position{
	PosGK, PosCB, PosLB, PosRB,
	PosCDM, PosCM, PosCAM, PosLM, PosRM,
	PosLW, PosRW, PosST,
}

// PositionGroup is the broad line a position belongs to.
type PositionGroup string

const (
	GroupGK  PositionGroup = "GK"
	GroupDEF PositionGroup = "DEF"
	GroupMID PositionGroup = "MID"
	GroupATT PositionGroup = "ATT"
)

// Group maps a detailed position onto its broad line.
func (p Position) Group() PositionGroup {
	switch p {
	case PosGK:
		return GroupGK
	case PosCB, PosLB, PosRB:
		return GroupDEF
	case PosCDM, PosCM, PosCAM, PosLM, PosRM:
		return GroupMID
	default:
		return GroupATT
	}
}

// Rarity tiers a draft item's scarcity and scales its base price.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Stats are the outfield attribute ratings, 0-99.
type Stats struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defending int `json:"defending"`
	Physical  int `json:"physical"`
}

// DraftItem is one auctionable player card from the catalog. Items are
// immutable once loaded; rooms share pointers into the catalog pool.
type DraftItem struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Rating       int        `json:"rating"`
	Position     Position   `json:"position"`
	AltPositions []Position `json:"altPositions,omitempty"`
	Rarity       Rarity     `json:"rarity"`
	Stats        Stats      `json:"stats"`
	BasePrice    int64      `json:"basePrice"`
	Club         string     `json:"club"`
	League       string     `json:"league"`
	Nation       string     `json:"nation"`
	Age          int        `json:"age"`
}

// PlaysPosition reports whether the item covers the given detailed position,
// natively or as a listed alternative.
func (d *DraftItem) PlaysPosition(pos Position) bool {
	if d.Position == pos {
		return true
	}
	for _, alt := range d.AltPositions {
		if alt == pos {
			return true
		}
	}
	return false
}
