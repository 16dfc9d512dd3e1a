// internal/auction/queue.go
package auction

import (
	"log"
	"math/rand"

	"github.com/danvv/auctionfc/internal/models"
	"github.com/danvv/auctionfc/internal/room"
)

// BuildQueue constructs the auction queue for one game: for each detailed
// position it draws settings.PerPosition items from the catalog pool
// (shuffled), back-fills positions with an insufficient pool from the
// remainder, trims or pads to settings.TotalPlayers, then reshuffles
// globally. Catalog shortfalls are logged, never fatal.
func BuildQueue(pool []*models.DraftItem, settings room.Settings, rng *rand.Rand) []*models.DraftItem {
	byPos := make(map[models.Position][]*models.DraftItem)
	for _, item := range pool {
		byPos[item.Position] = append(byPos[item.Position], item)
	}

	picked := make([]*models.DraftItem, 0, settings.TotalPlayers)
	used := make(map[int]bool)
	deficit := 0

	for _, pos := range models.AllPositions {
		candidates := byPos[pos]
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		take := settings.PerPosition
		if len(candidates) < take {
			log.Printf("Catalog has only %d item(s) for position %s, wanted %d. Back-filling from remainder.",
				len(candidates), pos, take)
			deficit += take - len(candidates)
			take = len(candidates)
		}
		for _, item := range candidates[:take] {
			picked = append(picked, item)
			used[item.ID] = true
		}
	}

	// Back-fill position deficits, then reconcile against the configured
	// total item count.
	want := settings.TotalPlayers
	if want <= 0 {
		want = len(picked) + deficit
	}
	if len(picked) < want {
		var rest []*models.DraftItem
		for _, item := range pool {
			if !used[item.ID] {
				rest = append(rest, item)
			}
		}
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		for _, item := range rest {
			if len(picked) >= want {
				break
			}
			picked = append(picked, item)
			used[item.ID] = true
		}
		if len(picked) < want {
			log.Printf("Catalog exhausted at %d item(s), wanted %d. Queue will be short.", len(picked), want)
		}
	} else if len(picked) > want {
		rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
		picked = picked[:want]
	}

	rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked
}
