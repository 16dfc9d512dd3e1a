// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danvv/auctionfc/internal/models"
)

// Provider supplies the static pool of draftable players. The auction core
// only ever consumes the returned list; it never mutates it.
type Provider interface {
	Players() []*models.DraftItem
}

// Static is a Provider over a fixed, pre-loaded slice.
type Static struct {
	items []*models.DraftItem
}

// NewStatic wraps an item slice in a Provider.
func NewStatic(items []*models.DraftItem) *Static {
	return &Static{items: items}
}

// Players returns the backing slice. Callers must treat it as read-only.
func (s *Static) Players() []*models.DraftItem {
	return s.items
}

// LoadFile reads a JSON array of draft items from disk. Items missing a base
// price get one derived from rating and rarity, same as the built-in pool.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var items []*models.DraftItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	for _, item := range items {
		if item.BasePrice <= 0 {
			item.BasePrice = BasePriceFor(item.Rating, item.Rarity)
		}
	}
	return NewStatic(items), nil
}

// BasePriceFor derives a nominal auction start price from rating and rarity.
// One rating point opens at 100k, so even a full legendary squad leaves the
// default budget room to contest every lot; rarer tiers carry a markup.
func BasePriceFor(rating int, rarity models.Rarity) int64 {
	base := int64(rating) * 100_000
	switch rarity {
	case models.RarityLegendary:
		return base * 2
	case models.RarityEpic:
		return base * 3 / 2
	case models.RarityRare:
		return base * 6 / 5
	}
	return base
}
