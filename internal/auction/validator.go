// internal/auction/validator.go
package auction

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/danvv/auctionfc/internal/models"
)

// Validator rejection reasons, surfaced verbatim to the offending client.
var (
	ErrNoAuction      = errors.New("no active auction")
	ErrInvalidAmount  = errors.New("bid amount must be a positive number")
	ErrBidTooLow      = errors.New("bid must be higher than the current bid")
	ErrOverBudget     = errors.New("bid exceeds your remaining budget")
	ErrBelowIncrement = errors.New("bid is below the minimum increment")
	ErrSelfOutbid     = errors.New("you are already the highest bidder")
)

// ValidateBid is the single source of truth for bid legality, shared by the
// human and AI paths. It is pure: success has no side effects until the
// caller applies the bid. Returns the amount snapped to an int64.
//
// The opening bid on an item is exempt from the increment floor and may equal
// the start price exactly, since CurrentBid already sits at the scaled base
// price before anyone has bid.
func ValidateBid(a *models.Auction, bidderID uuid.UUID, budget int64, amount float64, minIncrement int64) (int64, error) {
	if a == nil {
		return 0, ErrNoAuction
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	amt := int64(math.Round(amount))

	if a.CurrentBidder == nil {
		if amt < a.CurrentBid {
			return 0, ErrBidTooLow
		}
	} else {
		if amt <= a.CurrentBid {
			return 0, ErrBidTooLow
		}
	}
	if amt > budget {
		return 0, ErrOverBudget
	}
	if a.CurrentBidder != nil && amt < a.CurrentBid+minIncrement {
		return 0, ErrBelowIncrement
	}
	if a.HighestBidder(bidderID) {
		return 0, ErrSelfOutbid
	}
	return amt, nil
}
