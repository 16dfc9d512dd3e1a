// internal/models/auction.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// AuctionStatus is the lifecycle state of the live bidding round.
type AuctionStatus string

const (
	AuctionActive     AuctionStatus = "active"
	AuctionGoingOnce  AuctionStatus = "going_once"
	AuctionGoingTwice AuctionStatus = "going_twice"
	AuctionSold       AuctionStatus = "sold"
	AuctionUnsold     AuctionStatus = "unsold"
)

// Bid is an accepted bid event, appended immutably to the auction history.
type Bid struct {
	BidderID  uuid.UUID `json:"bidderId"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	IsAI      bool      `json:"isAI"`
}

// Auction is the live bidding round for one draft item. CurrentBid is
// monotonically non-decreasing; CurrentBidder is nil until the first bid.
type Auction struct {
	Item          *DraftItem    `json:"item"`
	CurrentBid    int64         `json:"currentBid"`
	CurrentBidder *uuid.UUID    `json:"currentBidder,omitempty"`
	TimeRemaining int           `json:"timeRemaining"`
	Bids          []Bid         `json:"bids"`
	Status        AuctionStatus `json:"status"`

	// Seq is a per-room monotonic counter; timer and AI callbacks compare
	// it against the live auction to detect staleness.
	Seq int `json:"-"`
}

// HighestBidder reports whether id currently holds the top bid.
func (a *Auction) HighestBidder(id uuid.UUID) bool {
	return a.CurrentBidder != nil && *a.CurrentBidder == id
}

// SoldRecord is the resolution of one auction, appended to room history.
type SoldRecord struct {
	Item     *DraftItem `json:"item"`
	BuyerID  uuid.UUID  `json:"buyerId"`
	Price    int64      `json:"price"`
	Sequence int        `json:"sequence"`
}
