package models

import "time"

// User represents a registered marketplace account
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Bid represents a single bid on an auction. Bids are append-only and
// never mutated once recorded.
type Bid struct {
	Bidder    string    `json:"bidder"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Auction represents an auctioned item lot. CurrentBid always equals the
// amount of the last element of Bids, or 0 when no bids have been placed.
type Auction struct {
	ID         string    `json:"id"`
	Item       string    `json:"item"`
	Quantity   int64     `json:"quantity"`
	MrACount   int       `json:"mr_a_count"`
	MinBidMeat int64     `json:"min_bid_meat"`
	CurrentBid int64     `json:"current_bid"`
	Owner      string    `json:"owner"`
	EndTime    time.Time `json:"end_time"`
	Bids       []Bid     `json:"bids"`
}

// LastBid returns the most recent bid and whether one exists.
func (a Auction) LastBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	return a.Bids[len(a.Bids)-1], true
}
