// Package rules holds the pure auction business rules. Every function
// returns a result value and never mutates its inputs, panics or touches
// shared state; persistence of accepted outcomes is the caller's job.
package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/numeric"
)

// Result is the accept/reject outcome of a validation check. Err is
// user-visible text and empty on success.
type Result struct {
	Valid bool
	Err   string
}

// BidResult extends Result with the next auction snapshot. Auction is nil
// whenever Valid is false; the stored auction must stay untouched then.
type BidResult struct {
	Valid   bool
	Err     string
	Auction *models.Auction
}

// Policy carries the value ceilings, which are deployment configuration
// rather than fixed constants.
type Policy struct {
	MaxBid      int64
	MaxQuantity int64
	MaxMinBid   int64
}

// DefaultPolicy returns the stock ceilings: 20 billion per bid, 5 billion
// per item quantity, 10 billion for an auction's minimum bid.
func DefaultPolicy() Policy {
	return Policy{
		MaxBid:      20_000_000_000,
		MaxQuantity: 5_000_000_000,
		MaxMinBid:   10_000_000_000,
	}
}

// SameIdentity compares two identity keys the only way the marketplace
// ever does: case-insensitively, ignoring surrounding whitespace.
func SameIdentity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ValidateSubmission checks a new auction listing. Checks run in order and
// the first failure short-circuits with its specific message.
func ValidateSubmission(quantity, minBid int64, selectedItem string, p Policy) Result {
	if strings.TrimSpace(selectedItem) == "" {
		return Result{Err: "Please select an item to auction."}
	}
	if quantity <= 0 {
		return Result{Err: "Quantity must be a positive number."}
	}
	if quantity > p.MaxQuantity {
		return Result{Err: fmt.Sprintf("Quantity cannot exceed %s.", humanize(p.MaxQuantity))}
	}
	if minBid <= 0 {
		return Result{Err: "Minimum bid must be a positive number."}
	}
	if minBid > p.MaxMinBid {
		return Result{Err: fmt.Sprintf("Minimum bid cannot exceed %s.", humanize(p.MaxMinBid))}
	}
	return Result{Valid: true}
}

// ValidateBid checks a bid against an auction and, when every check
// passes, returns the next auction snapshot with the bid appended and
// CurrentBid advanced. Identity checks run before the numeric thresholds
// so a disallowed bidder never learns whether their amount would have been
// sufficient; the order below is load-bearing for deterministic messages.
func ValidateBid(amount int64, auction *models.Auction, bidder string, at time.Time, p Policy) BidResult {
	if auction == nil {
		return BidResult{Err: "Auction not found."}
	}
	if strings.TrimSpace(bidder) == "" {
		return BidResult{Err: "Only registered users may bid."}
	}
	if amount <= 0 {
		return BidResult{Err: "This isn't a charity. Bid at least the minimum."}
	}
	if amount > p.MaxBid {
		return BidResult{Err: fmt.Sprintf("Bid cannot exceed %s.", humanize(p.MaxBid))}
	}
	if last, ok := auction.LastBid(); ok && SameIdentity(last.Bidder, bidder) {
		return BidResult{Err: "You are already the highest bidder."}
	}
	if SameIdentity(auction.Owner, bidder) {
		return BidResult{Err: "You cannot bid on your own auction."}
	}
	if amount <= auction.CurrentBid {
		return BidResult{Err: "Your bid must be higher than the current bid."}
	}
	if amount < auction.MinBidMeat {
		return BidResult{Err: "Your bid must meet the minimum bid requirement."}
	}

	next := *auction
	next.CurrentBid = amount
	next.Bids = append(append([]models.Bid(nil), auction.Bids...), models.Bid{
		Bidder:    bidder,
		Amount:    amount,
		Timestamp: at,
	})
	// Owner is carried over untouched: bids can never change who owns
	// the auction.
	return BidResult{Valid: true, Auction: &next}
}

// humanize renders a ceiling for an error message: whole billions and
// millions read as words, anything else falls back to grouped digits.
func humanize(n int64) string {
	switch {
	case n >= 1_000_000_000 && n%1_000_000_000 == 0:
		return fmt.Sprintf("%d billion", n/1_000_000_000)
	case n >= 1_000_000 && n%1_000_000 == 0:
		return fmt.Sprintf("%d million", n/1_000_000)
	}
	return numeric.Format(n)
}
