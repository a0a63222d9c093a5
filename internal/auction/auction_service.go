package auction

import (
	"errors"
	"fmt"
	"time"

	"github.com/YoshiBoneDoc/kolauction/internal/auctionerrors"
	"github.com/YoshiBoneDoc/kolauction/internal/countdown"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/numeric"
	"github.com/YoshiBoneDoc/kolauction/internal/repository"
	"github.com/YoshiBoneDoc/kolauction/internal/rules"
	"github.com/YoshiBoneDoc/kolauction/utils"
)

// CurrentUserProvider is the slice of the user store the service needs:
// who, if anyone, is logged in.
type CurrentUserProvider interface {
	Current() (model.User, bool)
}

// AuctionService defines the business logic for the auction marketplace.
// Raw text amounts go through the shorthand parser here, then through the
// pure validation rules; only accepted outcomes reach the store.
type AuctionService struct {
	store  repository.AuctionStore
	users  CurrentUserProvider
	policy rules.Policy
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, users CurrentUserProvider, policy rules.Policy) *AuctionService {
	return &AuctionService{
		store:  store,
		users:  users,
		policy: policy,
	}
}

// Profile summarizes one user's marketplace activity.
type Profile struct {
	Username          string
	CurrentAuctions   []model.Auction
	CompletedAuctions []model.Auction
	CurrentBids       []BidActivity
	CompletedBids     []BidActivity
}

// BidActivity pairs an auction with the user's own highest bid on it.
type BidActivity struct {
	Auction    model.Auction
	HighestBid int64
}

// CreateAuction validates a listing submission and stores the new auction.
// Rule violations come back in the Result, not as an error.
func (s *AuctionService) CreateAuction(item, rawQuantity, rawMinBid string, mrACount, durationHours int) (model.Auction, rules.Result, error) {
	owner, ok := s.users.Current()
	if !ok {
		return model.Auction{}, rules.Result{Err: "Only registered users may auction items."}, nil
	}

	quantity, _ := numeric.ParseAmount(rawQuantity)
	minBid, _ := numeric.ParseAmount(rawMinBid)

	res := rules.ValidateSubmission(quantity, minBid, item, s.policy)
	if !res.Valid {
		return model.Auction{}, res, nil
	}

	if durationHours <= 0 {
		durationHours = 24
	}
	auction := model.Auction{
		ID:         utils.GenerateID(),
		Item:       item,
		Quantity:   quantity,
		MrACount:   mrACount,
		MinBidMeat: minBid,
		CurrentBid: 0,
		Owner:      owner.Username,
		EndTime:    time.Now().UTC().Add(time.Duration(durationHours) * time.Hour),
		Bids:       []model.Bid{},
	}

	if err := s.store.Add(auction); err != nil {
		return model.Auction{}, rules.Result{}, fmt.Errorf("service: failed to store auction for %s: %w", owner.Username, err)
	}

	utils.Info("Auction created", map[string]any{
		"auction_id": auction.ID,
		"item":       auction.Item,
		"owner":      auction.Owner,
		"min_bid":    auction.MinBidMeat,
	})
	return auction, res, nil
}

// PlaceBid parses a raw bid amount, validates it against the auction and
// the current user, and persists the accepted outcome. Rule violations
// come back in the BidResult with the store untouched.
func (s *AuctionService) PlaceBid(auctionID, rawAmount string) (model.Auction, rules.BidResult, error) {
	var target *model.Auction
	stored, err := s.store.Get(auctionID)
	switch {
	case err == nil:
		target = &stored
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		// Leave target nil so the rules report it.
	default:
		return model.Auction{}, rules.BidResult{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	bidder := ""
	if u, ok := s.users.Current(); ok {
		bidder = u.Username
	}

	amount, _ := numeric.ParseAmount(rawAmount)

	res := rules.ValidateBid(amount, target, bidder, time.Now().UTC(), s.policy)
	if !res.Valid {
		return model.Auction{}, res, nil
	}

	if err := s.store.Update(*res.Auction); err != nil {
		return model.Auction{}, rules.BidResult{}, fmt.Errorf("service: failed to record bid on auction %s by %s: %w", auctionID, bidder, err)
	}

	utils.Info("Bid accepted", map[string]any{
		"auction_id": auctionID,
		"bidder":     bidder,
		"amount":     amount,
	})
	return *res.Auction, res, nil
}

// Auctions returns all auctions in listing order
func (s *AuctionService) Auctions() ([]model.Auction, error) {
	auctions, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// Auction returns a single auction by ID
func (s *AuctionService) Auction(id string) (model.Auction, error) {
	if id == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	auction, err := s.store.Get(id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}
	return auction, nil
}

// Countdown returns the derived remaining-time state for an auction.
func (s *AuctionService) Countdown(id string) (countdown.Status, error) {
	auction, err := s.Auction(id)
	if err != nil {
		return countdown.Status{}, err
	}
	return countdown.Remaining(auction.EndTime, time.Now().UTC()), nil
}

// Profile gathers a user's owned and bid-on auctions, split into current
// and completed by end time.
func (s *AuctionService) Profile(username string) (Profile, error) {
	if username == "" {
		return Profile{}, fmt.Errorf("service: %w - empty username", auctionerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	p := Profile{
		Username:          username,
		CurrentAuctions:   []model.Auction{},
		CompletedAuctions: []model.Auction{},
		CurrentBids:       []BidActivity{},
		CompletedBids:     []BidActivity{},
	}

	owned, err := s.store.ListByOwner(username)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to list auctions for %s: %w", username, err)
	}
	for _, a := range owned {
		if a.EndTime.After(now) {
			p.CurrentAuctions = append(p.CurrentAuctions, a)
		} else {
			p.CompletedAuctions = append(p.CompletedAuctions, a)
		}
	}

	bidOn, err := s.store.ListWithBidder(username)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to list bids for %s: %w", username, err)
	}
	for _, a := range bidOn {
		activity := BidActivity{Auction: a, HighestBid: highestBidBy(a, username)}
		if a.EndTime.After(now) {
			p.CurrentBids = append(p.CurrentBids, activity)
		} else {
			p.CompletedBids = append(p.CompletedBids, activity)
		}
	}
	return p, nil
}

// highestBidBy returns the user's largest bid amount on the auction.
func highestBidBy(a model.Auction, username string) int64 {
	var highest int64
	for _, b := range a.Bids {
		if rules.SameIdentity(b.Bidder, username) && b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest
}
