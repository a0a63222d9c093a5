package helpers

import (
	"time"

	"github.com/YoshiBoneDoc/kolauction/internal/auction"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/numeric"
)

// Request DTOs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateAuctionRequest carries amounts as raw text so shorthand like "5k"
// works the same here as in a live input field.
type CreateAuctionRequest struct {
	Item          string `json:"item" binding:"required"`
	Quantity      string `json:"quantity" binding:"required"`
	MinBidMeat    string `json:"min_bid_meat" binding:"required"`
	MrACount      int    `json:"mr_a_count"`
	DurationHours int    `json:"duration_hours"`
}

type PlaceBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// Response DTOs
type UserResponse struct {
	Username string `json:"username"`
}

type BidResponse struct {
	Bidder    string `json:"bidder"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
}

type AuctionResponse struct {
	ID                string        `json:"id"`
	Item              string        `json:"item"`
	Quantity          int64         `json:"quantity"`
	MrACount          int           `json:"mr_a_count"`
	MinBidMeat        int64         `json:"min_bid_meat"`
	MinBidDisplay     string        `json:"min_bid_display"`
	CurrentBid        int64         `json:"current_bid"`
	CurrentBidDisplay string        `json:"current_bid_display"`
	CurrentBidSummary string        `json:"current_bid_summary"`
	Owner             string        `json:"owner"`
	EndTime           string        `json:"end_time"`
	Bids              []BidResponse `json:"bids"`
}

type BidActivityResponse struct {
	Auction    AuctionResponse `json:"auction"`
	HighestBid int64           `json:"highest_bid"`
}

type ProfileResponse struct {
	Username          string                `json:"username"`
	CurrentAuctions   []AuctionResponse     `json:"current_auctions"`
	CompletedAuctions []AuctionResponse     `json:"completed_auctions"`
	CurrentBids       []BidActivityResponse `json:"current_bids"`
	CompletedBids     []BidActivityResponse `json:"completed_bids"`
}

// NewAuctionResponse renders an auction with both exact and display
// amounts; the shorthand summary feeds compact listings.
func NewAuctionResponse(a model.Auction) AuctionResponse {
	resp := AuctionResponse{
		ID:            a.ID,
		Item:          a.Item,
		Quantity:      a.Quantity,
		MrACount:      a.MrACount,
		MinBidMeat:    a.MinBidMeat,
		MinBidDisplay: numeric.Format(a.MinBidMeat),
		CurrentBid:    a.CurrentBid,
		Owner:         a.Owner,
		EndTime:       a.EndTime.UTC().Format(time.RFC3339),
		Bids:          make([]BidResponse, 0, len(a.Bids)),
	}
	if a.CurrentBid > 0 {
		resp.CurrentBidDisplay = numeric.Format(a.CurrentBid) + " Meat"
		resp.CurrentBidSummary = numeric.ToShorthand(a.CurrentBid)
	} else {
		resp.CurrentBidDisplay = "No bids yet"
	}
	for _, b := range a.Bids {
		resp.Bids = append(resp.Bids, BidResponse{
			Bidder:    b.Bidder,
			Amount:    b.Amount,
			Timestamp: b.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return resp
}

// NewProfileResponse renders a profile summary.
func NewProfileResponse(p auction.Profile) ProfileResponse {
	return ProfileResponse{
		Username:          p.Username,
		CurrentAuctions:   auctionResponses(p.CurrentAuctions),
		CompletedAuctions: auctionResponses(p.CompletedAuctions),
		CurrentBids:       activityResponses(p.CurrentBids),
		CompletedBids:     activityResponses(p.CompletedBids),
	}
}

func auctionResponses(as []model.Auction) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(as))
	for _, a := range as {
		out = append(out, NewAuctionResponse(a))
	}
	return out
}

func activityResponses(acts []auction.BidActivity) []BidActivityResponse {
	out := make([]BidActivityResponse, 0, len(acts))
	for _, act := range acts {
		out = append(out, BidActivityResponse{
			Auction:    NewAuctionResponse(act.Auction),
			HighestBid: act.HighestBid,
		})
	}
	return out
}
