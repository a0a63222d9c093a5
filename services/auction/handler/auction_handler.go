package handler

import (
	"fmt"
	"net/http"

	"github.com/YoshiBoneDoc/kolauction/internal/auction"
	"github.com/YoshiBoneDoc/kolauction/internal/countdown"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/rules"
	"github.com/YoshiBoneDoc/kolauction/services/auction/helpers"
	"github.com/YoshiBoneDoc/kolauction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(item, rawQuantity, rawMinBid string, mrACount, durationHours int) (model.Auction, rules.Result, error)
	PlaceBid(auctionID, rawAmount string) (model.Auction, rules.BidResult, error)
	Auctions() ([]model.Auction, error)
	Auction(id string) (model.Auction, error)
	Countdown(id string) (countdown.Status, error)
	Profile(username string) (auction.Profile, error)
}

type UserStoreInterface interface {
	Register(username, password string) error
	Login(username, password string) (model.User, error)
	Logout() error
	Current() (model.User, bool)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	users   UserStoreInterface
}

func NewAuctionHandler(service AuctionServiceInterface, users UserStoreInterface) *AuctionHandler {
	return &AuctionHandler{service: service, users: users}
}

// RegisterHandler handles POST /auth/register
func (h *AuctionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	if err := h.users.Register(req.Username, req.Password); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.UserResponse{Username: req.Username}, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{"username": req.Username})
}

// LoginHandler handles POST /auth/login
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.users.Login(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("LoginHandler: login failed", map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UserResponse{Username: user.Username}, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{"username": user.Username})
}

// LogoutHandler handles POST /auth/logout
func (h *AuctionHandler) LogoutHandler(c *gin.Context) {
	if err := h.users.Logout(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Error("LogoutHandler: logout failed", map[string]any{"error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, res, err := h.service.CreateAuction(req.Item, req.Quantity, req.MinBidMeat, req.MrACount, req.DurationHours)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"item":  req.Item,
			"error": err.Error(),
		})
		return
	}
	if !res.Valid {
		helpers.HandleRuleViolation(c, "CreateAuctionHandler", res.Err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(created), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.ID,
		"item":       created.Item,
		"owner":      created.Owner,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.Auctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	out := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, helpers.NewAuctionResponse(a))
	}

	utils.JSONResponse(c, http.StatusOK, out, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(out)})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	id := c.Param("auction_id")
	a, err := h.service.Auction(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(a), "auction retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	id := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	updated, res, err := h.service.PlaceBid(id, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
		return
	}
	if !res.Valid {
		helpers.HandleRuleViolation(c, "PlaceBidHandler", res.Err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(updated), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"auction_id":  id,
		"current_bid": updated.CurrentBid,
	})
}

// CountdownHandler handles GET /auctions/:auction_id/countdown
func (h *AuctionHandler) CountdownHandler(c *gin.Context) {
	id := c.Param("auction_id")
	status, err := h.service.Countdown(id)
	if err != nil {
		code, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, code, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CountdownHandler: error computing countdown", map[string]any{"auction_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, status, "countdown computed successfully")
}

// ProfileHandler handles GET /users/:username/profile
func (h *AuctionHandler) ProfileHandler(c *gin.Context) {
	username := c.Param("username")
	profile, err := h.service.Profile(username)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ProfileHandler: error retrieving profile", map[string]any{"username": username, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProfileResponse(profile), "profile retrieved successfully")
}
