package server

import (
	"github.com/YoshiBoneDoc/kolauction/internal/auction"
	"github.com/YoshiBoneDoc/kolauction/internal/userstore"
	handler "github.com/YoshiBoneDoc/kolauction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, users *userstore.Store) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService, users)

	auth := router.Group("/auth")
	{
		auth.POST("/register", auctionHandler.RegisterHandler)
		auth.POST("/login", auctionHandler.LoginHandler)
		auth.POST("/logout", auctionHandler.LogoutHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/countdown", auctionHandler.CountdownHandler)
	}

	profiles := router.Group("/users")
	{
		profiles.GET("/:username/profile", auctionHandler.ProfileHandler)
	}

	return router
}
