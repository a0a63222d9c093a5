package main

import (
	"fmt"
	"os"
	"time"

	"github.com/YoshiBoneDoc/kolauction/internal/auction"
	"github.com/YoshiBoneDoc/kolauction/internal/config"
	"github.com/YoshiBoneDoc/kolauction/internal/kvstore"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/repository"
	"github.com/YoshiBoneDoc/kolauction/internal/server"
	"github.com/YoshiBoneDoc/kolauction/internal/userstore"
	"github.com/YoshiBoneDoc/kolauction/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.Logging.Level)

	kv, err := kvstore.NewFile(cfg.Storage.DataFile)
	if err != nil {
		utils.Fatal("Failed to open persistent store", map[string]any{
			"path":  cfg.Storage.DataFile,
			"error": err.Error(),
		})
	}
	users := userstore.New(kv)

	store := repository.NewMemoryStore()
	prepopulateAuctions(store)

	auctionService := auction.NewAuctionService(store, users, cfg.Policy)

	router := server.SetupRouter(auctionService, users)

	addr := ":" + cfg.Server.Port
	fmt.Printf("Starting auction marketplace on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAuctions adds sample listings to the in-memory store
func prepopulateAuctions(store *repository.MemoryStore) {
	now := time.Now().UTC()
	auctions := []model.Auction{
		{
			ID:         utils.GenerateID(),
			Item:       "Mr. Accessory",
			Quantity:   1,
			MinBidMeat: 9_000_000,
			Owner:      "ting",
			EndTime:    now.Add(24 * time.Hour),
			Bids:       []model.Bid{},
		},
		{
			ID:         utils.GenerateID(),
			Item:       "Disco Ball",
			Quantity:   11,
			MinBidMeat: 5_000,
			Owner:      "ting",
			EndTime:    now.Add(72 * time.Hour),
			Bids:       []model.Bid{},
		},
	}

	for _, a := range auctions {
		if err := store.Add(a); err != nil {
			utils.Warn("Failed to seed auction", map[string]any{"item": a.Item, "error": err.Error()})
		}
	}
}
