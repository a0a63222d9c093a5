package repository

import (
	"fmt"
	"sync"

	"github.com/YoshiBoneDoc/kolauction/internal/auctionerrors"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/rules"
)

// AuctionStore defines auction storage for the marketplace. Callers hand
// it already-validated data; the store performs no validation itself.
type AuctionStore interface {
	Add(auction model.Auction) error
	Update(auction model.Auction) error
	Get(id string) (model.Auction, error)
	List() ([]model.Auction, error)
	ListByOwner(owner string) ([]model.Auction, error)
	ListWithBidder(bidder string) ([]model.Auction, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of
// AuctionStore. There is exactly one per process, constructed at startup
// and passed to consumers; each mutation is applied atomically under the
// lock.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction
	order    []string // insertion order for stable listings
}

// NewMemoryStore creates a new in-memory auction store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
	}
}

// Add stores a newly submitted auction
func (s *MemoryStore) Add(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if auction.ID == "" {
		return fmt.Errorf("add auction: %w - empty id", auctionerrors.ErrInvalidInput)
	}
	if _, ok := s.auctions[auction.ID]; ok {
		return fmt.Errorf("add auction %s: %w", auction.ID, auctionerrors.ErrDuplicateID)
	}

	s.auctions[auction.ID] = clone(auction)
	s.order = append(s.order, auction.ID)
	return nil
}

// Update replaces the stored auction with the same ID. The original owner
// is always preserved, whatever the incoming record says.
func (s *MemoryStore) Update(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.auctions[auction.ID]
	if !ok {
		return fmt.Errorf("update auction %s: %w", auction.ID, auctionerrors.ErrAuctionNotFound)
	}

	auction.Owner = existing.Owner
	s.auctions[auction.ID] = clone(auction)
	return nil
}

// Get returns the auction with the given ID
func (s *MemoryStore) Get(id string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return clone(auction), nil
}

// List returns all auctions in insertion order
func (s *MemoryStore) List() ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.auctions[id]))
	}
	return out, nil
}

// ListByOwner returns all auctions owned by the given identity
func (s *MemoryStore) ListByOwner(owner string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0)
	for _, id := range s.order {
		if a := s.auctions[id]; rules.SameIdentity(a.Owner, owner) {
			out = append(out, clone(a))
		}
	}
	return out, nil
}

// ListWithBidder returns all auctions the given identity has bid on
func (s *MemoryStore) ListWithBidder(bidder string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0)
	for _, id := range s.order {
		a := s.auctions[id]
		for _, b := range a.Bids {
			if rules.SameIdentity(b.Bidder, bidder) {
				out = append(out, clone(a))
				break
			}
		}
	}
	return out, nil
}

// clone deep-copies an auction so readers never share the stored bid slice.
func clone(a model.Auction) model.Auction {
	a.Bids = append(make([]model.Bid, 0, len(a.Bids)), a.Bids...)
	return a
}
