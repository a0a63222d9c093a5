package perftests

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/YoshiBoneDoc/kolauction/internal/auction"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/numeric"
	"github.com/YoshiBoneDoc/kolauction/internal/repository"
	"github.com/YoshiBoneDoc/kolauction/internal/rules"
)

// rotatingUsers hands out a fresh session user per call so consecutive
// bids never trip the same-bidder rule.
type rotatingUsers struct {
	n int64
}

func (r *rotatingUsers) Current() (model.User, bool) {
	id := atomic.AddInt64(&r.n, 1)
	return model.User{Username: fmt.Sprintf("user_%d", id)}, true
}

func benchAuction(id string) model.Auction {
	return model.Auction{
		ID:         id,
		Item:       "Benchmark Item",
		Quantity:   1,
		MinBidMeat: 100,
		Owner:      "seller",
		EndTime:    time.Now().UTC().Add(24 * time.Hour),
		Bids:       []model.Bid{},
	}
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	store := repository.NewMemoryStore()
	svc := auction.NewAuctionService(store, &rotatingUsers{}, rules.DefaultPolicy())

	for i := 0; i < b.N; i++ {
		if err := store.Add(benchAuction(fmt.Sprintf("auction_%d", i))); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		amount := strconv.Itoa(100 + rand.Intn(100))
		if _, res, err := svc.PlaceBid(auctionID, amount); err != nil || !res.Valid {
			b.Fatalf("failed to place bid: err=%v result=%+v", err, res)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	store := repository.NewMemoryStore()
	svc := auction.NewAuctionService(store, &rotatingUsers{}, rules.DefaultPolicy())

	if err := store.Add(benchAuction("shared_auction_1")); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _, _ = svc.PlaceBid("shared_auction_1", strconv.FormatInt(nextBid, 10))
		}
	})
}

// Benchmark 3: Auction lookup - Single-Threaded (Low Contention)
func Benchmark_Auction_SingleThreaded(b *testing.B) {
	store := repository.NewMemoryStore()
	svc := auction.NewAuctionService(store, &rotatingUsers{}, rules.DefaultPolicy())

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		if err := store.Add(benchAuction(auctionID)); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
		for j := 0; j < 10; j++ {
			amount := strconv.Itoa(100 + (j+1)*10)
			_, _, _ = svc.PlaceBid(auctionID, amount)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.Auction(fmt.Sprintf("auction_%d", i)); err != nil {
			b.Fatalf("failed to get auction: %v", err)
		}
	}
}

// Benchmark 4: Auction lookup - Concurrent (High Contention)
func Benchmark_Auction_ConcurrentShared(b *testing.B) {
	store := repository.NewMemoryStore()
	svc := auction.NewAuctionService(store, &rotatingUsers{}, rules.DefaultPolicy())

	if err := store.Add(benchAuction("shared_auction_1")); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}
	for j := 0; j < 100; j++ {
		_, _, _ = svc.PlaceBid("shared_auction_1", strconv.Itoa(100+j+1))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Auction("shared_auction_1"); err != nil {
				b.Fatalf("failed to get auction: %v", err)
			}
		}
	})
}

// Benchmark 5: shorthand parsing and display formatting hot paths
func Benchmark_ParseAmount(b *testing.B) {
	inputs := []string{"10k", "1.6m", "20b", "123456789", "2.5b"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := numeric.ParseAmount(inputs[i%len(inputs)]); !ok {
			b.Fatal("unexpected parse failure")
		}
	}
}

func Benchmark_Format(b *testing.B) {
	amounts := []int64{10_000, 1_600_000, 20_000_000_000, 123_456_789}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = numeric.Format(amounts[i%len(amounts)])
	}
}
