// Package countdown derives the remaining-time display for an auction.
// It is read-only over auction state: nothing here ever mutates an auction
// or a bid.
package countdown

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Red is flagged when less than this much time remains.
const redThreshold = 3 * time.Hour

// Status is a derived, display-oriented view of an auction's clock.
type Status struct {
	Text    string `json:"text"`
	Red     bool   `json:"red"`
	Expired bool   `json:"expired"`
}

// Remaining computes the countdown for endTime as observed at now.
func Remaining(endTime, now time.Time) Status {
	if endTime.IsZero() {
		return Status{Text: "Invalid Auction Data"}
	}

	left := endTime.Sub(now)
	if left <= 0 {
		return Status{Text: "Auction Expired", Expired: true}
	}

	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60
	seconds := int(left.Seconds()) % 60

	s := Status{Red: left <= redThreshold}
	if days > 0 {
		s.Text = fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	} else {
		s.Text = fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return s
}

// Watcher recomputes a countdown once per second and hands it to a
// callback. It must be stopped when the owning view goes away so it never
// acts on stale references.
type Watcher struct {
	interval time.Duration
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWatcher returns a watcher ticking every second.
func NewWatcher() *Watcher {
	return &Watcher{interval: time.Second}
}

// Start begins ticking until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, endTime time.Time, fn func(Status)) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				fn(Remaining(endTime, now))
			}
		}
	}()
}

// Stop cancels the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
