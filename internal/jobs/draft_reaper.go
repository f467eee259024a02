package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/mybae/storefront/storage"
)

const (
	// DraftTTL is how long a checkout draft stays usable after it is
	// created (30 minutes).
	DraftTTL = 30 * time.Minute

	// ReapInterval is how often expired drafts are swept (5 minutes).
	ReapInterval = 5 * time.Minute
)

// DraftReaper deletes checkout drafts past their expiry so abandoned
// checkouts don't accumulate.
type DraftReaper struct {
	storage *storage.Storage
	ticker  *time.Ticker
	done    chan bool
}

func NewDraftReaper(storage *storage.Storage) *DraftReaper {
	return &DraftReaper{
		storage: storage,
		done:    make(chan bool),
	}
}

// Start begins the background sweep.
func (r *DraftReaper) Start(ctx context.Context) {
	slog.Info("starting checkout draft reaper", "interval", ReapInterval, "ttl", DraftTTL)

	// Run immediately on start
	r.reap(ctx)

	r.ticker = time.NewTicker(ReapInterval)

	go func() {
		for {
			select {
			case <-r.ticker.C:
				r.reap(ctx)
			case <-r.done:
				slog.Info("checkout draft reaper stopped")
				return
			}
		}
	}()
}

// Stop stops the background sweep.
func (r *DraftReaper) Stop() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
	close(r.done)
}

func (r *DraftReaper) reap(ctx context.Context) {
	n, err := r.storage.Queries.DeleteExpiredDrafts(ctx, time.Now())
	if err != nil {
		slog.Error("failed to delete expired checkout drafts", "error", err)
		return
	}
	if n > 0 {
		slog.Info("deleted expired checkout drafts", "count", n)
	}
}
