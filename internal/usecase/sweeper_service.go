package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/platform/logging"
)

const (
	defaultSweepInterval = 30 * time.Second
	defaultSweepWorkers  = 4
)

// SweepResult summarizes one pass over the expired auctions.
type SweepResult struct {
	Scanned int `json:"scanned"`
	Closed  int `json:"closed"`
	Failed  int `json:"failed"`
}

// AuctionSweeper closes auctions whose end date passed without anyone
// calling CloseAuction. Reads already treat expired auctions as ended,
// so the sweeper only makes that state durable and records winners.
type AuctionSweeper struct {
	auctions *AuctionService
	repo     auction.Repository
	logger   *logging.Logger
	interval time.Duration
	workers  int
	now      func() time.Time
}

func NewAuctionSweeper(
	auctions *AuctionService,
	repo auction.Repository,
	logger *logging.Logger,
	interval time.Duration,
	workers int,
) *AuctionSweeper {
	if logger == nil {
		logger = logging.Default()
	}
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	if workers <= 0 {
		workers = defaultSweepWorkers
	}

	return &AuctionSweeper{
		auctions: auctions,
		repo:     repo,
		logger:   logger,
		interval: interval,
		workers:  workers,
		now:      time.Now,
	}
}

// Run sweeps on a fixed interval until ctx is cancelled.
func (s *AuctionSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "auction sweeper started", "interval", s.interval, "workers", s.workers)

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "auction sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			result, err := s.SweepOnce(ctx)
			if err != nil {
				s.logger.ErrorContext(ctx, "auction sweep failed", "error", err)
				continue
			}
			if result.Closed > 0 || result.Failed > 0 {
				s.logger.InfoContext(ctx, "auction sweep finished",
					"scanned", result.Scanned,
					"closed", result.Closed,
					"failed", result.Failed,
				)
			}
		}
	}
}

// SweepOnce closes every active auction whose end date passed.
func (s *AuctionSweeper) SweepOnce(ctx context.Context) (SweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionSweeper.SweepOnce")
	defer span.End()

	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list active auctions: %w", err)
	}

	now := s.now()
	expired := make([]auction.Auction, 0, len(items))
	for _, a := range items {
		if !a.IsActive(now) {
			expired = append(expired, a)
		}
	}

	result := SweepResult{Scanned: len(items)}
	if len(expired) == 0 {
		return result, nil
	}

	workerCount := s.workers
	if workerCount > len(expired) {
		workerCount = len(expired)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SweepResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var closedCount, failedCount atomic.Int64
	var workers sync.WaitGroup
	for _, item := range expired {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if _, err := s.auctions.CloseAuction(ctx, item.ID); err != nil {
				// Someone closed or cancelled it between the list
				// and the close. Nothing left to do.
				if errors.Is(err, auction.ErrAuctionAlreadyClosed) || errors.Is(err, auction.ErrAuctionNotFound) {
					return
				}
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "close expired auction failed",
					"auction_id", item.ID,
					"error", err,
				)
				return
			}
			closedCount.Add(1)
		}); err != nil {
			workers.Done()
			return SweepResult{}, fmt.Errorf("submit sweep task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.Closed = int(closedCount.Load())
	result.Failed = int(failedCount.Load())

	return result, nil
}
