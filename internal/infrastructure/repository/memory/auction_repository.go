package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
)

type AuctionRepository struct {
	mu     sync.RWMutex
	items  map[string]auction.Auction
	orders []string
}

func NewAuctionRepository(auctions []auction.Auction) *AuctionRepository {
	items := make(map[string]auction.Auction, len(auctions))
	orders := make([]string, 0, len(auctions))

	for _, a := range auctions {
		items[a.ID] = cloneAuction(a)
		orders = append(orders, a.ID)
	}

	return &AuctionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *AuctionRepository) Create(_ context.Context, a auction.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[a.ID]; exists {
		return fmt.Errorf("auction %s already exists", a.ID)
	}

	r.items[a.ID] = cloneAuction(a)
	r.orders = append(r.orders, a.ID)

	return nil
}

func (r *AuctionRepository) GetByID(_ context.Context, auctionID string) (auction.Auction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[auctionID]
	if !ok {
		return auction.Auction{}, false, nil
	}

	return cloneAuction(a), true, nil
}

func (r *AuctionRepository) ListByLeague(_ context.Context, leagueID string) ([]auction.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]auction.Auction, 0, len(r.orders))
	for _, id := range r.orders {
		a := r.items[id]
		if a.LeagueID == leagueID {
			out = append(out, cloneAuction(a))
		}
	}

	return out, nil
}

func (r *AuctionRepository) ListActive(_ context.Context) ([]auction.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]auction.Auction, 0, len(r.orders))
	for _, id := range r.orders {
		a := r.items[id]
		if a.Status == auction.StatusActive {
			out = append(out, cloneAuction(a))
		}
	}

	return out, nil
}

func (r *AuctionRepository) Save(_ context.Context, a auction.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[a.ID]
	if !ok {
		return fmt.Errorf("auction %s does not exist", a.ID)
	}
	if stored.Version != a.Version {
		return fmt.Errorf("%w: auction=%s stored=%d given=%d",
			auction.ErrVersionConflict, a.ID, stored.Version, a.Version)
	}

	updated := cloneAuction(a)
	updated.Version++
	r.items[a.ID] = updated

	return nil
}

func cloneAuction(a auction.Auction) auction.Auction {
	copied := a
	copied.Bids = append([]auction.Bid(nil), a.Bids...)
	return copied
}
