package auction

import (
	"context"
	"errors"
)

// ErrVersionConflict is returned by Save when the stored auction moved
// on since it was loaded.
var ErrVersionConflict = errors.New("auction version conflict")

// Repository describes auction persistence needs from use cases.
// Implementations must honor the version check on Save: two bidders
// racing on the same snapshot must not both commit.
type Repository interface {
	Create(ctx context.Context, a Auction) error
	GetByID(ctx context.Context, auctionID string) (Auction, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Auction, error)
	// ListActive returns every auction still in StatusActive,
	// including ones past their end date that nobody closed yet.
	ListActive(ctx context.Context) ([]Auction, error)
	// Save replaces the stored auction if its version still equals
	// a.Version, bumping the version on success.
	Save(ctx context.Context, a Auction) error
}
