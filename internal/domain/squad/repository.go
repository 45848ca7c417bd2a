package squad

import (
	"context"
	"errors"
)

// ErrVersionConflict is returned by Save when the stored squad moved
// on since it was loaded. Callers reload and retry (host policy).
var ErrVersionConflict = errors.New("squad version conflict")

// Repository describes squad persistence needs from use cases. The
// engine hands back whole values; implementations own serialization
// and must honor the version check on Save so concurrent
// read-modify-write sequences cannot both commit.
type Repository interface {
	Create(ctx context.Context, s Squad) error
	GetByID(ctx context.Context, squadID string) (Squad, bool, error)
	GetByUserAndLeague(ctx context.Context, userID, leagueID string) (Squad, bool, error)
	// Save replaces the stored squad if its version still equals
	// s.Version, bumping the version on success.
	Save(ctx context.Context, s Squad) error
	// SaveWithTransfer persists the squad (same version contract as
	// Save) and the transfer record as one atomic write. Neither is
	// visible if the other fails.
	SaveWithTransfer(ctx context.Context, s Squad, t Transfer) error

	AddTransfer(ctx context.Context, t Transfer) error
	// ListTransfers returns the squad's transfer history newest-first.
	ListTransfers(ctx context.Context, squadID string) ([]Transfer, error)
	// ListLatestTransfers truncates the newest-first history to limit entries.
	ListLatestTransfers(ctx context.Context, squadID string, limit int) ([]Transfer, error)
}
