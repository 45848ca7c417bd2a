package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
)

type SquadRepository struct {
	mu        sync.RWMutex
	items     map[string]squad.Squad
	byOwner   map[string]string
	transfers map[string][]squad.Transfer
}

func NewSquadRepository() *SquadRepository {
	return &SquadRepository{
		items:     make(map[string]squad.Squad),
		byOwner:   make(map[string]string),
		transfers: make(map[string][]squad.Transfer),
	}
}

func (r *SquadRepository) Create(_ context.Context, s squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[s.ID]; exists {
		return fmt.Errorf("squad %s already exists", s.ID)
	}
	ownerKey := squadOwnerKey(s.UserID, s.LeagueID)
	if _, exists := r.byOwner[ownerKey]; exists {
		return fmt.Errorf("user %s already has a squad in league %s", s.UserID, s.LeagueID)
	}

	r.items[s.ID] = cloneSquad(s)
	r.byOwner[ownerKey] = s.ID

	return nil
}

func (r *SquadRepository) GetByID(_ context.Context, squadID string) (squad.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[squadID]
	if !ok {
		return squad.Squad{}, false, nil
	}

	return cloneSquad(s), true, nil
}

func (r *SquadRepository) GetByUserAndLeague(_ context.Context, userID, leagueID string) (squad.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	squadID, ok := r.byOwner[squadOwnerKey(userID, leagueID)]
	if !ok {
		return squad.Squad{}, false, nil
	}

	return cloneSquad(r.items[squadID]), true, nil
}

func (r *SquadRepository) Save(_ context.Context, s squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saveLocked(s)
}

func (r *SquadRepository) SaveWithTransfer(_ context.Context, s squad.Squad, t squad.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// One critical section: the record only lands if the squad write
	// passed the version check.
	if err := r.saveLocked(s); err != nil {
		return err
	}
	r.appendTransferLocked(t)

	return nil
}

func (r *SquadRepository) saveLocked(s squad.Squad) error {
	stored, ok := r.items[s.ID]
	if !ok {
		return fmt.Errorf("squad %s does not exist", s.ID)
	}
	if stored.Version != s.Version {
		return fmt.Errorf("%w: squad=%s stored=%d given=%d",
			squad.ErrVersionConflict, s.ID, stored.Version, s.Version)
	}

	updated := cloneSquad(s)
	updated.Version++
	r.items[s.ID] = updated

	return nil
}

func (r *SquadRepository) AddTransfer(_ context.Context, t squad.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appendTransferLocked(t)

	return nil
}

func (r *SquadRepository) appendTransferLocked(t squad.Transfer) {
	// Newest first, matching the history ordering contract.
	r.transfers[t.SquadID] = append([]squad.Transfer{t}, r.transfers[t.SquadID]...)
}

func (r *SquadRepository) ListTransfers(_ context.Context, squadID string) ([]squad.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]squad.Transfer(nil), r.transfers[squadID]...), nil
}

func (r *SquadRepository) ListLatestTransfers(ctx context.Context, squadID string, limit int) ([]squad.Transfer, error) {
	items, err := r.ListTransfers(ctx, squadID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func squadOwnerKey(userID, leagueID string) string {
	return userID + "::" + leagueID
}

func cloneSquad(s squad.Squad) squad.Squad {
	copied := s
	copied.Starters = append([]squad.RosterPlayer(nil), s.Starters...)
	copied.Bench = append([]squad.RosterPlayer(nil), s.Bench...)
	return copied
}
