package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
)

func testSquad(id string) squad.Squad {
	return squad.Squad{
		ID:       id,
		LeagueID: LeagueIDPremierLeague,
		UserID:   "user-" + id,
		TeamName: "Team " + id,
		Budget:   squad.NewBudget(100.0),
	}
}

func TestSquadRepositoryCreateAndGet(t *testing.T) {
	repo := NewSquadRepository()
	ctx := t.Context()

	s := testSquad("sq-1")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	loaded, ok, err := repo.GetByID(ctx, "sq-1")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%t err=%v", ok, err)
	}
	if loaded.ID != "sq-1" {
		t.Fatalf("expected sq-1, got %s", loaded.ID)
	}

	byOwner, ok, err := repo.GetByUserAndLeague(ctx, s.UserID, s.LeagueID)
	if err != nil || !ok {
		t.Fatalf("get by owner failed: ok=%t err=%v", ok, err)
	}
	if byOwner.ID != "sq-1" {
		t.Fatalf("expected sq-1, got %s", byOwner.ID)
	}

	if _, ok, _ := repo.GetByID(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown squad")
	}

	if err := repo.Create(ctx, s); err == nil {
		t.Fatal("expected duplicate id rejected")
	}

	dup := testSquad("sq-2")
	dup.UserID = s.UserID
	dup.LeagueID = s.LeagueID
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatal("expected one squad per user per league")
	}
}

func TestSquadRepositorySaveVersionCheck(t *testing.T) {
	repo := NewSquadRepository()
	ctx := t.Context()

	if err := repo.Create(ctx, testSquad("sq-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, _, err := repo.GetByID(ctx, "sq-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	second := first

	first.TeamName = "First Writer"
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second.TeamName = "Second Writer"
	if err := repo.Save(ctx, second); !errors.Is(err, squad.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	current, _, err := repo.GetByID(ctx, "sq-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if current.TeamName != "First Writer" {
		t.Fatalf("expected first writer to win, got %q", current.TeamName)
	}
	if current.Version != first.Version+1 {
		t.Fatalf("expected version bump to %d, got %d", first.Version+1, current.Version)
	}

	if err := repo.Save(ctx, testSquad("missing")); err == nil {
		t.Fatal("expected save of unknown squad to fail")
	}
}

func TestSquadRepositorySaveWithTransfer(t *testing.T) {
	repo := NewSquadRepository()
	ctx := t.Context()

	if err := repo.Create(ctx, testSquad("sq-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	current, _, err := repo.GetByID(ctx, "sq-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	stale := current

	current.TeamName = "Renamed FC"
	if err := repo.SaveWithTransfer(ctx, current, squad.Transfer{ID: "tr-1", SquadID: "sq-1"}); err != nil {
		t.Fatalf("save with transfer failed: %v", err)
	}

	history, err := repo.ListTransfers(ctx, "sq-1")
	if err != nil {
		t.Fatalf("list transfers failed: %v", err)
	}
	if len(history) != 1 || history[0].ID != "tr-1" {
		t.Fatalf("expected recorded transfer, got %+v", history)
	}

	// Stale snapshot fails the version check and must not record.
	if err := repo.SaveWithTransfer(ctx, stale, squad.Transfer{ID: "tr-2", SquadID: "sq-1"}); !errors.Is(err, squad.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	history, err = repo.ListTransfers(ctx, "sq-1")
	if err != nil {
		t.Fatalf("list transfers failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected rejected save to record nothing, got %+v", history)
	}

	reloaded, _, err := repo.GetByID(ctx, "sq-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if reloaded.TeamName != "Renamed FC" {
		t.Fatalf("expected committed squad kept, got %q", reloaded.TeamName)
	}
}

func TestSquadRepositoryReturnsClones(t *testing.T) {
	repo := NewSquadRepository()
	ctx := t.Context()

	s := testSquad("sq-1")
	s.Starters = []squad.RosterPlayer{{ID: "p-1", MarketValue: 5.0}}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	loaded, _, err := repo.GetByID(ctx, "sq-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	loaded.Starters[0].ID = "mutated"

	reloaded, _, err := repo.GetByID(ctx, "sq-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if reloaded.Starters[0].ID != "p-1" {
		t.Fatal("expected stored squad isolated from caller mutation")
	}
}

func TestSquadRepositoryTransfers(t *testing.T) {
	repo := NewSquadRepository()
	ctx := t.Context()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := repo.AddTransfer(ctx, squad.Transfer{
			ID:      []string{"tr-1", "tr-2", "tr-3"}[i],
			SquadID: "sq-1",
			Date:    base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("add transfer failed: %v", err)
		}
	}

	all, err := repo.ListTransfers(ctx, "sq-1")
	if err != nil {
		t.Fatalf("list transfers failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 transfers, got %d", len(all))
	}
	if all[0].ID != "tr-3" || all[2].ID != "tr-1" {
		t.Fatalf("expected newest-first ordering, got %+v", all)
	}

	latest, err := repo.ListLatestTransfers(ctx, "sq-1", 2)
	if err != nil {
		t.Fatalf("list latest failed: %v", err)
	}
	if len(latest) != 2 || latest[0].ID != "tr-3" {
		t.Fatalf("unexpected latest transfers: %+v", latest)
	}

	empty, err := repo.ListTransfers(ctx, "sq-other")
	if err != nil {
		t.Fatalf("list transfers failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no transfers, got %d", len(empty))
	}
}
