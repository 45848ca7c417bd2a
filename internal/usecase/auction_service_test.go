package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/infrastructure/repository/memory"
	"github.com/mydreamteam/fantasy-engine/internal/platform/cache"
	"github.com/mydreamteam/fantasy-engine/internal/platform/logging"
)

func newAuctionServiceForTest(t *testing.T, seeds []auction.Auction, history *cache.Store) *AuctionService {
	t.Helper()

	service := NewAuctionService(
		memory.NewAuctionRepository(seeds),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		&seqIDGenerator{prefix: "auc"},
		logging.NewNop(),
		history,
	)
	service.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	return service
}

func TestAuctionService_CreateAuction(t *testing.T) {
	service := newAuctionServiceForTest(t, nil, nil)

	created, err := service.CreateAuction(t.Context(), CreateAuctionInput{
		LeagueID:     memory.LeagueIDPremierLeague,
		PlayerID:     "eng-fwd-01",
		ReservePrice: 5_000_000,
		Duration:     48 * time.Hour,
	})
	if err != nil {
		t.Fatalf("create auction failed: %v", err)
	}

	if created.PlayerName != "Erling Haaland" {
		t.Fatalf("expected player resolved from catalog, got %q", created.PlayerName)
	}
	if created.Status != auction.StatusActive {
		t.Fatalf("expected status active, got %s", created.Status)
	}
	if created.MarketValue != 5_000_000 {
		t.Fatalf("expected reserve 5000000, got %d", created.MarketValue)
	}
	if got := created.EndDate.Sub(created.StartDate); got != 48*time.Hour {
		t.Fatalf("expected 48h auction window, got %v", got)
	}

	_, err = service.CreateAuction(t.Context(), CreateAuctionInput{
		LeagueID:     memory.LeagueIDPremierLeague,
		PlayerID:     "unknown-player",
		ReservePrice: 5_000_000,
		Duration:     48 * time.Hour,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = service.CreateAuction(t.Context(), CreateAuctionInput{
		LeagueID:     memory.LeagueIDPremierLeague,
		PlayerID:     "eng-fwd-01",
		ReservePrice: 0,
		Duration:     48 * time.Hour,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuctionService_PlaceBid(t *testing.T) {
	seedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newAuctionServiceForTest(t, memory.SeedAuctions(seedTime), nil)

	updated, err := service.PlaceBid(t.Context(), PlaceBidInput{
		AuctionID: "auc-eng-0001",
		TeamID:    "team-1",
		TeamName:  "Test FC",
		Amount:    5_500_000,
	})
	if err != nil {
		t.Fatalf("place bid failed: %v", err)
	}
	if updated.CurrentHighestBid() != 5_500_000 {
		t.Fatalf("expected highest bid 5500000, got %d", updated.CurrentHighestBid())
	}

	_, err = service.PlaceBid(t.Context(), PlaceBidInput{
		AuctionID: "auc-eng-0001",
		TeamID:    "team-2",
		TeamName:  "Rival FC",
		Amount:    5_500_000,
	})
	var tooLow *auction.BidTooLowError
	if !errors.As(err, &tooLow) {
		t.Fatalf("expected *BidTooLowError, got %v", err)
	}
	if tooLow.Minimum != 5_500_001 {
		t.Fatalf("expected minimum 5500001, got %d", tooLow.Minimum)
	}

	reloaded, err := service.GetAuction(t.Context(), "auc-eng-0001")
	if err != nil {
		t.Fatalf("get auction failed: %v", err)
	}
	if len(reloaded.Bids) != 1 {
		t.Fatalf("expected 1 persisted bid, got %d", len(reloaded.Bids))
	}
}

func TestAuctionService_PlaceBid_Expired(t *testing.T) {
	seedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newAuctionServiceForTest(t, memory.SeedAuctions(seedTime), nil)
	service.now = func() time.Time { return seedTime.Add(72 * time.Hour) }

	_, err := service.PlaceBid(t.Context(), PlaceBidInput{
		AuctionID: "auc-eng-0001",
		TeamID:    "team-1",
		Amount:    9_000_000,
	})
	if !errors.Is(err, auction.ErrAuctionEnded) {
		t.Fatalf("expected ErrAuctionEnded, got %v", err)
	}
}

func TestAuctionService_PlaceBid_Validation(t *testing.T) {
	service := newAuctionServiceForTest(t, nil, nil)

	tests := []struct {
		name      string
		input     PlaceBidInput
		targetErr error
	}{
		{
			name:      "missing auction id",
			input:     PlaceBidInput{TeamID: "team-1", Amount: 100},
			targetErr: ErrInvalidInput,
		},
		{
			name:      "missing team id",
			input:     PlaceBidInput{AuctionID: "auc-1", Amount: 100},
			targetErr: ErrInvalidInput,
		},
		{
			name:      "zero amount",
			input:     PlaceBidInput{AuctionID: "auc-1", TeamID: "team-1"},
			targetErr: ErrInvalidInput,
		},
		{
			name:      "unknown auction",
			input:     PlaceBidInput{AuctionID: "auc-missing", TeamID: "team-1", Amount: 100},
			targetErr: auction.ErrAuctionNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.PlaceBid(t.Context(), tc.input); !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestAuctionService_CloseAuction(t *testing.T) {
	seedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newAuctionServiceForTest(t, memory.SeedAuctions(seedTime), nil)

	if _, err := service.PlaceBid(t.Context(), PlaceBidInput{
		AuctionID: "auc-eng-0001",
		TeamID:    "team-1",
		Amount:    5_500_000,
	}); err != nil {
		t.Fatalf("place bid failed: %v", err)
	}
	if _, err := service.PlaceBid(t.Context(), PlaceBidInput{
		AuctionID: "auc-eng-0001",
		TeamID:    "team-2",
		Amount:    6_000_000,
	}); err != nil {
		t.Fatalf("place bid failed: %v", err)
	}

	closed, err := service.CloseAuction(t.Context(), "auc-eng-0001")
	if err != nil {
		t.Fatalf("close auction failed: %v", err)
	}
	if closed.Status != auction.StatusEnded {
		t.Fatalf("expected status ended, got %s", closed.Status)
	}
	if closed.WinningTeamID != "team-2" {
		t.Fatalf("expected winner team-2, got %q", closed.WinningTeamID)
	}

	if _, err := service.CloseAuction(t.Context(), "auc-eng-0001"); !errors.Is(err, auction.ErrAuctionAlreadyClosed) {
		t.Fatalf("expected ErrAuctionAlreadyClosed, got %v", err)
	}

	unsold, err := service.CloseAuction(t.Context(), "auc-eng-0002")
	if err != nil {
		t.Fatalf("close auction failed: %v", err)
	}
	if unsold.WinningTeamID != "" {
		t.Fatalf("expected no winner without bids, got %q", unsold.WinningTeamID)
	}
}

func TestAuctionService_CancelAuction(t *testing.T) {
	seedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newAuctionServiceForTest(t, memory.SeedAuctions(seedTime), nil)

	cancelled, err := service.CancelAuction(t.Context(), "auc-idn-0001")
	if err != nil {
		t.Fatalf("cancel auction failed: %v", err)
	}
	if cancelled.Status != auction.StatusCancelled {
		t.Fatalf("expected status cancelled, got %s", cancelled.Status)
	}
}

func TestAuctionService_GetActive(t *testing.T) {
	seedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newAuctionServiceForTest(t, memory.SeedAuctions(seedTime), nil)

	active, err := service.GetActive(t.Context(), memory.LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("get active failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active auctions, got %d", len(active))
	}

	// The 24h auction expires, the 48h auction survives.
	service.now = func() time.Time { return seedTime.Add(36 * time.Hour) }
	active, err = service.GetActive(t.Context(), memory.LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("get active failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active auction, got %d", len(active))
	}
	if active[0].ID != "auc-eng-0001" {
		t.Fatalf("expected auc-eng-0001 to survive, got %s", active[0].ID)
	}
}

func TestAuctionService_GetHistory(t *testing.T) {
	seedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newAuctionServiceForTest(t, memory.SeedAuctions(seedTime), cache.NewStore(time.Minute))

	history, err := service.GetHistory(t.Context(), memory.LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("get history failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d", len(history))
	}

	if _, err := service.CloseAuction(t.Context(), "auc-eng-0002"); err != nil {
		t.Fatalf("close auction failed: %v", err)
	}

	// Closing invalidates the cached projection.
	history, err = service.GetHistory(t.Context(), memory.LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("get history failed: %v", err)
	}
	if len(history) != 1 || history[0].ID != "auc-eng-0002" {
		t.Fatalf("expected closed auction in history, got %+v", history)
	}

	// Cancelled auctions stay out of the ended history.
	if _, err := service.CancelAuction(t.Context(), "auc-eng-0001"); err != nil {
		t.Fatalf("cancel auction failed: %v", err)
	}
	history, err = service.GetHistory(t.Context(), memory.LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("get history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected cancelled auction excluded, got %d entries", len(history))
	}
}

func TestAuctionService_GetTeamHistory(t *testing.T) {
	seedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newAuctionServiceForTest(t, memory.SeedAuctions(seedTime), nil)

	if _, err := service.PlaceBid(t.Context(), PlaceBidInput{
		AuctionID: "auc-eng-0001",
		TeamID:    "team-1",
		Amount:    5_500_000,
	}); err != nil {
		t.Fatalf("place bid failed: %v", err)
	}
	if _, err := service.CloseAuction(t.Context(), "auc-eng-0001"); err != nil {
		t.Fatalf("close auction failed: %v", err)
	}
	if _, err := service.CloseAuction(t.Context(), "auc-eng-0002"); err != nil {
		t.Fatalf("close auction failed: %v", err)
	}

	mine, err := service.GetTeamHistory(t.Context(), memory.LeagueIDPremierLeague, "team-1")
	if err != nil {
		t.Fatalf("get team history failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "auc-eng-0001" {
		t.Fatalf("expected only the auction team-1 bid in, got %+v", mine)
	}

	other, err := service.GetTeamHistory(t.Context(), memory.LeagueIDPremierLeague, "team-9")
	if err != nil {
		t.Fatalf("get team history failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty history for non-bidder, got %d", len(other))
	}
}
