package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
	"github.com/mydreamteam/fantasy-engine/internal/platform/logging"
)

type playerRepositoryMock struct {
	mock.Mock
}

func newPlayerRepositoryMock(t *testing.T) *playerRepositoryMock {
	m := &playerRepositoryMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *playerRepositoryMock) GetByID(ctx context.Context, leagueID, playerID string) (player.Player, bool, error) {
	args := m.Called(ctx, leagueID, playerID)
	return args.Get(0).(player.Player), args.Bool(1), args.Error(2)
}

func (m *playerRepositoryMock) GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	args := m.Called(ctx, leagueID, playerIDs)
	if v := args.Get(0); v != nil {
		return v.([]player.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *playerRepositoryMock) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	args := m.Called(ctx, leagueID)
	if v := args.Get(0); v != nil {
		return v.([]player.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestPlayerService_GetPlayer(t *testing.T) {
	t.Parallel()

	repo := newPlayerRepositoryMock(t)
	service := NewPlayerService(repo, logging.NewNop())

	want := player.Player{
		ID:          "eng-fwd-01",
		LeagueID:    "eng-premier-league-2025",
		Name:        "Erling Haaland",
		Position:    player.PositionForward,
		MarketValue: 14.0,
	}
	repo.
		On("GetByID", mock.Anything, "eng-premier-league-2025", "eng-fwd-01").
		Return(want, true, nil).
		Once()

	got, err := service.GetPlayer(t.Context(), "eng-premier-league-2025", "eng-fwd-01")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Name != want.Name || got.Position != want.Position {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestPlayerService_GetPlayer_NotFound(t *testing.T) {
	t.Parallel()

	repo := newPlayerRepositoryMock(t)
	service := NewPlayerService(repo, logging.NewNop())

	repo.
		On("GetByID", mock.Anything, "eng-premier-league-2025", "missing").
		Return(player.Player{}, false, nil).
		Once()

	if _, err := service.GetPlayer(t.Context(), "eng-premier-league-2025", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_GetPlayer_BlankInput(t *testing.T) {
	t.Parallel()

	repo := newPlayerRepositoryMock(t)
	service := NewPlayerService(repo, logging.NewNop())

	if _, err := service.GetPlayer(t.Context(), " ", "eng-fwd-01"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_ListPlayers(t *testing.T) {
	t.Parallel()

	repo := newPlayerRepositoryMock(t)
	service := NewPlayerService(repo, logging.NewNop())

	repo.
		On("ListByLeague", mock.Anything, "eng-premier-league-2025").
		Return([]player.Player{
			{ID: "eng-gk-01", Name: "Alisson Becker", Position: player.PositionGoalkeeper},
			{ID: "eng-fwd-01", Name: "Erling Haaland", Position: player.PositionForward},
		}, nil).
		Once()

	got, err := service.ListPlayers(t.Context(), "eng-premier-league-2025")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(got) != 2 || got[0].ID != "eng-gk-01" {
		t.Fatalf("unexpected players: %+v", got)
	}
}

func TestPlayerService_ListPlayers_RepoError(t *testing.T) {
	t.Parallel()

	repo := newPlayerRepositoryMock(t)
	service := NewPlayerService(repo, logging.NewNop())

	repo.
		On("ListByLeague", mock.Anything, "eng-premier-league-2025").
		Return(nil, fmt.Errorf("catalog unavailable")).
		Once()

	if _, err := service.ListPlayers(t.Context(), "eng-premier-league-2025"); err == nil {
		t.Fatal("expected repository error to surface")
	}
}
