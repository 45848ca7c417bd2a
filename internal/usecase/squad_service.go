package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/formation"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
	idgen "github.com/mydreamteam/fantasy-engine/internal/platform/id"
	"github.com/mydreamteam/fantasy-engine/internal/platform/locking"
	"github.com/mydreamteam/fantasy-engine/internal/platform/logging"
)

// CreateSquadInput is the incoming payload for creating a squad.
type CreateSquadInput struct {
	UserID     string
	LeagueID   string
	LeagueName string
	TeamName   string
}

// SquadService orchestrates the roster and budget ledger of a squad.
// Mutating operations are serialized per squad id: each one is a
// read-check-then-write sequence over a loaded snapshot, so at most
// one may run per squad at a time.
type SquadService struct {
	squadRepo squad.Repository
	rules     squad.Rules
	idGen     idgen.Generator
	logger    *logging.Logger
	locks     *locking.KeyedMutex
	now       func() time.Time
	gameweek  func() int
}

func NewSquadService(
	squadRepo squad.Repository,
	rules squad.Rules,
	idGen idgen.Generator,
	logger *logging.Logger,
) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SquadService{
		squadRepo: squadRepo,
		rules:     rules,
		idGen:     idGen,
		logger:    logger,
		locks:     locking.NewKeyedMutex(),
		now:       time.Now,
		// The scoring collaborator owns gameweek numbering; until it
		// is wired in, transfers are recorded against gameweek 1.
		gameweek: func() int { return 1 },
	}
}

// SetGameweekSource lets the hosting application supply the current
// gameweek for transfer records.
func (s *SquadService) SetGameweekSource(fn func() int) {
	if fn != nil {
		s.gameweek = fn
	}
}

func (s *SquadService) CreateSquad(ctx context.Context, input CreateSquadInput) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.CreateSquad")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.LeagueName = strings.TrimSpace(input.LeagueName)
	input.TeamName = strings.TrimSpace(input.TeamName)

	if input.UserID == "" {
		return squad.Squad{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.LeagueID == "" {
		return squad.Squad{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.TeamName == "" {
		return squad.Squad{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if len([]rune(input.TeamName)) > s.rules.MaxTeamNameLength {
		return squad.Squad{}, fmt.Errorf("%w: team name cannot exceed %d characters", ErrInvalidInput, s.rules.MaxTeamNameLength)
	}

	squadID, err := s.idGen.NewID()
	if err != nil {
		return squad.Squad{}, fmt.Errorf("generate squad id: %w", err)
	}

	now := s.now().UTC()
	created := squad.Squad{
		ID:         squadID,
		LeagueID:   input.LeagueID,
		LeagueName: input.LeagueName,
		UserID:     input.UserID,
		TeamName:   input.TeamName,
		Formation:  s.rules.DefaultFormation,
		Budget:     squad.NewBudget(s.rules.BudgetTotal),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := created.ValidateBasic(); err != nil {
		return squad.Squad{}, fmt.Errorf("validate squad: %w", err)
	}

	if err := s.squadRepo.Create(ctx, created); err != nil {
		return squad.Squad{}, fmt.Errorf("create squad: %w", err)
	}

	s.logger.InfoContext(ctx, "squad created",
		"user_id", input.UserID,
		"league_id", input.LeagueID,
		"squad_id", created.ID,
	)

	return created, nil
}

func (s *SquadService) GetSquad(ctx context.Context, squadID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetSquad")
	defer span.End()

	return s.loadSquad(ctx, squadID)
}

func (s *SquadService) GetUserSquad(ctx context.Context, userID, leagueID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetUserSquad")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" || leagueID == "" {
		return squad.Squad{}, fmt.Errorf("%w: user_id and league_id are required", ErrInvalidInput)
	}

	item, exists, err := s.squadRepo.GetByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get user squad: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad not found", ErrNotFound)
	}

	return item, nil
}

func (s *SquadService) UpdateTeamName(ctx context.Context, squadID, teamName string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.UpdateTeamName")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return squad.Squad{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if len([]rune(teamName)) > s.rules.MaxTeamNameLength {
		return squad.Squad{}, fmt.Errorf("%w: team name cannot exceed %d characters", ErrInvalidInput, s.rules.MaxTeamNameLength)
	}

	unlock := s.locks.Lock(squadID)
	defer unlock()

	item, err := s.loadSquad(ctx, squadID)
	if err != nil {
		return squad.Squad{}, err
	}

	item.TeamName = teamName
	return s.save(ctx, item)
}

// AddPlayer debits the ledger and inserts the player, starters first,
// bench once the XI is full. Nothing is committed on failure.
func (s *SquadService) AddPlayer(ctx context.Context, squadID string, p squad.RosterPlayer) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.AddPlayer")
	defer span.End()

	if strings.TrimSpace(p.ID) == "" {
		return squad.Squad{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	unlock := s.locks.Lock(squadID)
	defer unlock()

	item, err := s.loadSquad(ctx, squadID)
	if err != nil {
		return squad.Squad{}, err
	}

	if item.Contains(p.ID) {
		return squad.Squad{}, fmt.Errorf("%w: %s", squad.ErrDuplicatePlayer, p.ID)
	}
	if !item.Budget.CanAfford(p.MarketValue) {
		return squad.Squad{}, fmt.Errorf("%w: cost=%.1f remaining=%.1f", squad.ErrInsufficientBudget, p.MarketValue, item.Budget.Remaining)
	}

	p.AddedAt = s.now().UTC()
	if err := item.AddPlayer(p, s.rules); err != nil {
		return squad.Squad{}, err
	}
	if err := item.Budget.Apply(p.MarketValue); err != nil {
		return squad.Squad{}, err
	}

	updated, err := s.save(ctx, item)
	if err != nil {
		return squad.Squad{}, err
	}

	s.logger.InfoContext(ctx, "player added to squad",
		"squad_id", squadID,
		"player_id", p.ID,
		"market_value", p.MarketValue,
		"remaining_budget", updated.Budget.Remaining,
	)

	return updated, nil
}

// RemovePlayer credits the ledger by the removed player's market value.
func (s *SquadService) RemovePlayer(ctx context.Context, squadID, playerID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.RemovePlayer")
	defer span.End()

	if strings.TrimSpace(playerID) == "" {
		return squad.Squad{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	unlock := s.locks.Lock(squadID)
	defer unlock()

	item, err := s.loadSquad(ctx, squadID)
	if err != nil {
		return squad.Squad{}, err
	}

	removed, err := item.RemovePlayer(playerID)
	if err != nil {
		return squad.Squad{}, err
	}
	if err := item.Budget.Apply(-removed.MarketValue); err != nil {
		return squad.Squad{}, err
	}

	updated, err := s.save(ctx, item)
	if err != nil {
		return squad.Squad{}, err
	}

	s.logger.InfoContext(ctx, "player removed from squad",
		"squad_id", squadID,
		"player_id", playerID,
		"remaining_budget", updated.Budget.Remaining,
	)

	return updated, nil
}

// TransferPlayer swaps playerOut for playerIn in place, debits the
// ledger by the fee (which may be negative), and appends one immutable
// transfer record. PointsChange is recorded as 0; the scoring
// collaborator computes the points impact later.
func (s *SquadService) TransferPlayer(ctx context.Context, squadID string, playerOut, playerIn squad.RosterPlayer) (squad.Squad, squad.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.TransferPlayer")
	defer span.End()

	if strings.TrimSpace(playerOut.ID) == "" || strings.TrimSpace(playerIn.ID) == "" {
		return squad.Squad{}, squad.Transfer{}, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}

	unlock := s.locks.Lock(squadID)
	defer unlock()

	item, err := s.loadSquad(ctx, squadID)
	if err != nil {
		return squad.Squad{}, squad.Transfer{}, err
	}

	if !item.Contains(playerOut.ID) {
		return squad.Squad{}, squad.Transfer{}, fmt.Errorf("%w: %s", squad.ErrPlayerNotFound, playerOut.ID)
	}
	if item.Contains(playerIn.ID) {
		return squad.Squad{}, squad.Transfer{}, fmt.Errorf("%w: %s", squad.ErrDuplicatePlayer, playerIn.ID)
	}

	fee := playerIn.MarketValue - playerOut.MarketValue
	if !item.Budget.CanAfford(fee) {
		return squad.Squad{}, squad.Transfer{}, fmt.Errorf("%w: fee=%.1f remaining=%.1f", squad.ErrInsufficientBudget, fee, item.Budget.Remaining)
	}

	playerIn.AddedAt = s.now().UTC()
	if err := item.ReplacePlayer(playerOut.ID, playerIn); err != nil {
		return squad.Squad{}, squad.Transfer{}, err
	}
	if err := item.Budget.Apply(fee); err != nil {
		return squad.Squad{}, squad.Transfer{}, err
	}

	transferID, err := s.idGen.NewID()
	if err != nil {
		return squad.Squad{}, squad.Transfer{}, fmt.Errorf("generate transfer id: %w", err)
	}

	record := squad.Transfer{
		ID:            transferID,
		SquadID:       squadID,
		PlayerOutID:   playerOut.ID,
		PlayerOutName: playerOut.Name,
		PlayerInID:    playerIn.ID,
		PlayerInName:  playerIn.Name,
		Fee:           fee,
		Date:          s.now().UTC(),
		Gameweek:      s.gameweek(),
		PointsChange:  0,
	}

	// Squad snapshot and transfer record commit together, so a failed
	// save cannot leave an orphaned record behind.
	item.UpdatedAt = s.now().UTC()
	if err := s.squadRepo.SaveWithTransfer(ctx, item, record); err != nil {
		return squad.Squad{}, squad.Transfer{}, fmt.Errorf("save squad with transfer: %w", err)
	}
	item.Version++
	updated := item

	s.logger.InfoContext(ctx, "player transferred",
		"squad_id", squadID,
		"player_out", playerOut.ID,
		"player_in", playerIn.ID,
		"fee", fee,
	)

	return updated, record, nil
}

func (s *SquadService) SetCaptain(ctx context.Context, squadID, playerID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.SetCaptain")
	defer span.End()

	return s.setCaptain(ctx, squadID, playerID, false)
}

func (s *SquadService) SetViceCaptain(ctx context.Context, squadID, playerID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.SetViceCaptain")
	defer span.End()

	return s.setCaptain(ctx, squadID, playerID, true)
}

func (s *SquadService) setCaptain(ctx context.Context, squadID, playerID string, asVice bool) (squad.Squad, error) {
	if strings.TrimSpace(playerID) == "" {
		return squad.Squad{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	unlock := s.locks.Lock(squadID)
	defer unlock()

	item, err := s.loadSquad(ctx, squadID)
	if err != nil {
		return squad.Squad{}, err
	}

	if err := item.SetCaptain(playerID, asVice); err != nil {
		return squad.Squad{}, err
	}

	return s.save(ctx, item)
}

// GetSquadStats computes the derived statistics projection; calling it
// twice without a mutation in between yields identical results.
func (s *SquadService) GetSquadStats(ctx context.Context, squadID string) (squad.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetSquadStats")
	defer span.End()

	item, err := s.loadSquad(ctx, squadID)
	if err != nil {
		return squad.Stats{}, err
	}

	transfers, err := s.squadRepo.ListTransfers(ctx, squadID)
	if err != nil {
		return squad.Stats{}, fmt.Errorf("list transfers: %w", err)
	}

	return squad.ComputeStats(item, len(transfers)), nil
}

// GetTransferHistory returns the squad's transfer records newest-first.
func (s *SquadService) GetTransferHistory(ctx context.Context, squadID string) ([]squad.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetTransferHistory")
	defer span.End()

	if _, err := s.loadSquad(ctx, squadID); err != nil {
		return nil, err
	}

	transfers, err := s.squadRepo.ListTransfers(ctx, squadID)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	return transfers, nil
}

// GetLatestTransfers truncates the newest-first history to limit entries.
func (s *SquadService) GetLatestTransfers(ctx context.Context, squadID string, limit int) ([]squad.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetLatestTransfers")
	defer span.End()

	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be greater than zero", ErrInvalidInput)
	}

	if _, err := s.loadSquad(ctx, squadID); err != nil {
		return nil, err
	}

	transfers, err := s.squadRepo.ListLatestTransfers(ctx, squadID, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest transfers: %w", err)
	}

	return transfers, nil
}

// ValidateFormation runs the strict starting-XI check.
func (s *SquadService) ValidateFormation(ctx context.Context, starters []squad.RosterPlayer) error {
	_, span := startUsecaseSpan(ctx, "usecase.SquadService.ValidateFormation")
	defer span.End()

	return formation.ValidateStartingXI(starters)
}

func (s *SquadService) loadSquad(ctx context.Context, squadID string) (squad.Squad, error) {
	squadID = strings.TrimSpace(squadID)
	if squadID == "" {
		return squad.Squad{}, fmt.Errorf("%w: squad id is required", ErrInvalidInput)
	}

	item, exists, err := s.squadRepo.GetByID(ctx, squadID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad=%s", ErrNotFound, squadID)
	}

	return item, nil
}

func (s *SquadService) save(ctx context.Context, item squad.Squad) (squad.Squad, error) {
	item.UpdatedAt = s.now().UTC()
	if err := s.squadRepo.Save(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("save squad: %w", err)
	}
	item.Version++

	return item, nil
}
