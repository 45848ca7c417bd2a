package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
)

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) Create(ctx context.Context, s squad.Squad) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for squad create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertQuery = `
INSERT INTO squads (public_id, league_id, league_name, user_id, team_name, formation, budget_total, budget_spent, version, created_at, updated_at)
VALUES (:public_id, :league_id, :league_name, :user_id, :team_name, :formation, :budget_total, :budget_spent, :version, :created_at, :updated_at)`

	sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
		"public_id":    s.ID,
		"league_id":    s.LeagueID,
		"league_name":  s.LeagueName,
		"user_id":      s.UserID,
		"team_name":    s.TeamName,
		"formation":    s.Formation,
		"budget_total": s.Budget.Total,
		"budget_spent": s.Budget.Spent,
		"version":      s.Version,
		"created_at":   s.CreatedAt,
		"updated_at":   s.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("bind insert squad query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert squad: %w", err)
	}

	if err := insertSquadPlayers(ctx, tx, s); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit squad create: %w", err)
	}

	return nil
}

func (r *SquadRepository) GetByID(ctx context.Context, squadID string) (squad.Squad, bool, error) {
	const query = `
SELECT public_id, league_id, league_name, user_id, team_name, formation, budget_total, budget_spent, version, created_at, updated_at
FROM squads
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row squadTableModel
	if err := r.db.GetContext(ctx, &row, query, squadID); err != nil {
		if isNotFound(err) {
			return squad.Squad{}, false, nil
		}
		return squad.Squad{}, false, fmt.Errorf("get squad: %w", err)
	}

	return r.hydrateSquad(ctx, row)
}

func (r *SquadRepository) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (squad.Squad, bool, error) {
	const query = `
SELECT public_id, league_id, league_name, user_id, team_name, formation, budget_total, budget_spent, version, created_at, updated_at
FROM squads
WHERE user_id = $1
  AND league_id = $2
  AND deleted_at IS NULL`

	var row squadTableModel
	if err := r.db.GetContext(ctx, &row, query, userID, leagueID); err != nil {
		if isNotFound(err) {
			return squad.Squad{}, false, nil
		}
		return squad.Squad{}, false, fmt.Errorf("get squad by owner: %w", err)
	}

	return r.hydrateSquad(ctx, row)
}

func (r *SquadRepository) Save(ctx context.Context, s squad.Squad) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for squad save: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := saveSquadInTx(ctx, tx, s); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit squad save: %w", err)
	}

	return nil
}

// SaveWithTransfer commits the squad update and the transfer record in
// a single transaction; a version conflict rolls both back.
func (r *SquadRepository) SaveWithTransfer(ctx context.Context, s squad.Squad, t squad.Transfer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for squad transfer: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := saveSquadInTx(ctx, tx, s); err != nil {
		return err
	}
	if err := insertTransfer(ctx, tx, t); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit squad transfer: %w", err)
	}

	return nil
}

func saveSquadInTx(ctx context.Context, tx *sqlx.Tx, s squad.Squad) error {
	const updateQuery = `
UPDATE squads
SET team_name = :team_name,
    formation = :formation,
    budget_total = :budget_total,
    budget_spent = :budget_spent,
    version = version + 1,
    updated_at = :updated_at
WHERE public_id = :public_id
  AND version = :version
  AND deleted_at IS NULL`

	sqlQuery, args, err := sqlx.Named(updateQuery, map[string]any{
		"public_id":    s.ID,
		"team_name":    s.TeamName,
		"formation":    s.Formation,
		"budget_total": s.Budget.Total,
		"budget_spent": s.Budget.Spent,
		"version":      s.Version,
		"updated_at":   s.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("bind update squad query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	result, err := tx.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("update squad: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read update squad result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: squad=%s version=%d", squad.ErrVersionConflict, s.ID, s.Version)
	}

	const deletePlayersQuery = `DELETE FROM squad_players WHERE squad_public_id = $1`
	if _, err := tx.ExecContext(ctx, tx.Rebind(deletePlayersQuery), s.ID); err != nil {
		return fmt.Errorf("clear squad players: %w", err)
	}
	return insertSquadPlayers(ctx, tx, s)
}

func (r *SquadRepository) AddTransfer(ctx context.Context, t squad.Transfer) error {
	return insertTransfer(ctx, r.db, t)
}

func insertTransfer(ctx context.Context, ext sqlx.ExtContext, t squad.Transfer) error {
	const insertQuery = `
INSERT INTO squad_transfers (public_id, squad_public_id, player_out_id, player_out_name, player_in_id, player_in_name, fee, transfer_date, gameweek, points_change)
VALUES (:public_id, :squad_public_id, :player_out_id, :player_out_name, :player_in_id, :player_in_name, :fee, :transfer_date, :gameweek, :points_change)`

	sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
		"public_id":       t.ID,
		"squad_public_id": t.SquadID,
		"player_out_id":   t.PlayerOutID,
		"player_out_name": t.PlayerOutName,
		"player_in_id":    t.PlayerInID,
		"player_in_name":  t.PlayerInName,
		"fee":             t.Fee,
		"transfer_date":   t.Date,
		"gameweek":        t.Gameweek,
		"points_change":   t.PointsChange,
	})
	if err != nil {
		return fmt.Errorf("bind insert transfer query: %w", err)
	}
	sqlQuery = ext.Rebind(sqlQuery)
	if _, err := ext.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}

	return nil
}

func (r *SquadRepository) ListTransfers(ctx context.Context, squadID string) ([]squad.Transfer, error) {
	const query = `
SELECT public_id, squad_public_id, player_out_id, player_out_name, player_in_id, player_in_name, fee, transfer_date, gameweek, points_change
FROM squad_transfers
WHERE squad_public_id = $1
ORDER BY transfer_date DESC, id DESC`

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, squadID); err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	return mapTransferRows(rows), nil
}

func (r *SquadRepository) ListLatestTransfers(ctx context.Context, squadID string, limit int) ([]squad.Transfer, error) {
	const query = `
SELECT public_id, squad_public_id, player_out_id, player_out_name, player_in_id, player_in_name, fee, transfer_date, gameweek, points_change
FROM squad_transfers
WHERE squad_public_id = $1
ORDER BY transfer_date DESC, id DESC
LIMIT $2`

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, squadID, limit); err != nil {
		return nil, fmt.Errorf("list latest transfers: %w", err)
	}

	return mapTransferRows(rows), nil
}

func (r *SquadRepository) hydrateSquad(ctx context.Context, row squadTableModel) (squad.Squad, bool, error) {
	const playersQuery = `
SELECT squad_public_id, player_public_id, name, team, position, market_value, slot, is_captain, is_vice_captain, week_points, total_points, added_at
FROM squad_players
WHERE squad_public_id = $1
ORDER BY id`

	var playerRows []squadPlayerTableModel
	if err := r.db.SelectContext(ctx, &playerRows, playersQuery, row.PublicID); err != nil {
		return squad.Squad{}, false, fmt.Errorf("list squad players: %w", err)
	}

	starters := make([]squad.RosterPlayer, 0, len(playerRows))
	bench := make([]squad.RosterPlayer, 0, len(playerRows))
	for _, p := range playerRows {
		rostered := squad.RosterPlayer{
			ID:            p.PlayerID,
			Name:          p.Name,
			Team:          p.Team,
			Position:      player.Position(p.Position),
			MarketValue:   p.MarketValue,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
			WeekPoints:    p.WeekPoints,
			TotalPoints:   p.TotalPoints,
			AddedAt:       p.AddedAt,
		}
		if p.Slot == slotBench {
			bench = append(bench, rostered)
		} else {
			starters = append(starters, rostered)
		}
	}

	budget := squad.NewBudget(row.BudgetTotal)
	if err := budget.Apply(row.BudgetSpent); err != nil {
		return squad.Squad{}, false, fmt.Errorf("restore squad budget: %w", err)
	}

	return squad.Squad{
		ID:         row.PublicID,
		LeagueID:   row.LeagueID,
		LeagueName: row.LeagueName,
		UserID:     row.UserID,
		TeamName:   row.TeamName,
		Formation:  row.Formation,
		Starters:   starters,
		Bench:      bench,
		Budget:     budget,
		Version:    row.Version,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, true, nil
}

func insertSquadPlayers(ctx context.Context, tx *sqlx.Tx, s squad.Squad) error {
	const insertQuery = `
INSERT INTO squad_players (squad_public_id, player_public_id, name, team, position, market_value, slot, is_captain, is_vice_captain, week_points, total_points, added_at)
VALUES (:squad_public_id, :player_public_id, :name, :team, :position, :market_value, :slot, :is_captain, :is_vice_captain, :week_points, :total_points, :added_at)`

	insert := func(p squad.RosterPlayer, slot string) error {
		addedAt := p.AddedAt
		if addedAt.IsZero() {
			addedAt = time.Now().UTC()
		}
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"squad_public_id":  s.ID,
			"player_public_id": p.ID,
			"name":             p.Name,
			"team":             p.Team,
			"position":         string(p.Position),
			"market_value":     p.MarketValue,
			"slot":             slot,
			"is_captain":       p.IsCaptain,
			"is_vice_captain":  p.IsViceCaptain,
			"week_points":      p.WeekPoints,
			"total_points":     p.TotalPoints,
			"added_at":         addedAt,
		})
		if err != nil {
			return fmt.Errorf("bind insert squad player query: %w", err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert squad player %s: %w", p.ID, err)
		}
		return nil
	}

	for _, p := range s.Starters {
		if err := insert(p, slotStarter); err != nil {
			return err
		}
	}
	for _, p := range s.Bench {
		if err := insert(p, slotBench); err != nil {
			return err
		}
	}

	return nil
}

func mapTransferRows(rows []transferTableModel) []squad.Transfer {
	out := make([]squad.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, squad.Transfer{
			ID:            row.PublicID,
			SquadID:       row.SquadID,
			PlayerOutID:   row.PlayerOutID,
			PlayerOutName: row.PlayerOutName,
			PlayerInID:    row.PlayerInID,
			PlayerInName:  row.PlayerInName,
			Fee:           row.Fee,
			Date:          row.TransferDate,
			Gameweek:      row.Gameweek,
			PointsChange:  row.PointsChange,
		})
	}

	return out
}
