package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mydreamteam/fantasy-engine/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo catalog and auctions into an empty
// database. A populated players table means a real catalog exists, so
// the seed is skipped.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, league_id, name, team, position, market_value, image_url)
VALUES (:public_id, :league_id, :name, :team, :position, :market_value, :image_url)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":    p.ID,
			"league_id":    p.LeagueID,
			"name":         p.Name,
			"team":         p.Team,
			"position":     string(p.Position),
			"market_value": p.MarketValue,
			"image_url":    p.ImageURL,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, a := range memory.SeedAuctions(time.Now().UTC()) {
		bids, err := encodeBids(a.Bids)
		if err != nil {
			return fmt.Errorf("encode seed auction %s bids: %w", a.ID, err)
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO auctions (public_id, league_id, player_public_id, player_name, player_position, player_team, market_value, bids, start_date, end_date, status, winning_team_id, version)
VALUES (:public_id, :league_id, :player_public_id, :player_name, :player_position, :player_team, :market_value, :bids, :start_date, :end_date, :status, :winning_team_id, :version)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        a.ID,
			"league_id":        a.LeagueID,
			"player_public_id": a.PlayerID,
			"player_name":      a.PlayerName,
			"player_position":  string(a.PlayerPosition),
			"player_team":      a.PlayerTeam,
			"market_value":     a.MarketValue,
			"bids":             bids,
			"start_date":       a.StartDate,
			"end_date":         a.EndDate,
			"status":           string(a.Status),
			"winning_team_id":  a.WinningTeamID,
			"version":          a.Version,
		})
		if err != nil {
			return fmt.Errorf("bind seed auction %s query: %w", a.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed auction %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap seed: %w", err)
	}

	return nil
}
