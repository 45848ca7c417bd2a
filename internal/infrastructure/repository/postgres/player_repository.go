package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

type playerTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	LeagueID    string    `db:"league_id"`
	Name        string    `db:"name"`
	Team        string    `db:"team"`
	Position    string    `db:"position"`
	MarketValue float64   `db:"market_value"`
	ImageURL    string    `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, leagueID, playerID string) (player.Player, bool, error) {
	const query = `
SELECT public_id, league_id, name, team, position, market_value, image_url
FROM players
WHERE league_id = $1
  AND public_id = $2
  AND deleted_at IS NULL`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, leagueID, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return mapPlayerRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT public_id, league_id, name, team, position, market_value, image_url
FROM players
WHERE league_id = ?
  AND public_id IN (?)
  AND deleted_at IS NULL`, leagueID, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("bind players by ids query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by ids: %w", err)
	}

	return mapPlayerRows(rows), nil
}

func (r *PlayerRepository) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	const query = `
SELECT public_id, league_id, name, team, position, market_value, image_url
FROM players
WHERE league_id = $1
  AND deleted_at IS NULL
ORDER BY id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return mapPlayerRows(rows), nil
}

func mapPlayerRow(row playerTableModel) player.Player {
	return player.Player{
		ID:          row.PublicID,
		LeagueID:    row.LeagueID,
		Name:        row.Name,
		Team:        row.Team,
		Position:    player.Position(row.Position),
		MarketValue: row.MarketValue,
		ImageURL:    row.ImageURL,
	}
}

func mapPlayerRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPlayerRow(row))
	}

	return out
}
