package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
)

type AuctionRepository struct {
	db *sqlx.DB
}

func NewAuctionRepository(db *sqlx.DB) *AuctionRepository {
	return &AuctionRepository{db: db}
}

func (r *AuctionRepository) Create(ctx context.Context, a auction.Auction) error {
	bids, err := encodeBids(a.Bids)
	if err != nil {
		return err
	}

	const insertQuery = `
INSERT INTO auctions (public_id, league_id, player_public_id, player_name, player_position, player_team, market_value, bids, start_date, end_date, status, winning_team_id, version)
VALUES (:public_id, :league_id, :player_public_id, :player_name, :player_position, :player_team, :market_value, :bids, :start_date, :end_date, :status, :winning_team_id, :version)`

	sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
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
		return fmt.Errorf("bind insert auction query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)
	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert auction: %w", err)
	}

	return nil
}

func (r *AuctionRepository) GetByID(ctx context.Context, auctionID string) (auction.Auction, bool, error) {
	const query = `
SELECT public_id, league_id, player_public_id, player_name, player_position, player_team, market_value, bids, start_date, end_date, status, winning_team_id, version
FROM auctions
WHERE public_id = $1`

	var row auctionTableModel
	if err := r.db.GetContext(ctx, &row, query, auctionID); err != nil {
		if isNotFound(err) {
			return auction.Auction{}, false, nil
		}
		return auction.Auction{}, false, fmt.Errorf("get auction: %w", err)
	}

	item, err := mapAuctionRow(row)
	if err != nil {
		return auction.Auction{}, false, err
	}

	return item, true, nil
}

func (r *AuctionRepository) ListByLeague(ctx context.Context, leagueID string) ([]auction.Auction, error) {
	const query = `
SELECT public_id, league_id, player_public_id, player_name, player_position, player_team, market_value, bids, start_date, end_date, status, winning_team_id, version
FROM auctions
WHERE league_id = $1
ORDER BY id`

	var rows []auctionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}

	return mapAuctionRows(rows)
}

func (r *AuctionRepository) ListActive(ctx context.Context) ([]auction.Auction, error) {
	const query = `
SELECT public_id, league_id, player_public_id, player_name, player_position, player_team, market_value, bids, start_date, end_date, status, winning_team_id, version
FROM auctions
WHERE status = $1
ORDER BY end_date`

	var rows []auctionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, string(auction.StatusActive)); err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}

	return mapAuctionRows(rows)
}

func (r *AuctionRepository) Save(ctx context.Context, a auction.Auction) error {
	bids, err := encodeBids(a.Bids)
	if err != nil {
		return err
	}

	const updateQuery = `
UPDATE auctions
SET bids = :bids,
    status = :status,
    winning_team_id = :winning_team_id,
    end_date = :end_date,
    version = version + 1
WHERE public_id = :public_id
  AND version = :version`

	sqlQuery, args, err := sqlx.Named(updateQuery, map[string]any{
		"public_id":       a.ID,
		"bids":            bids,
		"status":          string(a.Status),
		"winning_team_id": a.WinningTeamID,
		"end_date":        a.EndDate,
		"version":         a.Version,
	})
	if err != nil {
		return fmt.Errorf("bind update auction query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)
	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("update auction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read update auction result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: auction=%s version=%d", auction.ErrVersionConflict, a.ID, a.Version)
	}

	return nil
}

func mapAuctionRows(rows []auctionTableModel) ([]auction.Auction, error) {
	out := make([]auction.Auction, 0, len(rows))
	for _, row := range rows {
		item, err := mapAuctionRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}
