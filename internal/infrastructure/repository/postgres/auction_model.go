package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

type auctionTableModel struct {
	ID             int64     `db:"id"`
	PublicID       string    `db:"public_id"`
	LeagueID       string    `db:"league_id"`
	PlayerID       string    `db:"player_public_id"`
	PlayerName     string    `db:"player_name"`
	PlayerPosition string    `db:"player_position"`
	PlayerTeam     string    `db:"player_team"`
	MarketValue    int64     `db:"market_value"`
	Bids           string    `db:"bids"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	Status         string    `db:"status"`
	WinningTeamID  string    `db:"winning_team_id"`
	Version        int64     `db:"version"`
}

type bidJSONModel struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Amount    int64     `json:"amount"`
	BidTime   time.Time `json:"bid_time"`
}

func encodeBids(bids []auction.Bid) (string, error) {
	models := make([]bidJSONModel, 0, len(bids))
	for _, b := range bids {
		models = append(models, bidJSONModel{
			ID:        b.ID,
			AuctionID: b.AuctionID,
			TeamID:    b.TeamID,
			TeamName:  b.TeamName,
			Amount:    b.Amount,
			BidTime:   b.BidTime,
		})
	}

	encoded, err := sonic.Marshal(models)
	if err != nil {
		return "", fmt.Errorf("encode auction bids: %w", err)
	}

	return string(encoded), nil
}

func decodeBids(raw string) ([]auction.Bid, error) {
	if raw == "" {
		return nil, nil
	}

	var models []bidJSONModel
	if err := sonic.Unmarshal([]byte(raw), &models); err != nil {
		return nil, fmt.Errorf("decode auction bids: %w", err)
	}

	bids := make([]auction.Bid, 0, len(models))
	for _, m := range models {
		bids = append(bids, auction.Bid{
			ID:        m.ID,
			AuctionID: m.AuctionID,
			TeamID:    m.TeamID,
			TeamName:  m.TeamName,
			Amount:    m.Amount,
			BidTime:   m.BidTime,
		})
	}

	return bids, nil
}

func mapAuctionRow(row auctionTableModel) (auction.Auction, error) {
	bids, err := decodeBids(row.Bids)
	if err != nil {
		return auction.Auction{}, err
	}

	return auction.Auction{
		ID:             row.PublicID,
		LeagueID:       row.LeagueID,
		PlayerID:       row.PlayerID,
		PlayerName:     row.PlayerName,
		PlayerPosition: player.Position(row.PlayerPosition),
		PlayerTeam:     row.PlayerTeam,
		MarketValue:    row.MarketValue,
		Bids:           bids,
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		Status:         auction.Status(row.Status),
		WinningTeamID:  row.WinningTeamID,
		Version:        row.Version,
	}, nil
}
