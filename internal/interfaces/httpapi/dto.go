package httpapi

import (
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/domain/formation"
	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
)

type playerDTO struct {
	ID          string  `json:"id"`
	LeagueID    string  `json:"league_id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	MarketValue float64 `json:"market_value"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type rosterPlayerDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Team          string    `json:"team"`
	Position      string    `json:"position"`
	MarketValue   float64   `json:"market_value"`
	IsCaptain     bool      `json:"is_captain"`
	IsViceCaptain bool      `json:"is_vice_captain"`
	WeekPoints    int       `json:"week_points"`
	TotalPoints   int       `json:"total_points"`
	AddedAt       time.Time `json:"added_at"`
}

type budgetDTO struct {
	Total     float64 `json:"total"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

type squadDTO struct {
	ID         string            `json:"id"`
	LeagueID   string            `json:"league_id"`
	LeagueName string            `json:"league_name,omitempty"`
	UserID     string            `json:"user_id"`
	TeamName   string            `json:"team_name"`
	Formation  string            `json:"formation"`
	Starters   []rosterPlayerDTO `json:"starters"`
	Bench      []rosterPlayerDTO `json:"bench"`
	Budget     budgetDTO         `json:"budget"`
	TotalValue float64           `json:"total_value"`
	Size       int               `json:"size"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type transferDTO struct {
	ID            string    `json:"id"`
	SquadID       string    `json:"squad_id"`
	PlayerOutID   string    `json:"player_out_id"`
	PlayerOutName string    `json:"player_out_name"`
	PlayerInID    string    `json:"player_in_id"`
	PlayerInName  string    `json:"player_in_name"`
	Fee           float64   `json:"fee"`
	Date          time.Time `json:"date"`
	Gameweek      int       `json:"gameweek"`
	PointsChange  int       `json:"points_change"`
}

type squadStatsDTO struct {
	TotalSquadValue     float64 `json:"total_squad_value"`
	AveragePlayerValue  float64 `json:"average_player_value"`
	TotalTransfers      int     `json:"total_transfers"`
	WeekPoints          int     `json:"week_points"`
	TotalPoints         int     `json:"total_points"`
	CaptainName         string  `json:"captain_name,omitempty"`
	BenchStrength       float64 `json:"bench_strength"`
	FormationCompliance bool    `json:"formation_compliance"`
}

type slotCoordinateDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type formationDTO struct {
	Name        string              `json:"name"`
	Positions   []string            `json:"positions"`
	Coordinates []slotCoordinateDTO `json:"coordinates"`
}

type bidDTO struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Amount    int64     `json:"amount"`
	BidTime   time.Time `json:"bid_time"`
}

type auctionDTO struct {
	ID                   string    `json:"id"`
	LeagueID             string    `json:"league_id"`
	PlayerID             string    `json:"player_id"`
	PlayerName           string    `json:"player_name"`
	PlayerPosition       string    `json:"player_position"`
	PlayerTeam           string    `json:"player_team"`
	MarketValue          int64     `json:"market_value"`
	Bids                 []bidDTO  `json:"bids"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	Status               string    `json:"status"`
	WinningTeamID        string    `json:"winning_team_id,omitempty"`
	CurrentHighestBid    int64     `json:"current_highest_bid"`
	TimeRemainingSeconds int64     `json:"time_remaining_seconds"`
	IsActive             bool      `json:"is_active"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:          p.ID,
		LeagueID:    p.LeagueID,
		Name:        p.Name,
		Team:        p.Team,
		Position:    string(p.Position),
		MarketValue: p.MarketValue,
		ImageURL:    p.ImageURL,
	}
}

func rosterPlayersToDTO(players []squad.RosterPlayer) []rosterPlayerDTO {
	out := make([]rosterPlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, rosterPlayerDTO{
			ID:            p.ID,
			Name:          p.Name,
			Team:          p.Team,
			Position:      string(p.Position),
			MarketValue:   p.MarketValue,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
			WeekPoints:    p.WeekPoints,
			TotalPoints:   p.TotalPoints,
			AddedAt:       p.AddedAt,
		})
	}

	return out
}

func squadToDTO(s squad.Squad) squadDTO {
	return squadDTO{
		ID:         s.ID,
		LeagueID:   s.LeagueID,
		LeagueName: s.LeagueName,
		UserID:     s.UserID,
		TeamName:   s.TeamName,
		Formation:  s.Formation,
		Starters:   rosterPlayersToDTO(s.Starters),
		Bench:      rosterPlayersToDTO(s.Bench),
		Budget: budgetDTO{
			Total:     s.Budget.Total,
			Spent:     s.Budget.Spent,
			Remaining: s.Budget.Remaining,
		},
		TotalValue: s.TotalValue(),
		Size:       s.Size(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func transferToDTO(t squad.Transfer) transferDTO {
	return transferDTO{
		ID:            t.ID,
		SquadID:       t.SquadID,
		PlayerOutID:   t.PlayerOutID,
		PlayerOutName: t.PlayerOutName,
		PlayerInID:    t.PlayerInID,
		PlayerInName:  t.PlayerInName,
		Fee:           t.Fee,
		Date:          t.Date,
		Gameweek:      t.Gameweek,
		PointsChange:  t.PointsChange,
	}
}

func transfersToDTO(transfers []squad.Transfer) []transferDTO {
	out := make([]transferDTO, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, transferToDTO(t))
	}

	return out
}

func statsToDTO(s squad.Stats) squadStatsDTO {
	return squadStatsDTO{
		TotalSquadValue:     s.TotalSquadValue,
		AveragePlayerValue:  s.AveragePlayerValue,
		TotalTransfers:      s.TotalTransfers,
		WeekPoints:          s.WeekPoints,
		TotalPoints:         s.TotalPoints,
		CaptainName:         s.CaptainName,
		BenchStrength:       s.BenchStrength,
		FormationCompliance: s.FormationCompliance,
	}
}

func formationToDTO(f formation.Formation) formationDTO {
	positions := make([]string, 0, len(f.Positions))
	for _, p := range f.Positions {
		positions = append(positions, string(p))
	}
	coordinates := make([]slotCoordinateDTO, 0, len(f.Coordinates))
	for _, c := range f.Coordinates {
		coordinates = append(coordinates, slotCoordinateDTO{X: c.X, Y: c.Y})
	}

	return formationDTO{
		Name:        f.Name,
		Positions:   positions,
		Coordinates: coordinates,
	}
}

func auctionToDTO(a auction.Auction, now time.Time) auctionDTO {
	bids := make([]bidDTO, 0, len(a.Bids))
	for _, b := range a.Bids {
		bids = append(bids, bidDTO{
			ID:        b.ID,
			AuctionID: b.AuctionID,
			TeamID:    b.TeamID,
			TeamName:  b.TeamName,
			Amount:    b.Amount,
			BidTime:   b.BidTime,
		})
	}

	remaining := int64(a.TimeRemaining(now).Seconds())
	if remaining < 0 || a.Status != auction.StatusActive {
		remaining = 0
	}

	return auctionDTO{
		ID:                   a.ID,
		LeagueID:             a.LeagueID,
		PlayerID:             a.PlayerID,
		PlayerName:           a.PlayerName,
		PlayerPosition:       string(a.PlayerPosition),
		PlayerTeam:           a.PlayerTeam,
		MarketValue:          a.MarketValue,
		Bids:                 bids,
		StartDate:            a.StartDate,
		EndDate:              a.EndDate,
		Status:               string(a.Status),
		WinningTeamID:        a.WinningTeamID,
		CurrentHighestBid:    a.CurrentHighestBid(),
		TimeRemainingSeconds: remaining,
		IsActive:             a.IsActive(now),
	}
}

func auctionsToDTO(items []auction.Auction, now time.Time) []auctionDTO {
	out := make([]auctionDTO, 0, len(items))
	for _, a := range items {
		out = append(out, auctionToDTO(a, now))
	}

	return out
}
