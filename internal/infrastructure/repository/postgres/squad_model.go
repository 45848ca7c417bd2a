package postgres

import "time"

type squadTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	LeagueID    string    `db:"league_id"`
	LeagueName  string    `db:"league_name"`
	UserID      string    `db:"user_id"`
	TeamName    string    `db:"team_name"`
	Formation   string    `db:"formation"`
	BudgetTotal float64   `db:"budget_total"`
	BudgetSpent float64   `db:"budget_spent"`
	Version     int64     `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type squadPlayerTableModel struct {
	ID            int64     `db:"id"`
	SquadID       string    `db:"squad_public_id"`
	PlayerID      string    `db:"player_public_id"`
	Name          string    `db:"name"`
	Team          string    `db:"team"`
	Position      string    `db:"position"`
	MarketValue   float64   `db:"market_value"`
	Slot          string    `db:"slot"`
	IsCaptain     bool      `db:"is_captain"`
	IsViceCaptain bool      `db:"is_vice_captain"`
	WeekPoints    int       `db:"week_points"`
	TotalPoints   int       `db:"total_points"`
	AddedAt       time.Time `db:"added_at"`
}

type transferTableModel struct {
	ID            int64     `db:"id"`
	PublicID      string    `db:"public_id"`
	SquadID       string    `db:"squad_public_id"`
	PlayerOutID   string    `db:"player_out_id"`
	PlayerOutName string    `db:"player_out_name"`
	PlayerInID    string    `db:"player_in_id"`
	PlayerInName  string    `db:"player_in_name"`
	Fee           float64   `db:"fee"`
	TransferDate  time.Time `db:"transfer_date"`
	Gameweek      int       `db:"gameweek"`
	PointsChange  int       `db:"points_change"`
}

const (
	slotStarter = "starter"
	slotBench   = "bench"
)
