package squad

import (
	"fmt"
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

// RosterPlayer is one player instance inside a squad, either in the
// starting XI or on the bench.
type RosterPlayer struct {
	ID            string
	Name          string
	Team          string
	Position      player.Position
	MarketValue   float64
	IsCaptain     bool
	IsViceCaptain bool
	WeekPoints    int
	TotalPoints   int
	AddedAt       time.Time
}

// Squad is one user's fantasy roster within a league. It owns its
// budget ledger; starters and bench are whole-value sets replaced on
// every save. Version supports the persistence layer's optimistic
// concurrency check.
type Squad struct {
	ID         string
	LeagueID   string
	LeagueName string
	UserID     string
	TeamName   string
	Formation  string
	Starters   []RosterPlayer
	Bench      []RosterPlayer
	Budget     Budget
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TotalValue is the summed market value of every rostered player.
func (s Squad) TotalValue() float64 {
	var total float64
	for _, p := range s.Starters {
		total += p.MarketValue
	}
	for _, p := range s.Bench {
		total += p.MarketValue
	}

	return total
}

// Size counts starters plus bench.
func (s Squad) Size() int {
	return len(s.Starters) + len(s.Bench)
}

func (s Squad) ValidateBasic() error {
	if s.ID == "" {
		return fmt.Errorf("squad id is required")
	}
	if s.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if s.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if s.TeamName == "" {
		return fmt.Errorf("team name is required")
	}
	if s.Budget.Total <= 0 {
		return fmt.Errorf("budget total must be greater than zero")
	}

	return nil
}

// Transfer is an immutable record of swapping one rostered player for
// another. Created exactly once per successful transfer, never mutated.
type Transfer struct {
	ID            string
	SquadID       string
	PlayerOutID   string
	PlayerOutName string
	PlayerInID    string
	PlayerInName  string
	Fee           float64
	Date          time.Time
	Gameweek      int
	PointsChange  int
}
