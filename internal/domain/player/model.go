package player

import "fmt"

// Position represents football position categories used across squad
// and formation rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a catalog entry supplied by the player-catalog collaborator.
// The engine never fetches these itself; it is handed resolved entries.
type Player struct {
	ID          string
	LeagueID    string
	Name        string
	Team        string
	Position    Position
	MarketValue float64
	ImageURL    string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("player league id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.MarketValue <= 0 {
		return fmt.Errorf("player market value must be greater than zero")
	}

	return nil
}
