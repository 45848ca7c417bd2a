package squad

import (
	"errors"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

var (
	ErrDuplicatePlayer       = errors.New("player already in squad")
	ErrPlayerNotFound        = errors.New("player not in squad")
	ErrPositionLimitExceeded = errors.New("position limit exceeded")
	ErrSquadFull             = errors.New("squad is full")
	ErrInsufficientBudget    = errors.New("insufficient budget")
)

// Rules stores squad composition parameters.
type Rules struct {
	StarterSize       int
	BenchSize         int
	BudgetTotal       float64
	MaxTeamNameLength int
	DefaultFormation  string
	// MaxByPosition caps how many players sharing a position a squad
	// may roster (starters and bench combined). Configurable per
	// position; a cap of 3 across the board cannot fill a 5-defender
	// formation, so hosts running those formations must raise DEF/MID.
	MaxByPosition map[player.Position]int
}

func DefaultRules() Rules {
	return Rules{
		StarterSize:       11,
		BenchSize:         4,
		BudgetTotal:       100.0,
		MaxTeamNameLength: 30,
		DefaultFormation:  "4-3-3",
		MaxByPosition: map[player.Position]int{
			player.PositionGoalkeeper: 3,
			player.PositionDefender:   3,
			player.PositionMidfielder: 3,
			player.PositionForward:    3,
		},
	}
}
