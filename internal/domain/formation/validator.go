package formation

import (
	"errors"
	"fmt"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
)

var (
	ErrWrongSquadSize         = errors.New("starting lineup must contain exactly 11 players")
	ErrInvalidGoalkeeperCount = errors.New("starting lineup must contain exactly 1 goalkeeper")
	ErrInvalidDefenderCount   = errors.New("defender count must be between 3 and 5")
	ErrInvalidMidfielderCount = errors.New("midfielder count must be between 2 and 5")
	ErrInvalidForwardCount    = errors.New("forward count must be between 1 and 3")
)

const (
	starterSize   = 11
	defenderMin   = 3
	defenderMax   = 5
	midfielderMin = 2
	midfielderMax = 5
	forwardMin    = 1
	forwardMax    = 3
)

// ValidateStartingXI checks a starting lineup for shape compliance.
// Checks run in a fixed order and stop at the first violation; callers
// wanting every violation call again after fixing each one.
func ValidateStartingXI(starters []squad.RosterPlayer) error {
	if len(starters) != starterSize {
		return fmt.Errorf("%w: got %d", ErrWrongSquadSize, len(starters))
	}

	counts := make(map[player.Position]int, len(player.AllPositions))
	for _, p := range starters {
		counts[p.Position]++
	}

	if counts[player.PositionGoalkeeper] != 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidGoalkeeperCount, counts[player.PositionGoalkeeper])
	}
	if n := counts[player.PositionDefender]; n < defenderMin || n > defenderMax {
		return fmt.Errorf("%w: got %d", ErrInvalidDefenderCount, n)
	}
	if n := counts[player.PositionMidfielder]; n < midfielderMin || n > midfielderMax {
		return fmt.Errorf("%w: got %d", ErrInvalidMidfielderCount, n)
	}
	if n := counts[player.PositionForward]; n < forwardMin || n > forwardMax {
		return fmt.Errorf("%w: got %d", ErrInvalidForwardCount, n)
	}

	return nil
}
