package squad

import (
	"fmt"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

// Contains reports whether the player is rostered in either set.
func (s Squad) Contains(playerID string) bool {
	for _, p := range s.Starters {
		if p.ID == playerID {
			return true
		}
	}
	for _, p := range s.Bench {
		if p.ID == playerID {
			return true
		}
	}

	return false
}

func (s Squad) countByPosition(pos player.Position) int {
	count := 0
	for _, p := range s.Starters {
		if p.Position == pos {
			count++
		}
	}
	for _, p := range s.Bench {
		if p.Position == pos {
			count++
		}
	}

	return count
}

// AddPlayer inserts the player into the starters while there is room,
// spilling onto the bench once the XI is filled.
func (s *Squad) AddPlayer(p RosterPlayer, rules Rules) error {
	if s.Contains(p.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
	}

	if limit, ok := rules.MaxByPosition[p.Position]; ok {
		if s.countByPosition(p.Position) >= limit {
			return fmt.Errorf("%w: position=%s max=%d", ErrPositionLimitExceeded, p.Position, limit)
		}
	}

	switch {
	case len(s.Starters) < rules.StarterSize:
		s.Starters = append(s.Starters, p)
	case len(s.Bench) < rules.BenchSize:
		s.Bench = append(s.Bench, p)
	default:
		return fmt.Errorf("%w: %d starters + %d bench", ErrSquadFull, rules.StarterSize, rules.BenchSize)
	}

	return nil
}

// RemovePlayer takes the player out of whichever set holds it and
// returns the removed entry.
func (s *Squad) RemovePlayer(playerID string) (RosterPlayer, error) {
	for i, p := range s.Starters {
		if p.ID == playerID {
			s.Starters = append(s.Starters[:i], s.Starters[i+1:]...)
			return p, nil
		}
	}
	for i, p := range s.Bench {
		if p.ID == playerID {
			s.Bench = append(s.Bench[:i], s.Bench[i+1:]...)
			return p, nil
		}
	}

	return RosterPlayer{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
}

// ReplacePlayer swaps playerOut for playerIn in place, in whichever
// set held the outgoing player.
func (s *Squad) ReplacePlayer(playerOutID string, playerIn RosterPlayer) error {
	for i, p := range s.Starters {
		if p.ID == playerOutID {
			s.Starters[i] = playerIn
			return nil
		}
	}
	for i, p := range s.Bench {
		if p.ID == playerOutID {
			s.Bench[i] = playerIn
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerOutID)
}

// SetCaptain marks the player as captain (or vice-captain when asVice
// is set), clearing that same flag from every other rostered player
// first. The two flags are independent: assigning one never touches
// the other, so a player promoted in two separate calls may hold both.
func (s *Squad) SetCaptain(playerID string, asVice bool) error {
	if !s.Contains(playerID) {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}

	clear := func(players []RosterPlayer) {
		for i := range players {
			if asVice {
				players[i].IsViceCaptain = players[i].ID == playerID
			} else {
				players[i].IsCaptain = players[i].ID == playerID
			}
		}
	}
	clear(s.Starters)
	clear(s.Bench)

	return nil
}

// Captain returns the current captain, if any.
func (s Squad) Captain() (RosterPlayer, bool) {
	for _, p := range s.Starters {
		if p.IsCaptain {
			return p, true
		}
	}
	for _, p := range s.Bench {
		if p.IsCaptain {
			return p, true
		}
	}

	return RosterPlayer{}, false
}
