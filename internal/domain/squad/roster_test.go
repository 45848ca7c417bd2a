package squad

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

func rosterPlayer(id string, pos player.Position) RosterPlayer {
	return RosterPlayer{
		ID:          id,
		Name:        "Player " + id,
		Position:    pos,
		MarketValue: 5.0,
	}
}

func TestAddPlayerFillsStartersThenBench(t *testing.T) {
	rules := DefaultRules()
	rules.MaxByPosition = map[player.Position]int{}

	s := Squad{ID: "sq-1", UserID: "u-1", LeagueID: "lg-1", TeamName: "Test FC"}
	for i := 0; i < rules.StarterSize+rules.BenchSize; i++ {
		p := rosterPlayer(fmt.Sprintf("p-%02d", i), player.PositionMidfielder)
		if err := s.AddPlayer(p, rules); err != nil {
			t.Fatalf("add player %d failed: %v", i, err)
		}
	}

	if len(s.Starters) != rules.StarterSize {
		t.Fatalf("expected %d starters, got %d", rules.StarterSize, len(s.Starters))
	}
	if len(s.Bench) != rules.BenchSize {
		t.Fatalf("expected %d bench players, got %d", rules.BenchSize, len(s.Bench))
	}

	err := s.AddPlayer(rosterPlayer("p-overflow", player.PositionMidfielder), rules)
	if !errors.Is(err, ErrSquadFull) {
		t.Fatalf("expected ErrSquadFull, got %v", err)
	}
}

func TestAddPlayerRejectsDuplicate(t *testing.T) {
	rules := DefaultRules()
	s := Squad{}

	p := rosterPlayer("p-1", player.PositionForward)
	if err := s.AddPlayer(p, rules); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	if err := s.AddPlayer(p, rules); !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("expected ErrDuplicatePlayer, got %v", err)
	}
}

func TestAddPlayerEnforcesPositionCap(t *testing.T) {
	rules := DefaultRules()
	s := Squad{}

	limit := rules.MaxByPosition[player.PositionGoalkeeper]
	for i := 0; i < limit; i++ {
		p := rosterPlayer(fmt.Sprintf("gk-%d", i), player.PositionGoalkeeper)
		if err := s.AddPlayer(p, rules); err != nil {
			t.Fatalf("add goalkeeper %d failed: %v", i, err)
		}
	}

	err := s.AddPlayer(rosterPlayer("gk-extra", player.PositionGoalkeeper), rules)
	if !errors.Is(err, ErrPositionLimitExceeded) {
		t.Fatalf("expected ErrPositionLimitExceeded, got %v", err)
	}
}

func TestRemovePlayer(t *testing.T) {
	rules := DefaultRules()
	s := Squad{}
	if err := s.AddPlayer(rosterPlayer("p-1", player.PositionDefender), rules); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	removed, err := s.RemovePlayer("p-1")
	if err != nil {
		t.Fatalf("remove player failed: %v", err)
	}
	if removed.ID != "p-1" {
		t.Fatalf("expected removed player p-1, got %s", removed.ID)
	}
	if s.Contains("p-1") {
		t.Fatal("expected player to be gone after removal")
	}

	if _, err := s.RemovePlayer("p-1"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestReplacePlayerKeepsSlot(t *testing.T) {
	rules := DefaultRules()
	s := Squad{}
	if err := s.AddPlayer(rosterPlayer("out-1", player.PositionMidfielder), rules); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	in := rosterPlayer("in-1", player.PositionMidfielder)
	if err := s.ReplacePlayer("out-1", in); err != nil {
		t.Fatalf("replace player failed: %v", err)
	}

	if s.Contains("out-1") {
		t.Fatal("expected outgoing player to be gone")
	}
	if !s.Contains("in-1") {
		t.Fatal("expected incoming player to be rostered")
	}
	if len(s.Starters) != 1 {
		t.Fatalf("expected 1 starter, got %d", len(s.Starters))
	}

	if err := s.ReplacePlayer("missing", in); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestSetCaptainMovesArmband(t *testing.T) {
	rules := DefaultRules()
	s := Squad{}
	for _, id := range []string{"p-1", "p-2", "p-3"} {
		if err := s.AddPlayer(rosterPlayer(id, player.PositionMidfielder), rules); err != nil {
			t.Fatalf("add player failed: %v", err)
		}
	}

	if err := s.SetCaptain("p-1", false); err != nil {
		t.Fatalf("set captain failed: %v", err)
	}
	if err := s.SetCaptain("p-2", false); err != nil {
		t.Fatalf("set captain failed: %v", err)
	}

	captain, ok := s.Captain()
	if !ok {
		t.Fatal("expected a captain")
	}
	if captain.ID != "p-2" {
		t.Fatalf("expected captain p-2, got %s", captain.ID)
	}
	for _, p := range s.Starters {
		if p.ID != "p-2" && p.IsCaptain {
			t.Fatalf("expected armband cleared from %s", p.ID)
		}
	}

	if err := s.SetCaptain("p-3", true); err != nil {
		t.Fatalf("set vice captain failed: %v", err)
	}
	captain, ok = s.Captain()
	if !ok || captain.ID != "p-2" {
		t.Fatal("expected vice-captain assignment to leave captain untouched")
	}

	if err := s.SetCaptain("missing", false); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
