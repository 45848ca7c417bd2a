package squad

import (
	"testing"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

func TestComputeStatsEmptySquad(t *testing.T) {
	stats := ComputeStats(Squad{}, 0)

	if stats.TotalSquadValue != 0 {
		t.Fatalf("expected total value 0, got %.1f", stats.TotalSquadValue)
	}
	if stats.AveragePlayerValue != 0 {
		t.Fatalf("expected average value 0, got %.1f", stats.AveragePlayerValue)
	}
	if stats.FormationCompliance {
		t.Fatal("expected empty squad to be non-compliant")
	}
}

func TestComputeStats(t *testing.T) {
	s := Squad{
		Starters: []RosterPlayer{
			{ID: "gk-1", Name: "Keeper", Position: player.PositionGoalkeeper, MarketValue: 5.0, WeekPoints: 6, TotalPoints: 60, IsCaptain: true},
			{ID: "def-1", Position: player.PositionDefender, MarketValue: 6.0, WeekPoints: 2, TotalPoints: 40},
			{ID: "def-2", Position: player.PositionDefender, MarketValue: 6.0, WeekPoints: 1, TotalPoints: 35},
			{ID: "def-3", Position: player.PositionDefender, MarketValue: 5.0, WeekPoints: 0, TotalPoints: 30},
			{ID: "mid-1", Position: player.PositionMidfielder, MarketValue: 8.0, WeekPoints: 5, TotalPoints: 70},
			{ID: "mid-2", Position: player.PositionMidfielder, MarketValue: 7.0, WeekPoints: 3, TotalPoints: 55},
			{ID: "mid-3", Position: player.PositionMidfielder, MarketValue: 7.0, WeekPoints: 4, TotalPoints: 50},
			{ID: "fwd-1", Position: player.PositionForward, MarketValue: 10.0, WeekPoints: 8, TotalPoints: 90},
		},
		Bench: []RosterPlayer{
			{ID: "bench-1", Position: player.PositionMidfielder, MarketValue: 4.0, TotalPoints: 4},
			{ID: "bench-2", Position: player.PositionForward, MarketValue: 4.0, TotalPoints: 2},
		},
	}

	stats := ComputeStats(s, 3)

	if stats.TotalSquadValue != 62.0 {
		t.Fatalf("expected total value 62.0, got %.1f", stats.TotalSquadValue)
	}
	if stats.AveragePlayerValue != 6.2 {
		t.Fatalf("expected average value 6.2, got %.1f", stats.AveragePlayerValue)
	}
	if stats.TotalTransfers != 3 {
		t.Fatalf("expected 3 transfers, got %d", stats.TotalTransfers)
	}
	if stats.WeekPoints != 29 {
		t.Fatalf("expected 29 week points, got %d", stats.WeekPoints)
	}
	if stats.TotalPoints != 430 {
		t.Fatalf("expected 430 total points, got %d", stats.TotalPoints)
	}
	if stats.CaptainName != "Keeper" {
		t.Fatalf("expected captain Keeper, got %q", stats.CaptainName)
	}
	if stats.BenchStrength != 30.0 {
		t.Fatalf("expected bench strength 30.0, got %.1f", stats.BenchStrength)
	}
	if !stats.FormationCompliance {
		t.Fatal("expected 1-3-3-1 starters to be compliant")
	}
}

func TestComputeStatsBenchStrengthCapped(t *testing.T) {
	s := Squad{
		Bench: []RosterPlayer{
			{ID: "bench-1", Position: player.PositionMidfielder, TotalPoints: 50},
		},
	}

	stats := ComputeStats(s, 0)
	if stats.BenchStrength != 100.0 {
		t.Fatalf("expected bench strength capped at 100.0, got %.1f", stats.BenchStrength)
	}
}

func TestComputeStatsNonCompliantWithTwoKeepers(t *testing.T) {
	s := Squad{
		Starters: []RosterPlayer{
			{ID: "gk-1", Position: player.PositionGoalkeeper},
			{ID: "gk-2", Position: player.PositionGoalkeeper},
			{ID: "def-1", Position: player.PositionDefender},
			{ID: "def-2", Position: player.PositionDefender},
			{ID: "def-3", Position: player.PositionDefender},
			{ID: "mid-1", Position: player.PositionMidfielder},
			{ID: "mid-2", Position: player.PositionMidfielder},
			{ID: "mid-3", Position: player.PositionMidfielder},
			{ID: "fwd-1", Position: player.PositionForward},
		},
	}

	if ComputeStats(s, 0).FormationCompliance {
		t.Fatal("expected two keepers to be non-compliant")
	}
}
