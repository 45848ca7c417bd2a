package squad

import "github.com/mydreamteam/fantasy-engine/internal/domain/player"

// Stats is a derived, read-only projection over one squad. Computing
// it twice without a mutation in between yields identical results.
type Stats struct {
	TotalSquadValue     float64
	AveragePlayerValue  float64
	TotalTransfers      int
	WeekPoints          int
	TotalPoints         int
	CaptainName         string
	BenchStrength       float64
	FormationCompliance bool
}

// ComputeStats derives squad statistics. AveragePlayerValue is 0 for
// an empty squad. FormationCompliance runs a relaxed shape check
// (exactly 1 GK, >=3 DEF, >=3 MID, >=1 FWD over the starters) since
// the squad may still be incomplete; the strict per-formation check
// lives in the formation package.
func ComputeStats(s Squad, transferCount int) Stats {
	stats := Stats{
		TotalSquadValue: s.TotalValue(),
		TotalTransfers:  transferCount,
	}

	if size := s.Size(); size > 0 {
		stats.AveragePlayerValue = stats.TotalSquadValue / float64(size)
	}

	counts := make(map[player.Position]int, len(player.AllPositions))
	for _, p := range s.Starters {
		stats.WeekPoints += p.WeekPoints
		stats.TotalPoints += p.TotalPoints
		counts[p.Position]++
	}

	if captain, ok := s.Captain(); ok {
		stats.CaptainName = captain.Name
	}

	if len(s.Bench) > 0 {
		benchPoints := 0
		for _, p := range s.Bench {
			benchPoints += p.TotalPoints
		}
		stats.BenchStrength = float64(benchPoints) / float64(len(s.Bench)) * 10
		if stats.BenchStrength > 100 {
			stats.BenchStrength = 100
		}
	}

	stats.FormationCompliance = counts[player.PositionGoalkeeper] == 1 &&
		counts[player.PositionDefender] >= 3 &&
		counts[player.PositionMidfielder] >= 3 &&
		counts[player.PositionForward] >= 1

	return stats
}
