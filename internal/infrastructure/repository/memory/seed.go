package memory

import (
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

const (
	LeagueIDPremierLeague  = "eng-premier-league-2025"
	LeagueIDLiga1Indonesia = "idn-liga-1-2025"
)

// SeedPlayers is a small demo catalog, enough to assemble a full
// 15-man squad in either league.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "eng-gk-01", LeagueID: LeagueIDPremierLeague, Team: "Arsenal", Name: "David Raya", Position: player.PositionGoalkeeper, MarketValue: 5.5},
		{ID: "eng-gk-02", LeagueID: LeagueIDPremierLeague, Team: "Liverpool", Name: "Alisson Becker", Position: player.PositionGoalkeeper, MarketValue: 5.5},
		{ID: "eng-def-01", LeagueID: LeagueIDPremierLeague, Team: "Arsenal", Name: "William Saliba", Position: player.PositionDefender, MarketValue: 6.0},
		{ID: "eng-def-02", LeagueID: LeagueIDPremierLeague, Team: "Arsenal", Name: "Gabriel Magalhaes", Position: player.PositionDefender, MarketValue: 6.0},
		{ID: "eng-def-03", LeagueID: LeagueIDPremierLeague, Team: "Liverpool", Name: "Virgil van Dijk", Position: player.PositionDefender, MarketValue: 6.5},
		{ID: "eng-def-04", LeagueID: LeagueIDPremierLeague, Team: "Liverpool", Name: "Trent Alexander-Arnold", Position: player.PositionDefender, MarketValue: 7.0},
		{ID: "eng-def-05", LeagueID: LeagueIDPremierLeague, Team: "Manchester City", Name: "Ruben Dias", Position: player.PositionDefender, MarketValue: 5.5},
		{ID: "eng-mid-01", LeagueID: LeagueIDPremierLeague, Team: "Arsenal", Name: "Martin Odegaard", Position: player.PositionMidfielder, MarketValue: 8.5},
		{ID: "eng-mid-02", LeagueID: LeagueIDPremierLeague, Team: "Arsenal", Name: "Bukayo Saka", Position: player.PositionMidfielder, MarketValue: 10.0},
		{ID: "eng-mid-03", LeagueID: LeagueIDPremierLeague, Team: "Manchester City", Name: "Phil Foden", Position: player.PositionMidfielder, MarketValue: 9.5},
		{ID: "eng-mid-04", LeagueID: LeagueIDPremierLeague, Team: "Liverpool", Name: "Mohamed Salah", Position: player.PositionMidfielder, MarketValue: 12.5},
		{ID: "eng-mid-05", LeagueID: LeagueIDPremierLeague, Team: "Tottenham", Name: "James Maddison", Position: player.PositionMidfielder, MarketValue: 7.5},
		{ID: "eng-fwd-01", LeagueID: LeagueIDPremierLeague, Team: "Manchester City", Name: "Erling Haaland", Position: player.PositionForward, MarketValue: 14.0},
		{ID: "eng-fwd-02", LeagueID: LeagueIDPremierLeague, Team: "Newcastle", Name: "Alexander Isak", Position: player.PositionForward, MarketValue: 9.0},
		{ID: "eng-fwd-03", LeagueID: LeagueIDPremierLeague, Team: "Aston Villa", Name: "Ollie Watkins", Position: player.PositionForward, MarketValue: 8.5},

		{ID: "idn-gk-01", LeagueID: LeagueIDLiga1Indonesia, Team: "Persija Jakarta", Name: "Andritany Ardhiyasa", Position: player.PositionGoalkeeper, MarketValue: 4.5},
		{ID: "idn-def-01", LeagueID: LeagueIDLiga1Indonesia, Team: "Persib Bandung", Name: "Nick Kuipers", Position: player.PositionDefender, MarketValue: 5.0},
		{ID: "idn-def-02", LeagueID: LeagueIDLiga1Indonesia, Team: "Persija Jakarta", Name: "Hansamu Yama", Position: player.PositionDefender, MarketValue: 4.5},
		{ID: "idn-def-03", LeagueID: LeagueIDLiga1Indonesia, Team: "Bali United", Name: "Ricky Fajrin", Position: player.PositionDefender, MarketValue: 4.0},
		{ID: "idn-mid-01", LeagueID: LeagueIDLiga1Indonesia, Team: "Persib Bandung", Name: "Marc Klok", Position: player.PositionMidfielder, MarketValue: 6.5},
		{ID: "idn-mid-02", LeagueID: LeagueIDLiga1Indonesia, Team: "Persija Jakarta", Name: "Maciej Gajos", Position: player.PositionMidfielder, MarketValue: 6.0},
		{ID: "idn-mid-03", LeagueID: LeagueIDLiga1Indonesia, Team: "Persebaya Surabaya", Name: "Bruno Moreira", Position: player.PositionMidfielder, MarketValue: 5.5},
		{ID: "idn-fwd-01", LeagueID: LeagueIDLiga1Indonesia, Team: "Persib Bandung", Name: "David da Silva", Position: player.PositionForward, MarketValue: 7.5},
		{ID: "idn-fwd-02", LeagueID: LeagueIDLiga1Indonesia, Team: "Persija Jakarta", Name: "Gustavo Almeida", Position: player.PositionForward, MarketValue: 7.0},
	}
}

// SeedAuctions opens a few demo auctions relative to now. Auction
// amounts are whole currency units, not the fantasy budget scale.
func SeedAuctions(now time.Time) []auction.Auction {
	return []auction.Auction{
		{
			ID:             "auc-eng-0001",
			LeagueID:       LeagueIDPremierLeague,
			PlayerID:       "eng-fwd-02",
			PlayerName:     "Alexander Isak",
			PlayerPosition: player.PositionForward,
			PlayerTeam:     "Newcastle",
			MarketValue:    5_000_000,
			StartDate:      now,
			EndDate:        now.Add(48 * time.Hour),
			Status:         auction.StatusActive,
		},
		{
			ID:             "auc-eng-0002",
			LeagueID:       LeagueIDPremierLeague,
			PlayerID:       "eng-mid-05",
			PlayerName:     "James Maddison",
			PlayerPosition: player.PositionMidfielder,
			PlayerTeam:     "Tottenham",
			MarketValue:    3_500_000,
			StartDate:      now,
			EndDate:        now.Add(24 * time.Hour),
			Status:         auction.StatusActive,
		},
		{
			ID:             "auc-idn-0001",
			LeagueID:       LeagueIDLiga1Indonesia,
			PlayerID:       "idn-fwd-01",
			PlayerName:     "David da Silva",
			PlayerPosition: player.PositionForward,
			PlayerTeam:     "Persib Bandung",
			MarketValue:    1_200_000,
			StartDate:      now,
			EndDate:        now.Add(72 * time.Hour),
			Status:         auction.StatusActive,
		},
	}
}
