package player

import "context"

// Repository exposes catalog lookups needed by the squad and auction services.
type Repository interface {
	GetByID(ctx context.Context, leagueID, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]Player, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Player, error)
}
