package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
	"github.com/mydreamteam/fantasy-engine/internal/platform/cache"
	idgen "github.com/mydreamteam/fantasy-engine/internal/platform/id"
	"github.com/mydreamteam/fantasy-engine/internal/platform/locking"
	"github.com/mydreamteam/fantasy-engine/internal/platform/logging"
)

// CreateAuctionInput opens one player for competitive bidding.
type CreateAuctionInput struct {
	LeagueID     string
	PlayerID     string
	ReservePrice int64
	Duration     time.Duration
}

// PlaceBidInput is one team's offer on a running auction.
type PlaceBidInput struct {
	AuctionID string
	TeamID    string
	TeamName  string
	Amount    int64
}

// AuctionService routes bids to the correct auction and reports
// active and historical auctions for a league. Mutations are
// serialized per auction id so two bidders can never both pass the
// highest-bid check against the same stale snapshot.
type AuctionService struct {
	auctionRepo auction.Repository
	playerRepo  player.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
	locks       *locking.KeyedMutex
	history     *cache.Store
	now         func() time.Time
}

func NewAuctionService(
	auctionRepo auction.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
	history *cache.Store,
) *AuctionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuctionService{
		auctionRepo: auctionRepo,
		playerRepo:  playerRepo,
		idGen:       idGen,
		logger:      logger,
		locks:       locking.NewKeyedMutex(),
		history:     history,
		now:         time.Now,
	}
}

// CreateAuction resolves the player from the catalog and opens a
// time-boxed auction with the reserve price as the minimum.
func (s *AuctionService) CreateAuction(ctx context.Context, input CreateAuctionInput) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.CreateAuction")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)

	if input.LeagueID == "" {
		return auction.Auction{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return auction.Auction{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.ReservePrice <= 0 {
		return auction.Auction{}, fmt.Errorf("%w: reserve price must be greater than zero", ErrInvalidInput)
	}
	if input.Duration <= 0 {
		return auction.Auction{}, fmt.Errorf("%w: auction duration must be greater than zero", ErrInvalidInput)
	}

	entry, exists, err := s.playerRepo.GetByID(ctx, input.LeagueID, input.PlayerID)
	if err != nil {
		return auction.Auction{}, fmt.Errorf("get player from catalog: %w", err)
	}
	if !exists {
		return auction.Auction{}, fmt.Errorf("%w: player=%s league=%s", ErrNotFound, input.PlayerID, input.LeagueID)
	}

	auctionID, err := s.idGen.NewID()
	if err != nil {
		return auction.Auction{}, fmt.Errorf("generate auction id: %w", err)
	}

	now := s.now().UTC()
	item := auction.Auction{
		ID:             auctionID,
		LeagueID:       input.LeagueID,
		PlayerID:       entry.ID,
		PlayerName:     entry.Name,
		PlayerPosition: entry.Position,
		PlayerTeam:     entry.Team,
		MarketValue:    input.ReservePrice,
		StartDate:      now,
		EndDate:        now.Add(input.Duration),
		Status:         auction.StatusActive,
	}

	if err := s.auctionRepo.Create(ctx, item); err != nil {
		return auction.Auction{}, fmt.Errorf("create auction: %w", err)
	}

	s.logger.InfoContext(ctx, "auction opened",
		"auction_id", item.ID,
		"league_id", item.LeagueID,
		"player_id", item.PlayerID,
		"reserve_price", item.MarketValue,
		"end_date", item.EndDate,
	)

	return item, nil
}

func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.GetAuction")
	defer span.End()

	return s.loadAuction(ctx, auctionID)
}

// GetActive returns the league's auctions that still accept bids.
func (s *AuctionService) GetActive(ctx context.Context, leagueID string) ([]auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.GetActive")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	items, err := s.auctionRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}

	now := s.now()
	active := make([]auction.Auction, 0, len(items))
	for _, a := range items {
		if a.IsActive(now) {
			active = append(active, a)
		}
	}

	return active, nil
}

// PlaceBid loads the auction, re-validates that it is still active
// (defense in depth against stale reads), delegates acceptance to the
// auction itself, persists, and returns the updated auction.
func (s *AuctionService) PlaceBid(ctx context.Context, input PlaceBidInput) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.PlaceBid")
	defer span.End()

	input.AuctionID = strings.TrimSpace(input.AuctionID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.TeamName = strings.TrimSpace(input.TeamName)

	if input.AuctionID == "" {
		return auction.Auction{}, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return auction.Auction{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return auction.Auction{}, fmt.Errorf("%w: bid amount must be greater than zero", ErrInvalidInput)
	}

	unlock := s.locks.Lock(input.AuctionID)
	defer unlock()

	item, err := s.loadAuction(ctx, input.AuctionID)
	if err != nil {
		return auction.Auction{}, err
	}

	now := s.now()
	if !item.IsActive(now) {
		return auction.Auction{}, fmt.Errorf("%w: %s", auction.ErrAuctionEnded, item.ID)
	}

	bidID, err := s.idGen.NewID()
	if err != nil {
		return auction.Auction{}, fmt.Errorf("generate bid id: %w", err)
	}

	bid := auction.Bid{
		ID:       bidID,
		TeamID:   input.TeamID,
		TeamName: input.TeamName,
		Amount:   input.Amount,
	}
	if err := item.PlaceBid(bid, now.UTC()); err != nil {
		return auction.Auction{}, err
	}

	updated, err := s.save(ctx, item)
	if err != nil {
		return auction.Auction{}, err
	}

	s.logger.InfoContext(ctx, "bid accepted",
		"auction_id", item.ID,
		"team_id", input.TeamID,
		"amount", input.Amount,
		"highest_bid", updated.CurrentHighestBid(),
	)

	return updated, nil
}

// CloseAuction ends the auction, recording the highest bidder as
// winner when any bids were placed. The hosting application applies
// the won player to the winner's squad as a separate step.
func (s *AuctionService) CloseAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.CloseAuction")
	defer span.End()

	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return auction.Auction{}, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}

	unlock := s.locks.Lock(auctionID)
	defer unlock()

	item, err := s.loadAuction(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, err
	}

	var winner *auction.Bid
	if highest, ok := item.HighestBid(); ok {
		winner = &highest
	}
	if err := item.Close(winner); err != nil {
		return auction.Auction{}, err
	}

	updated, err := s.save(ctx, item)
	if err != nil {
		return auction.Auction{}, err
	}

	s.logger.InfoContext(ctx, "auction closed",
		"auction_id", item.ID,
		"winning_team_id", updated.WinningTeamID,
	)

	return updated, nil
}

func (s *AuctionService) CancelAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.CancelAuction")
	defer span.End()

	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return auction.Auction{}, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}

	unlock := s.locks.Lock(auctionID)
	defer unlock()

	item, err := s.loadAuction(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, err
	}

	if err := item.Cancel(); err != nil {
		return auction.Auction{}, err
	}

	updated, err := s.save(ctx, item)
	if err != nil {
		return auction.Auction{}, err
	}

	s.logger.InfoContext(ctx, "auction cancelled", "auction_id", item.ID)

	return updated, nil
}

// GetHistory returns the league's ended auctions. The projection is
// cached briefly; every accepted mutation invalidates it.
func (s *AuctionService) GetHistory(ctx context.Context, leagueID string) ([]auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.GetHistory")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		items, err := s.auctionRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("list auctions: %w", err)
		}

		ended := make([]auction.Auction, 0, len(items))
		for _, a := range items {
			if a.Status == auction.StatusEnded {
				ended = append(ended, a)
			}
		}
		return ended, nil
	}

	if s.history == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]auction.Auction), nil
	}

	value, err := s.history.GetOrLoad(ctx, historyCacheKey(leagueID), load)
	if err != nil {
		return nil, err
	}

	return value.([]auction.Auction), nil
}

// GetTeamHistory returns the league's ended auctions the team bid in.
func (s *AuctionService) GetTeamHistory(ctx context.Context, leagueID, teamID string) ([]auction.Auction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.GetTeamHistory")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	ended, err := s.GetHistory(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	out := make([]auction.Auction, 0, len(ended))
	for _, a := range ended {
		if a.HasBidFrom(teamID) {
			out = append(out, a)
		}
	}

	return out, nil
}

func (s *AuctionService) loadAuction(ctx context.Context, auctionID string) (auction.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return auction.Auction{}, fmt.Errorf("%w: auction id is required", ErrInvalidInput)
	}

	item, exists, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return auction.Auction{}, fmt.Errorf("get auction: %w", err)
	}
	if !exists {
		return auction.Auction{}, fmt.Errorf("%w: %s", auction.ErrAuctionNotFound, auctionID)
	}

	return item, nil
}

func (s *AuctionService) save(ctx context.Context, item auction.Auction) (auction.Auction, error) {
	if err := s.auctionRepo.Save(ctx, item); err != nil {
		return auction.Auction{}, fmt.Errorf("save auction: %w", err)
	}
	item.Version++

	if s.history != nil {
		s.history.Delete(ctx, historyCacheKey(item.LeagueID))
	}

	return item, nil
}

func historyCacheKey(leagueID string) string {
	return "auction-history::" + leagueID
}
