package auction

import (
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
)

// Status is the auction lifecycle state. Terminal states accept no
// further bids.
type Status string

const (
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Bid is an immutable offer placed by a team within an auction.
type Bid struct {
	ID        string
	AuctionID string
	TeamID    string
	TeamName  string
	Amount    int64
	BidTime   time.Time
}

// Auction is a time-boxed competitive bidding process for one player.
// MarketValue doubles as the reserve: the first accepted bid must
// strictly exceed it. Expiry is computed lazily from the caller's
// clock; nothing here runs a timer.
type Auction struct {
	ID             string
	LeagueID       string
	PlayerID       string
	PlayerName     string
	PlayerPosition player.Position
	PlayerTeam     string
	MarketValue    int64
	Bids           []Bid
	StartDate      time.Time
	EndDate        time.Time
	Status         Status
	WinningTeamID  string
	Version        int64
}

// CurrentHighestBid is the maximum bid amount, defaulting to the
// market value while no bids exist.
func (a Auction) CurrentHighestBid() int64 {
	if bid, ok := a.HighestBid(); ok {
		return bid.Amount
	}

	return a.MarketValue
}

// HighestBid returns the highest bid on record. Accepted bids are
// strictly increasing so amounts cannot tie, but if a stored snapshot
// ever carries equal amounts the earliest-inserted bid wins.
func (a Auction) HighestBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}

	best := a.Bids[0]
	for _, b := range a.Bids[1:] {
		if b.Amount > best.Amount {
			best = b
		}
	}

	return best, true
}

// IsActive reports whether the auction still accepts bids at the
// given instant.
func (a Auction) IsActive(now time.Time) bool {
	return a.Status == StatusActive && now.Before(a.EndDate)
}

// TimeRemaining may be negative once expired; callers treat negative
// as zero remaining.
func (a Auction) TimeRemaining(now time.Time) time.Duration {
	return a.EndDate.Sub(now)
}

// HasBidFrom reports whether the team placed at least one bid.
func (a Auction) HasBidFrom(teamID string) bool {
	for _, b := range a.Bids {
		if b.TeamID == teamID {
			return true
		}
	}

	return false
}
