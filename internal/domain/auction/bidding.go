package auction

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrAuctionEnded         = errors.New("auction has ended")
	ErrAuctionAlreadyClosed = errors.New("auction is already closed")
	ErrBidTooLow            = errors.New("bid too low")
)

// BidTooLowError reports the minimum amount the next bid must reach.
type BidTooLowError struct {
	Minimum int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid too low: minimum is %d", e.Minimum)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// PlaceBid appends a new bid when the auction is still active and the
// amount strictly exceeds the current highest. The auction value is
// mutated in place; nothing is committed on failure.
func (a *Auction) PlaceBid(bid Bid, now time.Time) error {
	if !a.IsActive(now) {
		return fmt.Errorf("%w: %s", ErrAuctionEnded, a.ID)
	}

	if highest := a.CurrentHighestBid(); bid.Amount <= highest {
		return &BidTooLowError{Minimum: highest + 1}
	}

	bid.AuctionID = a.ID
	bid.BidTime = now
	a.Bids = append(a.Bids, bid)

	return nil
}

// Close transitions the auction to ended. A winning bid, when given,
// records the winning team; without one the player goes unsold.
func (a *Auction) Close(winningBid *Bid) error {
	if a.Status != StatusActive {
		return fmt.Errorf("%w: %s is %s", ErrAuctionAlreadyClosed, a.ID, a.Status)
	}

	a.Status = StatusEnded
	if winningBid != nil {
		a.WinningTeamID = winningBid.TeamID
	}

	return nil
}

// Cancel transitions the auction to cancelled without a winner.
func (a *Auction) Cancel() error {
	if a.Status != StatusActive {
		return fmt.Errorf("%w: %s is %s", ErrAuctionAlreadyClosed, a.ID, a.Status)
	}

	a.Status = StatusCancelled
	return nil
}
