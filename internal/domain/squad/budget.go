package squad

import "fmt"

// Budget tracks total/spent/remaining currency for one squad.
// Remaining is always total - spent and never goes negative: Apply
// refuses any delta that would overdraw instead of committing it.
type Budget struct {
	Total     float64
	Spent     float64
	Remaining float64
}

// NewBudget returns a fresh ledger with nothing spent. Total is fixed
// at squad creation and never changes afterwards.
func NewBudget(total float64) Budget {
	return Budget{
		Total:     total,
		Spent:     0,
		Remaining: total,
	}
}

// CanAfford reports whether applying delta keeps the ledger
// non-negative. Delta may be negative (selling a player frees budget).
func (b Budget) CanAfford(delta float64) bool {
	return b.Remaining-delta >= 0
}

// Apply debits (or credits, for negative delta) the ledger.
func (b *Budget) Apply(delta float64) error {
	if !b.CanAfford(delta) {
		return fmt.Errorf("%w: cost=%.1f remaining=%.1f", ErrInsufficientBudget, delta, b.Remaining)
	}

	b.Spent += delta
	b.Remaining = b.Total - b.Spent
	return nil
}
