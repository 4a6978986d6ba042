// Package cash models the machine's note inventory and the greedy
// make-change algorithm that resolves withdrawal amounts into concrete
// notes.
package cash

import (
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	// ErrCannotDispense means the inventory cannot make exact change for the
	// requested amount.
	ErrCannotDispense = errors.New("cannot dispense requested amount")

	// ErrUnknownDenomination means a restock named a denomination outside the
	// set fixed at construction.
	ErrUnknownDenomination = errors.New("unknown denomination")

	// ErrNegativeCount means a restock was requested with a negative count.
	ErrNegativeCount = errors.New("restock count must not be negative")
)

// Inventory tracks available note counts per denomination. The denomination
// set is fixed at construction; counts change only through Dispense and
// Restock and never go negative.
type Inventory struct {
	mu            sync.Mutex
	denominations []int // descending
	counts        map[int]int
}

// NewInventory builds an inventory from a denomination-to-count mapping.
// Negative counts are clamped to zero.
func NewInventory(counts map[int]int) *Inventory {
	inv := &Inventory{
		denominations: make([]int, 0, len(counts)),
		counts:        make(map[int]int, len(counts)),
	}
	for denom, count := range counts {
		if denom <= 0 {
			continue
		}
		if count < 0 {
			count = 0
		}
		inv.denominations = append(inv.denominations, denom)
		inv.counts[denom] = count
	}
	sort.Sort(sort.Reverse(sort.IntSlice(inv.denominations)))
	return inv
}

// plan runs the greedy allocation: largest denomination first, usage capped
// at the available count, never backtracking. The caller must hold mu.
//
// Greedy is deliberately not a complete change-making algorithm: it can
// report infeasibility for amounts a different note mix could satisfy, for
// example by consuming 50s first and leaving a remainder the 20s alone could
// have covered. That quirk is observed machine behavior and is pinned by
// tests; do not replace this with an optimal algorithm.
func (i *Inventory) plan(amount decimal.Decimal) (map[int]int, bool) {
	if len(i.denominations) == 0 {
		return nil, false
	}
	if amount.Sign() <= 0 || !amount.IsInteger() {
		return nil, false
	}
	remaining := int(amount.IntPart())
	smallest := i.denominations[len(i.denominations)-1]
	if remaining%smallest != 0 {
		return nil, false
	}

	notes := make(map[int]int)
	for _, denom := range i.denominations {
		used := min(remaining/denom, i.counts[denom])
		if used > 0 {
			notes[denom] = used
			remaining -= used * denom
		}
	}
	if remaining != 0 {
		return nil, false
	}
	return notes, true
}

// CanDispense reports whether the greedy allocation can make exact change
// for amount out of the current inventory.
func (i *Inventory) CanDispense(amount decimal.Decimal) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.plan(amount)
	return ok
}

// Dispense removes notes summing to amount from the inventory and returns
// the denomination counts handed out. The feasibility check and the mutation
// happen under one lock, so a confirmed plan is always the plan applied and
// two sessions can never spend the same notes. An infeasible amount fails
// with no mutation.
func (i *Inventory) Dispense(amount decimal.Decimal) (map[int]int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	notes, ok := i.plan(amount)
	if !ok {
		return nil, ErrCannotDispense
	}
	for denom, used := range notes {
		i.counts[denom] -= used
	}
	return notes, nil
}

// Restock adds count notes of the given denomination. The denomination must
// belong to the set fixed at construction.
func (i *Inventory) Restock(denomination, count int) error {
	if count < 0 {
		return ErrNegativeCount
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.counts[denomination]; !ok {
		return ErrUnknownDenomination
	}
	i.counts[denomination] += count
	return nil
}

// TotalValue returns the sum of denomination times count across the
// inventory.
func (i *Inventory) TotalValue() decimal.Decimal {
	i.mu.Lock()
	defer i.mu.Unlock()
	total := int64(0)
	for denom, count := range i.counts {
		total += int64(denom) * int64(count)
	}
	return decimal.NewFromInt(total)
}

// Counts returns a copy of the current denomination counts.
func (i *Inventory) Counts() map[int]int {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make(map[int]int, len(i.counts))
	for denom, count := range i.counts {
		out[denom] = count
	}
	return out
}
