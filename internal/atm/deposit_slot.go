package atm

import (
	"sync"

	"github.com/shopspring/decimal"
)

// DepositSlot holds cash accepted during a deposit until the amount has been
// credited, then is reset for the next customer.
type DepositSlot struct {
	mu     sync.Mutex
	amount decimal.Decimal
}

// Accept records cash placed in the slot.
func (s *DepositSlot) Accept(amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount = amount
}

// Amount returns the cash currently in the slot.
func (s *DepositSlot) Amount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.amount
}

// Reset empties the slot.
func (s *DepositSlot) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount = decimal.Zero
}
