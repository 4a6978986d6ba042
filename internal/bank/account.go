// Package bank holds the shared ledger ATM sessions draw on: accounts with
// PIN verification and lockout, issued cards, and the directory resolving
// identifiers to both.
package bank

import (
	"sync"

	"github.com/shopspring/decimal"
)

// MaxPINAttempts is the number of consecutive failed PIN validations after
// which an account locks for the lifetime of the process. There is no
// automatic unlock.
const MaxPINAttempts = 3

// Account is a bank account reachable from ATM sessions. A per-account mutex
// keeps every check-then-mutate sequence atomic with respect to other
// sessions touching the same account.
type Account struct {
	mu             sync.Mutex
	id             string
	holderName     string
	balance        decimal.Decimal
	pin            string
	locked         bool
	failedAttempts int
}

// NewAccount creates an account with the given opening balance and PIN.
func NewAccount(id, holderName string, balance decimal.Decimal, pin string) *Account {
	return &Account{
		id:         id,
		holderName: holderName,
		balance:    balance,
		pin:        pin,
	}
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// HolderName returns the account holder's name.
func (a *Account) HolderName() string { return a.holderName }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Locked reports whether PIN validation is disabled for this account.
func (a *Account) Locked() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.locked
}

// AttemptsRemaining returns how many PIN attempts remain before lockout.
func (a *Account) AttemptsRemaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.locked {
		return 0
	}
	return MaxPINAttempts - a.failedAttempts
}

// ValidatePIN checks the input against the account PIN. A locked account
// fails closed without counting an attempt. A match resets the failed-attempt
// counter; a mismatch increments it and locks the account once the counter
// reaches MaxPINAttempts.
func (a *Account) ValidatePIN(input string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.locked {
		return false
	}
	if a.pin == input {
		a.failedAttempts = 0
		return true
	}
	a.failedAttempts++
	if a.failedAttempts >= MaxPINAttempts {
		a.locked = true
	}
	return false
}

// Withdraw debits amount from the balance. It fails without mutation when
// amount is not positive or exceeds the balance, so the balance never goes
// negative.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Deposit credits amount to the balance. It fails without mutation when
// amount is not positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	a.balance = a.balance.Add(amount)
	return nil
}
