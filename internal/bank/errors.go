package bank

import "errors"

var (
	// ErrAmountNotPositive means a withdraw or deposit was requested with a
	// zero or negative amount.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrInsufficientFunds means a withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound means the account identifier does not resolve.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCardNotFound means the card number has not been issued.
	ErrCardNotFound = errors.New("card not found")
)
