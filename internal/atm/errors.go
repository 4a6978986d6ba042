package atm

import "errors"

// Precondition errors: the requested event is not valid in the current
// state. The session state is unchanged when one of these is returned.
var (
	ErrCardAlreadyInserted   = errors.New("a card is already inserted")
	ErrCardExpired           = errors.New("card is expired")
	ErrNoCardInserted        = errors.New("insert card first")
	ErrPINNotVerified        = errors.New("enter PIN first")
	ErrPINAlreadyVerified    = errors.New("PIN already verified")
	ErrNoTransactionSelected = errors.New("select a transaction type first")
	ErrSessionBusy           = errors.New("transaction in progress")
)

// Authentication errors. ErrAccountLocked and a missing linked account force
// an eject back to idle.
var (
	ErrInvalidPIN    = errors.New("invalid PIN")
	ErrAccountLocked = errors.New("account locked after too many failed attempts")
)
