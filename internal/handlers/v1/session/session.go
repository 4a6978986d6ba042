// Package session exposes the ATM session's inbound events over HTTP. Each
// handler drives one event; state-machine rejections map to HTTP statuses
// without disturbing the session.
package session

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/bank"
)

// sessionDriver is the slice of atm.Session the handlers drive.
type sessionDriver interface {
	InsertCard(card *bank.Card) error
	EnterPIN(pin string) error
	SelectTransaction(txType atm.TransactionType) error
	Execute(amount decimal.Decimal, targetAccountID string) (*atm.Transaction, error)
	Cancel() error
	EjectCard() error
	Status() atm.Status
}

// cardResolver resolves a card number to an issued card.
type cardResolver interface {
	LookupCard(number string) (*bank.Card, error)
}

// SessionStateBody reports the machine state after an event.
type SessionStateBody struct {
	State string `json:"state" doc:"Session state"`
	Card  string `json:"card,omitempty" doc:"Masked card number, when inserted"`
}

// TransactionBody is the API model of a transaction record.
type TransactionBody struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	Type            string `json:"type" doc:"Transaction type"`
	Amount          string `json:"amount" doc:"Decimal amount"`
	SourceAccountID string `json:"sourceAccountId" doc:"Source account"`
	TargetAccountID string `json:"targetAccountId,omitempty" doc:"Target account, transfers only"`
	Timestamp       string `json:"timestamp" doc:"RFC3339 creation time"`
	Status          string `json:"status" doc:"SUCCESS or FAILED"`
	Description     string `json:"description,omitempty" doc:"Failure reason, when failed"`
}

func stateBody(status atm.Status) SessionStateBody {
	return SessionStateBody{State: status.State.String(), Card: status.Card}
}

func transactionBody(tx *atm.Transaction) TransactionBody {
	return TransactionBody{
		ID:              tx.ID.String(),
		Type:            tx.Type.String(),
		Amount:          tx.Amount.StringFixed(2),
		SourceAccountID: tx.SourceAccountID,
		TargetAccountID: tx.TargetAccountID,
		Timestamp:       tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Status:          tx.Status.String(),
		Description:     tx.Description,
	}
}

// mapSessionError converts session errors to HTTP errors: state-machine
// precondition violations are conflicts, authentication failures 401/403,
// failed lookups 404, structural card problems 422.
func mapSessionError(err error) error {
	switch {
	case errors.Is(err, atm.ErrSessionBusy),
		errors.Is(err, atm.ErrCardAlreadyInserted),
		errors.Is(err, atm.ErrNoCardInserted),
		errors.Is(err, atm.ErrPINNotVerified),
		errors.Is(err, atm.ErrPINAlreadyVerified),
		errors.Is(err, atm.ErrNoTransactionSelected):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, atm.ErrInvalidPIN):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, atm.ErrAccountLocked):
		return huma.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, atm.ErrCardExpired):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, bank.ErrCardNotFound), errors.Is(err, bank.ErrAccountNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "session error", err)
	}
}
