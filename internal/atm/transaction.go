package atm

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType identifies the operation a session executes.
type TransactionType int8

const (
	TransactionTypeBalanceInquiry TransactionType = iota
	TransactionTypeWithdrawal
	TransactionTypeDeposit
	TransactionTypeTransfer
)

// String returns the transaction type name.
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeBalanceInquiry:
		return "BALANCE_INQUIRY"
	case TransactionTypeWithdrawal:
		return "WITHDRAWAL"
	case TransactionTypeDeposit:
		return "DEPOSIT"
	case TransactionTypeTransfer:
		return "TRANSFER"
	default:
		return "UNKNOWN"
	}
}

// ParseTransactionType parses a transaction type name.
func ParseTransactionType(raw string) (TransactionType, error) {
	switch raw {
	case "BALANCE_INQUIRY":
		return TransactionTypeBalanceInquiry, nil
	case "WITHDRAWAL":
		return TransactionTypeWithdrawal, nil
	case "DEPOSIT":
		return TransactionTypeDeposit, nil
	case "TRANSFER":
		return TransactionTypeTransfer, nil
	default:
		return 0, fmt.Errorf("unknown transaction type %q", raw)
	}
}

// TransactionStatus is the outcome of an execution attempt. It moves from
// PENDING to exactly one of SUCCESS or FAILED.
type TransactionStatus int8

const (
	TransactionStatusPending TransactionStatus = iota
	TransactionStatusSuccess
	TransactionStatusFailed
)

// String returns the status name.
func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusPending:
		return "PENDING"
	case TransactionStatusSuccess:
		return "SUCCESS"
	case TransactionStatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Transaction records one execution attempt. It is created PENDING, has its
// status finalized once, and never changes after being appended to the
// session history.
type Transaction struct {
	ID              uuid.UUID
	Type            TransactionType
	Amount          decimal.Decimal
	SourceAccountID string
	TargetAccountID string
	CreatedAt       time.Time
	Status          TransactionStatus
	Description     string
}

// NewTransaction creates a PENDING transaction record.
func NewTransaction(txType TransactionType, amount decimal.Decimal, sourceAccountID, targetAccountID string, at time.Time) *Transaction {
	return &Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		Type:            txType,
		Amount:          amount,
		SourceAccountID: sourceAccountID,
		TargetAccountID: targetAccountID,
		CreatedAt:       at,
		Status:          TransactionStatusPending,
	}
}

// finalize moves the record to its terminal status. A record that already
// left PENDING keeps its first outcome.
func (t *Transaction) finalize(status TransactionStatus, description string) {
	if t.Status != TransactionStatusPending {
		return
	}
	t.Status = status
	t.Description = description
}
