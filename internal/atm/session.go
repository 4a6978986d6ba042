// Package atm implements one automated teller machine: the session state
// machine that carries a customer from card insertion through PIN entry,
// transaction selection, and execution, and the transaction records each
// attempt leaves behind. Shared resources (the account ledger and the cash
// inventory) live in their own packages and carry their own locks.
package atm

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/bank"
)

// State identifies the session's position in the event cycle. Idle is
// initial; there is no terminal state, the machine cycles for its lifetime.
type State int8

const (
	StateIdle State = iota
	StateCardInserted
	StatePINVerified
	StateTransactionSelected
	StateProcessing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateCardInserted:
		return "CARD_INSERTED"
	case StatePINVerified:
		return "PIN_VERIFIED"
	case StateTransactionSelected:
		return "TRANSACTION_SELECTED"
	case StateProcessing:
		return "PROCESSING"
	default:
		return "UNKNOWN"
	}
}

// AccountDirectory resolves account identifiers to accounts.
type AccountDirectory interface {
	Lookup(accountID string) (*bank.Account, error)
}

// CashDispenser resolves withdrawal amounts into notes.
type CashDispenser interface {
	CanDispense(amount decimal.Decimal) bool
	Dispense(amount decimal.Decimal) (map[int]int, error)
}

// Presenter receives each successful transaction together with the account
// it ran against, for receipt presentation.
type Presenter interface {
	Present(tx *Transaction, account *bank.Account)
}

// SessionConfig carries the collaborators a session is wired with.
type SessionConfig struct {
	ATMID     string
	Location  string
	Directory AccountDirectory
	Inventory CashDispenser
	Presenter Presenter
	Clock     Clock
	Logger    *logrus.Logger
}

// Session drives one ATM interaction from card insertion to ejection.
// Events are validated against the current state; invalid events leave the
// state unchanged and report a precondition error. The session mutex guards
// only the transient fields and is released while a transaction executes, so
// concurrent events during PROCESSING are rejected as busy rather than
// silently serialized.
type Session struct {
	atmID       string
	location    string
	directory   AccountDirectory
	inventory   CashDispenser
	depositSlot *DepositSlot
	presenter   Presenter
	clock       Clock
	log         *logrus.Logger

	mu          sync.Mutex
	state       State
	card        *bank.Card
	account     *bank.Account
	selected    TransactionType
	hasSelected bool
	history     []*Transaction
}

// NewSession creates an idle session. Clock and Logger default to the system
// clock and a standard logger when unset.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &Session{
		atmID:       cfg.ATMID,
		location:    cfg.Location,
		directory:   cfg.Directory,
		inventory:   cfg.Inventory,
		depositSlot: &DepositSlot{},
		presenter:   cfg.Presenter,
		clock:       cfg.Clock,
		log:         cfg.Logger,
		state:       StateIdle,
	}
}

// InsertCard accepts a card while idle. Expired cards and double insertion
// are rejected.
func (s *Session) InsertCard(card *bank.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateIdle:
	case StateProcessing:
		return ErrSessionBusy
	default:
		return ErrCardAlreadyInserted
	}
	if card.Expired(s.clock.Now()) {
		s.log.WithField("card", card.MaskedNumber()).Warn("Session.InsertCard.Expired")
		return ErrCardExpired
	}
	s.card = card
	s.state = StateCardInserted
	s.log.WithField("card", card.MaskedNumber()).Info("Session.InsertCard.Accepted")
	return nil
}

// EnterPIN validates the PIN against the account linked to the inserted
// card. A missing linked account or a lockout forces an eject back to idle;
// a plain mismatch keeps the card inserted with fewer attempts remaining.
func (s *Session) EnterPIN(pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateCardInserted:
	case StateIdle:
		return ErrNoCardInserted
	case StateProcessing:
		return ErrSessionBusy
	default:
		return ErrPINAlreadyVerified
	}

	account, err := s.directory.Lookup(s.card.AccountID)
	if err != nil {
		s.log.WithField("account", s.card.AccountID).Error("Session.EnterPIN.AccountNotFound")
		s.ejectLocked()
		return err
	}

	if account.ValidatePIN(pin) {
		s.account = account
		s.state = StatePINVerified
		s.log.WithField("holder", account.HolderName()).Info("Session.EnterPIN.Verified")
		return nil
	}

	if account.Locked() {
		s.log.WithField("account", account.ID()).Warn("Session.EnterPIN.Locked")
		s.ejectLocked()
		return ErrAccountLocked
	}

	remaining := account.AttemptsRemaining()
	s.log.WithField("attemptsRemaining", remaining).Warn("Session.EnterPIN.Invalid")
	return fmt.Errorf("%w: %d attempts remaining", ErrInvalidPIN, remaining)
}

// SelectTransaction records the transaction type to execute. Reselecting
// while one is already pending replaces it in place.
func (s *Session) SelectTransaction(txType TransactionType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StatePINVerified:
		s.selected = txType
		s.hasSelected = true
		s.state = StateTransactionSelected
		return nil
	case StateTransactionSelected:
		s.selected = txType
		return nil
	case StateIdle:
		return ErrNoCardInserted
	case StateCardInserted:
		return ErrPINNotVerified
	default:
		return ErrSessionBusy
	}
}

// Execute runs the selected transaction. The session moves to PROCESSING for
// the duration and back to PIN_VERIFIED afterward; every attempt, pass or
// fail, appends exactly one finalized record to the history. Business
// failures are soft: the record carries FAILED and the reason, and Execute
// returns the record with a nil error.
func (s *Session) Execute(amount decimal.Decimal, targetAccountID string) (*Transaction, error) {
	s.mu.Lock()
	switch s.state {
	case StateTransactionSelected:
	case StateIdle:
		s.mu.Unlock()
		return nil, ErrNoCardInserted
	case StateCardInserted:
		s.mu.Unlock()
		return nil, ErrPINNotVerified
	case StatePINVerified:
		s.mu.Unlock()
		return nil, ErrNoTransactionSelected
	default:
		s.mu.Unlock()
		return nil, ErrSessionBusy
	}
	txType := s.selected
	account := s.account
	s.state = StateProcessing
	s.mu.Unlock()

	tx := NewTransaction(txType, amount, account.ID(), targetAccountID, s.clock.Now())
	err := s.process(tx, account)
	if err != nil {
		tx.finalize(TransactionStatusFailed, err.Error())
		s.log.WithError(err).WithFields(logrus.Fields{
			"transaction": tx.ID,
			"type":        tx.Type.String(),
		}).Warn("Session.Execute.Failed")
	} else {
		tx.finalize(TransactionStatusSuccess, "")
		s.log.WithFields(logrus.Fields{
			"transaction": tx.ID,
			"type":        tx.Type.String(),
		}).Info("Session.Execute.Completed")
	}

	s.mu.Lock()
	s.history = append(s.history, tx)
	s.state = StatePINVerified
	s.mu.Unlock()

	if err == nil && s.presenter != nil {
		s.presenter.Present(tx, account)
	}
	return tx, nil
}

// Cancel backs out of the current step. While a transaction type is pending
// it clears only the selection and keeps the customer authenticated;
// otherwise it ejects the card. Cancelling an idle session is a no-op.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateIdle:
		return nil
	case StateTransactionSelected:
		s.selected = 0
		s.hasSelected = false
		s.state = StatePINVerified
		s.log.Info("Session.Cancel.SelectionCleared")
		return nil
	case StateProcessing:
		return ErrSessionBusy
	default:
		s.ejectLocked()
		return nil
	}
}

// EjectCard returns the card and resets the session to idle. Rejected only
// while a transaction is processing.
func (s *Session) EjectCard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateProcessing {
		return ErrSessionBusy
	}
	s.ejectLocked()
	return nil
}

// ejectLocked clears the transient fields unconditionally and returns the
// session to idle. The caller must hold mu.
func (s *Session) ejectLocked() {
	if s.card != nil {
		s.log.WithField("card", s.card.MaskedNumber()).Info("Session.EjectCard")
	}
	s.card = nil
	s.account = nil
	s.selected = 0
	s.hasSelected = false
	s.state = StateIdle
}

// State returns the current state tag.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns a copy of the session's transaction records in execution
// order.
func (s *Session) History() []*Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Transaction, len(s.history))
	copy(out, s.history)
	return out
}

// Status is a point-in-time snapshot of the session for display.
type Status struct {
	ATMID        string
	Location     string
	State        State
	Card         string
	AccountID    string
	Transactions int
}

// Status returns a display snapshot: machine identity, state, the masked
// card number when one is inserted, and the history length.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		ATMID:        s.atmID,
		Location:     s.location,
		State:        s.state,
		Transactions: len(s.history),
	}
	if s.card != nil {
		st.Card = s.card.MaskedNumber()
	}
	if s.account != nil {
		st.AccountID = s.account.ID()
	}
	return st
}
