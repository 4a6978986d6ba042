package atm

import (
	"fmt"

	"github.com/carson-networks/atm-server/internal/bank"
	"github.com/carson-networks/atm-server/internal/cash"
)

// process dispatches the transaction to its handler. A nil return means the
// transaction succeeded; any error is a soft business failure recorded on
// the transaction.
func (s *Session) process(tx *Transaction, account *bank.Account) error {
	switch tx.Type {
	case TransactionTypeBalanceInquiry:
		// Read-only; touches neither the account nor the inventory.
		return nil
	case TransactionTypeWithdrawal:
		return s.processWithdrawal(tx, account)
	case TransactionTypeDeposit:
		return s.processDeposit(tx, account)
	case TransactionTypeTransfer:
		return s.processTransfer(tx, account)
	default:
		return fmt.Errorf("unsupported transaction type %d", tx.Type)
	}
}

// processWithdrawal debits the account and dispenses notes. Dispensability
// is checked before the debit so an infeasible amount never touches the
// account; if another session drains the notes between the check and the
// dispense, the debit is re-credited so neither subsystem ends up mutated.
func (s *Session) processWithdrawal(tx *Transaction, account *bank.Account) error {
	if !s.inventory.CanDispense(tx.Amount) {
		return fmt.Errorf("%w: %s", cash.ErrCannotDispense, tx.Amount.StringFixed(2))
	}
	if err := account.Withdraw(tx.Amount); err != nil {
		return err
	}
	notes, err := s.inventory.Dispense(tx.Amount)
	if err != nil {
		if depErr := account.Deposit(tx.Amount); depErr != nil {
			s.log.WithError(depErr).Error("Session.Withdrawal.RecreditFailed")
		}
		return err
	}
	s.log.WithField("notes", notes).Info("Session.Withdrawal.Dispensed")
	return nil
}

// processDeposit accepts cash through the slot and credits the account. The
// slot is emptied whether or not the credit succeeds.
func (s *Session) processDeposit(tx *Transaction, account *bank.Account) error {
	s.depositSlot.Accept(tx.Amount)
	defer s.depositSlot.Reset()
	return account.Deposit(tx.Amount)
}

// processTransfer debits the source and credits the target. The two account
// locks are taken one after the other, never together, so cross-account
// transfers cannot deadlock. The target credit has no rollback path: a
// positive-amount deposit into a resolved account cannot fail in this model.
func (s *Session) processTransfer(tx *Transaction, account *bank.Account) error {
	target, err := s.directory.Lookup(tx.TargetAccountID)
	if err != nil {
		return fmt.Errorf("target %w", err)
	}
	if err := account.Withdraw(tx.Amount); err != nil {
		return err
	}
	return target.Deposit(tx.Amount)
}
