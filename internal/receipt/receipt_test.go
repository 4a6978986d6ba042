package receipt

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/bank"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func successfulTransaction(txType atm.TransactionType, amount, target string) *atm.Transaction {
	tx := atm.NewTransaction(txType, decimal.RequireFromString(amount), "ACC001", target, testNow)
	tx.Status = atm.TransactionStatusSuccess
	return tx
}

func TestFormat_Withdrawal(t *testing.T) {
	account := bank.NewAccount("ACC001", "John Doe", decimal.RequireFromString("4720.00"), "1234")
	tx := successfulTransaction(atm.TransactionTypeWithdrawal, "280", "")

	out := Format(tx, account)
	assert.Contains(t, out, "TRANSACTION RECEIPT")
	assert.Contains(t, out, "Type: WITHDRAWAL")
	assert.Contains(t, out, "Amount Withdrawn: $280.00")
	assert.Contains(t, out, "Remaining Balance: $4720.00")
	assert.Contains(t, out, "Status: SUCCESS")
	assert.Contains(t, out, "Date: 2026-09-01 12:00:00")
}

func TestFormat_BalanceInquiry(t *testing.T) {
	account := bank.NewAccount("ACC001", "John Doe", decimal.RequireFromString("5000.00"), "1234")
	tx := successfulTransaction(atm.TransactionTypeBalanceInquiry, "0", "")

	out := Format(tx, account)
	assert.Contains(t, out, "Current Balance: $5000.00")
	assert.NotContains(t, out, "Withdrawn")
}

func TestFormat_Transfer(t *testing.T) {
	account := bank.NewAccount("ACC001", "John Doe", decimal.RequireFromString("4800.00"), "1234")
	tx := successfulTransaction(atm.TransactionTypeTransfer, "200", "ACC002")

	out := Format(tx, account)
	assert.Contains(t, out, "Amount Transferred: $200.00")
	assert.Contains(t, out, "To Account: ACC002")
}

func TestFormat_Deposit(t *testing.T) {
	account := bank.NewAccount("ACC002", "Jane Smith", decimal.RequireFromString("3500.00"), "5678")
	tx := successfulTransaction(atm.TransactionTypeDeposit, "500", "")

	out := Format(tx, account)
	assert.Contains(t, out, "Amount Deposited: $500.00")
	assert.Contains(t, out, "New Balance: $3500.00")
}

func TestSpool_PrintsQueuedReceipts(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	spool := NewSpool(&buf, logger, 1)
	spool.Start()

	account := bank.NewAccount("ACC001", "John Doe", decimal.RequireFromString("4720.00"), "1234")
	spool.Present(successfulTransaction(atm.TransactionTypeWithdrawal, "280", ""), account)
	spool.Present(successfulTransaction(atm.TransactionTypeBalanceInquiry, "0", ""), account)

	spool.Stop()

	out := buf.String()
	assert.Contains(t, out, "Amount Withdrawn: $280.00")
	assert.Contains(t, out, "Current Balance: $4720.00")
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("TRANSACTION RECEIPT")))

	// Stop twice is safe.
	spool.Stop()
}
