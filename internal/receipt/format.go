// Package receipt renders and delivers receipts for successful
// transactions.
package receipt

import (
	"fmt"
	"strings"

	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/bank"
)

const receiptWidth = 40

// Format renders the printed receipt for a finished transaction. The account
// is read for the post-transaction balance, which is what the customer sees
// on paper.
func Format(tx *atm.Transaction, account *bank.Account) string {
	var b strings.Builder
	heavy := strings.Repeat("=", receiptWidth)
	light := strings.Repeat("-", receiptWidth)

	fmt.Fprintln(&b, heavy)
	fmt.Fprintln(&b, "           TRANSACTION RECEIPT")
	fmt.Fprintln(&b, heavy)
	fmt.Fprintf(&b, "Date: %s\n", tx.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Transaction ID: %s\n", tx.ID)
	fmt.Fprintf(&b, "Type: %s\n", tx.Type)
	fmt.Fprintln(&b, light)

	balance := account.Balance().StringFixed(2)
	switch tx.Type {
	case atm.TransactionTypeBalanceInquiry:
		fmt.Fprintf(&b, "Current Balance: $%s\n", balance)
	case atm.TransactionTypeWithdrawal:
		fmt.Fprintf(&b, "Amount Withdrawn: $%s\n", tx.Amount.StringFixed(2))
		fmt.Fprintf(&b, "Remaining Balance: $%s\n", balance)
	case atm.TransactionTypeDeposit:
		fmt.Fprintf(&b, "Amount Deposited: $%s\n", tx.Amount.StringFixed(2))
		fmt.Fprintf(&b, "New Balance: $%s\n", balance)
	case atm.TransactionTypeTransfer:
		fmt.Fprintf(&b, "Amount Transferred: $%s\n", tx.Amount.StringFixed(2))
		fmt.Fprintf(&b, "To Account: %s\n", tx.TargetAccountID)
		fmt.Fprintf(&b, "Remaining Balance: $%s\n", balance)
	}

	fmt.Fprintln(&b, light)
	fmt.Fprintf(&b, "Status: %s\n", tx.Status)
	fmt.Fprintln(&b, heavy)
	fmt.Fprintln(&b, "Thank you for using our ATM!")
	fmt.Fprintln(&b, heavy)
	return b.String()
}
