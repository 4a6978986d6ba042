package bank

import (
	"fmt"
	"time"
)

// CardType classifies an issued card.
type CardType int8

const (
	CardTypeDebit CardType = iota
	CardTypeCredit
)

// String returns the card type name.
func (t CardType) String() string {
	switch t {
	case CardTypeDebit:
		return "DEBIT"
	case CardTypeCredit:
		return "CREDIT"
	default:
		return "UNKNOWN"
	}
}

// ParseCardType parses a card type name as used in provisioning files.
func ParseCardType(raw string) (CardType, error) {
	switch raw {
	case "DEBIT", "debit":
		return CardTypeDebit, nil
	case "CREDIT", "credit":
		return CardTypeCredit, nil
	default:
		return 0, fmt.Errorf("unknown card type %q", raw)
	}
}

// Card is issued against a single account and is immutable after issuance.
type Card struct {
	Number     string
	HolderName string
	Type       CardType
	ExpiresAt  time.Time
	AccountID  string
}

// Expired reports whether now is past the card's expiry date.
func (c *Card) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// MaskedNumber returns the card number with all but the last four digits
// hidden, for logs and displays.
func (c *Card) MaskedNumber() string {
	if len(c.Number) < 4 {
		return "****"
	}
	return "****-****-****-" + c.Number[len(c.Number)-4:]
}
