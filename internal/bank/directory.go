package bank

import "sync"

// Directory maps account identifiers to accounts and card numbers to issued
// cards. It stands in for the bank's backend directory and is safe for
// concurrent use.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	cards    map[string]*Card
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		accounts: make(map[string]*Account),
		cards:    make(map[string]*Card),
	}
}

// AddAccount registers an account under its identifier.
func (d *Directory) AddAccount(a *Account) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[a.ID()] = a
}

// AddCard registers an issued card under its number.
func (d *Directory) AddCard(c *Card) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cards[c.Number] = c
}

// Lookup resolves an account identifier.
func (d *Directory) Lookup(accountID string) (*Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// LookupCard resolves a card number to an issued card.
func (d *Directory) LookupCard(number string) (*Card, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.cards[number]
	if !ok {
		return nil, ErrCardNotFound
	}
	return c, nil
}

// Exists reports whether an account identifier resolves.
func (d *Directory) Exists(accountID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.accounts[accountID]
	return ok
}
