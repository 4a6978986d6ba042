package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Provision describes the accounts, cards, and cash inventory the machine
// starts with.
type Provision struct {
	Accounts []ProvisionAccount `yaml:"accounts"`
	Cards    []ProvisionCard    `yaml:"cards"`
	Cash     map[int]int        `yaml:"cash"`
}

// ProvisionAccount is one account entry in the provisioning file.
type ProvisionAccount struct {
	ID     string `yaml:"id"`
	Holder string `yaml:"holder"`
	// Balance is a decimal string, e.g. "5000.00".
	Balance string `yaml:"balance"`
	PIN     string `yaml:"pin"`
}

// ProvisionCard is one issued card in the provisioning file.
type ProvisionCard struct {
	Number    string    `yaml:"number"`
	Holder    string    `yaml:"holder"`
	Type      string    `yaml:"type"`
	ExpiresAt time.Time `yaml:"expires_at"`
	AccountID string    `yaml:"account_id"`
}

// LoadProvision reads a provisioning YAML file, or returns the built-in
// default dataset when path is empty.
func LoadProvision(path string) (*Provision, error) {
	if path == "" {
		return DefaultProvision(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read provision file: %w", err)
	}

	var prov Provision
	if err := yaml.Unmarshal(data, &prov); err != nil {
		return nil, fmt.Errorf("parse provision file: %w", err)
	}
	return &prov, nil
}

// DefaultProvision is the standard demo dataset: three accounts, two debit
// cards, and a full cash drawer.
func DefaultProvision() *Provision {
	expiry := time.Now().AddDate(3, 0, 0)
	return &Provision{
		Accounts: []ProvisionAccount{
			{ID: "ACC001", Holder: "John Doe", Balance: "5000.00", PIN: "1234"},
			{ID: "ACC002", Holder: "Jane Smith", Balance: "3000.00", PIN: "5678"},
			{ID: "ACC003", Holder: "Bob Wilson", Balance: "10000.00", PIN: "9999"},
		},
		Cards: []ProvisionCard{
			{Number: "1234567890123456", Holder: "John Doe", Type: "DEBIT", ExpiresAt: expiry, AccountID: "ACC001"},
			{Number: "9876543210987654", Holder: "Jane Smith", Type: "DEBIT", ExpiresAt: expiry, AccountID: "ACC002"},
		},
		Cash: map[int]int{100: 100, 50: 200, 20: 500, 10: 500},
	}
}
