// Package model defines the domain types shared across monee.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical ledger date format.
const DateLayout = "2006-01-02"

// ImportCategory is assigned to every record that arrives through a CSV import.
const ImportCategory = "General"

// TransactionType indicates the direction of money for a ledger entry.
type TransactionType string

const (
	// TransactionExpense represents money leaving the account.
	TransactionExpense TransactionType = "expense"
	// TransactionIncome represents money entering the account.
	TransactionIncome TransactionType = "income"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionExpense || t == TransactionIncome
}

// TypeForSignedAmount maps a signed source amount to a transaction type.
// Negative amounts are expenses; zero and positive amounts are income.
func TypeForSignedAmount(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TransactionExpense
	}
	return TransactionIncome
}

// Transaction represents a single ledger entry.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"`      // Always non-negative; direction lives in Type
	Date        string          `json:"date"`        // YYYY-MM-DD as received from the source
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	ID          int             `json:"id"`
}

// ParsedDate parses the stored date string. Besides the canonical layout it
// accepts RFC3339 timestamps, which some exports emit.
func (t Transaction) ParsedDate() (time.Time, error) {
	raw := strings.TrimSpace(t.Date)
	if d, err := time.Parse(DateLayout, raw); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid transaction date %q: %w", t.Date, err)
	}
	return d, nil
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionExpense
}

// Validate ensures the transaction satisfies the ledger invariants.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if _, err := t.ParsedDate(); err != nil {
		return err
	}
	return nil
}

// NextTransactionID returns max(existing ids, 0) + 1.
func NextTransactionID(transactions []Transaction) int {
	maxID := 0
	for _, tx := range transactions {
		if tx.ID > maxID {
			maxID = tx.ID
		}
	}
	return maxID + 1
}
