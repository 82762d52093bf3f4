package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

// Transaction types
const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Valid reports whether the transaction type is one of the known types
func (t TransactionType) Valid() bool {
	return t == Debit || t == Credit
}

// TransactionLine represents a single pending line in the posting queue.
// Multiple lines share a TrxNo; together they form one transaction group
// that is posted or rejected as a unit.
type TransactionLine struct {
	TrxNo       string
	TrxDate     time.Time
	Description string
	AccountNo   string
	Type        TransactionType
	Amount      decimal.Decimal
}

// TransactionRef identifies a distinct transaction group in the queue
type TransactionRef struct {
	TrxNo       string
	TrxDate     time.Time
	Description string
}

// TransactionHistoryEntry is the header row recorded once per posted group
type TransactionHistoryEntry struct {
	TrxNo       string
	TrxDate     time.Time
	Description string
}

// TransactionDetailEntry is recorded once per posted line
type TransactionDetailEntry struct {
	AccountNo string
	TrxNo     string
	Type      TransactionType
	Amount    decimal.Decimal
}

// ErrorLogEntry is recorded once per rejected group. TrxNo is empty when
// the group was rejected for a missing transaction number.
type ErrorLogEntry struct {
	TrxNo       string
	TrxDate     time.Time
	Description string
	ErrorMsg    string
}
