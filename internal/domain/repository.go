package domain

import "github.com/shopspring/decimal"

// QueueStore defines the interface for accessing pending transaction lines
type QueueStore interface {
	// DistinctTransactions enumerates each queued transaction group exactly
	// once. Callers may not rely on the order of the returned refs.
	DistinctTransactions() ([]TransactionRef, error)

	// LinesFor returns all queued lines sharing the given transaction number
	LinesFor(trxNo string) ([]TransactionLine, error)

	// Delete removes every line of the given transaction group from the queue
	Delete(trxNo string) error
}

// LedgerStore defines the interface for account lookups and balance updates
type LedgerStore interface {
	// GetAccount resolves an account by number, returning ErrAccountNotFound
	// (possibly wrapped) when no such account exists
	GetAccount(accountNo string) (Account, error)

	// GetAccountType resolves account type reference data by code
	GetAccountType(code string) (AccountType, error)

	// UpdateBalance replaces the balance of an existing account
	UpdateBalance(accountNo string, newBalance decimal.Decimal) error
}

// HistoryStore is the append-only sink for posted transactions. Append-only
// applies to posted groups: EvictGroup exists so a commit that faults midway
// can take back entries for a group that was never durably posted.
type HistoryStore interface {
	AppendHistory(entry TransactionHistoryEntry) error
	AppendDetail(entry TransactionDetailEntry) error

	// EvictGroup discards any entries appended for the given transaction
	// group during a commit that did not complete
	EvictGroup(trxNo string)
}

// ErrorLog is the append-only sink for rejected transactions. Entries are
// never mutated or deleted by the posting batch.
type ErrorLog interface {
	Append(entry ErrorLogEntry) error
}
