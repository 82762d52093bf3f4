// Package store provides map-backed implementations of the posting store
// contracts. They are the reference implementation of store semantics and
// the primary fixture for service tests.
package store

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
)

// MemoryQueue holds pending transaction lines grouped by transaction number.
// Groups enumerate in first-seen insertion order; callers may not rely on it.
type MemoryQueue struct {
	mu     sync.Mutex
	order  []string
	groups map[string][]domain.TransactionLine
}

// NewMemoryQueue creates an empty in-memory queue
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{groups: make(map[string][]domain.TransactionLine)}
}

// Add appends a line to its transaction group, creating the group if needed.
// Lines without a transaction number collect under the empty key so the
// processor can reject them as a group before reading any of them.
func (q *MemoryQueue) Add(line domain.TransactionLine) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.groups[line.TrxNo]; !ok {
		q.order = append(q.order, line.TrxNo)
	}
	q.groups[line.TrxNo] = append(q.groups[line.TrxNo], line)
}

// DistinctTransactions implements domain.QueueStore
func (q *MemoryQueue) DistinctTransactions() ([]domain.TransactionRef, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	refs := make([]domain.TransactionRef, 0, len(q.order))
	for _, trxNo := range q.order {
		lines := q.groups[trxNo]
		if len(lines) == 0 {
			continue
		}
		refs = append(refs, domain.TransactionRef{
			TrxNo:       trxNo,
			TrxDate:     lines[0].TrxDate,
			Description: lines[0].Description,
		})
	}
	return refs, nil
}

// LinesFor implements domain.QueueStore
func (q *MemoryQueue) LinesFor(trxNo string) ([]domain.TransactionLine, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	lines := q.groups[trxNo]
	out := make([]domain.TransactionLine, len(lines))
	copy(out, lines)
	return out, nil
}

// Delete implements domain.QueueStore
func (q *MemoryQueue) Delete(trxNo string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.groups, trxNo)
	for i, no := range q.order {
		if no == trxNo {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of groups still queued
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.groups)
}

// MemoryLedger holds accounts and account type reference data
type MemoryLedger struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	types    map[string]domain.AccountType
}

// NewMemoryLedger creates an empty in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		accounts: make(map[string]domain.Account),
		types:    make(map[string]domain.AccountType),
	}
}

// PutAccount inserts or replaces an account
func (l *MemoryLedger) PutAccount(account domain.Account) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[account.AccountNo] = account
}

// PutAccountType inserts or replaces account type reference data
func (l *MemoryLedger) PutAccountType(accountType domain.AccountType) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.types[accountType.Code] = accountType
}

// GetAccount implements domain.LedgerStore
func (l *MemoryLedger) GetAccount(accountNo string) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[accountNo]
	if !ok {
		return domain.Account{}, fmt.Errorf("account %s: %w", accountNo, domain.ErrAccountNotFound)
	}
	return account, nil
}

// GetAccountType implements domain.LedgerStore
func (l *MemoryLedger) GetAccountType(code string) (domain.AccountType, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	accountType, ok := l.types[code]
	if !ok {
		return domain.AccountType{}, fmt.Errorf("account type %s not found", code)
	}
	return accountType, nil
}

// UpdateBalance implements domain.LedgerStore
func (l *MemoryLedger) UpdateBalance(accountNo string, newBalance decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[accountNo]
	if !ok {
		return fmt.Errorf("account %s: %w", accountNo, domain.ErrAccountNotFound)
	}
	account.Balance = newBalance
	l.accounts[accountNo] = account
	return nil
}

// MemoryHistory collects posted history and detail entries
type MemoryHistory struct {
	mu      sync.Mutex
	History []domain.TransactionHistoryEntry
	Details []domain.TransactionDetailEntry
}

// NewMemoryHistory creates an empty in-memory history sink
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

// AppendHistory implements domain.HistoryStore
func (h *MemoryHistory) AppendHistory(entry domain.TransactionHistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.History = append(h.History, entry)
	return nil
}

// AppendDetail implements domain.HistoryStore
func (h *MemoryHistory) AppendDetail(entry domain.TransactionDetailEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Details = append(h.Details, entry)
	return nil
}

// EvictGroup implements domain.HistoryStore
func (h *MemoryHistory) EvictGroup(trxNo string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	history := h.History[:0]
	for _, entry := range h.History {
		if entry.TrxNo != trxNo {
			history = append(history, entry)
		}
	}
	h.History = history

	details := h.Details[:0]
	for _, entry := range h.Details {
		if entry.TrxNo != trxNo {
			details = append(details, entry)
		}
	}
	h.Details = details
}

// MemoryErrorLog collects rejection entries
type MemoryErrorLog struct {
	mu      sync.Mutex
	Entries []domain.ErrorLogEntry
}

// NewMemoryErrorLog creates an empty in-memory error log
func NewMemoryErrorLog() *MemoryErrorLog {
	return &MemoryErrorLog{}
}

// Append implements domain.ErrorLog
func (e *MemoryErrorLog) Append(entry domain.ErrorLogEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Entries = append(e.Entries, entry)
	return nil
}
