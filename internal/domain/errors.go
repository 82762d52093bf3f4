package domain

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound is returned by LedgerStore lookups for unknown accounts
var ErrAccountNotFound = errors.New("account not found")

// ErrorKind classifies why a transaction group was rejected
type ErrorKind string

const (
	// KindMissingTrxNo rejects a group whose transaction number is absent
	KindMissingTrxNo ErrorKind = "MISSING_TRANSACTION_NUMBER"
	// KindInvalidTransactionType rejects a line whose type is not DEBIT or CREDIT
	KindInvalidTransactionType ErrorKind = "INVALID_TRANSACTION_TYPE"
	// KindNegativeAmount rejects a line with a negative amount
	KindNegativeAmount ErrorKind = "NEGATIVE_AMOUNT"
	// KindInvalidAccountNumber rejects a line referencing an unknown account
	KindInvalidAccountNumber ErrorKind = "INVALID_ACCOUNT_NUMBER"
	// KindUnbalancedEntry rejects a group whose debit and credit totals differ
	KindUnbalancedEntry ErrorKind = "UNBALANCED_ENTRY"
	// KindUnexpectedError rejects a group on any fault outside the taxonomy above
	KindUnexpectedError ErrorKind = "UNEXPECTED_ERROR"
)

// PostingError is a group-scoped rejection reason. Detail carries the
// offending value (account number, amount, or type) where applicable.
type PostingError struct {
	Kind   ErrorKind
	Detail string
}

// Error returns the formatted rejection message
func (e PostingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// NewPostingError creates a PostingError with the given kind and detail
func NewPostingError(kind ErrorKind, format string, args ...any) error {
	return PostingError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind from err. Errors outside the posting
// taxonomy are classified as unexpected.
func KindOf(err error) ErrorKind {
	var pe PostingError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnexpectedError
}
