// Package validator checks the structural validity of a single queued
// transaction line against the ledger. It has no side effects; posting
// decisions belong to the service layer.
package validator

import (
	"errors"
	"fmt"

	"github.com/tirasundara/ledger-posting-service/internal/domain"
)

// Resolved carries the ledger records a valid line refers to
type Resolved struct {
	Account     domain.Account
	AccountType domain.AccountType
}

// ValidateLine checks one line in fixed precedence: transaction type first,
// then amount sign, then account existence. The first violated check
// determines the returned error; later checks are not evaluated.
func ValidateLine(line domain.TransactionLine, ledger domain.LedgerStore) (Resolved, error) {
	if !line.Type.Valid() {
		return Resolved{}, domain.NewPostingError(domain.KindInvalidTransactionType,
			"transaction type %q is not DEBIT or CREDIT", string(line.Type))
	}

	if line.Amount.IsNegative() {
		return Resolved{}, domain.NewPostingError(domain.KindNegativeAmount,
			"amount %s is negative", line.Amount)
	}

	account, err := ledger.GetAccount(line.AccountNo)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Resolved{}, domain.NewPostingError(domain.KindInvalidAccountNumber,
				"account %s not found", line.AccountNo)
		}
		return Resolved{}, fmt.Errorf("looking up account %s: %w", line.AccountNo, err)
	}

	accountType, err := ledger.GetAccountType(account.TypeCode)
	if err != nil {
		// Reference data missing for an existing account is data corruption,
		// not a line validation failure
		return Resolved{}, fmt.Errorf("looking up account type %s: %w", account.TypeCode, err)
	}

	return Resolved{Account: account, AccountType: accountType}, nil
}
