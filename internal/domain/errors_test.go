package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tirasundara/ledger-posting-service/internal/domain"
)

func TestPostingError_Error(t *testing.T) {
	err := domain.NewPostingError(domain.KindInvalidAccountNumber, "account %s not found", "999")

	want := "INVALID_ACCOUNT_NUMBER: account 999 not found"
	if err.Error() != want {
		t.Errorf("Expected error message %q, got %q", want, err.Error())
	}
}

func TestKindOf(t *testing.T) {
	err := domain.NewPostingError(domain.KindNegativeAmount, "amount -50 is negative")

	if kind := domain.KindOf(err); kind != domain.KindNegativeAmount {
		t.Errorf("Expected kind NEGATIVE_AMOUNT, got %s", kind)
	}

	// Wrapped posting errors still resolve to their kind
	wrapped := fmt.Errorf("validating line: %w", err)
	if kind := domain.KindOf(wrapped); kind != domain.KindNegativeAmount {
		t.Errorf("Expected kind NEGATIVE_AMOUNT for wrapped error, got %s", kind)
	}

	// Anything outside the taxonomy is unexpected
	if kind := domain.KindOf(errors.New("disk on fire")); kind != domain.KindUnexpectedError {
		t.Errorf("Expected kind UNEXPECTED_ERROR, got %s", kind)
	}
}

func TestTransactionTypeValid(t *testing.T) {
	if !domain.Debit.Valid() || !domain.Credit.Valid() {
		t.Error("Expected DEBIT and CREDIT to be valid transaction types")
	}

	if domain.TransactionType("TRANSFER").Valid() {
		t.Error("Expected TRANSFER to be an invalid transaction type")
	}
}
