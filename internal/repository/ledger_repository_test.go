package repository_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/internal/repository"
)

const (
	accountsFixture     = "../../test/testdata/accounts.csv"
	accountTypesFixture = "../../test/testdata/account_types.csv"
)

func TestCSVLedgerRepository_Load(t *testing.T) {
	repo := repository.NewCSVLedgerRepository(accountsFixture, accountTypesFixture, zerolog.Nop())

	if err := repo.Load(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	account, err := repo.GetAccount("A1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected A1 balance 100, got %s", account.Balance)
	}
	if account.TypeCode != "ASSET" {
		t.Errorf("Expected A1 type code ASSET, got %s", account.TypeCode)
	}

	accountType, err := repo.GetAccountType("LIABILITY")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if accountType.DefaultTransType != domain.Credit {
		t.Errorf("Expected LIABILITY default type CREDIT, got %s", accountType.DefaultTransType)
	}

	if _, err := repo.GetAccount("999"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}

	if _, err := repo.GetAccountType("EQUITY"); err == nil {
		t.Error("Expected error for unknown account type")
	}
}

func TestCSVLedgerRepository_UpdateAndFlush(t *testing.T) {
	repo := repository.NewCSVLedgerRepository(accountsFixture, accountTypesFixture, zerolog.Nop())
	if err := repo.Load(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := repo.UpdateBalance("A2", decimal.NewFromInt(175)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := repo.UpdateBalance("999", decimal.NewFromInt(1)); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound updating unknown account, got %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "accounts_out.csv")
	if err := repo.FlushAccounts(outPath); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	reloaded := repository.NewCSVLedgerRepository(outPath, accountTypesFixture, zerolog.Nop())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	account, _ := reloaded.GetAccount("A2")
	if !account.Balance.Equal(decimal.NewFromInt(175)) {
		t.Errorf("Expected flushed A2 balance 175, got %s", account.Balance)
	}
}
