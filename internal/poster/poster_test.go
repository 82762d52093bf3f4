package poster_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/internal/poster"
)

func TestStage(t *testing.T) {
	account := domain.Account{AccountNo: "A1", Balance: decimal.NewFromInt(100), TypeCode: "ASSET"}
	assetType := domain.AccountType{Code: "ASSET", DefaultTransType: domain.Debit}

	tests := []struct {
		name        string
		lineType    domain.TransactionType
		amount      int64
		wantBalance int64
	}{
		{name: "matching type increases balance", lineType: domain.Debit, amount: 50, wantBalance: 150},
		{name: "opposite type decreases balance", lineType: domain.Credit, amount: 50, wantBalance: 50},
		{name: "zero amount is a no-op on balance", lineType: domain.Debit, amount: 0, wantBalance: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.TransactionLine{
				TrxNo:     "100",
				AccountNo: "A1",
				Type:      tt.lineType,
				Amount:    decimal.NewFromInt(tt.amount),
			}

			effect := poster.Stage(line, account, assetType)

			assert.Equal(t, "A1", effect.AccountNo)
			assert.True(t, effect.NewBalance.Equal(decimal.NewFromInt(tt.wantBalance)),
				"expected balance %d, got %s", tt.wantBalance, effect.NewBalance)
			assert.Equal(t, "100", effect.Detail.TrxNo)
			assert.Equal(t, tt.lineType, effect.Detail.Type)
			assert.True(t, effect.Detail.Amount.Equal(decimal.NewFromInt(tt.amount)))
		})
	}
}

// Staging never touches the ledger: the input account is copied, not mutated
func TestStage_DoesNotMutateInput(t *testing.T) {
	account := domain.Account{AccountNo: "A1", Balance: decimal.NewFromInt(100), TypeCode: "ASSET"}
	liabilityType := domain.AccountType{Code: "LIABILITY", DefaultTransType: domain.Credit}

	line := domain.TransactionLine{TrxNo: "100", AccountNo: "A1", Type: domain.Debit, Amount: decimal.NewFromInt(30)}
	effect := poster.Stage(line, account, liabilityType)

	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, effect.NewBalance.Equal(decimal.NewFromInt(70)))
}

// Two lines against one account compose when the second sees the first's
// staged balance
func TestStage_ComposesAcrossLines(t *testing.T) {
	account := domain.Account{AccountNo: "A1", Balance: decimal.NewFromInt(100), TypeCode: "ASSET"}
	assetType := domain.AccountType{Code: "ASSET", DefaultTransType: domain.Debit}

	first := poster.Stage(domain.TransactionLine{TrxNo: "100", AccountNo: "A1", Type: domain.Debit, Amount: decimal.NewFromInt(40)}, account, assetType)

	account.Balance = first.NewBalance
	second := poster.Stage(domain.TransactionLine{TrxNo: "100", AccountNo: "A1", Type: domain.Credit, Amount: decimal.NewFromInt(15)}, account, assetType)

	assert.True(t, second.NewBalance.Equal(decimal.NewFromInt(125)))
}
