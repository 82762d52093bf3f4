// Package poster computes the balance effect of a validated line. Effects
// are staged in memory and applied to the ledger only when the whole group
// commits, so a later failure in the same group discards them for free.
package poster

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
)

// StagedEffect is a computed mutation held in memory until group commit
type StagedEffect struct {
	AccountNo  string
	NewBalance decimal.Decimal
	Detail     domain.TransactionDetailEntry
}

// Stage computes the staged effect of one validated line. The account's
// Balance field must already reflect any effects staged earlier in the same
// group, so two lines touching one account compose correctly.
//
// A line whose type matches the account type's default transaction type
// increases the balance; any other line decreases it.
func Stage(line domain.TransactionLine, account domain.Account, accountType domain.AccountType) StagedEffect {
	delta := line.Amount
	if line.Type != accountType.DefaultTransType {
		delta = delta.Neg()
	}

	return StagedEffect{
		AccountNo:  account.AccountNo,
		NewBalance: account.Balance.Add(delta),
		Detail: domain.TransactionDetailEntry{
			AccountNo: account.AccountNo,
			TrxNo:     line.TrxNo,
			Type:      line.Type,
			Amount:    line.Amount,
		},
	}
}
