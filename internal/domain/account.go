package domain

import "github.com/shopspring/decimal"

// Account represents a ledger account. Balance is mutated only at group
// commit time, exactly once per posted line touching the account.
type Account struct {
	AccountNo string
	Balance   decimal.Decimal
	TypeCode  string
}

// AccountType is read-only reference data. DefaultTransType defines which
// transaction type increases the balance for accounts of this type: a line
// whose type matches it adds its amount, any other line subtracts it.
type AccountType struct {
	Code             string
	DefaultTransType TransactionType
}
