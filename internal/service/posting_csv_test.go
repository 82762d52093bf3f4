package service_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/internal/repository"
	"github.com/tirasundara/ledger-posting-service/internal/service"
	"github.com/tirasundara/ledger-posting-service/internal/store"
)

// End-to-end pass over the CSV fixtures: group 100 balances and posts,
// 101 references an unknown account, 102 is unbalanced.
func TestRun_OverCSVStores(t *testing.T) {
	queueRepo := repository.NewCSVQueueRepository("../../test/testdata/pending_transactions.csv", "", zerolog.Nop())
	require.NoError(t, queueRepo.Load())

	ledgerRepo := repository.NewCSVLedgerRepository(
		"../../test/testdata/accounts.csv",
		"../../test/testdata/account_types.csv",
		zerolog.Nop(),
	)
	require.NoError(t, ledgerRepo.Load())

	history := store.NewMemoryHistory()
	errLog := store.NewMemoryErrorLog()

	svc := service.NewPostingService(queueRepo, ledgerRepo, history, errLog, zerolog.Nop())

	result, err := svc.Run()
	require.NoError(t, err)

	assert.Equal(t, 3, result.GroupsSeen)
	assert.Equal(t, 1, result.GroupsPosted)
	assert.Equal(t, 2, result.GroupsRejected)
	assert.Equal(t, 1, result.RejectionsByKind[domain.KindInvalidAccountNumber])
	assert.Equal(t, 1, result.RejectionsByKind[domain.KindUnbalancedEntry])

	accountA1, err := ledgerRepo.GetAccount("A1")
	require.NoError(t, err)
	assert.True(t, accountA1.Balance.Equal(decimal.NewFromInt(150)))

	accountA2, err := ledgerRepo.GetAccount("A2")
	require.NoError(t, err)
	assert.True(t, accountA2.Balance.Equal(decimal.NewFromInt(150)))

	require.Len(t, history.History, 1)
	assert.Equal(t, "100", history.History[0].TrxNo)
	assert.Len(t, history.Details, 2)
	assert.Len(t, errLog.Entries, 2)

	// Rejected groups stay queued
	refs, err := queueRepo.DistinctTransactions()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "101", refs[0].TrxNo)
	assert.Equal(t, "102", refs[1].TrxNo)
}
