package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/internal/poster"
	"github.com/tirasundara/ledger-posting-service/internal/validator"
)

// PostingService orchestrates one batch pass over the pending transaction
// queue. Each transaction group is posted in full or not at all: effects are
// staged in memory while the group's lines are validated, and only a group
// that passes every check touches the ledger, history, and queue stores.
type PostingService struct {
	queue   domain.QueueStore
	ledger  domain.LedgerStore
	history domain.HistoryStore
	errLog  domain.ErrorLog
	logger  zerolog.Logger
}

// NewPostingService creates a new PostingService
func NewPostingService(
	queue domain.QueueStore,
	ledger domain.LedgerStore,
	history domain.HistoryStore,
	errLog domain.ErrorLog,
	logger zerolog.Logger,
) *PostingService {
	return &PostingService{
		queue:   queue,
		ledger:  ledger,
		history: history,
		errLog:  errLog,
		logger:  logger,
	}
}

// stagedGroup accumulates the effects of one group's lines. It is built
// fresh for every group and discarded wholesale on rejection.
type stagedGroup struct {
	balances    map[string]decimal.Decimal
	details     []domain.TransactionDetailEntry
	debitTotal  decimal.Decimal
	creditTotal decimal.Decimal
}

func newStagedGroup() *stagedGroup {
	return &stagedGroup{
		balances:    make(map[string]decimal.Decimal),
		debitTotal:  decimal.Zero,
		creditTotal: decimal.Zero,
	}
}

// Run processes every distinct queued transaction group exactly once.
// A group failure is contained to that group; the batch always completes.
// The returned error is reserved for infrastructure faults that prevent the
// queue from being enumerated at all.
func (s *PostingService) Run() (domain.BatchResult, error) {
	result := domain.BatchResult{
		RunID:            uuid.NewString(),
		RejectionsByKind: make(map[domain.ErrorKind]int),
	}

	logger := s.logger.With().Str("runID", result.RunID).Logger()

	refs, err := s.queue.DistinctTransactions()
	if err != nil {
		return result, fmt.Errorf("enumerating queued transactions: %w", err)
	}

	logger.Info().Int("groups", len(refs)).Msg("posting batch started")

	for _, ref := range refs {
		outcome := s.processGroup(ref)

		result.GroupsSeen++
		if outcome.Posted {
			result.GroupsPosted++
			result.LinesPosted += outcome.LineCount
			logger.Info().Str("trxNo", outcome.TrxNo).Int("lines", outcome.LineCount).Msg("group posted")
		} else {
			result.GroupsRejected++
			result.RejectionsByKind[outcome.ErrorKind]++
			logger.Warn().Str("trxNo", outcome.TrxNo).Str("kind", string(outcome.ErrorKind)).
				Str("reason", outcome.ErrorMsg).Msg("group rejected")
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	logger.Info().Int("posted", result.GroupsPosted).Int("rejected", result.GroupsRejected).
		Msg("posting batch finished")

	return result, nil
}

// processGroup drives one group through validation, staging, the balance
// check, and commit. Any failure rejects the whole group: staged effects are
// dropped, one error-log entry is written, and the lines stay queued for
// manual remediation.
func (s *PostingService) processGroup(ref domain.TransactionRef) domain.GroupOutcome {
	if ref.TrxNo == "" {
		// Rejected before any line is read
		return s.reject(ref, 0, domain.NewPostingError(domain.KindMissingTrxNo,
			"queued lines have no transaction number"))
	}

	lines, err := s.queue.LinesFor(ref.TrxNo)
	if err != nil {
		return s.reject(ref, 0, fmt.Errorf("reading lines for transaction %s: %w", ref.TrxNo, err))
	}

	staged := newStagedGroup()

	for _, line := range lines {
		if err := s.stageLine(line, staged); err != nil {
			// First failure wins; remaining lines are not visited
			return s.reject(ref, len(lines), err)
		}
	}

	if !staged.debitTotal.Equal(staged.creditTotal) {
		return s.reject(ref, len(lines), domain.NewPostingError(domain.KindUnbalancedEntry,
			"debit total %s does not equal credit total %s", staged.debitTotal, staged.creditTotal))
	}

	if err := s.commitGroup(ref, staged); err != nil {
		return s.reject(ref, len(lines), fmt.Errorf("committing transaction %s: %w", ref.TrxNo, err))
	}

	return domain.GroupOutcome{TrxNo: ref.TrxNo, Posted: true, LineCount: len(lines)}
}

// stageLine validates one line and folds its effect into the group's staged
// state. The effective balance for an account already touched earlier in the
// group is the staged one, so repeated postings to one account compose.
func (s *PostingService) stageLine(line domain.TransactionLine, staged *stagedGroup) error {
	resolved, err := validator.ValidateLine(line, s.ledger)
	if err != nil {
		return err
	}

	account := resolved.Account
	if balance, ok := staged.balances[account.AccountNo]; ok {
		account.Balance = balance
	}

	effect := poster.Stage(line, account, resolved.AccountType)
	staged.balances[effect.AccountNo] = effect.NewBalance
	staged.details = append(staged.details, effect.Detail)

	switch line.Type {
	case domain.Debit:
		staged.debitTotal = staged.debitTotal.Add(line.Amount)
	case domain.Credit:
		staged.creditTotal = staged.creditTotal.Add(line.Amount)
	}

	return nil
}

// commitGroup durably applies a fully validated group. Balance updates are
// applied first and undone if any later step faults, and history/detail
// entries appended before a fault are evicted, so a failed commit leaves the
// ledger and sinks as they were and the group still queued; re-running the
// batch picks it up again.
func (s *PostingService) commitGroup(ref domain.TransactionRef, staged *stagedGroup) error {
	type priorBalance struct {
		accountNo string
		balance   decimal.Decimal
	}

	applied := make([]priorBalance, 0, len(staged.balances))
	appended := false
	undo := func() {
		for i := len(applied) - 1; i >= 0; i-- {
			if err := s.ledger.UpdateBalance(applied[i].accountNo, applied[i].balance); err != nil {
				s.logger.Error().Err(err).Str("trxNo", ref.TrxNo).Str("accountNo", applied[i].accountNo).
					Msg("failed to restore balance while rolling back commit")
			}
		}
		// History/detail entries appended before the fault belong to a group
		// that was never posted; take them back
		if appended {
			s.history.EvictGroup(ref.TrxNo)
		}
	}

	for accountNo, newBalance := range staged.balances {
		account, err := s.ledger.GetAccount(accountNo)
		if err != nil {
			undo()
			return fmt.Errorf("re-reading account %s: %w", accountNo, err)
		}
		if err := s.ledger.UpdateBalance(accountNo, newBalance); err != nil {
			undo()
			return fmt.Errorf("updating balance of account %s: %w", accountNo, err)
		}
		applied = append(applied, priorBalance{accountNo: accountNo, balance: account.Balance})
	}

	if err := s.history.AppendHistory(domain.TransactionHistoryEntry{
		TrxNo:       ref.TrxNo,
		TrxDate:     ref.TrxDate,
		Description: ref.Description,
	}); err != nil {
		undo()
		return fmt.Errorf("appending history: %w", err)
	}
	appended = true

	for _, detail := range staged.details {
		if err := s.history.AppendDetail(detail); err != nil {
			undo()
			return fmt.Errorf("appending detail for account %s: %w", detail.AccountNo, err)
		}
	}

	if err := s.queue.Delete(ref.TrxNo); err != nil {
		undo()
		return fmt.Errorf("deleting queued lines: %w", err)
	}

	return nil
}

// reject writes exactly one error-log entry for the group and reports the
// outcome. Staged effects never reached the stores, so there is nothing to
// roll back beyond what commitGroup already undid.
func (s *PostingService) reject(ref domain.TransactionRef, lineCount int, cause error) domain.GroupOutcome {
	kind := domain.KindOf(cause)

	entry := domain.ErrorLogEntry{
		TrxNo:       ref.TrxNo,
		TrxDate:     ref.TrxDate,
		Description: ref.Description,
		ErrorMsg:    cause.Error(),
	}
	if err := s.errLog.Append(entry); err != nil {
		s.logger.Error().Err(err).Str("trxNo", ref.TrxNo).Msg("failed to append error-log entry")
	}

	return domain.GroupOutcome{
		TrxNo:     ref.TrxNo,
		Posted:    false,
		LineCount: lineCount,
		ErrorKind: kind,
		ErrorMsg:  cause.Error(),
	}
}
