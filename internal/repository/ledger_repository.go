package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/pkg/fileutil"
)

var (
	accountHeaderFields     = []string{"accountNo", "balance", "accountTypeCode"}
	accountTypeHeaderFields = []string{"code", "defaultTransType"}
)

// CSVLedgerRepository implements the domain.LedgerStore interface over two
// CSV files: the account snapshot and the account type reference data.
// Balance updates apply to the loaded state; FlushAccounts writes the
// updated snapshot back out.
type CSVLedgerRepository struct {
	AccountsPath     string
	AccountTypesPath string

	logger zerolog.Logger

	mu       sync.Mutex
	loaded   bool
	accounts map[string]domain.Account
	types    map[string]domain.AccountType
}

// NewCSVLedgerRepository creates a new CSVLedgerRepository
func NewCSVLedgerRepository(accountsPath, accountTypesPath string, logger zerolog.Logger) *CSVLedgerRepository {
	return &CSVLedgerRepository{
		AccountsPath:     accountsPath,
		AccountTypesPath: accountTypesPath,
		logger:           logger,
		accounts:         make(map[string]domain.Account),
		types:            make(map[string]domain.AccountType),
	}
}

// Load reads both ledger files
func (r *CSVLedgerRepository) Load() error {
	if err := r.loadAccounts(); err != nil {
		return err
	}
	if err := r.loadAccountTypes(); err != nil {
		return err
	}

	r.mu.Lock()
	r.loaded = true
	r.mu.Unlock()
	return nil
}

func (r *CSVLedgerRepository) loadAccounts() error {
	reader := fileutil.NewCSVReader(r.AccountsPath)

	header, err := reader.ReadHeader()
	if err != nil {
		return fmt.Errorf("reading accounts header: %w", err)
	}

	columnMap, err := createHeaderMap(header, accountHeaderFields)
	if err != nil {
		return fmt.Errorf("mapping CSV column: %w", err)
	}

	maxIndex := maxColumnIndex(columnMap)

	rowProcessorFn := func(row []string) error {
		if len(row) <= maxIndex {
			r.logger.Warn().Strs("row", row).Msg("skipping short account row")
			return nil
		}

		balance, err := decimal.NewFromString(row[columnMap["balance"]])
		if err != nil {
			// A ledger account without a readable balance cannot be posted
			// against safely; this is a broken snapshot, not a bad line
			return fmt.Errorf("parsing balance of account %s: %w", row[columnMap["accountNo"]], err)
		}

		account := domain.Account{
			AccountNo: row[columnMap["accountNo"]],
			Balance:   balance,
			TypeCode:  row[columnMap["accountTypeCode"]],
		}

		r.mu.Lock()
		r.accounts[account.AccountNo] = account
		r.mu.Unlock()
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return fmt.Errorf("reading and processing accounts: %w", err)
	}
	return nil
}

func (r *CSVLedgerRepository) loadAccountTypes() error {
	reader := fileutil.NewCSVReader(r.AccountTypesPath)

	header, err := reader.ReadHeader()
	if err != nil {
		return fmt.Errorf("reading account types header: %w", err)
	}

	columnMap, err := createHeaderMap(header, accountTypeHeaderFields)
	if err != nil {
		return fmt.Errorf("mapping CSV column: %w", err)
	}

	maxIndex := maxColumnIndex(columnMap)

	rowProcessorFn := func(row []string) error {
		if len(row) <= maxIndex {
			r.logger.Warn().Strs("row", row).Msg("skipping short account type row")
			return nil
		}

		transType := domain.TransactionType(row[columnMap["defaultTransType"]])
		if !transType.Valid() {
			return fmt.Errorf("account type %s has invalid default transaction type %q",
				row[columnMap["code"]], row[columnMap["defaultTransType"]])
		}

		accountType := domain.AccountType{
			Code:             row[columnMap["code"]],
			DefaultTransType: transType,
		}

		r.mu.Lock()
		r.types[accountType.Code] = accountType
		r.mu.Unlock()
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return fmt.Errorf("reading and processing account types: %w", err)
	}
	return nil
}

// GetAccount implements domain.LedgerStore
func (r *CSVLedgerRepository) GetAccount(accountNo string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountNo]
	if !ok {
		return domain.Account{}, fmt.Errorf("account %s: %w", accountNo, domain.ErrAccountNotFound)
	}
	return account, nil
}

// GetAccountType implements domain.LedgerStore
func (r *CSVLedgerRepository) GetAccountType(code string) (domain.AccountType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accountType, ok := r.types[code]
	if !ok {
		return domain.AccountType{}, fmt.Errorf("account type %s not found", code)
	}
	return accountType, nil
}

// UpdateBalance implements domain.LedgerStore
func (r *CSVLedgerRepository) UpdateBalance(accountNo string, newBalance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountNo]
	if !ok {
		return fmt.Errorf("account %s: %w", accountNo, domain.ErrAccountNotFound)
	}
	account.Balance = newBalance
	r.accounts[accountNo] = account
	return nil
}

// FlushAccounts writes the updated account snapshot to the given path,
// sorted by account number for stable output
func (r *CSVLedgerRepository) FlushAccounts(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accountNos := make([]string, 0, len(r.accounts))
	for accountNo := range r.accounts {
		accountNos = append(accountNos, accountNo)
	}
	sort.Strings(accountNos)

	rows := make([][]string, 0, len(accountNos))
	for _, accountNo := range accountNos {
		account := r.accounts[accountNo]
		rows = append(rows, []string{account.AccountNo, account.Balance.String(), account.TypeCode})
	}

	writer := fileutil.NewCSVWriter(path)
	if err := writer.WriteAll(accountHeaderFields, rows); err != nil {
		return fmt.Errorf("writing account snapshot: %w", err)
	}
	return nil
}
