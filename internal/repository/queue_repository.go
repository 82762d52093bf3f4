package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/pkg/fileutil"
)

var queueHeaderFields = []string{"trxNo", "trxDate", "description", "accountNo", "type", "amount"}

// CSVQueueRepository implements the domain.QueueStore interface for a CSV
// file of pending transaction lines. The file is loaded once; enumeration,
// lookup, and deletion operate on the loaded state, and Flush writes the
// lines that were not deleted back out for the next run.
//
// Loading is deliberately lenient about malformed rows (bad amounts, short
// rows): they are warned about and kept aside so one corrupt row cannot
// block the whole queue, and Flush writes them back verbatim so they stay
// queued for manual correction. Business validity (transaction type, amount
// sign, account existence) is not checked here; those lines must reach the
// processor so rejection is recorded in the error log.
type CSVQueueRepository struct {
	FilePath   string
	DateFormat string
	NumWorkers int
	BatchSize  int

	logger zerolog.Logger

	mu        sync.Mutex
	loaded    bool
	order     []string
	groups    map[string][]domain.TransactionLine
	malformed [][]string
}

// NewCSVQueueRepository creates a new CSVQueueRepository
func NewCSVQueueRepository(fp, dateFormat string, logger zerolog.Logger) *CSVQueueRepository {
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}

	return &CSVQueueRepository{
		FilePath:   fp,
		DateFormat: dateFormat,
		NumWorkers: 4,    // Default to 4 workers
		BatchSize:  1000, // Default to 1000 records per batch
		logger:     logger,
		groups:     make(map[string][]domain.TransactionLine),
	}
}

// Load reads the queue file row by row
func (r *CSVQueueRepository) Load() error {
	reader := fileutil.NewCSVReader(r.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return fmt.Errorf("reading queue header: %w", err)
	}

	columnMap, err := createHeaderMap(header, queueHeaderFields)
	if err != nil {
		return fmt.Errorf("mapping CSV column: %w", err)
	}

	maxIndex := maxColumnIndex(columnMap)

	var lines []domain.TransactionLine
	rowProcessorFn := func(row []string) error {
		line, ok := r.parseRow(row, columnMap, maxIndex)
		if !ok {
			return nil
		}
		lines = append(lines, line)
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return fmt.Errorf("reading and processing queue lines: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range lines {
		r.addLocked(line)
	}
	r.loaded = true

	return nil
}

// LoadConcurrently reads and parses CSV rows concurrently, good for handling
// a queue file with huge row counts. Groups enumerate in sorted transaction
// number order since batch completion order is not deterministic.
func (r *CSVQueueRepository) LoadConcurrently() error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading queue header: %w", err)
	}

	columnMap, err := createHeaderMap(header, queueHeaderFields)
	if err != nil {
		return fmt.Errorf("mapping CSV column: %w", err)
	}

	maxIndex := maxColumnIndex(columnMap)

	jobs := make(chan [][]string, r.NumWorkers)
	results := make(chan []domain.TransactionLine, r.NumWorkers)
	errChan := make(chan error, 1)

	var wg sync.WaitGroup
	for i := 0; i < r.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for batch := range jobs {
				batchResults := make([]domain.TransactionLine, 0, len(batch))
				for _, row := range batch {
					if line, ok := r.parseRow(row, columnMap, maxIndex); ok {
						batchResults = append(batchResults, line)
					}
				}
				if len(batchResults) > 0 {
					results <- batchResults
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)

		if err := readAndDistributeRows(reader, jobs, r.BatchSize); err != nil {
			select {
			case errChan <- err:
			default:
			}
		}
	}()

	var lines []domain.TransactionLine
	for batch := range results {
		lines = append(lines, batch...)
	}

	select {
	case err := <-errChan:
		return err
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range lines {
		r.addLocked(line)
	}
	sort.Strings(r.order)
	r.loaded = true

	return nil
}

// parseRow converts one CSV row to a TransactionLine. A row that cannot be
// represented is retained verbatim instead of dropped: Flush writes it back
// unchanged so it stays in the queue file for manual correction.
func (r *CSVQueueRepository) parseRow(row []string, columnMap map[string]int, maxIndex int) (domain.TransactionLine, bool) {
	if len(row) <= maxIndex {
		r.logger.Warn().Strs("row", row).Msg("retaining short queue row unparsed")
		r.keepMalformed(row)
		return domain.TransactionLine{}, false
	}

	amount, err := decimal.NewFromString(row[columnMap["amount"]])
	if err != nil {
		r.logger.Warn().Err(err).Str("amount", row[columnMap["amount"]]).Msg("retaining queue row with unparseable amount")
		r.keepMalformed(row)
		return domain.TransactionLine{}, false
	}

	trxDate, err := time.Parse(r.DateFormat, row[columnMap["trxDate"]])
	if err != nil {
		r.logger.Warn().Err(err).Str("trxDate", row[columnMap["trxDate"]]).Msg("retaining queue row with unparseable date")
		r.keepMalformed(row)
		return domain.TransactionLine{}, false
	}

	// The type column is carried as-is: an unknown type must surface as a
	// posting rejection, not a silently dropped row
	return domain.TransactionLine{
		TrxNo:       row[columnMap["trxNo"]],
		TrxDate:     trxDate,
		Description: row[columnMap["description"]],
		AccountNo:   row[columnMap["accountNo"]],
		Type:        domain.TransactionType(row[columnMap["type"]]),
		Amount:      amount,
	}, true
}

// keepMalformed copies a raw row aside; safe for concurrent workers
func (r *CSVQueueRepository) keepMalformed(row []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.malformed = append(r.malformed, append([]string(nil), row...))
}

// MalformedRows returns the raw rows that could not be parsed at load time.
// They are not part of any transaction group but are preserved by Flush.
func (r *CSVQueueRepository) MalformedRows() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]string, len(r.malformed))
	copy(out, r.malformed)
	return out
}

func (r *CSVQueueRepository) addLocked(line domain.TransactionLine) {
	if _, ok := r.groups[line.TrxNo]; !ok {
		r.order = append(r.order, line.TrxNo)
	}
	r.groups[line.TrxNo] = append(r.groups[line.TrxNo], line)
}

// DistinctTransactions implements domain.QueueStore
func (r *CSVQueueRepository) DistinctTransactions() ([]domain.TransactionRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		return nil, fmt.Errorf("queue file %s not loaded", r.FilePath)
	}

	refs := make([]domain.TransactionRef, 0, len(r.order))
	for _, trxNo := range r.order {
		lines := r.groups[trxNo]
		if len(lines) == 0 {
			continue
		}
		refs = append(refs, domain.TransactionRef{
			TrxNo:       trxNo,
			TrxDate:     lines[0].TrxDate,
			Description: lines[0].Description,
		})
	}
	return refs, nil
}

// LinesFor implements domain.QueueStore
func (r *CSVQueueRepository) LinesFor(trxNo string) ([]domain.TransactionLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.groups[trxNo]
	out := make([]domain.TransactionLine, len(lines))
	copy(out, lines)
	return out, nil
}

// Delete implements domain.QueueStore
func (r *CSVQueueRepository) Delete(trxNo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.groups, trxNo)
	for i, no := range r.order {
		if no == trxNo {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Flush writes the lines still queued (the rejected groups) to the given
// path so the next run picks them up after manual correction. Rows that
// failed to parse at load time are written back verbatim: unprocessable
// input is never silently dropped from the queue.
func (r *CSVQueueRepository) Flush(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]string, 0)
	for _, trxNo := range r.order {
		for _, line := range r.groups[trxNo] {
			rows = append(rows, []string{
				line.TrxNo,
				line.TrxDate.Format(r.DateFormat),
				line.Description,
				line.AccountNo,
				string(line.Type),
				line.Amount.String(),
			})
		}
	}
	rows = append(rows, r.malformed...)

	writer := fileutil.NewCSVWriter(path)
	if err := writer.WriteAll(queueHeaderFields, rows); err != nil {
		return fmt.Errorf("writing remaining queue lines: %w", err)
	}
	return nil
}

// readAndDistributeRows reads CSV records and distributes them in batches
// to worker goroutines
func readAndDistributeRows(csvReader *csv.Reader, jobs chan<- [][]string, batchSize int) error {
	batch := make([][]string, 0, batchSize)

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV record: %w", err)
		}

		batch = append(batch, record)

		// When batch is full, send it to a worker
		if len(batch) >= batchSize {
			jobs <- batch
			batch = make([][]string, 0, batchSize)
		}
	}

	// Send any remaining records in the last batch
	if len(batch) > 0 {
		jobs <- batch
	}

	return nil
}
