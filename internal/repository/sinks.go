package repository

import (
	"fmt"
	"sync"

	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/pkg/fileutil"
)

var (
	historyHeaderFields = []string{"trxNo", "trxDate", "description"}
	detailHeaderFields  = []string{"accountNo", "trxNo", "type", "amount"}
	errorHeaderFields   = []string{"trxNo", "trxDate", "description", "errorMsg"}
)

// CSVHistoryWriter implements domain.HistoryStore by collecting entries in
// memory and writing two CSV files on Flush. Appends are cheap in-memory
// operations so a commit never blocks on disk mid-group.
type CSVHistoryWriter struct {
	HistoryPath string
	DetailPath  string
	DateFormat  string

	mu      sync.Mutex
	history []domain.TransactionHistoryEntry
	details []domain.TransactionDetailEntry
}

// NewCSVHistoryWriter creates a new CSVHistoryWriter
func NewCSVHistoryWriter(historyPath, detailPath, dateFormat string) *CSVHistoryWriter {
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}

	return &CSVHistoryWriter{
		HistoryPath: historyPath,
		DetailPath:  detailPath,
		DateFormat:  dateFormat,
	}
}

// AppendHistory implements domain.HistoryStore
func (w *CSVHistoryWriter) AppendHistory(entry domain.TransactionHistoryEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.history = append(w.history, entry)
	return nil
}

// AppendDetail implements domain.HistoryStore
func (w *CSVHistoryWriter) AppendDetail(entry domain.TransactionDetailEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.details = append(w.details, entry)
	return nil
}

// EvictGroup implements domain.HistoryStore. A commit that faults after
// appending must not leave the group's rows to be written at Flush.
func (w *CSVHistoryWriter) EvictGroup(trxNo string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	history := w.history[:0]
	for _, entry := range w.history {
		if entry.TrxNo != trxNo {
			history = append(history, entry)
		}
	}
	w.history = history

	details := w.details[:0]
	for _, entry := range w.details {
		if entry.TrxNo != trxNo {
			details = append(details, entry)
		}
	}
	w.details = details
}

// Flush writes the collected history and detail entries to their files
func (w *CSVHistoryWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	historyRows := make([][]string, 0, len(w.history))
	for _, entry := range w.history {
		historyRows = append(historyRows, []string{
			entry.TrxNo,
			entry.TrxDate.Format(w.DateFormat),
			entry.Description,
		})
	}
	if err := fileutil.NewCSVWriter(w.HistoryPath).WriteAll(historyHeaderFields, historyRows); err != nil {
		return fmt.Errorf("writing transaction history: %w", err)
	}

	detailRows := make([][]string, 0, len(w.details))
	for _, entry := range w.details {
		detailRows = append(detailRows, []string{
			entry.AccountNo,
			entry.TrxNo,
			string(entry.Type),
			entry.Amount.String(),
		})
	}
	if err := fileutil.NewCSVWriter(w.DetailPath).WriteAll(detailHeaderFields, detailRows); err != nil {
		return fmt.Errorf("writing transaction details: %w", err)
	}

	return nil
}

// CSVErrorLog implements domain.ErrorLog by collecting rejection entries in
// memory and writing a CSV file on Flush
type CSVErrorLog struct {
	FilePath   string
	DateFormat string

	mu      sync.Mutex
	entries []domain.ErrorLogEntry
}

// NewCSVErrorLog creates a new CSVErrorLog
func NewCSVErrorLog(fp, dateFormat string) *CSVErrorLog {
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}

	return &CSVErrorLog{FilePath: fp, DateFormat: dateFormat}
}

// Append implements domain.ErrorLog
func (l *CSVErrorLog) Append(entry domain.ErrorLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// Flush writes the collected rejection entries to the error log file
func (l *CSVErrorLog) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows := make([][]string, 0, len(l.entries))
	for _, entry := range l.entries {
		rows = append(rows, []string{
			entry.TrxNo,
			entry.TrxDate.Format(l.DateFormat),
			entry.Description,
			entry.ErrorMsg,
		})
	}

	if err := fileutil.NewCSVWriter(l.FilePath).WriteAll(errorHeaderFields, rows); err != nil {
		return fmt.Errorf("writing error log: %w", err)
	}
	return nil
}
