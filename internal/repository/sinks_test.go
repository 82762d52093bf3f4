package repository_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/ledger-posting-service/internal/domain"
	"github.com/tirasundara/ledger-posting-service/internal/repository"
	"github.com/tirasundara/ledger-posting-service/pkg/fileutil"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	var rows [][]string
	reader := fileutil.NewCSVReader(path)
	if err := reader.ReadAndProcessByRow(func(row []string) error {
		rows = append(rows, row)
		return nil
	}); err != nil {
		t.Fatalf("Unexpected error reading %s: %v", path, err)
	}
	return rows
}

func TestCSVHistoryWriter_Flush(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.csv")
	detailPath := filepath.Join(dir, "details.csv")

	writer := repository.NewCSVHistoryWriter(historyPath, detailPath, "")

	trxDate, _ := time.Parse("2006-01-02", "2025-03-01")
	if err := writer.AppendHistory(domain.TransactionHistoryEntry{
		TrxNo: "100", TrxDate: trxDate, Description: "Office rent",
	}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := writer.AppendDetail(domain.TransactionDetailEntry{
		AccountNo: "A1", TrxNo: "100", Type: domain.Debit, Amount: decimal.NewFromInt(50),
	}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := writer.AppendDetail(domain.TransactionDetailEntry{
		AccountNo: "A2", TrxNo: "100", Type: domain.Credit, Amount: decimal.NewFromInt(50),
	}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := writer.Flush(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	historyRows := readRows(t, historyPath)
	if len(historyRows) != 1 {
		t.Fatalf("Expected 1 history row, got %d", len(historyRows))
	}
	if historyRows[0][0] != "100" || historyRows[0][2] != "Office rent" {
		t.Errorf("Unexpected history row: %v", historyRows[0])
	}

	detailRows := readRows(t, detailPath)
	if len(detailRows) != 2 {
		t.Fatalf("Expected 2 detail rows, got %d", len(detailRows))
	}
	if detailRows[1][0] != "A2" || detailRows[1][2] != "CREDIT" || detailRows[1][3] != "50" {
		t.Errorf("Unexpected detail row: %v", detailRows[1])
	}
}

func TestCSVHistoryWriter_EvictGroup(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.csv")
	detailPath := filepath.Join(dir, "details.csv")

	writer := repository.NewCSVHistoryWriter(historyPath, detailPath, "")

	trxDate, _ := time.Parse("2006-01-02", "2025-03-01")
	for _, trxNo := range []string{"100", "101"} {
		if err := writer.AppendHistory(domain.TransactionHistoryEntry{TrxNo: trxNo, TrxDate: trxDate}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if err := writer.AppendDetail(domain.TransactionDetailEntry{
			AccountNo: "A1", TrxNo: trxNo, Type: domain.Debit, Amount: decimal.NewFromInt(10),
		}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	// Group 100's commit faulted: its buffered entries must not reach disk
	writer.EvictGroup("100")

	if err := writer.Flush(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	historyRows := readRows(t, historyPath)
	if len(historyRows) != 1 || historyRows[0][0] != "101" {
		t.Errorf("Expected only group 101 in history, got %v", historyRows)
	}

	detailRows := readRows(t, detailPath)
	if len(detailRows) != 1 || detailRows[0][1] != "101" {
		t.Errorf("Expected only group 101 in details, got %v", detailRows)
	}
}

func TestCSVErrorLog_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")
	errLog := repository.NewCSVErrorLog(path, "")

	trxDate, _ := time.Parse("2006-01-02", "2025-03-02")
	if err := errLog.Append(domain.ErrorLogEntry{
		TrxNo:       "101",
		TrxDate:     trxDate,
		Description: "Ghost account",
		ErrorMsg:    "INVALID_ACCOUNT_NUMBER: account 999 not found",
	}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := errLog.Flush(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 error row, got %d", len(rows))
	}
	if rows[0][0] != "101" || rows[0][3] != "INVALID_ACCOUNT_NUMBER: account 999 not found" {
		t.Errorf("Unexpected error row: %v", rows[0])
	}
}
