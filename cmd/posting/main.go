package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tirasundara/ledger-posting-service/internal/report"
	"github.com/tirasundara/ledger-posting-service/internal/repository"
	"github.com/tirasundara/ledger-posting-service/internal/service"
)

const dateFormat = "2006-01-02"

func main() {
	// Command-line flags
	var (
		queueFile        string
		accountsFile     string
		accountTypesFile string
		historyFile      string
		detailFile       string
		errorFile        string
		queueOutFile     string
		accountsOutFile  string
		outputFormat     string
		outputFile       string
		prettyPrint      bool
		concurrentLoad   bool
		logLevel         string
	)

	flag.StringVar(&queueFile, "queue-file", "", "Path to pending transaction lines CSV file")
	flag.StringVar(&accountsFile, "accounts-file", "", "Path to account snapshot CSV file")
	flag.StringVar(&accountTypesFile, "account-types-file", "", "Path to account types CSV file")
	flag.StringVar(&historyFile, "history-file", "transaction_history.csv", "Path to write posted transaction history")
	flag.StringVar(&detailFile, "detail-file", "transaction_details.csv", "Path to write posted transaction details")
	flag.StringVar(&errorFile, "error-file", "error_log.csv", "Path to write the rejection log")
	flag.StringVar(&queueOutFile, "queue-out", "", "Path to write remaining queue lines (defaults to overwriting the queue file)")
	flag.StringVar(&accountsOutFile, "accounts-out", "", "Path to write the updated account snapshot (defaults to overwriting the accounts file)")
	flag.StringVar(&outputFormat, "format", "json", "Batch summary format: json only for now")
	flag.StringVar(&outputFile, "output", "", "Path to batch summary file (if empty, writes to stdout)")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")
	flag.BoolVar(&concurrentLoad, "concurrent-load", false, "Load the queue file with a worker pool (for very large queues)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	flag.Parse()

	// Validate required flags
	if queueFile == "" {
		exitWithError("Pending transaction lines file path is required")
	}
	if accountsFile == "" {
		exitWithError("Account snapshot file path is required")
	}
	if accountTypesFile == "" {
		exitWithError("Account types file path is required")
	}

	if queueOutFile == "" {
		queueOutFile = queueFile
	}
	if accountsOutFile == "" {
		accountsOutFile = accountsFile
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		exitWithError(fmt.Sprintf("Invalid log level: %v", err))
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	// Create stores
	queueRepo := repository.NewCSVQueueRepository(queueFile, dateFormat, logger)
	ledgerRepo := repository.NewCSVLedgerRepository(accountsFile, accountTypesFile, logger)
	historyWriter := repository.NewCSVHistoryWriter(historyFile, detailFile, dateFormat)
	errorLog := repository.NewCSVErrorLog(errorFile, dateFormat)

	if concurrentLoad {
		err = queueRepo.LoadConcurrently()
	} else {
		err = queueRepo.Load()
	}
	if err != nil {
		exitWithError(fmt.Sprintf("Loading queue file failed: %v", err))
	}

	if malformed := queueRepo.MalformedRows(); len(malformed) > 0 {
		logger.Warn().Int("rows", len(malformed)).
			Msg("queue rows could not be parsed; they are kept in the queue file for manual correction")
	}

	if err := ledgerRepo.Load(); err != nil {
		exitWithError(fmt.Sprintf("Loading ledger files failed: %v", err))
	}

	// Run the posting batch
	postingService := service.NewPostingService(queueRepo, ledgerRepo, historyWriter, errorLog, logger)

	result, err := postingService.Run()
	if err != nil {
		exitWithError(fmt.Sprintf("Posting batch failed: %v", err))
	}

	// Persist outcomes: updated balances, posted history/details, the
	// rejection log, and the lines still awaiting manual correction
	if err := ledgerRepo.FlushAccounts(accountsOutFile); err != nil {
		exitWithError(fmt.Sprintf("Failed to write account snapshot: %v", err))
	}
	if err := historyWriter.Flush(); err != nil {
		exitWithError(fmt.Sprintf("Failed to write transaction history: %v", err))
	}
	if err := errorLog.Flush(); err != nil {
		exitWithError(fmt.Sprintf("Failed to write error log: %v", err))
	}
	if err := queueRepo.Flush(queueOutFile); err != nil {
		exitWithError(fmt.Sprintf("Failed to write remaining queue: %v", err))
	}

	// Format the batch summary
	var formatter report.OutputFormatter
	switch outputFormat {
	case "json":
		formatter = report.NewJSONFormatter(prettyPrint)

	// Can add other formatters later: csv, txt, etc
	default:
		exitWithError(fmt.Sprintf("Unsupported output format: %s", outputFormat))
		return
	}

	output, err := formatter.Format(result)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	// Output the result
	if outputFile != "" {
		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}

		err := os.WriteFile(outputFile, output, 0644)
		if err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}

	} else {

		// Write output to stdout
		fmt.Println(string(output))
	}
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
