package report

import (
	"encoding/json"

	"github.com/tirasundara/ledger-posting-service/internal/domain"
)

// OutputFormatter defines the interface for formatting batch results
type OutputFormatter interface {
	Format(result domain.BatchResult) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats batch results as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(result domain.BatchResult) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
