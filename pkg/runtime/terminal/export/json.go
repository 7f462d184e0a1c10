package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/text-tools/text-atlas/pkg/models/api"
	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// JSONReporter writes the structured export of a report. Field order
// is fixed by the api.Report declaration, so output is reproducible
// given identical input and timestamp.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a reporter that writes indented JSON.
func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (r *JSONReporter) Handle(report *domain.AnalysisReport) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(api.FromDomain(report)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteFile saves the structured export of a report to path.
func WriteFile(path string, report *domain.AnalysisReport) error {
	data, err := json.MarshalIndent(api.FromDomain(report), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
