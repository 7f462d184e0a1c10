package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/text-tools/text-atlas/pkg/models/domain"
	"github.com/text-tools/text-atlas/pkg/runtime/terminal/export"
	"github.com/text-tools/text-atlas/pkg/services/analysis"
	"github.com/text-tools/text-atlas/pkg/services/config"
	"github.com/text-tools/text-atlas/pkg/services/loader"
)

type AnalyzeCmd struct {
	configPath string
	encoding   string
	text       string
	asJSON     bool
	save       bool
	outputPath string
	output     io.Writer
}

func NewAnalyzeCmd(output io.Writer) *cobra.Command {
	ac := &AnalyzeCmd{output: output}
	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Analyze text files or direct input",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to the analysis configuration file")
	cmd.Flags().StringVar(&ac.encoding, "encoding", loader.DefaultEncoding, "Text encoding of the input files")
	cmd.Flags().StringVar(&ac.text, "text", "", "Analyze this text instead of reading files")
	cmd.Flags().BoolVar(&ac.asJSON, "json", false, "Emit the structured JSON export instead of the text report")
	cmd.Flags().BoolVarP(&ac.save, "save", "s", false, "Save the JSON export next to each input file")
	cmd.Flags().StringVarP(&ac.outputPath, "output", "o", "", "Write the JSON export to this file (single input only)")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && ac.text == "" {
		return fmt.Errorf("nothing to analyze: pass at least one file or --text")
	}
	if ac.outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output accepts a single input; use --save for batches")
	}

	analyzer, err := newAnalyzer(ac.configPath)
	if err != nil {
		return err
	}

	docs := make([]domain.Document, 0, len(args)+1)
	if ac.text != "" {
		docs = append(docs, loader.LoadString(ac.text, ""))
	}
	for _, path := range args {
		doc, err := loader.LoadFile(path, ac.encoding)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	for _, doc := range docs {
		report := analyzer.Analyze(doc)

		if err := ac.render(report); err != nil {
			return err
		}
		if err := ac.export(report); err != nil {
			return err
		}
	}

	return nil
}

func (ac *AnalyzeCmd) render(report *domain.AnalysisReport) error {
	if ac.asJSON {
		return export.NewJSONReporter(ac.output).Handle(report)
	}
	return export.NewReporter(ac.output).Handle(report)
}

func (ac *AnalyzeCmd) export(report *domain.AnalysisReport) error {
	switch {
	case ac.outputPath != "":
		return export.WriteFile(ac.outputPath, report)
	case ac.save:
		return export.WriteFile(defaultExportPath(report.SourceID), report)
	}
	return nil
}

// defaultExportPath derives "<base>_analysis.json" from the source
// identifier, matching the behaviour of the --save flag.
func defaultExportPath(sourceID string) string {
	base := filepath.Base(sourceID)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "report"
	}
	return base + "_analysis.json"
}

func newAnalyzer(configPath string) (*analysis.Analyzer, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return analysis.NewAnalyzer(cfg)
}
