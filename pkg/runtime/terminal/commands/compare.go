package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/text-tools/text-atlas/pkg/models/api"
	"github.com/text-tools/text-atlas/pkg/runtime/terminal/export"
	"github.com/text-tools/text-atlas/pkg/services/analysis"
	"github.com/text-tools/text-atlas/pkg/services/loader"
)

type CompareCmd struct {
	configPath string
	encoding   string
	asJSON     bool
	output     io.Writer
}

func NewCompareCmd(output io.Writer) *cobra.Command {
	cc := &CompareCmd{output: output}
	cmd := &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "Compare the metrics of two text files",
		Args:  cobra.ExactArgs(2),
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the analysis configuration file")
	cmd.Flags().StringVar(&cc.encoding, "encoding", loader.DefaultEncoding, "Text encoding of the input files")
	cmd.Flags().BoolVar(&cc.asJSON, "json", false, "Emit the comparison as JSON")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer(cc.configPath)
	if err != nil {
		return err
	}

	docA, err := loader.LoadFile(args[0], cc.encoding)
	if err != nil {
		return err
	}
	docB, err := loader.LoadFile(args[1], cc.encoding)
	if err != nil {
		return err
	}

	cmp := analysis.Compare(analyzer.Analyze(docA), analyzer.Analyze(docB))

	if cc.asJSON {
		enc := json.NewEncoder(cc.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(api.ComparisonFromDomain(cmp)); err != nil {
			return fmt.Errorf("failed to encode comparison: %w", err)
		}
		return nil
	}

	return export.NewReporter(cc.output).HandleComparison(cmp)
}
