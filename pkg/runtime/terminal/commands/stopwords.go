package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type StopWordsCmd struct {
	configPath string
}

func NewStopWordsCmd() *cobra.Command {
	sc := &StopWordsCmd{}
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "List the stop words excluded from word frequency ranking",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to the analysis configuration file")

	return cmd
}

func (sc *StopWordsCmd) run(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer(sc.configPath)
	if err != nil {
		return err
	}

	words := analyzer.StopWords()
	if len(words) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stop words configured.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Effective stop words (%d):\n%s\n",
		len(words),
		strings.Join(words, "\n"))

	return nil
}
