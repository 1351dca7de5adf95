package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/synchrolab/synchrogen/pkg/encio"
	"github.com/synchrolab/synchrogen/pkg/pipeline"
)

// analyzeCommand creates the analyze command: the analysis and reporting
// stages over an existing encodings file, e.g. one produced by generate.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		states   int
		symbols  int
		output   string
		saveWord bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <encodings-file>",
		Short: "Bound reset words for automata read from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			total, err := encio.CountNonEmptyLines(f)
			if err != nil {
				f.Close()
				return err
			}
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				f.Close()
				return err
			}
			c.Logger.Info("reading corpus", "path", path, "automata", total)

			as, err := encio.ReadAutomata(f, states, symbols)
			f.Close()
			if err != nil {
				return err
			}

			var out io.Writer
			if output != "" {
				of, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("open output: %w", err)
				}
				defer of.Close()
				out = of
			}

			runner := c.newRunner(noCache)
			defer runner.Cache.Close()

			result, err := runner.AnalyzeAll(cmd.Context(), as, pipeline.Options{
				States:   states,
				Symbols:  symbols,
				Out:      out,
				SaveWord: saveWord,
			})
			if err != nil {
				return err
			}

			fmt.Println(result.Summary())
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&states, "states", "n", 3, "number of automaton states")
	cmd.Flags().IntVarP(&symbols, "symbols", "k", 2, "alphabet size")
	cmd.Flags().StringVarP(&output, "output", "o", "", "detailed per-automaton output file")
	cmd.Flags().BoolVar(&saveWord, "save-word", false, "keep witness synchronizing words in the output")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the analysis result cache")

	return cmd
}
