package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/synchrolab/synchrogen/pkg/automaton"
	"github.com/synchrolab/synchrogen/pkg/enum"
)

// generateCommand creates the generate command: enumeration only, writing
// one encoding per line to stdout or a file. The output is consumable by
// the analyze command and by external tooling.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		states  int
		symbols int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Enumerate canonical automata and write their encodings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("open output: %w", err)
				}
				defer f.Close()
				out = f
			}

			bw := bufio.NewWriter(out)
			stats, err := enum.Each(states, symbols, func(a automaton.Automaton) error {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if _, err := bw.WriteString(a.Serialize()); err != nil {
					return err
				}
				return bw.WriteByte('\n')
			})
			if err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return err
			}

			c.Logger.Info("enumeration complete",
				"automata", stats.Accepted,
				"leaves", stats.Leaves,
				"duration", stats.Elapsed)

			if output != "" {
				printSuccess("wrote %s automata", StyleNumber.Render(fmt.Sprintf("%d", stats.Accepted)))
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&states, "states", "n", 3, "number of automaton states")
	cmd.Flags().IntVarP(&symbols, "symbols", "k", 2, "alphabet size")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
