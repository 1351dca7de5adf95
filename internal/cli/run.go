package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/synchrolab/synchrogen/pkg/config"
	"github.com/synchrolab/synchrogen/pkg/pipeline"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	states     int    // automaton state count N
	symbols    int    // alphabet size K
	output     string // detailed output path (empty = summary-only)
	saveWord   bool   // keep witness words in the detailed output
	noCache    bool   // bypass the result cache
	configPath string // optional config document (.json or .toml)
}

// runCommand creates the run command: the full enumerate → analyze → report
// pipeline. Settings come from flags, from a config document, or both, with
// flags taking precedence over the document.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{states: 3, symbols: 2}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enumerate canonical automata and bound their reset words",
		Long: `Run enumerates every BFS-canonical automaton with the given number of
states and symbols, computes lower and upper bounds on each automaton's
minimum length synchronizing word, and reports the run-wide maxima.

With --output, one line per automaton is written to the destination file;
without it only the summary is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := mergeConfig(cmd, &opts)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var out io.Writer
			if cfg.Output != "" {
				f, err := os.Create(cfg.Output)
				if err != nil {
					return fmt.Errorf("open output: %w", err)
				}
				defer f.Close()
				out = f
			}

			runner := c.newRunner(cfg.NoCache)
			defer runner.Cache.Close()

			spinner := newSpinner(cmd.Context(), fmt.Sprintf("enumerating n=%d k=%d", cfg.States, cfg.Symbols))
			spinner.Start()

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				States:   cfg.States,
				Symbols:  cfg.Symbols,
				Out:      out,
				SaveWord: cfg.SaveWord,
			})
			if err != nil {
				spinner.StopWithError("run failed")
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("analyzed %d automata", result.Automata))

			fmt.Println(result.Summary())
			if cfg.Output != "" {
				printFile(cfg.Output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.states, "states", "n", opts.states, "number of automaton states")
	cmd.Flags().IntVarP(&opts.symbols, "symbols", "k", opts.symbols, "alphabet size")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "detailed per-automaton output file")
	cmd.Flags().BoolVar(&opts.saveWord, "save-word", false, "keep witness synchronizing words in the output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the analysis result cache")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config document (.json or .toml)")

	return cmd
}

// mergeConfig resolves the effective configuration: the config document (if
// any) provides defaults, explicitly set flags override it.
func mergeConfig(cmd *cobra.Command, opts *runOpts) (config.Config, error) {
	cfg := config.Config{
		States:   opts.states,
		Symbols:  opts.symbols,
		Output:   opts.output,
		SaveWord: opts.saveWord,
		NoCache:  opts.noCache,
	}
	if opts.configPath == "" {
		return cfg, nil
	}

	loaded, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if !flags.Changed("states") && loaded.States != 0 {
		cfg.States = loaded.States
	}
	if !flags.Changed("symbols") && loaded.Symbols != 0 {
		cfg.Symbols = loaded.Symbols
	}
	if !flags.Changed("output") && loaded.Output != "" {
		cfg.Output = loaded.Output
	}
	if !flags.Changed("save-word") {
		cfg.SaveWord = loaded.SaveWord
	}
	if !flags.Changed("no-cache") {
		cfg.NoCache = loaded.NoCache
	}
	return cfg, nil
}
