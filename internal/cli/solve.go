package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/superperm/pkg/buildinfo"
	"github.com/matzehuels/superperm/pkg/cache"
	"github.com/matzehuels/superperm/pkg/candidate"
	"github.com/matzehuels/superperm/pkg/errors"
	"github.com/matzehuels/superperm/pkg/heuristic"
	"github.com/matzehuels/superperm/pkg/incremental"
	reportio "github.com/matzehuels/superperm/pkg/io"
	"github.com/matzehuels/superperm/pkg/observability"
	"github.com/matzehuels/superperm/pkg/perm"
	"github.com/matzehuels/superperm/pkg/search"
	"github.com/matzehuels/superperm/pkg/symmetry"
)

// solveOptions holds the resolved settings for one solve.
type solveOptions struct {
	symbols int
	format  string
	report  string
	noCache bool
	tui     bool
	tail    int
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the minimal superpermutation length for an alphabet",
		Long: `Run the incremental search from the seed string 0 1 ... n-1 until every
permutation has been revealed, printing each milestone as it is proven.

Completed results are cached per alphabet size; use --no-cache to force a
fresh search.`,
		Example: `  # Four symbols, live view
  superperm solve -n 4 --tui

  # Save a TOML report
  superperm solve -n 4 -o n4.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.resolveSolveOptions(cmd, &opts)
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runSolveCommand(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.symbols, "symbols", "n", defaultSymbols, "alphabet size")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format: table, json, toml")
	cmd.Flags().StringVarP(&opts.report, "report", "o", "", "write the run report to this file (.json or .toml)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "ignore and do not update the result cache")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "show an interactive live view")
	cmd.Flags().IntVar(&opts.tail, "tail", 0, "only print the last N milestones (0 prints all)")

	return cmd
}

// resolveSolveOptions fills in every option the user did not set on the
// command line from the loaded configuration.
func (c *CLI) resolveSolveOptions(cmd *cobra.Command, opts *solveOptions) {
	flags := cmd.Flags()
	if !flags.Changed("symbols") {
		opts.symbols = c.config.Symbols
	}
	if !flags.Changed("format") {
		opts.format = c.config.Output.Format
	}
	if !flags.Changed("report") {
		opts.report = c.config.Output.Report
	}
	if !flags.Changed("no-cache") {
		opts.noCache = c.config.Cache.Disabled
	}
}

func (o solveOptions) validate() error {
	if err := errors.ValidateSymbols(o.symbols); err != nil {
		return err
	}
	if err := errors.ValidateFormat(o.format); err != nil {
		return err
	}
	if o.report != "" {
		if err := errors.ValidatePath(o.report); err != nil {
			return err
		}
	}
	if o.tail < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--tail must not be negative")
	}
	return nil
}

func (c *CLI) runSolveCommand(ctx context.Context, opts solveOptions) error {
	logger := loggerFromContext(ctx)
	registerHooks(logger)
	if opts.tui {
		// The live view owns the terminal.
		observability.SetSearchHooks(observability.NoopSearchHooks{})
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		logger.Warn("cache unavailable", "err", err)
		store = cache.NewNullCache()
	}
	defer store.Close()
	key := reportKeyer().ReportKey(opts.symbols)

	rep, cached := loadCachedReport(ctx, store, key)
	if !cached {
		if opts.tui {
			rep, err = runSolveTUI(ctx, opts.symbols)
		} else {
			rep, err = c.runSolveWithSpinner(ctx, opts.symbols)
		}
		if err != nil {
			if rep != nil && len(rep.Milestones) > 0 {
				printWarning("Stopped after %d milestones (distance %d)", len(rep.Milestones), rep.Distance)
			}
			return err
		}
		if err := cache.SetJSON(ctx, store, key, rep, 0); err != nil {
			logger.Warn("cache write failed", "err", err)
		}
	}

	if opts.report != "" {
		if err := reportio.Export(rep, opts.report); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write report")
		}
	}
	return printReport(rep, opts, cached)
}

// loadCachedReport returns a complete, valid cached report for key.
func loadCachedReport(ctx context.Context, store cache.Cache, key string) (*reportio.Report, bool) {
	var rep reportio.Report
	if err := cache.GetJSON(ctx, store, key, &rep); err != nil {
		return nil, false
	}
	if rep.Validate() != nil || !rep.Complete {
		return nil, false
	}
	return &rep, true
}

func (c *CLI) runSolveWithSpinner(ctx context.Context, n int) (*reportio.Report, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	total := perm.Factorial(n)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving n=%d: goal 2/%d", n, total))
	spinner.Start()
	rep, err := solve(ctx, n, func(m reportio.Milestone) {
		spinner.Interrupt(func() {
			logger.Info("milestone", "goal", fmt.Sprintf("%d/%d", m.Goal, total), "distance", m.Distance, "open", m.Open, "closed", m.Closed)
		})
		spinner.SetMessage(fmt.Sprintf("Solving n=%d: goal %d/%d, distance %d", n, m.Goal+1, total, m.Distance))
	})
	spinner.Stop()
	if err != nil {
		return rep, err
	}
	prog.done(fmt.Sprintf("Solved n=%d", n))
	return rep, nil
}

// solve runs the incremental search for an n-symbol alphabet, reporting
// every milestone to onMilestone (which may be nil). On cancellation or an
// unreachable goal the partial report is returned with the error.
func solve(ctx context.Context, n int, onMilestone func(reportio.Milestone)) (*reportio.Report, error) {
	table := symmetry.Precompute(n)
	seed := candidate.Seed(table)
	driver := incremental.FromSeed(seed)

	rep := reportio.NewReport(n)
	rep.Version = buildinfo.Version
	start := time.Now()

	_, ok, err := driver.ShortestPathContext(ctx, seed, func(distance, goal int, s *search.Search, _ *heuristic.Heuristic) {
		m := reportio.Milestone{
			Goal:      goal,
			Distance:  distance,
			Open:      s.OpenLen(),
			Closed:    s.ClosedLen(),
			Expanded:  s.Expanded(),
			ElapsedMS: time.Since(start).Milliseconds(),
		}
		rep.Record(m)
		if onMilestone != nil {
			onMilestone(m)
		}
	})
	rep.Finish(seed.MaximumPermutations())
	if err != nil {
		return rep, err
	}
	if !ok {
		cause := &errors.NoPathError{Goal: len(rep.Milestones) + 2, LastDistance: rep.Distance}
		return rep, errors.Wrap(errors.ErrCodeNoPath, cause, "search for n=%d ended early", n)
	}
	return rep, nil
}

// printReport writes rep to stdout in the requested format.
func printReport(rep *reportio.Report, opts solveOptions, cached bool) error {
	switch opts.format {
	case "json":
		return reportio.WriteJSON(rep, os.Stdout)
	case "toml":
		return reportio.WriteTOML(rep, os.Stdout)
	}

	if rep.Complete {
		printSuccess("n=%d: minimal superpermutation length %s", rep.Symbols, StyleNumber.Render(fmt.Sprint(rep.Length)))
	} else {
		printWarning("n=%d: shortest string for %d permutations has length %d", rep.Symbols, len(rep.Milestones)+1, rep.Length)
	}
	printStats(len(rep.Milestones), lastExpanded(rep), cached)
	printKeyValue("Run", rep.RunID)
	printKeyValue("Distance", fmt.Sprint(rep.Distance))
	printKeyValue("Elapsed", (time.Duration(rep.ElapsedMS) * time.Millisecond).String())
	printMilestones(rep.Milestones, opts.tail)
	if opts.report != "" {
		printFile(opts.report)
	} else {
		printNextStep("Save this run", fmt.Sprintf("%s solve -n %d -o n%d.toml", appName, rep.Symbols, rep.Symbols))
	}
	return nil
}

func lastExpanded(rep *reportio.Report) int {
	if len(rep.Milestones) == 0 {
		return 0
	}
	return rep.Milestones[len(rep.Milestones)-1].Expanded
}
