package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/superperm/pkg/errors"
	reportio "github.com/matzehuels/superperm/pkg/io"
)

// showCommand creates the show command, which prints a saved run report.
func (c *CLI) showCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a saved solve report",
		Example: `  superperm show n4.toml
  superperm show -f json n4.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.config.Output.Format
			}
			if err := errors.ValidateFormat(opts.format); err != nil {
				return err
			}
			if err := errors.ValidatePath(args[0]); err != nil {
				return err
			}
			rep, err := reportio.Import(args[0])
			if err != nil {
				return err
			}
			if !rep.Complete {
				printWarning("Partial run: %s", rep.Summary())
			}
			return printReport(rep, opts, false)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format: table, json, toml")
	cmd.Flags().IntVar(&opts.tail, "tail", 0, "only print the last N milestones (0 prints all)")

	return cmd
}
