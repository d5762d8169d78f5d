package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/superperm/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The persistent --config flag names a TOML file; without it superperm.toml
// in the working directory is used when present. The configuration is loaded
// once before any subcommand runs, and the logger is attached to the
// command's context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Search for minimal superpermutations",
		Long: `superperm searches for the shortest strings that contain every permutation
of an n-symbol alphabet as a contiguous substring.

The search solves one milestone at a time: the shortest string revealing 2
permutations, then 3, and so on up to n!. Every solved milestone tightens the
lower bounds used for the next.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			c.config = cfg
			if cfg.Log.Level == "debug" {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigFile, "path to a TOML config file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.expandCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
