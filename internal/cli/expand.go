package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/superperm/pkg/candidate"
	"github.com/matzehuels/superperm/pkg/errors"
	"github.com/matzehuels/superperm/pkg/symmetry"
)

// expandCommand creates the expand command for stepping through candidates
// by hand.
func (c *CLI) expandCommand() *cobra.Command {
	var symbols int

	cmd := &cobra.Command{
		Use:   "expand [symbols...]",
		Short: "Apply expansions to the seed and print each candidate (debug tool)",
		Long: `Start from the seed candidate and apply one expansion per argument,
printing the revealed permutations and counter ladder after every step.

Each argument is an expansion symbol in [0, n-2].`,
		Example: `  # Append symbol 0 twice, then symbol 1
  superperm expand -n 4 0 0 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("symbols") {
				symbols = c.config.Symbols
			}
			if err := errors.ValidateSymbols(symbols); err != nil {
				return err
			}
			steps, err := parseExpansions(args, symbols)
			if err != nil {
				return err
			}
			for _, line := range expansionTrace(symbols, steps) {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&symbols, "symbols", "n", defaultSymbols, "alphabet size")

	return cmd
}

// parseExpansions converts arguments to expansion symbols valid for an
// n-symbol alphabet.
func parseExpansions(args []string, n int) ([]int, error) {
	steps := make([]int, 0, len(args))
	for _, arg := range args {
		s, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "expansion %q", arg)
		}
		if s < 0 || s > n-2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "expansion %d outside [0, %d]", s, n-2)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// expansionTrace renders the seed and every candidate reached by applying
// steps in order.
func expansionTrace(n int, steps []int) []string {
	c := candidate.Seed(symmetry.Precompute(n))
	lines := []string{describeCandidate("seed", c)}
	for _, s := range steps {
		c = c.Expand(s)
		lines = append(lines, describeCandidate(fmt.Sprintf("+%d", s), c))
	}
	return lines
}

func describeCandidate(label string, c candidate.Candidate) string {
	return fmt.Sprintf("%-5s perms=%d/%d bits=%v %s",
		label, c.NumberOfPermutations(), c.MaximumPermutations(), c.Bits(), c)
}
