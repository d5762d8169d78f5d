package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/superperm/pkg/errors"
	"github.com/matzehuels/superperm/pkg/symmetry"
)

// tableCommand creates the table command, which summarizes the precomputed
// symmetry table for an alphabet.
func (c *CLI) tableCommand() *cobra.Command {
	var symbols int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Summarize the symmetry table for an alphabet (debug tool)",
		Example: `  superperm table -n 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("symbols") {
				symbols = c.config.Symbols
			}
			if err := errors.ValidateSymbols(symbols); err != nil {
				return err
			}
			t := symmetry.Precompute(symbols)
			printKeyValue("Symbols", strconv.Itoa(t.N()))
			printKeyValue("Perms", strconv.Itoa(t.Permutations()))
			printKeyValue("Capacity", strconv.Itoa(t.Capacity()))
			printKeyValue("Ground", strconv.Itoa(int(t.GroundTruth())))
			fmt.Println(renderTable(symmetryHeaders, symmetryRows(t)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&symbols, "symbols", "n", defaultSymbols, "alphabet size")

	return cmd
}

var symmetryHeaders = []string{"Symbol", "Choices", "First relabelling", "Counters"}

// symmetryRows describes every expansion symbol of t.
func symmetryRows(t *symmetry.Table) [][]string {
	trans := symmetry.Transpositions(t.N())
	counters := symmetry.CounterMappings(t.N())
	rows := make([][]string, 0, t.Expansions())
	for s := 0; s < t.Expansions(); s++ {
		rows = append(rows, []string{
			strconv.Itoa(s),
			strconv.Itoa(t.Choices(s)),
			digits(trans[s][0]),
			fmt.Sprint(counters[s]),
		})
	}
	return rows
}

func digits(p []int) string {
	var b strings.Builder
	for _, v := range p {
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
