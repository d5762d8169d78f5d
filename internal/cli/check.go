package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/superperm/pkg/errors"
	"github.com/matzehuels/superperm/pkg/perm"
)

// checkResult describes which permutations of a string's alphabet appear in
// it as contiguous windows.
type checkResult struct {
	Alphabet []rune
	Length   int
	Found    int
	Total    int
	Missing  []string
}

// Complete reports whether every permutation was found.
func (r checkResult) Complete() bool { return r.Found == r.Total }

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "check STRING",
		Short: "Check whether a string is a superpermutation of its alphabet",
		Long: `Count how many permutations of the string's alphabet occur in it as
contiguous substrings. The alphabet is the set of distinct characters in the
string.`,
		Example: `  superperm check 123121321`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := checkString(args[0])
			if err != nil {
				return err
			}
			if res.Complete() {
				printSuccess("Superpermutation of %q: all %d permutations in %d characters",
					string(res.Alphabet), res.Total, res.Length)
				return nil
			}
			printWarning("%d of %d permutations of %q found", res.Found, res.Total, string(res.Alphabet))
			missing := res.Missing
			if limit > 0 && len(missing) > limit {
				missing = missing[:limit]
			}
			for _, m := range missing {
				printDetail("missing %s", m)
			}
			if len(missing) < len(res.Missing) {
				printDetail("... and %d more", len(res.Missing)-len(missing))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of missing permutations to list (0 lists all)")

	return cmd
}

// checkString slides an alphabet-sized window over s and records every
// window that is a permutation of the alphabet.
func checkString(s string) (checkResult, error) {
	runes := []rune(s)
	alphabet := slices.Clone(runes)
	slices.Sort(alphabet)
	alphabet = slices.Compact(alphabet)

	n := len(alphabet)
	if err := errors.ValidateSymbols(n); err != nil {
		return checkResult{}, err
	}

	index := make(map[rune]int, n)
	for i, r := range alphabet {
		index[r] = i
	}

	total := perm.Factorial(n)
	seen := make([]bool, total)
	found := 0
	window := make([]int, n)
	for start := 0; start+n <= len(runes); start++ {
		for i := range window {
			window[i] = index[runes[start+i]]
		}
		if perm.Check(window) != nil {
			continue
		}
		if r := perm.Rank(window); !seen[r] {
			seen[r] = true
			found++
		}
	}

	res := checkResult{Alphabet: alphabet, Length: len(runes), Found: found, Total: total}
	for r, ok := range seen {
		if !ok {
			res.Missing = append(res.Missing, spell(perm.Unrank(r, n), alphabet))
		}
	}
	return res, nil
}

func spell(p []int, alphabet []rune) string {
	var b strings.Builder
	for _, v := range p {
		b.WriteRune(alphabet[v])
	}
	return b.String()
}

// String returns a one-line summary.
func (r checkResult) String() string {
	return fmt.Sprintf("%d/%d permutations of %q in %d characters", r.Found, r.Total, string(r.Alphabet), r.Length)
}
