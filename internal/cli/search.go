package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "search <query>",
		Short:        "Find words by a case-insensitive substring of the word or translation",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSearch(opts *RootOptions, query string, cmd *cobra.Command) error {
	words, err := openWords(opts)
	if err != nil {
		return err
	}

	results := words.Search(query)
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing matches %q.\n", query)
		return nil
	}

	for i, w := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", i+1, wordLine(w, true))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d words match\n", len(results), words.Count())
	return nil
}
