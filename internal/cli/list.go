package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	HideTranslations bool
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List the collection in stored order",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.HideTranslations, "hide-translations", false, "print words only, for self-testing")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	words, err := openWords(opts.RootOptions)
	if err != nil {
		return err
	}

	all := words.All()
	if len(all) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The collection is empty. Add a word with: vocab add <word> <translation>")
		return nil
	}

	for i, w := range all {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", i+1, wordLine(w, !opts.HideTranslations))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\ntotal: %d\n", len(all))
	return nil
}
