package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rm <word>",
		Short:        "Remove a word from the collection",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, word string, cmd *cobra.Command) error {
	words, err := openWords(opts)
	if err != nil {
		return err
	}

	if err := words.Delete(word); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q (left: %d)\n", word, words.Count())
	return nil
}
