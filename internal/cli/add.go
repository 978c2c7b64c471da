package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <word> <translation> [partOfSpeech]",
		Short: "Add a word to the collection",
		Long: `Add a word with its translation and an optional part of speech.

Example:
  vocab add apple 苹果 noun
  vocab add "give up" 放弃`,
		Args:         cobra.RangeArgs(2, 3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, args []string, cmd *cobra.Command) error {
	words, err := openWords(opts)
	if err != nil {
		return err
	}

	partOfSpeech := ""
	if len(args) == 3 {
		partOfSpeech = args[2]
	}

	saved, err := words.Add(args[0], args[1], partOfSpeech)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q (total: %d)\n", saved.Word, words.Count())
	return nil
}
