package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Translation  string
	PartOfSpeech string
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <word>",
		Short: "Change a word's translation or part of speech",
		Long: `Change the stored translation or part of speech of a word. Flags that are
not given keep the stored value; an empty value clears the field.

Example:
  vocab edit apple --translation 苹果
  vocab edit apple --pos ""`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Translation, "translation", "", "new translation")
	cmd.Flags().StringVar(&opts.PartOfSpeech, "pos", "", "new part of speech")

	return cmd
}

func runEdit(opts *EditOptions, word string, cmd *cobra.Command) error {
	// Only flags the user actually set are applied
	var translation, partOfSpeech *string
	if cmd.Flags().Changed("translation") {
		translation = &opts.Translation
	}
	if cmd.Flags().Changed("pos") {
		partOfSpeech = &opts.PartOfSpeech
	}
	if translation == nil && partOfSpeech == nil {
		return errors.New("nothing to change: pass --translation and/or --pos")
	}

	words, err := openWords(opts.RootOptions)
	if err != nil {
		return err
	}

	updated, err := words.Edit(word, translation, partOfSpeech)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", wordLine(updated, true))
	return nil
}
