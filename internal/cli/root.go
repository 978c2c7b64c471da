package cli

import (
	"fmt"

	"wordlearner/internal/domain"
	"wordlearner/internal/repository/jsonfile"
	"wordlearner/internal/service"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	WordsFile    string
	SettingsFile string
}

// NewRootCommand creates the root command for the vocab CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage and drill a personal vocabulary collection",
		Long: `vocab works on the same words file as the Telegram bot: add and edit
words, search the collection, and run timed drills in the terminal.`,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.WordsFile, "words", "words.json", "path to the words file")
	cmd.PersistentFlags().StringVar(&opts.SettingsFile, "settings", "config.json", "path to the settings file")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDrillCommand(opts))

	return cmd
}

// openWords loads the collection behind the global --words flag.
func openWords(opts *RootOptions) (*service.WordService, error) {
	return service.NewWordService(jsonfile.NewWordRepo(opts.WordsFile))
}

// loadSettings reads the settings file behind the global --settings flag.
func loadSettings(opts *RootOptions) (domain.Settings, error) {
	return jsonfile.NewSettingsRepo(opts.SettingsFile).Load()
}

// wordLine renders one collection entry for terminal output.
func wordLine(w domain.Word, showTranslation bool) string {
	line := w.Word
	if w.PartOfSpeech != "" {
		line += fmt.Sprintf(" (%s)", w.PartOfSpeech)
	}
	if showTranslation && w.Translation != "" {
		line += ": " + w.Translation
	}
	return line
}
