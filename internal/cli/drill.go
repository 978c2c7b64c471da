package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordlearner/internal/domain"
	"wordlearner/internal/drill"
	"wordlearner/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DrillOptions holds flags for the drill command.
type DrillOptions struct {
	*RootOptions
	Mode             string
	Interval         int
	Window           int
	Count            int
	HideTranslations bool
}

// NewDrillCommand creates the drill command.
func NewDrillCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DrillOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Show one word after another on a timer",
		Long: `Show one word after another on a timer, in random or sequential order.
Mode and interval default to the settings file; flags override them.

Example:
  vocab drill
  vocab drill --mode sequential --interval 5
  vocab drill --count 20 --hide-translations`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrill(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", "", "display order: random or sequential (default from settings)")
	cmd.Flags().IntVar(&opts.Interval, "interval", 0, "seconds between words (default from settings)")
	cmd.Flags().IntVar(&opts.Window, "window", 1, "how many recent words random order avoids")
	cmd.Flags().IntVar(&opts.Count, "count", 0, "stop after this many words (0 = until interrupted)")
	cmd.Flags().BoolVar(&opts.HideTranslations, "hide-translations", false, "print words only, for self-testing")

	return cmd
}

func runDrill(opts *DrillOptions, cmd *cobra.Command) error {
	words, err := openWords(opts.RootOptions)
	if err != nil {
		return err
	}
	if words.Count() == 0 {
		return errors.New("the collection is empty, add words first: vocab add <word> <translation>")
	}

	settings, err := loadSettings(opts.RootOptions)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, using default settings\n", err)
		settings = domain.DefaultSettings()
	}

	mode := settings.DisplayMode
	if opts.Mode != "" {
		mode = domain.Mode(opts.Mode)
		if !mode.Valid() {
			return fmt.Errorf("unknown mode %q: use random or sequential", opts.Mode)
		}
	}

	interval := settings.Interval()
	if opts.Interval > 0 {
		interval = time.Duration(opts.Interval) * time.Second
	}

	showTranslation := settings.ShowTranslation && !opts.HideTranslations

	sequence := service.NewSequenceService(words, mode)
	sequence.SetAntiRepeatWindow(opts.Window)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Drilling %d words in %s order, one every %s. Ctrl-C stops.\n\n",
		words.Count(), mode, interval)

	done := make(chan struct{})
	shown := 0

	// show runs on the runner's goroutine, which stops with the runner
	runner := drill.NewRunner(sequence, zap.NewNop())
	runner.Start(interval, func(w domain.Word) {
		fmt.Fprintln(out, wordLine(w, showTranslation))
		shown++
		if opts.Count > 0 && shown == opts.Count {
			close(done)
		}
	})
	defer runner.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-done:
		fmt.Fprintf(out, "\n%d word(s) shown.\n", opts.Count)
	case <-sigChan:
		fmt.Fprintln(out, "\nStopped.")
	}
	return nil
}
