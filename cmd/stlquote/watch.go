package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/stlquote/internal/app"
	"github.com/philipparndt/stlquote/pkg/pricing"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-quote a model every time it is saved",
	Long:  "Print a quote for the model, then watch the file and print a new quote whenever it changes.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	addSelectionFlags(watchCmd.Flags())
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Wait this long after the last change before re-quoting")
}

func runWatch(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	if err := session.SetSelection(selection); err != nil {
		return err
	}

	model, err := session.LoadFile(args[0])
	if err != nil {
		return err
	}
	// An empty model is often a file still being modelled; keep watching it
	quote, err := session.Quote()
	switch {
	case errors.Is(err, app.ErrEmptyModel):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	case err != nil:
		return err
	default:
		printQuote(model, session.Selection(), quote)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return session.Watch(ctx, args[0], watchDebounce, newLogger(), func(m *app.LoadedModel, q pricing.Quote) {
		fmt.Println()
		printQuote(m, session.Selection(), q)
	})
}
