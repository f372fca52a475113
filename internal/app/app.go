package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/stlquote/pkg/pricing"
	"github.com/philipparndt/stlquote/pkg/watcher"
)

// QuoteFunc receives a fresh quote after the watched model was reloaded
type QuoteFunc func(model *LoadedModel, quote pricing.Quote)

// Watch reloads path whenever it changes on disk and reports the new quote.
// A file that fails to parse is logged and the previous model is kept. Watch
// blocks until ctx is cancelled.
func (s *Session) Watch(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, onQuote QuoteFunc) error {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := watcher.NewFileWatcher(debounce, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	reload := func(changed string) {
		start := time.Now()
		model, err := s.LoadFile(path)
		if err != nil {
			logger.Error("reload failed, keeping previous model", "path", changed, "error", err)
			return
		}

		quote, err := s.Quote()
		if err != nil {
			logger.Error("quote failed", "path", changed, "error", err)
			return
		}

		logger.Info("model reloaded",
			"path", changed,
			"format", model.Format.String(),
			"triangles", model.Mesh.TriangleCount,
			"elapsed", time.Since(start))
		onQuote(model, quote)
	}

	if err := fw.Watch([]string{path}, reload); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	logger.Info("watching file for changes", "path", path)
	fw.Run(ctx)
	return nil
}
