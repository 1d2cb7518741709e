package command

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/adhocteam/scaffold/internal/config"
	"github.com/adhocteam/scaffold/internal/watch"
)

// Watch checks root once and then re-checks each file with the configured
// extension whenever it changes, until ctx is done.
func Watch(ctx context.Context, root string, cfg config.Config) error {
	logger := slog.Default()

	if _, err := Check(ctx, root, cfg); err != nil && !errors.Is(err, ErrCheckFailed) {
		return err
	}

	logger.Info("Watching for changes", "root", root)
	return watch.Dir(ctx, root, cfg.Debounce, func(name string) {
		if !strings.HasSuffix(name, cfg.Extension) {
			return
		}
		logger.Info("Change detected", "file", name)
		checkFile(logger, name)
	})
}
