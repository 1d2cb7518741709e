package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/adhocteam/scaffold/internal/config"
	"github.com/adhocteam/scaffold/internal/walk"
)

// ErrCheckFailed is returned by Check when at least one file does not parse
// or evaluate.
var ErrCheckFailed = errors.New("check failed")

// Summary counts the files a Check looked at and how many of them failed.
type Summary struct {
	Files  int
	Failed int
}

// Check parses and evaluates every file below root with the configured
// extension, up to cfg.Jobs at a time. Each failing file is logged, with
// its position when there is one; an error walking root aborts the check.
func Check(ctx context.Context, root string, cfg config.Config) (Summary, error) {
	logger := slog.Default()
	logger.Info("Checking", "root", root, "ext", cfg.Extension)

	var files, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)

	for path, err := range walk.Find(root, cfg.Extension) {
		if err != nil {
			g.Wait()
			return Summary{}, fmt.Errorf("finding files: %w", err)
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			files.Add(1)
			if err := checkFile(logger, path); err != nil {
				failed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Files: int(files.Load()), Failed: int(failed.Load())}
	logger.Info("Checked",
		"files", humanize.Comma(int64(summary.Files)),
		"failed", humanize.Comma(int64(summary.Failed)))

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%w: %d of %d files", ErrCheckFailed, summary.Failed, summary.Files)
	}
	return summary, nil
}

// checkFile evaluates path, logging the outcome.
func checkFile(logger *slog.Logger, path string) error {
	v, err := evalFile(path)
	if err != nil {
		logFailure(logger, path, err)
		return err
	}
	logger.Debug("Checked file", "file", path, "value", v)
	return nil
}
