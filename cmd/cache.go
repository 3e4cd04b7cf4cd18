package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/shared"
	"github.com/disfrutatv/dtv/internal/tasks"
)

// CacheSync fetches catalog pages and stores every title in the local
// database, reporting per-page progress as it goes.
func (r *Runner) CacheSync(ctx context.Context, cmd *cli.Command) error {
	pages := cmd.Int("pages")
	if pages < 1 {
		return fmt.Errorf("%w: pages must be at least 1", shared.ErrInvalidFlag)
	}

	if r.engine == nil {
		return fmt.Errorf("%w: local cache not initialized, run 'dtv setup database' first", shared.ErrServiceUnavailable)
	}

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	r.logger.Info("syncing catalog", "pages", pages)

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range progress {
			if update.Total > 0 {
				r.writePlain("%s (%d/%d) %s\n", update.Phase, update.Step, update.Total, update.Message)
			} else {
				r.writePlain("%s %s\n", update.Phase, update.Message)
			}
		}
	}()

	result, err := r.engine.Sync(ctx, progress, pages)
	close(progress)
	<-done

	if err != nil {
		return err
	}

	r.writePlainln("✓ Cached %d movies and %d series across %d pages", result.MoviesCached, result.SeriesCached, result.PagesFetched)
	for _, pageErr := range result.Errors {
		r.writePlain("  ⚠ page %d (%s): %v\n", pageErr.Page, pageErr.Media, pageErr.Err)
	}

	return nil
}
