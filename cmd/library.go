package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/formatter"
	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/services"
	"github.com/disfrutatv/dtv/internal/shared"
)

// LibraryList prints the contents of one tracking list.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	kind := services.ListKind(cmd.String("kind"))
	if !kind.Valid() {
		return fmt.Errorf("%w: kind must be favorite, pending, or viewed", shared.ErrInvalidFlag)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	r.logger.Info("listing library", "kind", kind)

	refs, err := r.library.List(ctx, kind)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(refs, true)
	}

	output, err := formatter.Library(refs, format)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// LibraryAdd adds a title to a tracking list.
func (r *Runner) LibraryAdd(ctx context.Context, cmd *cli.Command) error {
	kind, media, id, err := r.mutationArgs(cmd)
	if err != nil {
		return err
	}

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	r.logger.Info("adding to library", "kind", kind, "type", media, "id", id)

	if err := r.library.Add(ctx, kind, media, id); err != nil {
		return err
	}

	return r.writePlain("✓ Added %s %d to %s\n", media, id, kind)
}

// LibraryRemove removes a title from a tracking list.
func (r *Runner) LibraryRemove(ctx context.Context, cmd *cli.Command) error {
	kind, media, id, err := r.mutationArgs(cmd)
	if err != nil {
		return err
	}

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	r.logger.Info("removing from library", "kind", kind, "type", media, "id", id)

	if err := r.library.Remove(ctx, kind, media, id); err != nil {
		return err
	}

	return r.writePlain("✓ Removed %s %d from %s\n", media, id, kind)
}

// LibraryStats prints the per-list counters for the signed-in account.
func (r *Runner) LibraryStats(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	stats, err := r.admin.Statistics(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}

	output, err := formatter.Statistics(stats, format)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) mutationArgs(cmd *cli.Command) (services.ListKind, models.MediaType, int, error) {
	kind := services.ListKind(cmd.String("kind"))
	if !kind.Valid() {
		return "", "", 0, fmt.Errorf("%w: kind must be favorite, pending, or viewed", shared.ErrInvalidFlag)
	}

	media := models.MediaType(cmd.String("type"))
	if !media.Valid() {
		return "", "", 0, fmt.Errorf("%w: type must be movie or tv", shared.ErrInvalidFlag)
	}

	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: title id must be numeric", shared.ErrInvalidArgument)
	}

	return kind, media, id, nil
}
