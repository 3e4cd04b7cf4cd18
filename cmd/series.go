package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/formatter"
	"github.com/disfrutatv/dtv/internal/shared"
)

// SeriesList prints a page of the TV series catalog.
func (r *Runner) SeriesList(ctx context.Context, cmd *cli.Command) error {
	page := cmd.Int("page")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	cached := cmd.Bool("cached")

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	catalog := r.catalog
	if cached {
		if r.cached == nil {
			return fmt.Errorf("%w: local cache not initialized, run 'dtv setup database' first", shared.ErrServiceUnavailable)
		}
		catalog = r.cached
	} else if err := r.ensureSession(ctx); err != nil {
		return err
	}

	r.logger.Info("listing series", "page", page, "cached", cached)

	series, err := catalog.Series(ctx, page)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(series, pretty)
	}

	output, err := formatter.Series(series, format)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// SeriesShow prints extended metadata for one series, fetched from TMDB.
func (r *Runner) SeriesShow(ctx context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: series id must be numeric", shared.ErrInvalidArgument)
	}

	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	similar := cmd.Bool("similar")

	r.logger.Info("fetching series detail", "id", id)

	detail, err := r.tmdb.SeriesDetail(ctx, id)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}

	r.writePlainHeader(detail.DisplayName())
	if detail.Tagline != "" {
		r.writePlain("%s\n\n", detail.Tagline)
	}
	r.writePlain("%s\n", detail.Overview)
	r.writePlain("\nFirst aired: %s\n", detail.FirstAirDate)
	r.writePlain("Rating: %.1f\n", detail.VoteAverage)
	if detail.Status != "" {
		r.writePlain("Status: %s\n", detail.Status)
	}

	if !similar {
		return nil
	}

	series, err := r.tmdb.SimilarSeries(ctx, id)
	if err != nil {
		return err
	}

	r.writePlainln("Similar series:")
	output, err := formatter.Series(series, formatter.FormatTable)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
