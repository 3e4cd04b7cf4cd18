package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/formatter"
	"github.com/disfrutatv/dtv/internal/shared"
)

// MoviesList prints a page of the movie catalog.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
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

	r.logger.Info("listing movies", "page", page, "cached", cached)

	movies, err := catalog.Movies(ctx, page)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(movies, pretty)
	}

	output, err := formatter.Movies(movies, format)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// MoviesShow prints extended metadata for one movie, fetched from TMDB.
func (r *Runner) MoviesShow(ctx context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: movie id must be numeric", shared.ErrInvalidArgument)
	}

	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	similar := cmd.Bool("similar")

	r.logger.Info("fetching movie detail", "id", id)

	detail, err := r.tmdb.MovieDetail(ctx, id)
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
	r.writePlain("\nReleased: %s\n", detail.ReleaseDate)
	r.writePlain("Rating: %.1f\n", detail.VoteAverage)
	if detail.Runtime > 0 {
		r.writePlain("Runtime: %d min\n", detail.Runtime)
	}
	for i, g := range detail.Genres {
		if i == 0 {
			r.writePlain("Genres: %s", g.Name)
		} else {
			r.writePlain(", %s", g.Name)
		}
	}
	if len(detail.Genres) > 0 {
		r.writePlain("\n")
	}

	if !similar {
		return nil
	}

	movies, err := r.tmdb.SimilarMovies(ctx, id)
	if err != nil {
		return err
	}

	r.writePlainln("Similar movies:")
	output, err := formatter.Movies(movies, formatter.FormatTable)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
