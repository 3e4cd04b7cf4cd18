package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/formatter"
	"github.com/disfrutatv/dtv/internal/guard"
	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
	"github.com/disfrutatv/dtv/internal/store"
)

// AdminUsers lists registered accounts.
func (r *Runner) AdminUsers(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	if err := r.checkAdminRoute(ctx); err != nil {
		return err
	}

	r.logger.Info("listing users")

	if err := store.LoadUsers(ctx, r.admin, r.state); err != nil {
		return err
	}
	users := r.state.State().Users

	if cmd.Bool("json") {
		return r.writeJSON(users, true)
	}

	output, err := formatter.Users(users, format)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// AdminCreateUser creates a new account through the admin surface.
func (r *Runner) AdminCreateUser(ctx context.Context, cmd *cli.Command) error {
	if err := r.checkAdminRoute(ctx); err != nil {
		return err
	}

	username := cmd.String("username")
	email := cmd.String("email")
	password := cmd.String("password")

	r.logger.Info("creating user", "username", username, "email", email)

	user, err := r.admin.CreateUser(ctx, username, email, password)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Created user %s (id %d)\n", user.Username, user.ID)
}

// AdminConfig reads or updates the service configuration.
func (r *Runner) AdminConfig(ctx context.Context, cmd *cli.Command) error {
	if err := r.checkAdminRoute(ctx); err != nil {
		return err
	}

	if key := cmd.String("set-tmdb-key"); key != "" {
		r.logger.Info("updating service configuration")
		if err := r.admin.UpdateServiceConfig(ctx, key); err != nil {
			return err
		}
		return r.writePlain("✓ Service configuration updated\n")
	}

	key, err := r.admin.ServiceConfig(ctx)
	if err != nil {
		return err
	}

	if key == "" {
		return r.writePlain("TMDB API key: (not set)\n")
	}
	return r.writePlain("TMDB API key: %s\n", key)
}

// checkAdminRoute restores the session and evaluates the route decision
// for the admin surface. A mismatched role still proceeds; the server's
// own checks are what reject non-admin requests.
func (r *Runner) checkAdminRoute(ctx context.Context) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	if err := r.state.Bootstrap(r.creds); err != nil {
		// ensureSession already proved the credential works; the failure
		// here is the token's shape, not a missing login.
		return fmt.Errorf("stored token is not a valid JWT: %w", err)
	}

	if guard.Evaluate(r.state.State(), models.RoleAdmin) == guard.Redirect {
		return fmt.Errorf("%w: run 'dtv auth login' first", shared.ErrNotAuthenticated)
	}
	return nil
}
