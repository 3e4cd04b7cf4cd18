package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/shared"
)

// AuthLogin signs in with email and password and stores the returned
// access token in the local database.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if r.session == nil {
		return fmt.Errorf("%w: credential storage not initialized, run 'dtv setup database' first", shared.ErrServiceUnavailable)
	}

	email := cmd.String("email")
	password, err := r.readSecret(cmd.String("password"), "Password: ")
	if err != nil {
		return err
	}

	r.logger.Info("signing in", "email", email)

	token, err := r.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := r.session.Login(ctx, token); err != nil {
		if errors.Is(err, shared.ErrUnauthorized) {
			// The token was accepted by /auth/login but rejected by the
			// profile endpoint; the stored copy has already been removed.
			return fmt.Errorf("%w: token rejected after login", shared.ErrAuthFailed)
		}
		return err
	}

	return r.writePlain("✓ Signed in as %s\n", r.session.State().Username)
}

// AuthLogout invalidates the server-side session and removes the stored token.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.session == nil {
		return fmt.Errorf("%w: credential storage not initialized", shared.ErrServiceUnavailable)
	}

	if err := r.session.Bootstrap(ctx); err != nil {
		r.logger.Warn("session restore failed before logout", "error", err)
	}

	if err := r.session.Logout(ctx); err != nil {
		return err
	}

	return r.writePlain("✓ Signed out\n")
}

// AuthStatus restores the persisted session and reports its state.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.session == nil {
		return fmt.Errorf("%w: credential storage not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("checking auth status")

	if err := r.session.Bootstrap(ctx); err != nil {
		return err
	}

	state := r.session.State()
	if !state.Authenticated {
		return r.writePlain("✗ Not signed in\n")
	}

	r.writePlain("✓ Signed in as %s\n", state.Username)

	if identity, err := r.session.Identity(); err == nil {
		r.writePlain("Email: %s\n", identity.Email)
		if identity.IsAdmin() {
			r.writePlain("Role: admin\n")
		}
	}

	return nil
}

// AuthProfile shows the account profile, or updates it when any of the
// change flags are set. Omitted fields are left unchanged by the server.
func (r *Runner) AuthProfile(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	username := cmd.String("username")
	email := cmd.String("email")

	if username == "" && email == "" && !cmd.IsSet("password") {
		profile, err := r.auth.Profile(ctx)
		if err != nil {
			return err
		}
		r.writePlain("Username: %s\n", profile.Username)
		r.writePlain("Email: %s\n", profile.Email)
		return nil
	}

	var password string
	if cmd.IsSet("password") {
		var err error
		if password, err = r.readSecret(cmd.String("password"), "New password: "); err != nil {
			return err
		}
	}

	r.logger.Info("updating profile")

	if err := r.auth.UpdateProfile(ctx, username, email, password); err != nil {
		return err
	}

	return r.writePlain("✓ Profile updated\n")
}

// AuthRegister creates a new account. The new account is not signed in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	email := cmd.String("email")
	password, err := r.readSecret(cmd.String("password"), "Password: ")
	if err != nil {
		return err
	}

	r.logger.Info("registering account", "username", username, "email", email)

	if err := r.auth.Register(ctx, username, email, password); err != nil {
		return err
	}

	return r.writePlain("✓ Account created, sign in with 'dtv auth login'\n")
}

// AuthResetPassword either requests a reset email or, given a token,
// sets a new password.
func (r *Runner) AuthResetPassword(ctx context.Context, cmd *cli.Command) error {
	token := cmd.String("token")
	email := cmd.String("email")

	if token == "" && email == "" {
		return fmt.Errorf("%w: either --email or --token must be provided", shared.ErrMissingArgument)
	}

	if token != "" {
		password, err := r.readSecret(cmd.String("password"), "New password: ")
		if err != nil {
			return err
		}
		if err := r.auth.ResetPassword(ctx, token, password); err != nil {
			return err
		}
		return r.writePlain("✓ Password updated\n")
	}

	if err := r.auth.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	return r.writePlain("✓ Reset email sent to %s\n", email)
}

// readSecret returns the flag value when set, otherwise reads a line
// from stdin after printing the prompt.
func (r *Runner) readSecret(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	r.writePlain("%s", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%w: empty password", shared.ErrMissingCredentials)
	}
	return line, nil
}
