package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/disfrutatv/dtv/internal/services"
	"github.com/disfrutatv/dtv/internal/session"
	"github.com/disfrutatv/dtv/internal/shared"
	"github.com/disfrutatv/dtv/internal/store"
	"github.com/disfrutatv/dtv/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	db         *sql.DB
	creds      session.CredentialStore
	api        *services.APIService
	auth       *services.AuthService
	catalog    services.Catalog
	cached     services.Catalog
	tmdb       *services.TMDBService
	library    *services.LibraryService
	admin      *services.AdminService
	session    *session.Manager
	state      *store.Store
	engine     tasks.SyncEngine
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	DB         *sql.DB
	Creds      session.CredentialStore
	API        *services.APIService
	Auth       *services.AuthService
	Catalog    services.Catalog
	Cached     services.Catalog
	TMDB       *services.TMDBService
	Library    *services.LibraryService
	Admin      *services.AdminService
	Session    *session.Manager
	State      *store.Store
	Engine     tasks.SyncEngine
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.State == nil {
		opts.State = store.New()
	}

	return &Runner{
		config:     opts.Config,
		db:         opts.DB,
		creds:      opts.Creds,
		api:        opts.API,
		auth:       opts.Auth,
		catalog:    opts.Catalog,
		cached:     opts.Cached,
		tmdb:       opts.TMDB,
		library:    opts.Library,
		admin:      opts.Admin,
		session:    opts.Session,
		state:      opts.State,
		engine:     opts.Engine,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, moviesCommand, seriesCommand, libraryCommand, adminCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// ensureSession restores the persisted session and installs its token on
// the API client. Commands that hit authenticated endpoints call this
// before doing anything else.
func (r *Runner) ensureSession(ctx context.Context) error {
	if r.session == nil {
		return fmt.Errorf("%w: session not initialized, run 'dtv setup database' first", shared.ErrServiceUnavailable)
	}
	if err := r.session.Bootstrap(ctx); err != nil {
		return err
	}
	if !r.session.Authenticated() {
		return fmt.Errorf("%w: run 'dtv auth login' first", shared.ErrNotAuthenticated)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
