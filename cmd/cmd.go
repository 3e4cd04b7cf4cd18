// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles account authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in and store the access token locally",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password (prompted when omitted)",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Invalidate the server session and remove the stored token",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
			{
				Name:  "profile",
				Usage: "Show the account profile, or update it with flags",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "username",
						Aliases: []string{"u"},
						Usage:   "New username",
					},
					&cli.StringFlag{
						Name:    "email",
						Aliases: []string{"e"},
						Usage:   "New email",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "New password (use --password= to be prompted)",
					},
				},
				Action: r.AuthProfile,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "reset-password",
				Usage: "Request a password reset email, or confirm with a token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "email",
						Usage: "Email to send the reset link to",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "Reset token from the email",
					},
					&cli.StringFlag{
						Name:  "password",
						Usage: "New password (with --token)",
					},
				},
				Action: r.AuthResetPassword,
			},
		},
	}
}

// moviesCommand handles movie catalog operations
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"m"},
		Usage:   "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List a page of the movie catalog",
				Flags: append(listFlags(), &cli.BoolFlag{
					Name:  "cached",
					Usage: "Read from the local cache instead of the API",
				}),
				Action: r.MoviesList,
			},
			{
				Name:  "show",
				Usage: "Show details for a movie",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "similar",
						Usage: "Also list similar movies",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.MoviesShow,
			},
		},
	}
}

// seriesCommand handles series catalog operations
func seriesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "series",
		Aliases: []string{"s", "tv"},
		Usage:   "Browse the TV series catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List a page of the series catalog",
				Flags: append(listFlags(), &cli.BoolFlag{
					Name:  "cached",
					Usage: "Read from the local cache instead of the API",
				}),
				Action: r.SeriesList,
			},
			{
				Name:  "show",
				Usage: "Show details for a series",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "similar",
						Usage: "Also list similar series",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SeriesShow,
			},
		},
	}
}

// libraryCommand handles the user's tracking lists
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Manage favorites, pending, and viewed lists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show the contents of a tracking list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "kind",
						Aliases: []string{"k"},
						Usage:   "List to show: favorite, pending, or viewed",
						Value:   "favorite",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: table, csv, or markdown",
						Value:   "table",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.LibraryList,
			},
			{
				Name:  "add",
				Usage: "Add a title to a tracking list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  libraryMutationFlags(),
				Action: r.LibraryAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove a title from a tracking list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  libraryMutationFlags(),
				Action: r.LibraryRemove,
			},
			{
				Name:   "stats",
				Usage:  "Show per-list counters for the signed-in account",
				Action: r.LibraryStats,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: table, csv, or markdown",
						Value:   "table",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
			},
		},
	}
}

// adminCommand handles the administrative surface
func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Administrative operations",
		Commands: []*cli.Command{
			{
				Name:  "users",
				Usage: "List registered accounts",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: table, csv, or markdown",
						Value:   "table",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AdminUsers,
			},
			{
				Name:  "create-user",
				Usage: "Create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
					},
				},
				Action: r.AdminCreateUser,
			},
			{
				Name:  "config",
				Usage: "Read or update the service configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "set-tmdb-key",
						Usage: "Set the service's TMDB API key",
					},
				},
				Action: r.AdminConfig,
			},
		},
	}
}

// cacheCommand handles local catalog caching
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Cache catalog pages locally",
		Commands: []*cli.Command{
			{
				Name:  "sync",
				Usage: "Fetch catalog pages and store them in the local database",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "pages",
						Aliases: []string{"n"},
						Usage:   "Number of pages to fetch per collection",
						Value:   3,
					},
				},
				Action: r.CacheSync,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive catalog browser",
		Action:  r.TUI,
	}
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Usage:   "Catalog page to fetch",
			Value:   1,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: table, csv, or markdown",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

func libraryMutationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "Media type: movie or tv",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "List to modify: favorite, pending, or viewed",
			Value:   "favorite",
		},
	}
}
