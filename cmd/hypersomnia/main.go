package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hypersomnia/internal/bootstrap"
	catalogdto "hypersomnia/internal/modules/catalog/dto"
	gameplaydomain "hypersomnia/internal/modules/gameplay/domain"
	playerdto "hypersomnia/internal/modules/player/dto"
	"hypersomnia/internal/platform/config"
	"hypersomnia/internal/platform/logger"
	"hypersomnia/internal/platform/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	dataDir    string
	dbPath     string
	logLevel   string
	metrics    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "hypersomnia",
		Short:         "Hypersomnia player progression store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory holding the database")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database file (overrides data-dir)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")
	root.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "print collected metrics after the command")
	root.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		if !opts.metrics {
			return nil
		}
		return metrics.WriteText(cmd.OutOrStdout())
	}

	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newPlayerCmd(opts))
	root.AddCommand(newLevelCmd(opts))
	root.AddCommand(newProgressCmd(opts))
	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newSessionCmd(opts))
	root.AddCommand(newMenuCmd(opts))
	return root
}

func loadApp(ctx context.Context, opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
		if opts.dbPath == "" {
			cfg.DBPath = ""
			cfg.SelectionPath = ""
		}
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
		cfg.SelectionPath = ""
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	cfg, err = config.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "hypersomnia",
	})
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{Logger: log})
	if err != nil {
		log.Error("startup failed", err, zap.String("db", cfg.DBPath))
		_ = log.Sync()
		return nil, err
	}
	return app, nil
}

// withApp runs fn against a freshly started app and closes it afterwards.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(context.Context, *bootstrap.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := loadApp(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(ctx, app)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database, apply the schema and seed levels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(_ context.Context, app *bootstrap.App) error {
				s := app.Startup
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "database %s\n", s.DBPath)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "migrations applied: %d\n", len(s.Migrations))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "levels seeded: %d (existing %d)\n", s.Seed.Inserted, s.Seed.Skipped)
				return nil
			})
		},
	}
}

func printPlayer(w io.Writer, p playerdto.PlayerOutput) {
	_, _ = fmt.Fprintf(w, "%d\t%s\tcreated %s\tlast played %s\n",
		p.ID, p.Name, p.CreatedAt.Format("2006-01-02 15:04"), p.LastPlayedAt.Format("2006-01-02 15:04"))
}

func newPlayerCmd(opts *rootOptions) *cobra.Command {
	player := &cobra.Command{Use: "player", Short: "Player roster commands"}

	player.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a player, seed progress and select it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.PlayerCLI.Create(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created player %s (%d) with %d progress rows\n",
					out.Player.Name, out.Player.ID, out.ProgressRows)
				return nil
			})
		},
	})

	player.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List players, most recently played first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				players, err := app.PlayerCLI.List(ctx)
				if err != nil {
					return err
				}
				if len(players) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no players")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, p := range players {
					printPlayer(tw, p)
				}
				return tw.Flush()
			})
		},
	})

	player.AddCommand(&cobra.Command{
		Use:   "select <id>",
		Short: "Make a player current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.PlayerCLI.Select(ctx, id)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "selected %s (%d)\n", p.Name, p.ID)
				return nil
			})
		},
	})

	player.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Show a player, or the current one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				var (
					p   playerdto.PlayerOutput
					err error
				)
				if len(args) == 1 {
					id, perr := parseID(args[0])
					if perr != nil {
						return perr
					}
					p, err = app.PlayerCLI.Show(ctx, id)
				} else {
					p, err = app.PlayerCLI.Current(ctx)
				}
				if err != nil {
					return err
				}
				printPlayer(cmd.OutOrStdout(), p)
				return nil
			})
		},
	})

	player.AddCommand(&cobra.Command{
		Use:   "exists <name>",
		Short: "Report whether a player name is taken",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				taken, err := app.PlayerCLI.NameExists(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), taken)
				return nil
			})
		},
	})

	player.AddCommand(newSettingsCmd(opts))
	return player
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	var (
		sound, music float64
		width        int
	)
	settings := &cobra.Command{
		Use:   "settings <id>",
		Short: "Show or update a player's audio and video settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				in := playerdto.UpdateSettingsInput{PlayerID: id}
				flags := cmd.Flags()
				if flags.Changed("sound") {
					in.SoundVolume = &sound
				}
				if flags.Changed("music") {
					in.MusicVolume = &music
				}
				if flags.Changed("width") {
					in.ResolutionWidth = &width
				}

				var out playerdto.SettingsOutput
				if in.SoundVolume == nil && in.MusicVolume == nil && in.ResolutionWidth == nil {
					out, err = app.PlayerCLI.Settings(ctx, id)
				} else {
					out, err = app.PlayerCLI.UpdateSettings(ctx, in)
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sound %.2f  music %.2f  width %d\n",
					out.SoundVolume, out.MusicVolume, out.ResolutionWidth)
				return nil
			})
		},
	}
	settings.Flags().Float64Var(&sound, "sound", 1.0, "sound volume 0..1")
	settings.Flags().Float64Var(&music, "music", 1.0, "music volume 0..1")
	settings.Flags().IntVar(&width, "width", 1920, "horizontal resolution")
	return settings
}

func newLevelCmd(opts *rootOptions) *cobra.Command {
	level := &cobra.Command{Use: "level", Short: "Level catalog commands"}

	level.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List levels in play order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				levels, err := app.CatalogCLI.List(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, l := range levels {
					_, _ = fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", l.Order, l.ID, l.Name, l.SceneName)
				}
				return tw.Flush()
			})
		},
	})

	var byScene string
	var byOrder int
	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one level by id, --scene or --order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				var (
					l   catalogdto.LevelOutput
					err error
				)
				switch {
				case byScene != "":
					l, err = app.CatalogCLI.ShowByScene(ctx, byScene)
				case byOrder != 0:
					l, err = app.CatalogCLI.ShowByOrder(ctx, byOrder)
				case len(args) == 1:
					id, perr := parseID(args[0])
					if perr != nil {
						return perr
					}
					l, err = app.CatalogCLI.Show(ctx, id)
				default:
					return errors.New("level show needs an id, --scene or --order")
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tscene %s\torder %d\n", l.ID, l.Name, l.SceneName, l.Order)
				if l.Description != "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), l.Description)
				}
				return nil
			})
		},
	}
	show.Flags().StringVar(&byScene, "scene", "", "scene name")
	show.Flags().IntVar(&byOrder, "order", 0, "play order")
	level.AddCommand(show)

	level.AddCommand(&cobra.Command{
		Use:   "scene <id>",
		Short: "Print the scene name of a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				scene, err := app.CatalogCLI.Scene(ctx, id)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), scene)
				return nil
			})
		},
	})

	level.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert missing catalog levels, keeping existing rows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CatalogCLI.Seed(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "levels seeded: %d (existing %d)\n", out.Inserted, out.Skipped)
				return nil
			})
		},
	})
	return level
}

func newProgressCmd(opts *rootOptions) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Per-level progress ledger"}

	progress.AddCommand(&cobra.Command{
		Use:   "show <player-id>",
		Short: "Show every level's progress for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.ProgressCLI.Show(ctx, pid)
				if err != nil {
					return err
				}
				if len(rows) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no progress")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ORDER\tLEVEL\tSCENE\tUNLOCKED\tDONE\tBEST\tSCORE\tTRIES")
				for _, r := range rows {
					_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%t\t%.2f\t%d\t%d\n",
						r.Order, r.LevelName, r.SceneName, r.Unlocked, r.Completed, r.BestTime, r.Score, r.Attempts)
				}
				return tw.Flush()
			})
		},
	})

	progress.AddCommand(&cobra.Command{
		Use:   "record <player-id> <level-id>",
		Short: "Show one progress record; missing rows print defaults",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, lid, err := parsePair(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				r, err := app.ProgressCLI.Record(ctx, pid, lid)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stored %t unlocked %t completed %t best %.2f score %d attempts %d\n",
					r.Exists, r.Unlocked, r.Completed, r.BestTime, r.Score, r.Attempts)
				return nil
			})
		},
	})

	var elapsed float64
	var score int
	complete := &cobra.Command{
		Use:   "complete <player-id> <level-id>",
		Short: "Mark a level completed, keeping the best time and score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, lid, err := parsePair(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				r, err := app.ProgressCLI.Complete(ctx, pid, lid, elapsed, score)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed level %d: best %.2f score %d\n", r.LevelID, r.BestTime, r.Score)
				return nil
			})
		},
	}
	complete.Flags().Float64Var(&elapsed, "time", 0, "elapsed seconds, 0 keeps the stored best")
	complete.Flags().IntVar(&score, "score", 0, "score for this run")
	progress.AddCommand(complete)

	progress.AddCommand(&cobra.Command{
		Use:   "attempt <player-id> <level-id>",
		Short: "Count one attempt at a level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, lid, err := parsePair(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				r, err := app.ProgressCLI.Attempt(ctx, pid, lid)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "level %d attempts %d\n", r.LevelID, r.Attempts)
				return nil
			})
		},
	})

	progress.AddCommand(&cobra.Command{
		Use:   "unlock <player-id> <level-id>",
		Short: "Unlock a level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, lid, err := parsePair(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				r, err := app.ProgressCLI.Unlock(ctx, pid, lid)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "level %d unlocked\n", r.LevelID)
				return nil
			})
		},
	})

	progress.AddCommand(&cobra.Command{
		Use:   "resume <player-id>",
		Short: "Show the level a player would resume at",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				r, err := app.ProgressCLI.Resume(ctx, pid)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "resume at %s (level %d, order %d)\n", r.SceneName, r.LevelID, r.Order)
				return nil
			})
		},
	})
	return progress
}

func parsePair(args []string) (int64, int64, error) {
	a, err := parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseID(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func newPlayCmd(opts *rootOptions) *cobra.Command {
	play := &cobra.Command{Use: "play", Short: "Gameplay flow against the current player"}

	var playerID int64
	play.PersistentFlags().Int64Var(&playerID, "player", 0, "player id, defaults to the current player")

	play.AddCommand(&cobra.Command{
		Use:   "start <scene>",
		Short: "Enter a level scene and count the attempt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GameplayCLI.Start(ctx, playerID, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "player %d entered %s (attempt %d)\n", out.PlayerID, out.Scene, out.Attempts)
				return nil
			})
		},
	})

	var elapsed float64
	var score int
	finish := &cobra.Command{
		Use:   "finish <scene>",
		Short: "Finish a level and unlock the next one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GameplayCLI.Finish(ctx, playerID, args[0], elapsed, score)
				if errors.Is(err, gameplaydomain.ErrUnknownScene) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "scene %s is not cataloged, next scene %s\n", args[0], gameplaydomain.MainMenuScene)
					return err
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "finished level %d, next scene %s\n", out.LevelID, out.NextScene)
				return nil
			})
		},
	}
	finish.Flags().Float64Var(&elapsed, "time", 0, "elapsed seconds")
	finish.Flags().IntVar(&score, "score", 0, "score for this run")
	play.AddCommand(finish)

	play.AddCommand(&cobra.Command{
		Use:   "continue",
		Short: "Print the scene the player would continue from",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GameplayCLI.Continue(ctx, playerID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "player %d continues at %s\n", out.PlayerID, out.Scene)
				return nil
			})
		},
	})
	return play
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Current player selection"}

	session.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the selected player id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				sel, err := app.SessionCLI.Current(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "player %d selected at %s\n", sel.PlayerID, sel.SelectedAt.Format("2006-01-02 15:04:05"))
				return nil
			})
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the selected player",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Clear(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "selection cleared")
				return nil
			})
		},
	})
	return session
}

func newMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the terminal main menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunMenu(app)
			})
		},
	}
}
