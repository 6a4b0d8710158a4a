package bootstrap

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	cataloginadapter "hypersomnia/internal/modules/catalog/adapter/in"
	catalogoutadapter "hypersomnia/internal/modules/catalog/adapter/out"
	catalogdto "hypersomnia/internal/modules/catalog/dto"
	catalogservice "hypersomnia/internal/modules/catalog/service"
	catalogusecase "hypersomnia/internal/modules/catalog/usecase"
	gameplayinadapter "hypersomnia/internal/modules/gameplay/adapter/in"
	gameplayoutadapter "hypersomnia/internal/modules/gameplay/adapter/out"
	gameplayservice "hypersomnia/internal/modules/gameplay/service"
	gameplayusecase "hypersomnia/internal/modules/gameplay/usecase"
	playerinadapter "hypersomnia/internal/modules/player/adapter/in"
	playeroutadapter "hypersomnia/internal/modules/player/adapter/out"
	playerservice "hypersomnia/internal/modules/player/service"
	playerusecase "hypersomnia/internal/modules/player/usecase"
	progressinadapter "hypersomnia/internal/modules/progress/adapter/in"
	progressoutadapter "hypersomnia/internal/modules/progress/adapter/out"
	progressservice "hypersomnia/internal/modules/progress/service"
	progressusecase "hypersomnia/internal/modules/progress/usecase"
	sessioninadapter "hypersomnia/internal/modules/session/adapter/in"
	sessionoutadapter "hypersomnia/internal/modules/session/adapter/out"
	sessionservice "hypersomnia/internal/modules/session/service"
	sessionusecase "hypersomnia/internal/modules/session/usecase"
	"hypersomnia/internal/platform/clock"
	"hypersomnia/internal/platform/config"
	"hypersomnia/internal/platform/logger"
	"hypersomnia/internal/platform/metrics"
	"hypersomnia/internal/platform/sqlitedb"
	"hypersomnia/internal/platform/sqlitemigrate"
	"hypersomnia/internal/platform/storage/migrations"
	"hypersomnia/internal/platform/tx"
	uimenu "hypersomnia/internal/ui/menu"
)

// Startup reports what schema and seeding did while the app was built.
type Startup struct {
	DBPath     string
	Migrations []string
	Seed       catalogdto.SeedOutput
}

type App struct {
	PlayerCLI   playerinadapter.CLIHandler
	CatalogCLI  cataloginadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	SessionCLI  sessioninadapter.CLIHandler
	GameplayCLI gameplayinadapter.CLIHandler
	Startup     Startup

	db  *sqlitedb.Handle
	log *logger.Logger
}

type Options struct {
	Logger *logger.Logger
	Clock  clock.Clock
	// MemorySelection keeps the current player in process memory instead of
	// the selection file.
	MemorySelection bool
}

// New opens the store, applies the schema, seeds the catalog and wires every
// module. Any failure closes what was opened and is fatal to startup.
func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}

	db, err := sqlitedb.Open(ctx, cfg.DBPath, sqlitedb.Options{BusyTimeout: cfg.BusyTimeout})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	app, err := wire(ctx, cfg, db, clk, log, opts.MemorySelection)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func wire(ctx context.Context, cfg config.Config, db *sqlitedb.Handle, clk clock.Clock, log *logger.Logger, memorySelection bool) (*App, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applied, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, migrations.Root)
	if err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	log.Info("store opened", zap.String("path", db.Path()), zap.Strings("migrations", applied))

	txm := tx.NewSQLiteManager(db, func(d time.Duration) { metrics.TxDuration.Observe(d.Seconds()) })

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewSQLiteLevelStore(db),
		catalogoutadapter.NewYAMLSeedSource(cfg.CatalogPath),
		txm,
		log.With(zap.String("module", "catalog")),
	))
	seed, err := catalogUC.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed levels: %w", err)
	}

	progressUC := progressusecase.NewInteractor(progressservice.NewProgressService(
		clk,
		progressoutadapter.NewSQLiteRecordStore(db),
		progressoutadapter.NewCatalogLevelsAdapter(catalogUC),
		txm,
		log.With(zap.String("module", "progress")),
	))

	selectionStore := sessionoutadapter.NewFileSelectionStore(cfg.SelectionPath)
	if memorySelection {
		selectionStore = sessionoutadapter.NewMemorySelectionStore()
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		clk,
		selectionStore,
		log.With(zap.String("module", "session")),
	))

	playerUC := playerusecase.NewInteractor(playerservice.NewPlayerService(playerservice.Deps{
		Clock:    clk,
		Players:  playeroutadapter.NewSQLitePlayerStore(db),
		Settings: playeroutadapter.NewSQLiteSettingsStore(db),
		Seeder:   playeroutadapter.NewProgressSeederAdapter(progressUC),
		Selector: playeroutadapter.NewSessionSelectorAdapter(sessionUC),
		Tx:       txm,
		Log:      log.With(zap.String("module", "player")),
	}))

	gameplayUC := gameplayusecase.NewInteractor(gameplayservice.NewGameplayService(
		gameplayoutadapter.NewCatalogAdapter(catalogUC),
		gameplayoutadapter.NewProgressAdapter(progressUC),
		gameplayoutadapter.NewPlayerAdapter(playerUC),
		txm,
		log.With(zap.String("module", "gameplay")),
	))

	return &App{
		PlayerCLI:   playerinadapter.NewCLIHandler(playerUC),
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		GameplayCLI: gameplayinadapter.NewCLIHandler(gameplayUC),
		Startup:     Startup{DBPath: db.Path(), Migrations: applied, Seed: seed},
		db:          db,
		log:         log,
	}, nil
}

// Close releases the store. It is safe to call more than once.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if !a.db.IsOpen() {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return err
	}
	a.log.Info("store closed")
	// stderr sync fails on some terminals
	_ = a.log.Sync()
	return nil
}

func RunMenu(app *App) error {
	model := uimenu.NewModel(app.PlayerCLI, app.GameplayCLI, app.ProgressCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
