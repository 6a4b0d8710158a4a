package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hypersomnia/internal/modules/player/domain"
	playerout "hypersomnia/internal/modules/player/port/out"
	"hypersomnia/internal/platform/clock"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/logger"
	"hypersomnia/internal/platform/metrics"
	"hypersomnia/internal/platform/tx"
)

type PlayerService struct {
	clock    clock.Clock
	players  playerout.PlayerStore
	settings playerout.SettingsStore
	seeder   playerout.ProgressSeeder
	selector playerout.Selector
	tx       tx.Manager
	log      *logger.Logger
}

type Deps struct {
	Clock    clock.Clock
	Players  playerout.PlayerStore
	Settings playerout.SettingsStore
	Seeder   playerout.ProgressSeeder
	Selector playerout.Selector
	Tx       tx.Manager
	Log      *logger.Logger
}

func NewPlayerService(deps Deps) *PlayerService {
	svc := &PlayerService{
		clock:    deps.Clock,
		players:  deps.Players,
		settings: deps.Settings,
		seeder:   deps.Seeder,
		selector: deps.Selector,
		tx:       deps.Tx,
		log:      deps.Log,
	}
	if svc.clock == nil {
		svc.clock = clock.SystemClock{}
	}
	if svc.tx == nil {
		svc.tx = tx.NoopManager{}
	}
	if svc.log == nil {
		svc.log = logger.NewNop()
	}
	return svc
}

// Create inserts the player, its default settings and one progress row per
// cataloged level in a single transaction, then selects the new player.
func (s *PlayerService) Create(ctx context.Context, name string) (domain.Player, int, error) {
	name, err := domain.NormalizeName(name)
	if err != nil {
		metrics.PlayerCreateFailuresTotal.WithLabelValues(metrics.ReasonDuplicateName).Inc()
		return domain.Player{}, 0, err
	}
	exists, err := s.players.NameExists(ctx, name)
	if err != nil {
		metrics.PlayerCreateFailuresTotal.WithLabelValues(metrics.ReasonStorage).Inc()
		return domain.Player{}, 0, err
	}
	if exists {
		metrics.PlayerCreateFailuresTotal.WithLabelValues(metrics.ReasonDuplicateName).Inc()
		return domain.Player{}, 0, fmt.Errorf("%w: %q", apperrors.ErrDuplicateName, name)
	}

	now := s.clock.Now()
	player := domain.Player{Name: name, CreatedAt: now, LastPlayedAt: now}
	rows := 0
	err = s.tx.Within(ctx, func(txCtx context.Context) error {
		id, err := s.players.Insert(txCtx, player)
		if err != nil {
			return err
		}
		player.ID = id
		if err := s.settings.Save(txCtx, domain.DefaultSettings(id)); err != nil {
			return err
		}
		if s.seeder == nil {
			return fmt.Errorf("%w: no progress seeder configured", apperrors.ErrCatalogMisconfigured)
		}
		rows, err = s.seeder.SeedInitial(txCtx, id)
		return err
	})
	if err != nil {
		s.recordCreateFailure(name, err)
		return domain.Player{}, 0, err
	}
	metrics.PlayersCreatedTotal.Inc()
	s.log.Info("player created",
		zap.Int64("player_id", player.ID),
		zap.String("name", player.Name),
		zap.Int("progress_rows", rows),
	)

	if s.selector != nil {
		if err := s.selector.Select(ctx, player.ID); err != nil {
			return player, rows, fmt.Errorf("select new player: %w", err)
		}
	}
	return player, rows, nil
}

func (s *PlayerService) recordCreateFailure(name string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateName):
		metrics.PlayerCreateFailuresTotal.WithLabelValues(metrics.ReasonDuplicateName).Inc()
	case errors.Is(err, apperrors.ErrCatalogMisconfigured):
		metrics.PlayerCreateFailuresTotal.WithLabelValues(metrics.ReasonCatalog).Inc()
		s.log.Error("level catalog has no first level; player creation rolled back", err, zap.String("name", name))
	default:
		metrics.PlayerCreateFailuresTotal.WithLabelValues(metrics.ReasonStorage).Inc()
	}
}

// NameExists answers with the same normalization Create applies; a blank
// name counts as taken since Create rejects it.
func (s *PlayerService) NameExists(ctx context.Context, name string) (bool, error) {
	normalized, err := domain.NormalizeName(name)
	if err != nil {
		return true, nil
	}
	return s.players.NameExists(ctx, normalized)
}

func (s *PlayerService) Get(ctx context.Context, id int64) (domain.Player, error) {
	if id <= 0 {
		return domain.Player{}, fmt.Errorf("%w: player %d", apperrors.ErrNotFound, id)
	}
	return s.players.FindByID(ctx, id)
}

func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	return s.players.List(ctx)
}

// Select binds the session to an existing player and stamps its last played
// date. An unknown id leaves the current selection untouched.
func (s *PlayerService) Select(ctx context.Context, id int64) (domain.Player, error) {
	var player domain.Player
	err := s.tx.Within(ctx, func(txCtx context.Context) error {
		found, err := s.Get(txCtx, id)
		if err != nil {
			return err
		}
		found.LastPlayedAt = s.clock.Now()
		if err := s.players.TouchLastPlayed(txCtx, found.ID, found.LastPlayedAt); err != nil {
			return err
		}
		player = found
		return nil
	})
	if err != nil {
		return domain.Player{}, err
	}
	if s.selector != nil {
		if err := s.selector.Select(ctx, player.ID); err != nil {
			return domain.Player{}, err
		}
	}
	return player, nil
}

func (s *PlayerService) Current(ctx context.Context) (domain.Player, error) {
	if s.selector == nil {
		return domain.Player{}, apperrors.ErrNoPlayerSelected
	}
	id, err := s.selector.Current(ctx)
	if err != nil {
		return domain.Player{}, err
	}
	return s.Get(ctx, id)
}

func (s *PlayerService) Settings(ctx context.Context, playerID int64) (domain.Settings, error) {
	if _, err := s.Get(ctx, playerID); err != nil {
		return domain.Settings{}, err
	}
	settings, err := s.settings.Find(ctx, playerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.DefaultSettings(playerID), nil
	}
	return settings, err
}

// UpdateSettings applies patch over the stored settings.
func (s *PlayerService) UpdateSettings(ctx context.Context, playerID int64, patch func(domain.Settings) domain.Settings) (domain.Settings, error) {
	var out domain.Settings
	err := s.tx.Within(ctx, func(txCtx context.Context) error {
		current, err := s.Settings(txCtx, playerID)
		if err != nil {
			return err
		}
		next, err := patch(current).Normalize()
		if err != nil {
			return err
		}
		next.PlayerID = playerID
		if err := s.settings.Save(txCtx, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}
