package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hypersomnia/internal/modules/catalog/domain"
	catalogout "hypersomnia/internal/modules/catalog/port/out"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/logger"
	"hypersomnia/internal/platform/metrics"
	"hypersomnia/internal/platform/tx"
)

type CatalogService struct {
	store catalogout.LevelStore
	seeds catalogout.SeedSource
	tx    tx.Manager
	log   *logger.Logger
}

func NewCatalogService(store catalogout.LevelStore, seeds catalogout.SeedSource, txm tx.Manager, log *logger.Logger) *CatalogService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &CatalogService{store: store, seeds: seeds, tx: txm, log: log}
}

// Seed inserts every seed level whose id is absent, all in one transaction.
// Rows already present are never rewritten.
func (s *CatalogService) Seed(ctx context.Context) (inserted, skipped int, err error) {
	if s.seeds == nil {
		return 0, 0, fmt.Errorf("%w: no seed source configured", apperrors.ErrCatalogMisconfigured)
	}
	levels, err := s.seeds.Load(ctx)
	if err != nil {
		return 0, 0, err
	}
	if err := domain.ValidateSeeds(levels); err != nil {
		return 0, 0, fmt.Errorf("validate level seeds: %w", err)
	}

	err = s.tx.Within(ctx, func(txCtx context.Context) error {
		inserted, skipped = 0, 0
		for _, level := range levels {
			wrote, err := s.store.InsertIfAbsent(txCtx, level)
			if err != nil {
				return fmt.Errorf("seed level %d: %w", level.ID, err)
			}
			if wrote {
				inserted++
			} else {
				skipped++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	metrics.LevelsSeededTotal.Add(float64(inserted))
	metrics.LedgerWritesTotal.WithLabelValues(metrics.OpSeed).Inc()
	s.log.Info("levels seeded", zap.Int("inserted", inserted), zap.Int("skipped", skipped))
	return inserted, skipped, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (domain.Level, error) {
	if id <= 0 {
		return domain.Level{}, fmt.Errorf("%w: level id must be positive", apperrors.ErrInvalidInput)
	}
	return s.store.FindByID(ctx, id)
}

func (s *CatalogService) GetBySceneName(ctx context.Context, scene string) (domain.Level, error) {
	scene = strings.TrimSpace(scene)
	if scene == "" {
		return domain.Level{}, fmt.Errorf("%w: scene name is required", apperrors.ErrInvalidInput)
	}
	return s.store.FindBySceneName(ctx, scene)
}

func (s *CatalogService) GetByOrder(ctx context.Context, order int) (domain.Level, error) {
	return s.store.FindByOrder(ctx, order)
}

func (s *CatalogService) ListOrdered(ctx context.Context) ([]domain.Level, error) {
	return s.store.ListOrdered(ctx)
}

func (s *CatalogService) SceneForLevel(ctx context.Context, id int64) (string, error) {
	level, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return level.SceneName, nil
}

// Next returns the level whose order follows the given level's.
func (s *CatalogService) Next(ctx context.Context, id int64) (domain.Level, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Level{}, err
	}
	return s.store.FindByOrder(ctx, current.Order+1)
}
