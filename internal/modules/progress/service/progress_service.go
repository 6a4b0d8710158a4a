package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hypersomnia/internal/modules/progress/domain"
	progressout "hypersomnia/internal/modules/progress/port/out"
	"hypersomnia/internal/platform/clock"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/logger"
	"hypersomnia/internal/platform/metrics"
	"hypersomnia/internal/platform/tx"
)

type ProgressService struct {
	clock   clock.Clock
	store   progressout.RecordStore
	catalog progressout.LevelCatalog
	tx      tx.Manager
	log     *logger.Logger
}

func NewProgressService(clock clock.Clock, store progressout.RecordStore, catalog progressout.LevelCatalog, txm tx.Manager, log *logger.Logger) *ProgressService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &ProgressService{clock: clock, store: store, catalog: catalog, tx: txm, log: log}
}

// Get returns the stored record, or the default record with found=false.
func (s *ProgressService) Get(ctx context.Context, playerID, levelID int64) (domain.Record, bool, error) {
	if err := validateKey(playerID, levelID); err != nil {
		return domain.Record{}, false, err
	}
	record, found, err := s.store.Find(ctx, playerID, levelID)
	if err != nil {
		return domain.Record{}, false, err
	}
	if !found {
		return domain.NewRecord(playerID, levelID), false, nil
	}
	return record, true, nil
}

func (s *ProgressService) SetCompleted(ctx context.Context, playerID, levelID int64, completed bool, elapsed float64, score int) (domain.Record, error) {
	return s.mutate(ctx, metrics.OpComplete, playerID, levelID, func(r domain.Record) domain.Record {
		return r.Complete(completed, elapsed, score, s.clock.Now())
	})
}

func (s *ProgressService) IncrementAttempts(ctx context.Context, playerID, levelID int64) (domain.Record, error) {
	return s.mutate(ctx, metrics.OpAttempt, playerID, levelID, func(r domain.Record) domain.Record {
		return r.Attempt(s.clock.Now())
	})
}

func (s *ProgressService) SetUnlocked(ctx context.Context, playerID, levelID int64, unlocked bool) (domain.Record, error) {
	return s.mutate(ctx, metrics.OpUnlock, playerID, levelID, func(r domain.Record) domain.Record {
		return r.Unlock(unlocked, s.clock.Now())
	})
}

// mutate reads, merges and writes one record inside a single transaction.
func (s *ProgressService) mutate(ctx context.Context, op string, playerID, levelID int64, apply func(domain.Record) domain.Record) (domain.Record, error) {
	if err := validateKey(playerID, levelID); err != nil {
		return domain.Record{}, err
	}
	var out domain.Record
	err := s.tx.Within(ctx, func(txCtx context.Context) error {
		current, found, err := s.store.Find(txCtx, playerID, levelID)
		if err != nil {
			return err
		}
		if !found {
			current = domain.NewRecord(playerID, levelID)
		}
		out = apply(current)
		return s.store.Save(txCtx, out)
	})
	if err != nil {
		return domain.Record{}, fmt.Errorf("%s progress for player %d level %d: %w", op, playerID, levelID, err)
	}
	metrics.LedgerWritesTotal.WithLabelValues(op).Inc()
	s.log.Debug("progress written",
		zap.String("op", op),
		zap.Int64("player_id", playerID),
		zap.Int64("level_id", levelID),
	)
	return out, nil
}

func (s *ProgressService) ListForPlayer(ctx context.Context, playerID int64) ([]domain.LevelProgress, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be positive", apperrors.ErrInvalidInput)
	}
	return s.store.ListForPlayer(ctx, playerID)
}

func (s *ProgressService) ResumePoint(ctx context.Context, playerID int64) (domain.LevelProgress, error) {
	rows, err := s.ListForPlayer(ctx, playerID)
	if err != nil {
		return domain.LevelProgress{}, err
	}
	point, ok := domain.ResumePoint(rows)
	if !ok {
		return domain.LevelProgress{}, fmt.Errorf("%w: no progress for player %d", apperrors.ErrNotFound, playerID)
	}
	return point, nil
}

// SeedInitial writes the starting ledger of a new player. It fails with
// ErrCatalogMisconfigured, writing nothing, when no level has order 1.
func (s *ProgressService) SeedInitial(ctx context.Context, playerID int64) (int, error) {
	if playerID <= 0 {
		return 0, fmt.Errorf("%w: player id must be positive", apperrors.ErrInvalidInput)
	}
	count := 0
	err := s.tx.Within(ctx, func(txCtx context.Context) error {
		levels, err := s.catalog.ListLevels(txCtx)
		if err != nil {
			return fmt.Errorf("list catalog levels: %w", err)
		}
		records, ok := domain.InitialRecords(playerID, levels, s.clock.Now())
		if !ok {
			return fmt.Errorf("%w: no level with order %d among %d levels", apperrors.ErrCatalogMisconfigured, domain.FirstLevelOrder, len(levels))
		}
		for _, record := range records {
			if err := s.store.Save(txCtx, record); err != nil {
				return fmt.Errorf("seed progress level %d: %w", record.LevelID, err)
			}
		}
		count = len(records)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func validateKey(playerID, levelID int64) error {
	if playerID <= 0 || levelID <= 0 {
		return fmt.Errorf("%w: player and level ids must be positive", apperrors.ErrInvalidInput)
	}
	return nil
}
