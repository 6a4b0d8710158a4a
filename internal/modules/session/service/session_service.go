package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hypersomnia/internal/modules/session/domain"
	sessionout "hypersomnia/internal/modules/session/port/out"
	"hypersomnia/internal/platform/clock"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/logger"
)

type SessionService struct {
	clock clock.Clock
	store sessionout.SelectionStore
	log   *logger.Logger
}

func NewSessionService(clock clock.Clock, store sessionout.SelectionStore, log *logger.Logger) *SessionService {
	if log == nil {
		log = logger.NewNop()
	}
	return &SessionService{clock: clock, store: store, log: log}
}

func (s *SessionService) Select(ctx context.Context, playerID int64) (domain.Selection, error) {
	if playerID <= 0 {
		return domain.Selection{}, fmt.Errorf("%w: player id must be positive", apperrors.ErrInvalidInput)
	}
	selection := domain.Selection{
		Version:    domain.SchemaVersion,
		PlayerID:   playerID,
		SelectedAt: s.clock.Now(),
	}
	if err := s.store.Save(ctx, selection); err != nil {
		return domain.Selection{}, err
	}
	s.log.Info("player selected", zap.Int64("player_id", playerID))
	return selection, nil
}

func (s *SessionService) Current(ctx context.Context) (domain.Selection, error) {
	return s.store.Load(ctx)
}

func (s *SessionService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
