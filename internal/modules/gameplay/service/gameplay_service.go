package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hypersomnia/internal/modules/gameplay/domain"
	gameplayout "hypersomnia/internal/modules/gameplay/port/out"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/logger"
	"hypersomnia/internal/platform/tx"
)

type GameplayService struct {
	levels  gameplayout.LevelCatalog
	ledger  gameplayout.Ledger
	players gameplayout.CurrentPlayer
	tx      tx.Manager
	log     *logger.Logger
}

func NewGameplayService(levels gameplayout.LevelCatalog, ledger gameplayout.Ledger, players gameplayout.CurrentPlayer, txm tx.Manager, log *logger.Logger) *GameplayService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &GameplayService{levels: levels, ledger: ledger, players: players, tx: txm, log: log}
}

// Start counts an attempt on the level behind scene.
func (s *GameplayService) Start(ctx context.Context, playerID int64, scene string) (domain.Attempt, error) {
	playerID, err := s.resolvePlayer(ctx, playerID)
	if err != nil {
		return domain.Attempt{}, err
	}
	level, err := s.levelForScene(ctx, scene)
	if err != nil {
		return domain.Attempt{}, err
	}
	attempts, err := s.ledger.RecordAttempt(ctx, playerID, level.ID)
	if err != nil {
		return domain.Attempt{}, err
	}
	return domain.Attempt{PlayerID: playerID, Level: level, Attempts: attempts}, nil
}

// Finish completes the level behind scene and unlocks the next one in the
// same transaction. Past the last level the advance points at the ending.
func (s *GameplayService) Finish(ctx context.Context, playerID int64, scene string, elapsed float64, score int) (domain.Advance, error) {
	playerID, err := s.resolvePlayer(ctx, playerID)
	if err != nil {
		return domain.Advance{}, err
	}
	advance := domain.Advance{PlayerID: playerID}
	err = s.tx.Within(ctx, func(txCtx context.Context) error {
		current, err := s.levelForScene(txCtx, scene)
		if err != nil {
			return err
		}
		advance.Completed = current
		if err := s.ledger.Complete(txCtx, playerID, current.ID, elapsed, score); err != nil {
			return err
		}
		next, err := s.levels.Next(txCtx, current.ID)
		if errors.Is(err, apperrors.ErrNotFound) {
			advance.Ending = true
			return nil
		}
		if err != nil {
			return err
		}
		advance.Next = next
		return s.ledger.Unlock(txCtx, playerID, next.ID)
	})
	if err != nil {
		return domain.Advance{}, err
	}
	s.log.Info("level finished",
		zap.Int64("player_id", playerID),
		zap.Int64("level_id", advance.Completed.ID),
		zap.String("next_scene", advance.NextScene()),
	)
	return advance, nil
}

// Continue returns the resume level, or the first level when the player has
// no progress rows.
func (s *GameplayService) Continue(ctx context.Context, playerID int64) (int64, domain.LevelInfo, error) {
	playerID, err := s.resolvePlayer(ctx, playerID)
	if err != nil {
		return 0, domain.LevelInfo{}, err
	}
	levelID, err := s.ledger.ResumeLevel(ctx, playerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		first, err := s.levels.ByOrder(ctx, domain.FirstOrder)
		if err != nil {
			return 0, domain.LevelInfo{}, fmt.Errorf("resolve first level: %w", err)
		}
		return playerID, first, nil
	}
	if err != nil {
		return 0, domain.LevelInfo{}, err
	}
	scene, err := s.levels.Scene(ctx, levelID)
	if err != nil {
		return 0, domain.LevelInfo{}, err
	}
	return playerID, domain.LevelInfo{ID: levelID, SceneName: scene}, nil
}

func (s *GameplayService) levelForScene(ctx context.Context, scene string) (domain.LevelInfo, error) {
	level, err := s.levels.ByScene(ctx, scene)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.LevelInfo{}, fmt.Errorf("%w: %w: %q", apperrors.ErrNotFound, domain.ErrUnknownScene, scene)
	}
	return level, err
}

func (s *GameplayService) resolvePlayer(ctx context.Context, playerID int64) (int64, error) {
	if playerID > 0 {
		return playerID, nil
	}
	if s.players == nil {
		return 0, apperrors.ErrNoPlayerSelected
	}
	return s.players.CurrentPlayerID(ctx)
}
