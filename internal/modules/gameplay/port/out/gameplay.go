package out

import (
	"context"

	"hypersomnia/internal/modules/gameplay/domain"
)

type LevelCatalog interface {
	ByScene(ctx context.Context, scene string) (domain.LevelInfo, error)
	ByOrder(ctx context.Context, order int) (domain.LevelInfo, error)
	Next(ctx context.Context, levelID int64) (domain.LevelInfo, error)
	Scene(ctx context.Context, levelID int64) (string, error)
}

type Ledger interface {
	RecordAttempt(ctx context.Context, playerID, levelID int64) (attempts int, err error)
	Complete(ctx context.Context, playerID, levelID int64, elapsed float64, score int) error
	Unlock(ctx context.Context, playerID, levelID int64) error
	ResumeLevel(ctx context.Context, playerID int64) (int64, error)
}

type CurrentPlayer interface {
	CurrentPlayerID(ctx context.Context) (int64, error)
}
