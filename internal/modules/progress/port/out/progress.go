package out

import (
	"context"

	"hypersomnia/internal/modules/progress/domain"
)

type RecordStore interface {
	// Find reports found=false for a missing row rather than an error.
	Find(ctx context.Context, playerID, levelID int64) (record domain.Record, found bool, err error)
	Save(ctx context.Context, record domain.Record) error
	ListForPlayer(ctx context.Context, playerID int64) ([]domain.LevelProgress, error)
}

// LevelCatalog is the slice of the level catalog the ledger reads.
type LevelCatalog interface {
	ListLevels(ctx context.Context) ([]domain.LevelRef, error)
}
