package out

import (
	"context"

	"hypersomnia/internal/modules/catalog/domain"
)

type LevelStore interface {
	FindByID(ctx context.Context, id int64) (domain.Level, error)
	FindBySceneName(ctx context.Context, scene string) (domain.Level, error)
	FindByOrder(ctx context.Context, order int) (domain.Level, error)
	ListOrdered(ctx context.Context) ([]domain.Level, error)
	// InsertIfAbsent reports whether a row was written; existing ids are left untouched.
	InsertIfAbsent(ctx context.Context, level domain.Level) (bool, error)
}

type SeedSource interface {
	Load(ctx context.Context) ([]domain.Level, error)
}
