package in

import (
	"context"

	"hypersomnia/internal/modules/catalog/dto"
)

type Usecase interface {
	Seed(ctx context.Context) (dto.SeedOutput, error)
	GetLevel(ctx context.Context, id int64) (dto.LevelOutput, error)
	GetLevelByScene(ctx context.Context, scene string) (dto.LevelOutput, error)
	GetLevelByOrder(ctx context.Context, order int) (dto.LevelOutput, error)
	ListLevels(ctx context.Context) ([]dto.LevelOutput, error)
	SceneForLevel(ctx context.Context, id int64) (string, error)
	NextLevel(ctx context.Context, id int64) (dto.LevelOutput, error)
}
