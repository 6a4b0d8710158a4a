package usecase

import (
	"context"

	"hypersomnia/internal/modules/catalog/domain"
	"hypersomnia/internal/modules/catalog/dto"
	catalogin "hypersomnia/internal/modules/catalog/port/in"
	"hypersomnia/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Seed(ctx context.Context) (dto.SeedOutput, error) {
	inserted, skipped, err := i.svc.Seed(ctx)
	if err != nil {
		return dto.SeedOutput{}, err
	}
	return dto.SeedOutput{Inserted: inserted, Skipped: skipped}, nil
}

func (i *Interactor) GetLevel(ctx context.Context, id int64) (dto.LevelOutput, error) {
	return toOutput(i.svc.GetByID(ctx, id))
}

func (i *Interactor) GetLevelByScene(ctx context.Context, scene string) (dto.LevelOutput, error) {
	return toOutput(i.svc.GetBySceneName(ctx, scene))
}

func (i *Interactor) GetLevelByOrder(ctx context.Context, order int) (dto.LevelOutput, error) {
	return toOutput(i.svc.GetByOrder(ctx, order))
}

func (i *Interactor) ListLevels(ctx context.Context) ([]dto.LevelOutput, error) {
	levels, err := i.svc.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LevelOutput, 0, len(levels))
	for _, level := range levels {
		out = append(out, mapLevel(level))
	}
	return out, nil
}

func (i *Interactor) SceneForLevel(ctx context.Context, id int64) (string, error) {
	return i.svc.SceneForLevel(ctx, id)
}

func (i *Interactor) NextLevel(ctx context.Context, id int64) (dto.LevelOutput, error) {
	return toOutput(i.svc.Next(ctx, id))
}

func toOutput(level domain.Level, err error) (dto.LevelOutput, error) {
	if err != nil {
		return dto.LevelOutput{}, err
	}
	return mapLevel(level), nil
}

func mapLevel(level domain.Level) dto.LevelOutput {
	return dto.LevelOutput{
		ID:          level.ID,
		Name:        level.Name,
		SceneName:   level.SceneName,
		Order:       level.Order,
		Description: level.Description,
	}
}
