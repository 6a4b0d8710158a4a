package in

import (
	"context"

	"hypersomnia/internal/modules/catalog/dto"
	catalogin "hypersomnia/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Seed(ctx context.Context) (dto.SeedOutput, error) {
	return h.usecase.Seed(ctx)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.LevelOutput, error) {
	return h.usecase.ListLevels(ctx)
}

func (h CLIHandler) Show(ctx context.Context, id int64) (dto.LevelOutput, error) {
	return h.usecase.GetLevel(ctx, id)
}

func (h CLIHandler) ShowByScene(ctx context.Context, scene string) (dto.LevelOutput, error) {
	return h.usecase.GetLevelByScene(ctx, scene)
}

func (h CLIHandler) ShowByOrder(ctx context.Context, order int) (dto.LevelOutput, error) {
	return h.usecase.GetLevelByOrder(ctx, order)
}

func (h CLIHandler) Scene(ctx context.Context, id int64) (string, error) {
	return h.usecase.SceneForLevel(ctx, id)
}
