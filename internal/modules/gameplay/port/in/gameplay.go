package in

import (
	"context"

	"hypersomnia/internal/modules/gameplay/dto"
)

type Usecase interface {
	StartLevel(ctx context.Context, input dto.StartLevelInput) (dto.StartLevelOutput, error)
	FinishLevel(ctx context.Context, input dto.FinishLevelInput) (dto.FinishLevelOutput, error)
	Continue(ctx context.Context, input dto.ContinueInput) (dto.ContinueOutput, error)
}
