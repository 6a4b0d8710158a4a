package in

import (
	"context"

	"hypersomnia/internal/modules/gameplay/dto"
	gameplayin "hypersomnia/internal/modules/gameplay/port/in"
)

type CLIHandler struct {
	usecase gameplayin.Usecase
}

func NewCLIHandler(usecase gameplayin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, playerID int64, scene string) (dto.StartLevelOutput, error) {
	return h.usecase.StartLevel(ctx, dto.StartLevelInput{PlayerID: playerID, Scene: scene})
}

func (h CLIHandler) Finish(ctx context.Context, playerID int64, scene string, elapsed float64, score int) (dto.FinishLevelOutput, error) {
	return h.usecase.FinishLevel(ctx, dto.FinishLevelInput{PlayerID: playerID, Scene: scene, Elapsed: elapsed, Score: score})
}

func (h CLIHandler) Continue(ctx context.Context, playerID int64) (dto.ContinueOutput, error) {
	return h.usecase.Continue(ctx, dto.ContinueInput{PlayerID: playerID})
}
