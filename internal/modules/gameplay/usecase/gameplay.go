package usecase

import (
	"context"

	"hypersomnia/internal/modules/gameplay/dto"
	gameplayin "hypersomnia/internal/modules/gameplay/port/in"
	"hypersomnia/internal/modules/gameplay/service"
)

type Interactor struct {
	svc *service.GameplayService
}

func NewInteractor(svc *service.GameplayService) gameplayin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) StartLevel(ctx context.Context, input dto.StartLevelInput) (dto.StartLevelOutput, error) {
	attempt, err := i.svc.Start(ctx, input.PlayerID, input.Scene)
	if err != nil {
		return dto.StartLevelOutput{}, err
	}
	return dto.StartLevelOutput{
		PlayerID: attempt.PlayerID,
		LevelID:  attempt.Level.ID,
		Scene:    attempt.Level.SceneName,
		Attempts: attempt.Attempts,
	}, nil
}

func (i *Interactor) FinishLevel(ctx context.Context, input dto.FinishLevelInput) (dto.FinishLevelOutput, error) {
	advance, err := i.svc.Finish(ctx, input.PlayerID, input.Scene, input.Elapsed, input.Score)
	if err != nil {
		return dto.FinishLevelOutput{}, err
	}
	return dto.FinishLevelOutput{
		PlayerID:    advance.PlayerID,
		LevelID:     advance.Completed.ID,
		NextLevelID: advance.Next.ID,
		NextScene:   advance.NextScene(),
		Ending:      advance.Ending,
	}, nil
}

func (i *Interactor) Continue(ctx context.Context, input dto.ContinueInput) (dto.ContinueOutput, error) {
	playerID, level, err := i.svc.Continue(ctx, input.PlayerID)
	if err != nil {
		return dto.ContinueOutput{}, err
	}
	return dto.ContinueOutput{PlayerID: playerID, LevelID: level.ID, Scene: level.SceneName}, nil
}
