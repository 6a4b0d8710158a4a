package in

import (
	"context"

	"hypersomnia/internal/modules/progress/dto"
	progressin "hypersomnia/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context, playerID int64) ([]dto.LevelProgressOutput, error) {
	return h.usecase.ListForPlayer(ctx, playerID)
}

func (h CLIHandler) Record(ctx context.Context, playerID, levelID int64) (dto.RecordOutput, error) {
	return h.usecase.GetRecord(ctx, dto.RecordKey{PlayerID: playerID, LevelID: levelID})
}

// Complete marks the level completed, merging time and score.
func (h CLIHandler) Complete(ctx context.Context, playerID, levelID int64, elapsed float64, score int) (dto.RecordOutput, error) {
	return h.usecase.SetCompleted(ctx, dto.SetCompletedInput{
		PlayerID:  playerID,
		LevelID:   levelID,
		Completed: true,
		Time:      elapsed,
		Score:     score,
	})
}

func (h CLIHandler) Attempt(ctx context.Context, playerID, levelID int64) (dto.RecordOutput, error) {
	return h.usecase.RecordAttempt(ctx, dto.RecordKey{PlayerID: playerID, LevelID: levelID})
}

func (h CLIHandler) Unlock(ctx context.Context, playerID, levelID int64) (dto.RecordOutput, error) {
	return h.usecase.SetUnlocked(ctx, dto.SetUnlockedInput{PlayerID: playerID, LevelID: levelID, Unlocked: true})
}

func (h CLIHandler) Resume(ctx context.Context, playerID int64) (dto.LevelProgressOutput, error) {
	return h.usecase.ResumePoint(ctx, playerID)
}
