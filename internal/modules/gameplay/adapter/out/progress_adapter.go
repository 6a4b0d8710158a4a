package out

import (
	"context"

	gameplayout "hypersomnia/internal/modules/gameplay/port/out"
	progressdto "hypersomnia/internal/modules/progress/dto"
	progressin "hypersomnia/internal/modules/progress/port/in"
)

type ProgressAdapter struct {
	progress progressin.Usecase
}

func NewProgressAdapter(progress progressin.Usecase) gameplayout.Ledger {
	return &ProgressAdapter{progress: progress}
}

func (a *ProgressAdapter) RecordAttempt(ctx context.Context, playerID, levelID int64) (int, error) {
	out, err := a.progress.RecordAttempt(ctx, progressdto.RecordKey{PlayerID: playerID, LevelID: levelID})
	if err != nil {
		return 0, err
	}
	return out.Attempts, nil
}

func (a *ProgressAdapter) Complete(ctx context.Context, playerID, levelID int64, elapsed float64, score int) error {
	_, err := a.progress.SetCompleted(ctx, progressdto.SetCompletedInput{
		PlayerID:  playerID,
		LevelID:   levelID,
		Completed: true,
		Time:      elapsed,
		Score:     score,
	})
	return err
}

func (a *ProgressAdapter) Unlock(ctx context.Context, playerID, levelID int64) error {
	_, err := a.progress.SetUnlocked(ctx, progressdto.SetUnlockedInput{PlayerID: playerID, LevelID: levelID, Unlocked: true})
	return err
}

func (a *ProgressAdapter) ResumeLevel(ctx context.Context, playerID int64) (int64, error) {
	point, err := a.progress.ResumePoint(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return point.LevelID, nil
}
