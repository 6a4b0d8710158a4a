package in

import (
	"context"

	"hypersomnia/internal/modules/progress/dto"
)

type Usecase interface {
	GetRecord(ctx context.Context, key dto.RecordKey) (dto.RecordOutput, error)
	SetCompleted(ctx context.Context, input dto.SetCompletedInput) (dto.RecordOutput, error)
	RecordAttempt(ctx context.Context, key dto.RecordKey) (dto.RecordOutput, error)
	SetUnlocked(ctx context.Context, input dto.SetUnlockedInput) (dto.RecordOutput, error)
	ListForPlayer(ctx context.Context, playerID int64) ([]dto.LevelProgressOutput, error)
	ResumePoint(ctx context.Context, playerID int64) (dto.LevelProgressOutput, error)
	// SeedInitial writes one row per cataloged level for a new player. It
	// joins the caller's transaction when ctx carries one.
	SeedInitial(ctx context.Context, playerID int64) (dto.SeedInitialOutput, error)
}
