package usecase

import (
	"context"

	"hypersomnia/internal/modules/progress/domain"
	"hypersomnia/internal/modules/progress/dto"
	progressin "hypersomnia/internal/modules/progress/port/in"
	"hypersomnia/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetRecord(ctx context.Context, key dto.RecordKey) (dto.RecordOutput, error) {
	record, found, err := i.svc.Get(ctx, key.PlayerID, key.LevelID)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return mapRecord(record, found), nil
}

func (i *Interactor) SetCompleted(ctx context.Context, input dto.SetCompletedInput) (dto.RecordOutput, error) {
	record, err := i.svc.SetCompleted(ctx, input.PlayerID, input.LevelID, input.Completed, input.Time, input.Score)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return mapRecord(record, true), nil
}

func (i *Interactor) RecordAttempt(ctx context.Context, key dto.RecordKey) (dto.RecordOutput, error) {
	record, err := i.svc.IncrementAttempts(ctx, key.PlayerID, key.LevelID)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return mapRecord(record, true), nil
}

func (i *Interactor) SetUnlocked(ctx context.Context, input dto.SetUnlockedInput) (dto.RecordOutput, error) {
	record, err := i.svc.SetUnlocked(ctx, input.PlayerID, input.LevelID, input.Unlocked)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return mapRecord(record, true), nil
}

func (i *Interactor) ListForPlayer(ctx context.Context, playerID int64) ([]dto.LevelProgressOutput, error) {
	rows, err := i.svc.ListForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LevelProgressOutput, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapLevelProgress(row))
	}
	return out, nil
}

func (i *Interactor) ResumePoint(ctx context.Context, playerID int64) (dto.LevelProgressOutput, error) {
	point, err := i.svc.ResumePoint(ctx, playerID)
	if err != nil {
		return dto.LevelProgressOutput{}, err
	}
	return mapLevelProgress(point), nil
}

func (i *Interactor) SeedInitial(ctx context.Context, playerID int64) (dto.SeedInitialOutput, error) {
	count, err := i.svc.SeedInitial(ctx, playerID)
	if err != nil {
		return dto.SeedInitialOutput{}, err
	}
	return dto.SeedInitialOutput{PlayerID: playerID, Records: count}, nil
}

func mapRecord(record domain.Record, found bool) dto.RecordOutput {
	out := dto.RecordOutput{
		PlayerID:  record.PlayerID,
		LevelID:   record.LevelID,
		Exists:    found,
		Unlocked:  record.Unlocked,
		Completed: record.Completed,
		BestTime:  record.BestTime,
		Score:     record.Score,
		Attempts:  record.Attempts,
	}
	if !record.LastPlayed.IsZero() {
		out.LastPlayedUnix = record.LastPlayed.Unix()
	}
	return out
}

func mapLevelProgress(row domain.LevelProgress) dto.LevelProgressOutput {
	return dto.LevelProgressOutput{
		RecordOutput: mapRecord(row.Record, true),
		LevelName:    row.LevelName,
		SceneName:    row.SceneName,
		Order:        row.Order,
	}
}
