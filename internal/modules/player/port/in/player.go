package in

import (
	"context"

	"hypersomnia/internal/modules/player/dto"
)

type Usecase interface {
	CreatePlayer(ctx context.Context, input dto.CreatePlayerInput) (dto.CreatePlayerOutput, error)
	NameExists(ctx context.Context, name string) (bool, error)
	GetPlayer(ctx context.Context, id int64) (dto.PlayerOutput, error)
	ListPlayers(ctx context.Context) ([]dto.PlayerOutput, error)
	SelectPlayer(ctx context.Context, id int64) (dto.PlayerOutput, error)
	CurrentPlayer(ctx context.Context) (dto.PlayerOutput, error)
	GetSettings(ctx context.Context, playerID int64) (dto.SettingsOutput, error)
	UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error)
}
