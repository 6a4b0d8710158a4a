package in

import (
	"context"

	"hypersomnia/internal/modules/player/dto"
	playerin "hypersomnia/internal/modules/player/port/in"
)

type CLIHandler struct {
	usecase playerin.Usecase
}

func NewCLIHandler(usecase playerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, name string) (dto.CreatePlayerOutput, error) {
	return h.usecase.CreatePlayer(ctx, dto.CreatePlayerInput{Name: name})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PlayerOutput, error) {
	return h.usecase.ListPlayers(ctx)
}

func (h CLIHandler) Select(ctx context.Context, id int64) (dto.PlayerOutput, error) {
	return h.usecase.SelectPlayer(ctx, id)
}

func (h CLIHandler) Show(ctx context.Context, id int64) (dto.PlayerOutput, error) {
	return h.usecase.GetPlayer(ctx, id)
}

func (h CLIHandler) Current(ctx context.Context) (dto.PlayerOutput, error) {
	return h.usecase.CurrentPlayer(ctx)
}

func (h CLIHandler) NameExists(ctx context.Context, name string) (bool, error) {
	return h.usecase.NameExists(ctx, name)
}

func (h CLIHandler) Settings(ctx context.Context, playerID int64) (dto.SettingsOutput, error) {
	return h.usecase.GetSettings(ctx, playerID)
}

func (h CLIHandler) UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error) {
	return h.usecase.UpdateSettings(ctx, input)
}
