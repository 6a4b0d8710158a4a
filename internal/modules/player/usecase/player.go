package usecase

import (
	"context"

	"hypersomnia/internal/modules/player/domain"
	"hypersomnia/internal/modules/player/dto"
	playerin "hypersomnia/internal/modules/player/port/in"
	"hypersomnia/internal/modules/player/service"
)

type Interactor struct {
	svc *service.PlayerService
}

func NewInteractor(svc *service.PlayerService) playerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) CreatePlayer(ctx context.Context, input dto.CreatePlayerInput) (dto.CreatePlayerOutput, error) {
	player, rows, err := i.svc.Create(ctx, input.Name)
	if err != nil && player.ID == 0 {
		return dto.CreatePlayerOutput{}, err
	}
	return dto.CreatePlayerOutput{Player: mapPlayer(player), ProgressRows: rows}, err
}

func (i *Interactor) NameExists(ctx context.Context, name string) (bool, error) {
	return i.svc.NameExists(ctx, name)
}

func (i *Interactor) GetPlayer(ctx context.Context, id int64) (dto.PlayerOutput, error) {
	player, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.PlayerOutput{}, err
	}
	return mapPlayer(player), nil
}

func (i *Interactor) ListPlayers(ctx context.Context) ([]dto.PlayerOutput, error) {
	players, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlayerOutput, 0, len(players))
	for _, player := range players {
		out = append(out, mapPlayer(player))
	}
	return out, nil
}

func (i *Interactor) SelectPlayer(ctx context.Context, id int64) (dto.PlayerOutput, error) {
	player, err := i.svc.Select(ctx, id)
	if err != nil {
		return dto.PlayerOutput{}, err
	}
	return mapPlayer(player), nil
}

func (i *Interactor) CurrentPlayer(ctx context.Context) (dto.PlayerOutput, error) {
	player, err := i.svc.Current(ctx)
	if err != nil {
		return dto.PlayerOutput{}, err
	}
	return mapPlayer(player), nil
}

func (i *Interactor) GetSettings(ctx context.Context, playerID int64) (dto.SettingsOutput, error) {
	settings, err := i.svc.Settings(ctx, playerID)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return mapSettings(settings), nil
}

func (i *Interactor) UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error) {
	settings, err := i.svc.UpdateSettings(ctx, input.PlayerID, func(current domain.Settings) domain.Settings {
		if input.SoundVolume != nil {
			current.SoundVolume = *input.SoundVolume
		}
		if input.MusicVolume != nil {
			current.MusicVolume = *input.MusicVolume
		}
		if input.ResolutionWidth != nil {
			current.ResolutionWidth = *input.ResolutionWidth
		}
		return current
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return mapSettings(settings), nil
}

func mapPlayer(player domain.Player) dto.PlayerOutput {
	return dto.PlayerOutput{
		ID:           player.ID,
		Name:         player.Name,
		CreatedAt:    player.CreatedAt,
		LastPlayedAt: player.LastPlayedAt,
	}
}

func mapSettings(settings domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		PlayerID:        settings.PlayerID,
		SoundVolume:     settings.SoundVolume,
		MusicVolume:     settings.MusicVolume,
		ResolutionWidth: settings.ResolutionWidth,
	}
}
