package out

import (
	"context"

	gameplayout "hypersomnia/internal/modules/gameplay/port/out"
	playerin "hypersomnia/internal/modules/player/port/in"
)

type PlayerAdapter struct {
	players playerin.Usecase
}

func NewPlayerAdapter(players playerin.Usecase) gameplayout.CurrentPlayer {
	return &PlayerAdapter{players: players}
}

func (a *PlayerAdapter) CurrentPlayerID(ctx context.Context) (int64, error) {
	current, err := a.players.CurrentPlayer(ctx)
	if err != nil {
		return 0, err
	}
	return current.ID, nil
}
