package out

import (
	"context"

	playerout "hypersomnia/internal/modules/player/port/out"
	sessiondto "hypersomnia/internal/modules/session/dto"
	sessionin "hypersomnia/internal/modules/session/port/in"
)

type SessionSelectorAdapter struct {
	session sessionin.Usecase
}

func NewSessionSelectorAdapter(session sessionin.Usecase) playerout.Selector {
	return &SessionSelectorAdapter{session: session}
}

func (a *SessionSelectorAdapter) Select(ctx context.Context, playerID int64) error {
	_, err := a.session.Select(ctx, sessiondto.SelectInput{PlayerID: playerID})
	return err
}

func (a *SessionSelectorAdapter) Current(ctx context.Context) (int64, error) {
	current, err := a.session.Current(ctx)
	if err != nil {
		return 0, err
	}
	return current.PlayerID, nil
}
