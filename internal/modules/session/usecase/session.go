package usecase

import (
	"context"

	"hypersomnia/internal/modules/session/domain"
	"hypersomnia/internal/modules/session/dto"
	sessionin "hypersomnia/internal/modules/session/port/in"
	"hypersomnia/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Select(ctx context.Context, input dto.SelectInput) (dto.SelectionOutput, error) {
	selection, err := i.svc.Select(ctx, input.PlayerID)
	if err != nil {
		return dto.SelectionOutput{}, err
	}
	return mapSelection(selection), nil
}

func (i *Interactor) Current(ctx context.Context) (dto.SelectionOutput, error) {
	selection, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SelectionOutput{}, err
	}
	return mapSelection(selection), nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func mapSelection(selection domain.Selection) dto.SelectionOutput {
	return dto.SelectionOutput{PlayerID: selection.PlayerID, SelectedAt: selection.SelectedAt}
}
