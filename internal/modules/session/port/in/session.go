package in

import (
	"context"

	"hypersomnia/internal/modules/session/dto"
)

type Usecase interface {
	Select(ctx context.Context, input dto.SelectInput) (dto.SelectionOutput, error)
	// Current fails with apperrors.ErrNoPlayerSelected when nothing is selected.
	Current(ctx context.Context) (dto.SelectionOutput, error)
	Clear(ctx context.Context) error
}
