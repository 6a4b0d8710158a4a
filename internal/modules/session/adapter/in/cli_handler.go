package in

import (
	"context"

	sessiondto "hypersomnia/internal/modules/session/dto"
	sessionin "hypersomnia/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) (sessiondto.SelectionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}
