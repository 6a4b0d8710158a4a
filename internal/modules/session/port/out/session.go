package out

import (
	"context"

	"hypersomnia/internal/modules/session/domain"
)

type SelectionStore interface {
	Save(ctx context.Context, selection domain.Selection) error
	Load(ctx context.Context) (domain.Selection, error)
	Clear(ctx context.Context) error
}
