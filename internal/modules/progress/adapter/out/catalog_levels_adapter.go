package out

import (
	"context"

	catalogin "hypersomnia/internal/modules/catalog/port/in"
	"hypersomnia/internal/modules/progress/domain"
	progressout "hypersomnia/internal/modules/progress/port/out"
)

type CatalogLevelsAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogLevelsAdapter(catalog catalogin.Usecase) progressout.LevelCatalog {
	return &CatalogLevelsAdapter{catalog: catalog}
}

func (a *CatalogLevelsAdapter) ListLevels(ctx context.Context) ([]domain.LevelRef, error) {
	levels, err := a.catalog.ListLevels(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]domain.LevelRef, 0, len(levels))
	for _, level := range levels {
		refs = append(refs, domain.LevelRef{ID: level.ID, Order: level.Order})
	}
	return refs, nil
}
