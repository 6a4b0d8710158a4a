package out

import (
	"context"

	catalogdto "hypersomnia/internal/modules/catalog/dto"
	catalogin "hypersomnia/internal/modules/catalog/port/in"
	"hypersomnia/internal/modules/gameplay/domain"
	gameplayout "hypersomnia/internal/modules/gameplay/port/out"
)

type CatalogAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogAdapter(catalog catalogin.Usecase) gameplayout.LevelCatalog {
	return &CatalogAdapter{catalog: catalog}
}

func (a *CatalogAdapter) ByScene(ctx context.Context, scene string) (domain.LevelInfo, error) {
	return toInfo(a.catalog.GetLevelByScene(ctx, scene))
}

func (a *CatalogAdapter) ByOrder(ctx context.Context, order int) (domain.LevelInfo, error) {
	return toInfo(a.catalog.GetLevelByOrder(ctx, order))
}

func (a *CatalogAdapter) Next(ctx context.Context, levelID int64) (domain.LevelInfo, error) {
	return toInfo(a.catalog.NextLevel(ctx, levelID))
}

func (a *CatalogAdapter) Scene(ctx context.Context, levelID int64) (string, error) {
	return a.catalog.SceneForLevel(ctx, levelID)
}

func toInfo(level catalogdto.LevelOutput, err error) (domain.LevelInfo, error) {
	if err != nil {
		return domain.LevelInfo{}, err
	}
	return domain.LevelInfo{ID: level.ID, SceneName: level.SceneName, Order: level.Order}, nil
}
