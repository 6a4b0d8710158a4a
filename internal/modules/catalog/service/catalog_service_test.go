package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hypersomnia/internal/modules/catalog/domain"
	apperrors "hypersomnia/internal/platform/errors"
)

type memoryStore struct {
	levels  map[int64]domain.Level
	failOn  int64
	inserts int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{levels: map[int64]domain.Level{}}
}

func (m *memoryStore) FindByID(_ context.Context, id int64) (domain.Level, error) {
	if level, ok := m.levels[id]; ok {
		return level, nil
	}
	return domain.Level{}, apperrors.ErrNotFound
}

func (m *memoryStore) FindBySceneName(_ context.Context, scene string) (domain.Level, error) {
	for _, level := range m.levels {
		if level.SceneName == scene {
			return level, nil
		}
	}
	return domain.Level{}, apperrors.ErrNotFound
}

func (m *memoryStore) FindByOrder(_ context.Context, order int) (domain.Level, error) {
	for _, level := range m.levels {
		if level.Order == order {
			return level, nil
		}
	}
	return domain.Level{}, apperrors.ErrNotFound
}

func (m *memoryStore) ListOrdered(context.Context) ([]domain.Level, error) {
	return nil, nil
}

func (m *memoryStore) InsertIfAbsent(_ context.Context, level domain.Level) (bool, error) {
	if level.ID == m.failOn {
		return false, fmt.Errorf("disk full")
	}
	if _, ok := m.levels[level.ID]; ok {
		return false, nil
	}
	m.levels[level.ID] = level
	m.inserts++
	return true, nil
}

type staticSeeds []domain.Level

func (s staticSeeds) Load(context.Context) ([]domain.Level, error) { return s, nil }

var shipped = staticSeeds{
	{ID: 1, Name: "Awakening", SceneName: "LvlZero", Order: 1},
	{ID: 2, Name: "Level 1", SceneName: "Lvl1", Order: 2},
}

func TestSeedIsInsertOrIgnore(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	store.levels[1] = domain.Level{ID: 1, Name: "Edited by designer", SceneName: "LvlZero", Order: 1}
	svc := NewCatalogService(store, shipped, nil, nil)

	inserted, skipped, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if inserted != 1 || skipped != 1 {
		t.Fatalf("expected 1 inserted 1 skipped, got %d/%d", inserted, skipped)
	}
	if store.levels[1].Name != "Edited by designer" {
		t.Fatalf("existing level was overwritten: %+v", store.levels[1])
	}
}

func TestSeedRejectsInvalidSeedsBeforeWriting(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	svc := NewCatalogService(store, staticSeeds{{ID: 1, Name: "a", SceneName: "A", Order: 0}}, nil, nil)
	if _, _, err := svc.Seed(context.Background()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if store.inserts != 0 {
		t.Fatalf("expected no writes, got %d", store.inserts)
	}
}

func TestSeedPropagatesStoreFailure(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	store.failOn = 2
	svc := NewCatalogService(store, shipped, nil, nil)
	if _, _, err := svc.Seed(context.Background()); err == nil {
		t.Fatalf("expected store failure")
	}
}

func TestNextAndSceneLookup(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	svc := NewCatalogService(store, shipped, nil, nil)
	if _, _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	next, err := svc.Next(context.Background(), 1)
	if err != nil || next.ID != 2 {
		t.Fatalf("expected level 2 after level 1, got %+v err=%v", next, err)
	}
	if _, err := svc.Next(context.Background(), 2); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected no level after the last one, got %v", err)
	}
	scene, err := svc.SceneForLevel(context.Background(), 2)
	if err != nil || scene != "Lvl1" {
		t.Fatalf("expected Lvl1, got %q err=%v", scene, err)
	}
	if _, err := svc.GetBySceneName(context.Background(), "  "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank scene, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero id, got %v", err)
	}
}
