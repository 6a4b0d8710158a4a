package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hypersomnia/internal/modules/progress/domain"
	"hypersomnia/internal/platform/clock"
	apperrors "hypersomnia/internal/platform/errors"
)

type recordKey struct{ player, level int64 }

type memoryStore struct {
	records map[recordKey]domain.Record
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[recordKey]domain.Record{}}
}

func (m *memoryStore) Find(_ context.Context, playerID, levelID int64) (domain.Record, bool, error) {
	record, ok := m.records[recordKey{playerID, levelID}]
	return record, ok, nil
}

func (m *memoryStore) Save(_ context.Context, record domain.Record) error {
	m.records[recordKey{record.PlayerID, record.LevelID}] = record
	m.saves++
	return nil
}

func (m *memoryStore) ListForPlayer(_ context.Context, playerID int64) ([]domain.LevelProgress, error) {
	out := []domain.LevelProgress{}
	for key, record := range m.records {
		if key.player == playerID {
			out = append(out, domain.LevelProgress{Record: record, Order: int(key.level)})
		}
	}
	return out, nil
}

type staticCatalog []domain.LevelRef

func (c staticCatalog) ListLevels(context.Context) ([]domain.LevelRef, error) { return c, nil }

var fixedNow = clock.Fixed{At: time.Unix(1_700_000_000, 0).UTC()}

func newService(store *memoryStore, catalog staticCatalog) *ProgressService {
	return NewProgressService(fixedNow, store, catalog, nil, nil)
}

func TestGetSynthesizesDefaults(t *testing.T) {
	t.Parallel()
	svc := newService(newMemoryStore(), nil)
	record, found, err := svc.Get(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found || record != domain.NewRecord(1, 2) {
		t.Fatalf("expected default record, got %+v found=%t", record, found)
	}
}

func TestSetCompletedInsertsWhenAbsent(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	svc := newService(store, nil)

	record, err := svc.SetCompleted(context.Background(), 1, 2, true, 12.5, 300)
	if err != nil {
		t.Fatalf("set completed: %v", err)
	}
	if record.Unlocked || record.Attempts != 0 || !record.Completed || record.BestTime != 12.5 || record.Score != 300 {
		t.Fatalf("unexpected inserted record: %+v", record)
	}
	if !record.LastPlayed.Equal(fixedNow.At) {
		t.Fatalf("expected last played stamp, got %v", record.LastPlayed)
	}
}

func TestUnlockPreservesCompletedRow(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	store.records[recordKey{1, 2}] = domain.Record{PlayerID: 1, LevelID: 2, Completed: true, BestTime: 40, Score: 900, Attempts: 6}
	svc := newService(store, nil)

	record, err := svc.SetUnlocked(context.Background(), 1, 2, true)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !record.Unlocked || !record.Completed || record.BestTime != 40 || record.Score != 900 || record.Attempts != 6 {
		t.Fatalf("unlock disturbed other fields: %+v", record)
	}
}

func TestIncrementAttemptsCreatesRow(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	svc := newService(store, nil)
	for i := 0; i < 3; i++ {
		if _, err := svc.IncrementAttempts(context.Background(), 1, 1); err != nil {
			t.Fatalf("attempt: %v", err)
		}
	}
	if got := store.records[recordKey{1, 1}].Attempts; got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestMutationsRejectInvalidIDs(t *testing.T) {
	t.Parallel()
	svc := newService(newMemoryStore(), nil)
	if _, err := svc.SetCompleted(context.Background(), 0, 1, true, 1, 1); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.IncrementAttempts(context.Background(), 1, -1); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.ListForPlayer(context.Background(), 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSeedInitialUnlocksOnlyFirstLevel(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	svc := newService(store, staticCatalog{{ID: 1, Order: 1}, {ID: 2, Order: 2}, {ID: 3, Order: 3}})

	count, err := svc.SeedInitial(context.Background(), 9)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if count != 3 || len(store.records) != 3 {
		t.Fatalf("expected 3 records, got count=%d stored=%d", count, len(store.records))
	}
	for key, record := range store.records {
		if record.Unlocked != (key.level == 1) {
			t.Fatalf("unexpected unlock state for level %d: %+v", key.level, record)
		}
	}
}

func TestSeedInitialWithoutFirstLevelWritesNothing(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	svc := newService(store, staticCatalog{{ID: 2, Order: 2}})

	if _, err := svc.SeedInitial(context.Background(), 9); !errors.Is(err, apperrors.ErrCatalogMisconfigured) {
		t.Fatalf("expected catalog misconfigured, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("expected no writes, got %d", store.saves)
	}
}

func TestResumePointEmptyLedger(t *testing.T) {
	t.Parallel()
	svc := newService(newMemoryStore(), nil)
	if _, err := svc.ResumePoint(context.Background(), 4); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
