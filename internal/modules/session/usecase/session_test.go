package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	sessionout "hypersomnia/internal/modules/session/adapter/out"
	"hypersomnia/internal/modules/session/dto"
	sessionin "hypersomnia/internal/modules/session/port/in"
	"hypersomnia/internal/modules/session/service"
	"hypersomnia/internal/modules/session/usecase"
	"hypersomnia/internal/platform/clock"
	apperrors "hypersomnia/internal/platform/errors"
)

var at = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newFileSession(path string) sessionin.Usecase {
	return usecase.NewInteractor(service.NewSessionService(clock.Fixed{At: at}, sessionout.NewFileSelectionStore(path), nil))
}

func TestFileSelectionSharedAcrossInstances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "current-player.json")

	first := newFileSession(path)
	if _, err := first.Current(ctx); !errors.Is(err, apperrors.ErrNoPlayerSelected) {
		t.Fatalf("expected no player selected, got %v", err)
	}
	if _, err := first.Select(ctx, dto.SelectInput{PlayerID: 7}); err != nil {
		t.Fatalf("select: %v", err)
	}

	second := newFileSession(path)
	current, err := second.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.PlayerID != 7 || !current.SelectedAt.Equal(at) {
		t.Fatalf("unexpected selection: %+v", current)
	}

	if err := second.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := second.Clear(ctx); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
	if _, err := first.Current(ctx); !errors.Is(err, apperrors.ErrNoPlayerSelected) {
		t.Fatalf("expected cleared selection, got %v", err)
	}
}

func TestFileSelectionRejectsCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "current-player.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := newFileSession(path).Current(context.Background())
	if err == nil || errors.Is(err, apperrors.ErrNoPlayerSelected) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestFileSelectionTreatsNoPlayerAsEmpty(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "current-player.json")
	if err := os.WriteFile(path, []byte(`{"version":1,"player_id":-1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := newFileSession(path).Current(context.Background()); !errors.Is(err, apperrors.ErrNoPlayerSelected) {
		t.Fatalf("expected no player selected, got %v", err)
	}
}

func TestMemorySelection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(service.NewSessionService(clock.Fixed{At: at}, sessionout.NewMemorySelectionStore(), nil))

	if _, err := uc.Select(ctx, dto.SelectInput{PlayerID: 0}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrNoPlayerSelected) {
		t.Fatalf("expected no player selected, got %v", err)
	}
	if _, err := uc.Select(ctx, dto.SelectInput{PlayerID: 3}); err != nil {
		t.Fatalf("select: %v", err)
	}
	current, err := uc.Current(ctx)
	if err != nil || current.PlayerID != 3 {
		t.Fatalf("expected player 3, got %+v err=%v", current, err)
	}
}
