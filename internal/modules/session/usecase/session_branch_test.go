package usecase_test

import (
	"context"
	"errors"
	"testing"

	"hypersomnia/internal/modules/session/domain"
	sessiondto "hypersomnia/internal/modules/session/dto"
	"hypersomnia/internal/modules/session/service"
	"hypersomnia/internal/modules/session/usecase"
	"hypersomnia/internal/platform/clock"
)

type failingStore struct{ err error }

func (f failingStore) Save(context.Context, domain.Selection) error { return f.err }
func (f failingStore) Load(context.Context) (domain.Selection, error) {
	return domain.Selection{}, f.err
}
func (f failingStore) Clear(context.Context) error { return f.err }

func TestSelectPropagatesStoreFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("read-only filesystem")
	uc := usecase.NewInteractor(service.NewSessionService(clock.SystemClock{}, failingStore{err: boom}, nil))

	if _, err := uc.Select(context.Background(), sessiondto.SelectInput{PlayerID: 1}); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if _, err := uc.Current(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if err := uc.Clear(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
