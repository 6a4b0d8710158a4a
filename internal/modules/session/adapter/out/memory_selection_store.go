package out

import (
	"context"
	"sync"

	"hypersomnia/internal/modules/session/domain"
	sessionout "hypersomnia/internal/modules/session/port/out"
	apperrors "hypersomnia/internal/platform/errors"
)

// MemorySelectionStore holds the selection for the life of the process only.
type MemorySelectionStore struct {
	mu        sync.Mutex
	selection domain.Selection
}

func NewMemorySelectionStore() sessionout.SelectionStore {
	return &MemorySelectionStore{selection: domain.Selection{PlayerID: domain.NoPlayer}}
}

func (s *MemorySelectionStore) Save(_ context.Context, selection domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = selection
	return nil
}

func (s *MemorySelectionStore) Load(_ context.Context) (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection.Empty() {
		return domain.Selection{}, apperrors.ErrNoPlayerSelected
	}
	return s.selection, nil
}

func (s *MemorySelectionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = domain.Selection{PlayerID: domain.NoPlayer}
	return nil
}
