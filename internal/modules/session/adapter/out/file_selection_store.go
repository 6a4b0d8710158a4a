package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hypersomnia/internal/modules/session/domain"
	sessionout "hypersomnia/internal/modules/session/port/out"
	apperrors "hypersomnia/internal/platform/errors"
)

// FileSelectionStore keeps the current player in a small JSON file next to
// the database so separate command invocations share it.
type FileSelectionStore struct {
	path string
}

func NewFileSelectionStore(path string) sessionout.SelectionStore {
	return &FileSelectionStore{path: path}
}

func (s *FileSelectionStore) Save(_ context.Context, selection domain.Selection) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create selection dir: %w", err)
	}
	payload, err := json.MarshalIndent(selection, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace selection: %w", err)
	}
	return nil
}

func (s *FileSelectionStore) Load(_ context.Context) (domain.Selection, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Selection{}, apperrors.ErrNoPlayerSelected
		}
		return domain.Selection{}, fmt.Errorf("read selection: %w", err)
	}
	selection := domain.Selection{}
	if err := json.Unmarshal(payload, &selection); err != nil {
		return domain.Selection{}, fmt.Errorf("decode selection: %w", err)
	}
	if selection.Empty() {
		return domain.Selection{}, apperrors.ErrNoPlayerSelected
	}
	return selection, nil
}

func (s *FileSelectionStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}
