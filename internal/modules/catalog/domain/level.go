package domain

import (
	"fmt"
	"strings"

	apperrors "hypersomnia/internal/platform/errors"
)

// FirstOrder is the order of the level every new player starts on.
const FirstOrder = 1

type Level struct {
	ID          int64
	Name        string
	SceneName   string
	Order       int
	Description string
}

func (l Level) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("%w: level id must be positive, got %d", apperrors.ErrInvalidInput, l.ID)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: level %d has no name", apperrors.ErrInvalidInput, l.ID)
	}
	if strings.TrimSpace(l.SceneName) == "" {
		return fmt.Errorf("%w: level %d has no scene", apperrors.ErrInvalidInput, l.ID)
	}
	if l.Order < FirstOrder {
		return fmt.Errorf("%w: level %d order must be >= %d, got %d", apperrors.ErrInvalidInput, l.ID, FirstOrder, l.Order)
	}
	return nil
}

// ValidateSeeds checks each seed and rejects duplicate ids or orders.
func ValidateSeeds(levels []Level) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: no levels to seed", apperrors.ErrCatalogMisconfigured)
	}
	ids := make(map[int64]struct{}, len(levels))
	orders := make(map[int]int64, len(levels))
	for _, level := range levels {
		if err := level.Validate(); err != nil {
			return err
		}
		if _, ok := ids[level.ID]; ok {
			return fmt.Errorf("%w: duplicate level id %d", apperrors.ErrInvalidInput, level.ID)
		}
		ids[level.ID] = struct{}{}
		if other, ok := orders[level.Order]; ok {
			return fmt.Errorf("%w: levels %d and %d share order %d", apperrors.ErrInvalidInput, other, level.ID, level.Order)
		}
		orders[level.Order] = level.ID
	}
	return nil
}
