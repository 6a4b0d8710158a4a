package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "hypersomnia/internal/platform/errors"
)

type Player struct {
	ID           int64
	Name         string
	CreatedAt    time.Time
	LastPlayedAt time.Time
}

// NormalizeName trims surrounding whitespace. Comparison stays case-sensitive.
// An empty name is reported as both invalid input and a duplicate, since no
// player can ever own it.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %w: player name is required", apperrors.ErrInvalidInput, apperrors.ErrDuplicateName)
	}
	return name, nil
}
