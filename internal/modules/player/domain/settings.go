package domain

import (
	"fmt"

	apperrors "hypersomnia/internal/platform/errors"
)

const (
	DefaultVolume          = 1.0
	DefaultResolutionWidth = 1920
)

type Settings struct {
	PlayerID        int64
	SoundVolume     float64
	MusicVolume     float64
	ResolutionWidth int
}

func DefaultSettings(playerID int64) Settings {
	return Settings{
		PlayerID:        playerID,
		SoundVolume:     DefaultVolume,
		MusicVolume:     DefaultVolume,
		ResolutionWidth: DefaultResolutionWidth,
	}
}

// Normalize clamps volumes into [0, 1] and rejects a non-positive width.
func (s Settings) Normalize() (Settings, error) {
	if s.ResolutionWidth <= 0 {
		return Settings{}, fmt.Errorf("%w: resolution width must be positive, got %d", apperrors.ErrInvalidInput, s.ResolutionWidth)
	}
	s.SoundVolume = clampVolume(s.SoundVolume)
	s.MusicVolume = clampVolume(s.MusicVolume)
	return s, nil
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
