package dto

import "time"

type CreatePlayerInput struct {
	Name string
}

type PlayerOutput struct {
	ID           int64
	Name         string
	CreatedAt    time.Time
	LastPlayedAt time.Time
}

type CreatePlayerOutput struct {
	Player       PlayerOutput
	ProgressRows int
}

type SettingsOutput struct {
	PlayerID        int64
	SoundVolume     float64
	MusicVolume     float64
	ResolutionWidth int
}

// UpdateSettingsInput leaves nil fields unchanged.
type UpdateSettingsInput struct {
	PlayerID        int64
	SoundVolume     *float64
	MusicVolume     *float64
	ResolutionWidth *int
}
