package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hypersomnia/internal/modules/player/domain"
	playerout "hypersomnia/internal/modules/player/port/out"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/sqlitedb"
)

type SQLiteSettingsStore struct {
	db *sqlitedb.Handle
}

func NewSQLiteSettingsStore(db *sqlitedb.Handle) playerout.SettingsStore {
	return &SQLiteSettingsStore{db: db}
}

func (s *SQLiteSettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return err
	}
	const stmt = `
INSERT INTO UserSettings (playerId, soundVolume, musicVolume, resolutionWidth)
VALUES (?, ?, ?, ?)
ON CONFLICT(playerId) DO UPDATE SET
  soundVolume=excluded.soundVolume,
  musicVolume=excluded.musicVolume,
  resolutionWidth=excluded.resolutionWidth;
`
	if _, err := q.ExecContext(ctx, stmt, settings.PlayerID, settings.SoundVolume, settings.MusicVolume, settings.ResolutionWidth); err != nil {
		if sqlitedb.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: player %d", apperrors.ErrNotFound, settings.PlayerID)
		}
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *SQLiteSettingsStore) Find(ctx context.Context, playerID int64) (domain.Settings, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	settings := domain.Settings{PlayerID: playerID}
	err = q.QueryRowContext(ctx,
		`SELECT soundVolume, musicVolume, resolutionWidth FROM UserSettings WHERE playerId = ?`, playerID,
	).Scan(&settings.SoundVolume, &settings.MusicVolume, &settings.ResolutionWidth)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Settings{}, fmt.Errorf("%w: settings for player %d", apperrors.ErrNotFound, playerID)
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}
