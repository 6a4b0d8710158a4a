package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hypersomnia/internal/modules/progress/domain"
	progressout "hypersomnia/internal/modules/progress/port/out"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/sqlitedb"
)

type SQLiteRecordStore struct {
	db *sqlitedb.Handle
}

func NewSQLiteRecordStore(db *sqlitedb.Handle) progressout.RecordStore {
	return &SQLiteRecordStore{db: db}
}

func (s *SQLiteRecordStore) Find(ctx context.Context, playerID, levelID int64) (domain.Record, bool, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return domain.Record{}, false, err
	}
	row := q.QueryRowContext(ctx, `
SELECT playerId, levelId, isUnlocked, isCompleted, bestTime, score, attempts, lastPlayedTime
FROM PlayerProgress
WHERE playerId = ? AND levelId = ?`, playerID, levelID)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, false, nil
	}
	if err != nil {
		return domain.Record{}, false, fmt.Errorf("load progress: %w", err)
	}
	return record, true, nil
}

func (s *SQLiteRecordStore) Save(ctx context.Context, record domain.Record) error {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return err
	}
	const stmt = `
INSERT INTO PlayerProgress (playerId, levelId, isUnlocked, isCompleted, bestTime, score, attempts, lastPlayedTime)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(playerId, levelId) DO UPDATE SET
  isUnlocked=excluded.isUnlocked,
  isCompleted=excluded.isCompleted,
  bestTime=excluded.bestTime,
  score=excluded.score,
  attempts=excluded.attempts,
  lastPlayedTime=excluded.lastPlayedTime;
`
	_, err = q.ExecContext(ctx, stmt,
		record.PlayerID,
		record.LevelID,
		sqlitedb.BoolToInt(record.Unlocked),
		sqlitedb.BoolToInt(record.Completed),
		record.BestTime,
		record.Score,
		record.Attempts,
		unixOrNull(record.LastPlayed),
	)
	if sqlitedb.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: player %d or level %d does not exist", apperrors.ErrNotFound, record.PlayerID, record.LevelID)
	}
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) ListForPlayer(ctx context.Context, playerID int64) ([]domain.LevelProgress, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, `
SELECT p.playerId, p.levelId, p.isUnlocked, p.isCompleted, p.bestTime, p.score, p.attempts, p.lastPlayedTime,
       l.levelName, l.sceneName, l."order"
FROM PlayerProgress p
JOIN Levels l ON l.id = p.levelId
WHERE p.playerId = ?
ORDER BY l."order" ASC`, playerID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	out := []domain.LevelProgress{}
	for rows.Next() {
		var (
			row        domain.LevelProgress
			unlocked   int
			completed  int
			lastPlayed sql.NullInt64
		)
		if err := rows.Scan(
			&row.PlayerID, &row.LevelID, &unlocked, &completed, &row.BestTime, &row.Score, &row.Attempts, &lastPlayed,
			&row.LevelName, &row.SceneName, &row.Order,
		); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		row.Unlocked = unlocked != 0
		row.Completed = completed != 0
		row.LastPlayed = fromUnix(lastPlayed)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}
	return out, nil
}

func scanRecord(row *sql.Row) (domain.Record, error) {
	var (
		record     domain.Record
		unlocked   int
		completed  int
		lastPlayed sql.NullInt64
	)
	if err := row.Scan(&record.PlayerID, &record.LevelID, &unlocked, &completed, &record.BestTime, &record.Score, &record.Attempts, &lastPlayed); err != nil {
		return domain.Record{}, err
	}
	record.Unlocked = unlocked != 0
	record.Completed = completed != 0
	record.LastPlayed = fromUnix(lastPlayed)
	return record, nil
}

func unixOrNull(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Unix()
}

func fromUnix(v sql.NullInt64) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return time.Unix(v.Int64, 0).UTC()
}
