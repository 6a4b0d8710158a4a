package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hypersomnia/internal/modules/catalog/domain"
	catalogout "hypersomnia/internal/modules/catalog/port/out"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/sqlitedb"
)

const levelColumns = `id, levelName, sceneName, "order", description`

type SQLiteLevelStore struct {
	db *sqlitedb.Handle
}

func NewSQLiteLevelStore(db *sqlitedb.Handle) catalogout.LevelStore {
	return &SQLiteLevelStore{db: db}
}

func (s *SQLiteLevelStore) FindByID(ctx context.Context, id int64) (domain.Level, error) {
	return s.findOne(ctx, `SELECT `+levelColumns+` FROM Levels WHERE id = ?`, fmt.Sprintf("level %d", id), id)
}

func (s *SQLiteLevelStore) FindBySceneName(ctx context.Context, scene string) (domain.Level, error) {
	return s.findOne(ctx, `SELECT `+levelColumns+` FROM Levels WHERE sceneName = ? ORDER BY "order" LIMIT 1`, fmt.Sprintf("level for scene %q", scene), scene)
}

func (s *SQLiteLevelStore) FindByOrder(ctx context.Context, order int) (domain.Level, error) {
	return s.findOne(ctx, `SELECT `+levelColumns+` FROM Levels WHERE "order" = ?`, fmt.Sprintf("level with order %d", order), order)
}

func (s *SQLiteLevelStore) ListOrdered(ctx context.Context) ([]domain.Level, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, `SELECT `+levelColumns+` FROM Levels ORDER BY "order" ASC`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	levels := []domain.Level{}
	for rows.Next() {
		level, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate levels: %w", err)
	}
	return levels, nil
}

func (s *SQLiteLevelStore) InsertIfAbsent(ctx context.Context, level domain.Level) (bool, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return false, err
	}
	res, err := q.ExecContext(ctx,
		`INSERT OR IGNORE INTO Levels (id, levelName, sceneName, "order", description) VALUES (?, ?, ?, ?, ?)`,
		level.ID, level.Name, level.SceneName, level.Order, level.Description,
	)
	if err != nil {
		return false, fmt.Errorf("insert level %d: %w", level.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert level %d rows affected: %w", level.ID, err)
	}
	return affected > 0, nil
}

func (s *SQLiteLevelStore) findOne(ctx context.Context, query, what string, arg any) (domain.Level, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return domain.Level{}, err
	}
	level, err := scanLevel(q.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Level{}, fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	if err != nil {
		return domain.Level{}, fmt.Errorf("load %s: %w", what, err)
	}
	return level, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLevel(row scanner) (domain.Level, error) {
	var (
		level       domain.Level
		description sql.NullString
	)
	if err := row.Scan(&level.ID, &level.Name, &level.SceneName, &level.Order, &description); err != nil {
		return domain.Level{}, err
	}
	level.Description = description.String
	return level, nil
}
