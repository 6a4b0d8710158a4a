package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hypersomnia/internal/modules/player/domain"
	playerout "hypersomnia/internal/modules/player/port/out"
	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/sqlitedb"
)

type SQLitePlayerStore struct {
	db *sqlitedb.Handle
}

func NewSQLitePlayerStore(db *sqlitedb.Handle) playerout.PlayerStore {
	return &SQLitePlayerStore{db: db}
}

func (s *SQLitePlayerStore) Insert(ctx context.Context, player domain.Player) (int64, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return 0, err
	}
	res, err := q.ExecContext(ctx,
		`INSERT INTO Players (playerName, creationDate, lastPlayedDate) VALUES (?, ?, ?)`,
		player.Name, player.CreatedAt.Unix(), player.LastPlayedAt.Unix(),
	)
	if sqlitedb.IsUniqueViolation(err) {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrDuplicateName, player.Name)
	}
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("player id: %w", err)
	}
	return id, nil
}

func (s *SQLitePlayerStore) NameExists(ctx context.Context, name string) (bool, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return false, err
	}
	var count int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(1) FROM Players WHERE playerName = ?`, name).Scan(&count); err != nil {
		return false, fmt.Errorf("check player name: %w", err)
	}
	return count > 0, nil
}

func (s *SQLitePlayerStore) FindByID(ctx context.Context, id int64) (domain.Player, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return domain.Player{}, err
	}
	row := q.QueryRowContext(ctx, `SELECT id, playerName, creationDate, lastPlayedDate FROM Players WHERE id = ?`, id)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Player{}, fmt.Errorf("%w: player %d", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Player{}, fmt.Errorf("load player: %w", err)
	}
	return player, nil
}

func (s *SQLitePlayerStore) List(ctx context.Context) ([]domain.Player, error) {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, `SELECT id, playerName, creationDate, lastPlayedDate FROM Players ORDER BY lastPlayedDate DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

func (s *SQLitePlayerStore) TouchLastPlayed(ctx context.Context, id int64, at time.Time) error {
	q, err := s.db.Querier(ctx)
	if err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, `UPDATE Players SET lastPlayedDate = ? WHERE id = ?`, at.Unix(), id)
	if err != nil {
		return fmt.Errorf("touch player: %w", err)
	}
	return touched(res, id)
}

func touched(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("touch player rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: player %d", apperrors.ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (domain.Player, error) {
	var (
		player     domain.Player
		created    int64
		lastPlayed int64
	)
	if err := row.Scan(&player.ID, &player.Name, &created, &lastPlayed); err != nil {
		return domain.Player{}, err
	}
	player.CreatedAt = time.Unix(created, 0).UTC()
	player.LastPlayedAt = time.Unix(lastPlayed, 0).UTC()
	return player, nil
}
