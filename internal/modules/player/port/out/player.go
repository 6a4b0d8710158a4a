package out

import (
	"context"
	"time"

	"hypersomnia/internal/modules/player/domain"
)

type PlayerStore interface {
	Insert(ctx context.Context, player domain.Player) (int64, error)
	NameExists(ctx context.Context, name string) (bool, error)
	FindByID(ctx context.Context, id int64) (domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	TouchLastPlayed(ctx context.Context, id int64, at time.Time) error
}

type SettingsStore interface {
	Save(ctx context.Context, settings domain.Settings) error
	Find(ctx context.Context, playerID int64) (domain.Settings, error)
}

// ProgressSeeder writes the starting ledger of a new player inside the
// caller's transaction.
type ProgressSeeder interface {
	SeedInitial(ctx context.Context, playerID int64) (int, error)
}

// Selector holds the current player of the running game.
type Selector interface {
	Select(ctx context.Context, playerID int64) error
	Current(ctx context.Context) (int64, error)
}
