package out

import (
	"context"

	playerout "hypersomnia/internal/modules/player/port/out"
	progressin "hypersomnia/internal/modules/progress/port/in"
)

type ProgressSeederAdapter struct {
	progress progressin.Usecase
}

func NewProgressSeederAdapter(progress progressin.Usecase) playerout.ProgressSeeder {
	return &ProgressSeederAdapter{progress: progress}
}

func (a *ProgressSeederAdapter) SeedInitial(ctx context.Context, playerID int64) (int, error) {
	out, err := a.progress.SeedInitial(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return out.Records, nil
}
