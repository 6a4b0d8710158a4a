package dto

type RecordKey struct {
	PlayerID int64
	LevelID  int64
}

type SetCompletedInput struct {
	PlayerID  int64
	LevelID   int64
	Completed bool
	Time      float64
	Score     int
}

type SetUnlockedInput struct {
	PlayerID int64
	LevelID  int64
	Unlocked bool
}

// RecordOutput carries default values with Exists false when no row is stored.
type RecordOutput struct {
	PlayerID       int64
	LevelID        int64
	Exists         bool
	Unlocked       bool
	Completed      bool
	BestTime       float64
	Score          int
	Attempts       int
	LastPlayedUnix int64
}

type LevelProgressOutput struct {
	RecordOutput
	LevelName string
	SceneName string
	Order     int
}

type SeedInitialOutput struct {
	PlayerID int64
	Records  int
}
