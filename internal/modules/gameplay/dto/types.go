package dto

// PlayerID zero means the currently selected player.
type StartLevelInput struct {
	PlayerID int64
	Scene    string
}

type StartLevelOutput struct {
	PlayerID int64
	LevelID  int64
	Scene    string
	Attempts int
}

type FinishLevelInput struct {
	PlayerID int64
	Scene    string
	Elapsed  float64
	Score    int
}

type FinishLevelOutput struct {
	PlayerID    int64
	LevelID     int64
	NextLevelID int64
	NextScene   string
	Ending      bool
}

type ContinueInput struct {
	PlayerID int64
}

type ContinueOutput struct {
	PlayerID int64
	LevelID  int64
	Scene    string
}
