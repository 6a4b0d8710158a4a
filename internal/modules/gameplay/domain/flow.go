package domain

import "errors"

// ErrUnknownScene marks a scene with no catalog level; gameplay goes back to
// MainMenuScene.
var ErrUnknownScene = errors.New("scene is not cataloged")

const (
	// EndingScene is loaded after the last cataloged level.
	EndingScene = "Ending"
	// MainMenuScene is where gameplay returns when a scene is not cataloged.
	MainMenuScene = "MainMenu"
	FirstOrder    = 1
)

type LevelInfo struct {
	ID        int64
	SceneName string
	Order     int
}

// Attempt is a started level run.
type Attempt struct {
	PlayerID int64
	Level    LevelInfo
	Attempts int
}

// Advance describes where the game goes after a level is finished.
type Advance struct {
	PlayerID  int64
	Completed LevelInfo
	Next      LevelInfo
	Ending    bool
}

// NextScene is the scene to load: the next level's, or the ending.
func (a Advance) NextScene() string {
	if a.Ending {
		return EndingScene
	}
	return a.Next.SceneName
}
