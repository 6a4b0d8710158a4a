package dto

type LevelOutput struct {
	ID          int64
	Name        string
	SceneName   string
	Order       int
	Description string
}

type SeedOutput struct {
	Inserted int
	Skipped  int
}
