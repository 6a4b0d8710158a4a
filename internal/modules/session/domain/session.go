package domain

import "time"

// NoPlayer marks an empty selection.
const NoPlayer int64 = -1

const SchemaVersion = 1

// Selection is the player the running game is bound to.
type Selection struct {
	Version    int       `json:"version"`
	PlayerID   int64     `json:"player_id"`
	SelectedAt time.Time `json:"selected_at"`
}

func (s Selection) Empty() bool {
	return s.PlayerID <= 0
}
