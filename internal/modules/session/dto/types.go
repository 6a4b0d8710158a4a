package dto

import "time"

type SelectInput struct {
	PlayerID int64
}

type SelectionOutput struct {
	PlayerID   int64
	SelectedAt time.Time
}
