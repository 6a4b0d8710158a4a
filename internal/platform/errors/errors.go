package apperrors

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrDuplicateName        = errors.New("player name already exists")
	ErrCatalogMisconfigured = errors.New("level catalog misconfigured")
	ErrNoPlayerSelected     = errors.New("no player selected")
)
