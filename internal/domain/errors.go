package domain

import "errors"

var (
	ErrMusicNotFound = errors.New("music entry not found")
	ErrInvalidID     = errors.New("invalid music id")
)
