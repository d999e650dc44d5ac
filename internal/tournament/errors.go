package tournament

import "errors"

var (
	ErrNotFound         = errors.New("tournament not found")
	ErrItemNotFound     = errors.New("schedule item not found")
	ErrInvalidInput     = errors.New("invalid tournament input")
	ErrInvalidWinner    = errors.New("invalid winner")
	ErrAlreadyCompleted = errors.New("tournament already completed")
	ErrIncomplete       = errors.New("tournament has unfinished games")
)
