package league

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/drafter"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrTimeout     = errors.New("operation timed out")
	ErrUnavailable = errors.New("service unavailable")
	ErrBadDraft    = errors.New("drafter returned an unusable answer")
)

// classify maps collaborator errors onto the league's error kinds. Errors
// already carrying a league kind pass through unchanged.
func (s *Service) classify(err error) error {
	var verr *stats.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNotFound), errors.Is(err, ErrTimeout),
		errors.Is(err, ErrUnavailable), errors.Is(err, ErrBadDraft):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		s.metrics.IncCollaboratorTimeouts()
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, drafter.ErrBadResponse), errors.Is(err, drafter.ErrEmptyResponse):
		return fmt.Errorf("%w: %w", ErrBadDraft, err)
	case errors.As(err, &verr),
		errors.Is(err, tournament.ErrInvalidInput),
		errors.Is(err, tournament.ErrInvalidWinner),
		errors.Is(err, tournament.ErrAlreadyCompleted),
		errors.Is(err, tournament.ErrIncomplete):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, club.ErrMatchNotFound),
		errors.Is(err, club.ErrPlayerNotFound),
		errors.Is(err, tournament.ErrNotFound),
		errors.Is(err, tournament.ErrItemNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
