package app

import (
	"errors"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
)

// isRecoverable reports whether err is a refusal the demo can carry on from.
func isRecoverable(err error) bool {
	switch {
	case errors.Is(err, domain.ErrUserNotAuthenticated),
		errors.Is(err, domain.ErrNoPaymentAdapter),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnknownGenre),
		errors.Is(err, domain.ErrBookingNotFound):
		return true
	default:
		return false
	}
}

func (app *application) logError(op string, err error, attrs ...any) {
	args := append([]any{"op", op, "error", err}, attrs...)

	if isRecoverable(err) {
		app.logger.Warn(err.Error(), args...)
		return
	}

	app.logger.Error(err.Error(), args...)
}
