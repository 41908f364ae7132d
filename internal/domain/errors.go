package domain

import "errors"

var (
	ErrUserNotAuthenticated     = errors.New("user not authenticated")
	ErrNoPaymentAdapter         = errors.New("no valid payment adapter found")
	ErrUnsupportedPaymentMethod = errors.New("payment method is not supported")
	ErrInvalidAmount            = errors.New("payment amount must be greater than zero")
	ErrUnknownGenre             = errors.New("unknown movie genre")
	ErrBookingNotFound          = errors.New("booking not found")
)
