package domain

import "context"

// BookingObserver is notified when a booking is confirmed. A nil booking
// means the booking the caller looked for could not be found.
type BookingObserver interface {
	Update(ctx context.Context, user *User, booking *Booking) error
}
