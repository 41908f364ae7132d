package notify

import (
	"context"
	"fmt"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/metinatakli/movie-ticket-system/internal/mailer"
)

const bookingConfirmedTemplate = "booking_confirmed.tmpl"

// MailNotifier emails the confirmation to the user. Users without an email
// address and lookups that found no booking are skipped.
type MailNotifier struct {
	mailer mailer.Mailer
}

func NewMailNotifier(m mailer.Mailer) *MailNotifier {
	return &MailNotifier{mailer: m}
}

func (n *MailNotifier) Update(_ context.Context, user *domain.User, booking *domain.Booking) error {
	if booking == nil || user.Email == "" {
		return nil
	}

	data := map[string]any{
		"UserName":    user.Name,
		"Date":        booking.Date,
		"Time":        booking.Time,
		"Seat":        booking.Seat,
		"PaymentInfo": booking.PaymentInfo,
	}

	err := n.mailer.Send(user.Email, bookingConfirmedTemplate, data)
	if err != nil {
		return fmt.Errorf("send booking confirmation to %s: %w", user.Email, err)
	}

	return nil
}
