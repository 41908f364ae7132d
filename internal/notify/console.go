package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
)

// ConsoleNotifier writes a booking confirmation to the console.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Update(_ context.Context, user *domain.User, booking *domain.Booking) error {
	if booking == nil {
		_, err := fmt.Fprintf(n.out, "[Booking confirmation] Could not find %s's booking.\n", user.Name)
		return err
	}

	_, err := fmt.Fprintf(n.out,
		"[Booking confirmation] %s's booking\n"+
			"- Payment: %s\n"+
			"- Date: %s\n"+
			"- Time: %s\n"+
			"- Seat: %s\n",
		user.Name, booking.PaymentInfo, booking.Date, booking.Time, booking.Seat)
	return err
}
