package domain

import (
	"fmt"
	"io"
)

// Booking describes a reserved date, time and seat together with the payment
// label used for it. Two bookings are the same if all fields are equal.
type Booking struct {
	Date        string
	Time        string
	Seat        string
	PaymentInfo string
}

// Book writes the booking confirmation line. It does not modify the booking.
func (b Booking) Book(w io.Writer) {
	fmt.Fprintf(w, "%s %s %s booked!\n", b.Date, b.Time, b.Seat)
}

// BookingOverrides lists the fields to replace when cloning a booking. A nil
// field keeps the source value; a non-nil field replaces it, even when it
// points to an empty string.
type BookingOverrides struct {
	Date        *string
	Time        *string
	Seat        *string
	PaymentInfo *string
}

// Override returns a pointer to s for use in BookingOverrides.
func Override(s string) *string {
	return &s
}

// Clone returns a copy of b with the given overrides applied.
func (b Booking) Clone(o BookingOverrides) Booking {
	clone := b

	if o.Date != nil {
		clone.Date = *o.Date
	}
	if o.Time != nil {
		clone.Time = *o.Time
	}
	if o.Seat != nil {
		clone.Seat = *o.Seat
	}
	if o.PaymentInfo != nil {
		clone.PaymentInfo = *o.PaymentInfo
	}

	return clone
}

// BookingBuilder accumulates booking fields step by step. Fields that are
// never set stay empty; Build never fails.
type BookingBuilder struct {
	booking Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{}
}

func (b *BookingBuilder) SetDate(date string) *BookingBuilder {
	b.booking.Date = date
	return b
}

func (b *BookingBuilder) SetTime(time string) *BookingBuilder {
	b.booking.Time = time
	return b
}

func (b *BookingBuilder) SetSeat(seat string) *BookingBuilder {
	b.booking.Seat = seat
	return b
}

func (b *BookingBuilder) SetPaymentInfo(paymentInfo string) *BookingBuilder {
	b.booking.PaymentInfo = paymentInfo
	return b
}

// Build returns a snapshot; later setter calls do not affect it.
func (b *BookingBuilder) Build() Booking {
	return b.booking
}
