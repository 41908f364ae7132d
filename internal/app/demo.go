package app

import (
	"context"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/metinatakli/movie-ticket-system/internal/recommend"
	"github.com/shopspring/decimal"
)

// runDemo walks through the booking scenario: two users log in, the first one
// gets recommendations, picks a movie, books a seat, moves the booking to the
// next seat and pays for it. Refused payments and unknown genres are logged
// and the scenario carries on.
func (app *application) runDemo(ctx context.Context) error {
	cfg := app.config.Demo

	user := app.login(cfg.User, cfg.Email)
	app.login("Alex", "")

	genre := domain.Genre(cfg.Genre)

	app.recommend(user, recommend.PopularMovies{Genre: genre, Out: app.out})
	app.recommend(user, recommend.NearestTheater{Out: app.out})

	_, err := app.pickMovie(genre)
	if err != nil {
		app.logError("pick movie", err, "genre", genre)
	}

	booking := domain.NewBookingBuilder().
		SetDate("2025-06-01").
		SetTime("18:00").
		SetSeat("K12").
		SetPaymentInfo(cfg.PaymentMethod).
		Build()

	app.confirmBooking(ctx, user, booking)

	_, err = app.rebook(ctx, user, domain.BookingOverrides{Seat: domain.Override("K13")})
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(cfg.Amount)
	if err != nil {
		return err
	}

	_, err = app.pay(ctx, user, domain.PaymentMethod(cfg.PaymentMethod), amount)
	if err != nil {
		if !isRecoverable(err) {
			return err
		}
		app.logError("pay", err, "user", user.Name, "method", cfg.PaymentMethod)
	}

	return ctx.Err()
}
