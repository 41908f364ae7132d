package app

import (
	"context"
	"fmt"

	"github.com/metinatakli/movie-ticket-system/internal/catalog"
	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/metinatakli/movie-ticket-system/internal/payment"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/movie-ticket-system/internal/app"

func (app *application) login(name, email string) *domain.User {
	user := domain.NewUser(name)
	user.Email = email

	app.registry.Login(user)
	app.logger.Info("user logged in", "user", name)

	return user
}

func (app *application) recommend(user *domain.User, strategy domain.RecommendationStrategy) []string {
	picks := strategy.Recommend(user)
	app.logger.Debug("recommendation served", "user", user.Name, "strategy", fmt.Sprintf("%T", strategy), "picks", len(picks))

	return picks
}

func (app *application) pickMovie(genre domain.Genre) (domain.Movie, error) {
	factory, err := catalog.FactoryFor(genre)
	if err != nil {
		return domain.Movie{}, err
	}

	movie := factory.CreateMovie()
	movie.Play(app.out)

	return movie, nil
}

// confirmBooking books b for the user, records it in the user's history and
// pushes it to every subscribed observer. Observer failures are logged and do
// not undo the booking.
func (app *application) confirmBooking(ctx context.Context, user *domain.User, b domain.Booking) {
	ctx, span := app.tracer.Start(ctx, "app.confirmBooking", trace.WithAttributes(
		attribute.String("user", user.Name),
		attribute.String("booking.seat", b.Seat),
	))
	defer span.End()

	b.Book(app.out)
	user.AddBooking(b)

	app.logger.Info("booking confirmed", "user", user.Name, "date", b.Date, "time", b.Time, "seat", b.Seat)

	err := app.publisher.Publish(ctx, user, &b)
	if err != nil {
		span.RecordError(err)
		app.logError("notify booking observers", err, "user", user.Name)
	}
}

// rebook clones the user's latest booking with the given overrides and
// confirms the copy. When the user has no booking yet, observers are told the
// booking could not be found.
func (app *application) rebook(ctx context.Context, user *domain.User, o domain.BookingOverrides) (domain.Booking, error) {
	last, ok := user.LastBooking()
	if !ok {
		err := app.publisher.Publish(ctx, user, nil)
		if err != nil {
			app.logError("notify booking observers", err, "user", user.Name)
		}
		return domain.Booking{}, fmt.Errorf("rebook for %s: %w", user.Name, domain.ErrBookingNotFound)
	}

	modified := last.Clone(o)
	app.confirmBooking(ctx, user, modified)

	return modified, nil
}

func (app *application) pay(ctx context.Context, user *domain.User, method domain.PaymentMethod, amount decimal.Decimal) (*domain.Payment, error) {
	ctx, span := app.tracer.Start(ctx, "app.pay")
	defer span.End()

	opts := append([]payment.Option{payment.WithOutput(app.out)}, app.paymentOptions...)
	processor := payment.NewProcessor(user, method, opts...)

	receipt, err := processor.ProcessPayment(ctx, amount)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	app.logger.Info("payment completed",
		"user", user.Name,
		"payment_id", receipt.ID,
		"method", receipt.Method,
		"amount", receipt.Amount.String(),
		"currency", receipt.Currency,
	)

	return receipt, nil
}
