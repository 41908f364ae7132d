package app

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/metinatakli/movie-ticket-system/internal/notify"
	"github.com/metinatakli/movie-ticket-system/internal/session"
	"github.com/metinatakli/movie-ticket-system/internal/validator"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestApplication(opts ...func(*application)) (*application, *bytes.Buffer) {
	out := new(bytes.Buffer)

	app := &application{
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:       out,
		tracer:    noop.NewTracerProvider().Tracer(instrumentationName),
		registry:  session.NewRegistry(),
		publisher: notify.NewPublisher(notify.NewConsoleNotifier(out)),
	}

	app.config.Env = "dev"
	app.config.Demo.User = "Alice"
	app.config.Demo.Genre = "Action"
	app.config.Demo.PaymentMethod = "KakaoBank"
	app.config.Demo.Amount = "15000"
	app.config.SMTP.Port = 2525

	for _, opt := range opts {
		opt(app)
	}

	return app, out
}
