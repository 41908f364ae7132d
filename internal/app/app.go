package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/metinatakli/movie-ticket-system/internal/mailer"
	"github.com/metinatakli/movie-ticket-system/internal/notify"
	"github.com/metinatakli/movie-ticket-system/internal/payment"
	"github.com/metinatakli/movie-ticket-system/internal/session"
	appvalidator "github.com/metinatakli/movie-ticket-system/internal/validator"
	"github.com/metinatakli/movie-ticket-system/internal/vcs"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	out       io.Writer
	validator *validator.Validate
	tracer    trace.Tracer

	registry  *session.Registry
	publisher *notify.Publisher

	paymentOptions []payment.Option
}

type config struct {
	Env  string `validate:"oneof=dev staging prod"`
	Demo struct {
		User          string `validate:"required"`
		Email         string `validate:"omitempty,email"`
		Genre         string `validate:"genre"`
		PaymentMethod string `validate:"required"`
		Amount        string `validate:"positive_amount"`
	}
	SMTP struct {
		Host     string
		Port     int `validate:"min=1,max=65535"`
		Username string
		Password string
		Sender   string
	}
	AMQP struct {
		URL string `validate:"omitempty,url"`
	}
	OtelCollectorUrl string `validate:"omitempty,hostname_port"`
}

func Run() error {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	var cfg config

	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.Demo.User, "user", "Alice", "Name of the user that books in the demo")
	flag.StringVar(&cfg.Demo.Email, "email", os.Getenv("DEMO_EMAIL"), "Email of the demo user, enables mail notifications")
	flag.StringVar(&cfg.Demo.Genre, "genre", "Action", "Genre for the popular movies recommendation and movie pick")
	flag.StringVar(&cfg.Demo.PaymentMethod, "payment-method", "KakaoBank", "Payment method (KBBank|TossBank|KakaoBank)")
	flag.StringVar(&cfg.Demo.Amount, "amount", "15000", "Ticket price in KRW")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "CineX <no-reply@cinex.metinatakli.net>", "SMTP sender")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", os.Getenv("AMQP_URL"), "RabbitMQ URL, enables booking events")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector host:port")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()
	if err := validateConfig(validator, cfg); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &application{
		config:    cfg,
		logger:    logger,
		out:       os.Stdout,
		validator: validator,
		registry:  session.Default(),
		publisher: notify.NewPublisher(notify.NewConsoleNotifier(os.Stdout)),
	}

	shutdownTelemetry, err := app.initTelemetry(ctx)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	app.tracer = otel.GetTracerProvider().Tracer(instrumentationName)

	if cfg.Demo.Email != "" && cfg.SMTP.Username != "" {
		m := mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender)
		app.publisher.Subscribe(notify.NewMailNotifier(m))
		logger.Info("mail notifications enabled", "smtp_host", cfg.SMTP.Host)
	}

	if cfg.AMQP.URL != "" {
		conn, ch, err := notify.DialQueue(cfg.AMQP.URL)
		if err != nil {
			logger.Error("failed to connect to message broker", "error", err)
			return err
		}
		defer conn.Close()

		app.publisher.Subscribe(notify.NewQueueNotifier(ch))
		logger.Info("booking events enabled", "queue", notify.BookingConfirmedQueue)
	}

	logger.Info("starting demo", "env", cfg.Env, "version", version)

	err = app.runDemo(ctx)
	if err != nil {
		app.logError("run demo", err)
		return err
	}

	logger.Info("demo finished")

	return nil
}

func validateConfig(v *validator.Validate, cfg config) error {
	return appvalidator.FormatErrors(v.Struct(cfg))
}
