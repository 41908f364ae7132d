package payment

import (
	"context"
	"fmt"
	"io"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/movie-ticket-system/internal/payment"

// Resolver maps a payment method label to an adapter.
type Resolver func(method domain.PaymentMethod) (domain.PaymentAdapter, error)

// Processor guards payments for a single user. It only lets a payment through
// when the user is authenticated and an adapter exists for the chosen method.
type Processor struct {
	user    *domain.User
	method  domain.PaymentMethod
	adapter domain.PaymentAdapter

	out           io.Writer
	resolve       Resolver
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	completed     metric.Int64Counter
	denied        metric.Int64Counter
}

type Option func(*Processor)

// WithOutput sets where console messages of the processor and of the banks
// are written. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(p *Processor) {
		p.out = w
	}
}

// WithResolver replaces the adapter lookup.
func WithResolver(r Resolver) Option {
	return func(p *Processor) {
		p.resolve = r
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Processor) {
		p.tracer = tp.Tracer(instrumentationName)
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *Processor) {
		p.meterProvider = mp
	}
}

// NewProcessor creates a processor and resolves the adapter for method right
// away. An unsupported method is reported on the console and leaves the
// processor without an adapter; every later payment is then denied.
func NewProcessor(user *domain.User, method domain.PaymentMethod, opts ...Option) *Processor {
	p := &Processor{
		user:          user,
		method:        method,
		out:           io.Discard,
		tracer:        otel.GetTracerProvider().Tracer(instrumentationName),
		meterProvider: otel.GetMeterProvider(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.resolve == nil {
		p.resolve = func(m domain.PaymentMethod) (domain.PaymentAdapter, error) {
			return NewAdapter(m, p.out)
		}
	}

	p.initInstruments()

	adapter, err := p.resolve(method)
	if err != nil {
		fmt.Fprintf(p.out, "[Error] Payment method '%s' is not supported.\n", method)
	} else {
		p.adapter = adapter
	}

	return p
}

func (p *Processor) initInstruments() {
	meter := p.meterProvider.Meter(instrumentationName)

	var err error
	p.completed, err = meter.Int64Counter("payments.completed",
		metric.WithDescription("Number of payments forwarded to a bank"),
		metric.WithUnit("{payment}"))
	if err != nil {
		p.completed = noop.Int64Counter{}
	}

	p.denied, err = meter.Int64Counter("payments.denied",
		metric.WithDescription("Number of payments refused before reaching a bank"),
		metric.WithUnit("{payment}"))
	if err != nil {
		p.denied = noop.Int64Counter{}
	}
}

// HasAdapter reports whether the payment method resolved to an adapter.
func (p *Processor) HasAdapter() bool {
	return p.adapter != nil
}

// ProcessPayment pays amount through the resolved adapter. When the payment is
// refused, the reason is written to the console and returned as an error; the
// adapter is not called.
func (p *Processor) ProcessPayment(ctx context.Context, amount decimal.Decimal) (*domain.Payment, error) {
	ctx, span := p.tracer.Start(ctx, "payment.ProcessPayment", trace.WithAttributes(
		attribute.String("payment.method", string(p.method)),
		attribute.String("payment.amount", amount.String()),
	))
	defer span.End()

	var err error

	switch {
	case p.adapter == nil:
		fmt.Fprintln(p.out, "[Error] No valid payment adapter found.")
		err = domain.ErrNoPaymentAdapter
	case !p.user.IsAuthenticated():
		fmt.Fprintln(p.out, "User not authenticated. Payment denied.")
		err = domain.ErrUserNotAuthenticated
	case !amount.IsPositive():
		fmt.Fprintf(p.out, "[Error] Invalid payment amount %s.\n", amount.String())
		err = domain.ErrInvalidAmount
	}

	if err != nil {
		p.denied.Add(ctx, 1, metric.WithAttributes(
			attribute.String("payment.method", string(p.method)),
			attribute.String("reason", err.Error()),
		))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	payment, err := p.adapter.Pay(ctx, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "bank payment failed")
		return nil, fmt.Errorf("pay via %s: %w", p.method, err)
	}

	payment.UserName = p.user.Name

	p.completed.Add(ctx, 1, metric.WithAttributes(attribute.String("payment.method", string(p.method))))
	span.SetAttributes(attribute.String("payment.id", payment.ID.String()))

	return payment, nil
}
