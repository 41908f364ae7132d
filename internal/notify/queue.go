package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
)

const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is the message published on BookingConfirmedQueue.
type BookingConfirmedEvent struct {
	UserName    string `json:"user_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Seat        string `json:"seat"`
	PaymentInfo string `json:"payment_info"`
	ConfirmedAt string `json:"confirmed_at"`
}

// Channel is the part of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// QueueNotifier publishes confirmed bookings to a message broker so other
// services can react to them.
type QueueNotifier struct {
	ch    Channel
	queue string
	now   func() time.Time
}

func NewQueueNotifier(ch Channel) *QueueNotifier {
	return &QueueNotifier{
		ch:    ch,
		queue: BookingConfirmedQueue,
		now:   time.Now,
	}
}

func (n *QueueNotifier) Update(ctx context.Context, user *domain.User, booking *domain.Booking) error {
	if booking == nil {
		return nil
	}

	confirmedAt := n.now().UTC()
	event := BookingConfirmedEvent{
		UserName:    user.Name,
		Date:        booking.Date,
		Time:        booking.Time,
		Seat:        booking.Seat,
		PaymentInfo: booking.PaymentInfo,
		ConfirmedAt: confirmedAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    confirmedAt,
		Body:         body,
	}

	// default exchange, routing key = queue name
	err = n.ch.PublishWithContext(ctx, "", n.queue, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish booking event: %w", err)
	}

	return nil
}

// DialQueue connects to the broker and declares the durable booking queue.
// The caller closes the returned connection.
func DialQueue(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		BookingConfirmedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("declare %s queue: %w", BookingConfirmedQueue, err)
	}

	return conn, ch, nil
}
