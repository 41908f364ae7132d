package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/metinatakli/movie-ticket-system/internal/mocks"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueueNotifierPublishesEvent(t *testing.T) {
	ch := new(mocks.MockAMQPChannel)
	confirmedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "", BookingConfirmedQueue, false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(5).(amqp.Publishing)
		}).
		Return(nil).Once()

	n := NewQueueNotifier(ch)
	n.now = func() time.Time { return confirmedAt }

	err := n.Update(context.Background(), domain.NewUser("Alice"), &testBooking)
	require.NoError(t, err)
	ch.AssertExpectations(t)

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, confirmedAt, published.Timestamp)

	var event BookingConfirmedEvent
	require.NoError(t, json.Unmarshal(published.Body, &event))
	assert.Equal(t, BookingConfirmedEvent{
		UserName:    "Alice",
		Date:        "2025-06-01",
		Time:        "18:00",
		Seat:        "K13",
		PaymentInfo: "KakaoBank",
		ConfirmedAt: "2025-06-01T09:00:00Z",
	}, event)
}

func TestQueueNotifierSkipsMissingBooking(t *testing.T) {
	ch := new(mocks.MockAMQPChannel)

	err := NewQueueNotifier(ch).Update(context.Background(), domain.NewUser("Alice"), nil)

	require.NoError(t, err)
	ch.AssertNotCalled(t, "PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestQueueNotifierWrapsPublishError(t *testing.T) {
	ch := new(mocks.MockAMQPChannel)
	errClosed := errors.New("channel closed")
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errClosed).Once()

	err := NewQueueNotifier(ch).Update(context.Background(), domain.NewUser("Alice"), &testBooking)

	assert.ErrorIs(t, err, errClosed)
	ch.AssertExpectations(t)
}
