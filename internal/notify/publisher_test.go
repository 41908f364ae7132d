package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/metinatakli/movie-ticket-system/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	name  string
	calls *[]string
}

func (o *recordingObserver) Update(_ context.Context, user *domain.User, booking *domain.Booking) error {
	*o.calls = append(*o.calls, o.name+":"+user.Name)
	return nil
}

var testBooking = domain.Booking{Date: "2025-06-01", Time: "18:00", Seat: "K13", PaymentInfo: "KakaoBank"}

func TestPublisherNotifiesInSubscriptionOrder(t *testing.T) {
	var calls []string
	first := &recordingObserver{name: "first", calls: &calls}
	second := &recordingObserver{name: "second", calls: &calls}

	p := NewPublisher(first)
	p.Subscribe(second)

	err := p.Publish(context.Background(), domain.NewUser("Alice"), &testBooking)

	require.NoError(t, err)
	assert.Equal(t, []string{"first:Alice", "second:Alice"}, calls)
}

func TestPublisherUnsubscribe(t *testing.T) {
	var calls []string
	first := &recordingObserver{name: "first", calls: &calls}
	second := &recordingObserver{name: "second", calls: &calls}

	p := NewPublisher(first, second, first)
	p.Unsubscribe(first)

	require.Equal(t, 1, p.Len())
	require.NoError(t, p.Publish(context.Background(), domain.NewUser("Alex"), &testBooking))
	assert.Equal(t, []string{"second:Alex"}, calls)
}

func TestPublisherJoinsObserverErrors(t *testing.T) {
	user := domain.NewUser("Alice")
	errMail := errors.New("smtp down")
	errQueue := errors.New("broker down")

	failingMail := new(mocks.MockBookingObserver)
	failingMail.On("Update", mock.Anything, user, &testBooking).Return(errMail).Once()

	healthy := new(mocks.MockBookingObserver)
	healthy.On("Update", mock.Anything, user, &testBooking).Return(nil).Once()

	failingQueue := new(mocks.MockBookingObserver)
	failingQueue.On("Update", mock.Anything, user, &testBooking).Return(errQueue).Once()

	p := NewPublisher(failingMail, healthy, failingQueue)
	err := p.Publish(context.Background(), user, &testBooking)

	assert.ErrorIs(t, err, errMail)
	assert.ErrorIs(t, err, errQueue)

	failingMail.AssertExpectations(t)
	healthy.AssertExpectations(t)
	failingQueue.AssertExpectations(t)
}

func TestPublisherWithoutObservers(t *testing.T) {
	p := NewPublisher()

	assert.NoError(t, p.Publish(context.Background(), domain.NewUser("Alice"), nil))
}
