package mocks

import (
	"context"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingObserver struct {
	mock.Mock
}

func (m *MockBookingObserver) Update(ctx context.Context, user *domain.User, booking *domain.Booking) error {
	args := m.Called(ctx, user, booking)
	return args.Error(0)
}
