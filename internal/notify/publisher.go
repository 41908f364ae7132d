// Package notify delivers booking confirmations to subscribed observers.
package notify

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
)

// Publisher keeps an ordered list of observers and pushes every confirmed
// booking to all of them.
type Publisher struct {
	mu        sync.RWMutex
	observers []domain.BookingObserver
}

func NewPublisher(observers ...domain.BookingObserver) *Publisher {
	return &Publisher{
		observers: slices.Clone(observers),
	}
}

// Subscribe adds an observer. Subscribing the same observer twice delivers
// every booking to it twice.
func (p *Publisher) Subscribe(o domain.BookingObserver) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.observers = append(p.observers, o)
}

// Unsubscribe removes every subscription of o. Observers are compared with ==,
// so they should be pointers.
func (p *Publisher) Unsubscribe(o domain.BookingObserver) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.observers = slices.DeleteFunc(p.observers, func(v domain.BookingObserver) bool {
		return v == o
	})
}

func (p *Publisher) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.observers)
}

// Publish notifies the observers in subscription order. A failing observer
// does not stop the others; all failures are joined into the returned error.
func (p *Publisher) Publish(ctx context.Context, user *domain.User, booking *domain.Booking) error {
	p.mu.RLock()
	observers := slices.Clone(p.observers)
	p.mu.RUnlock()

	var errs []error
	for _, o := range observers {
		if err := o.Update(ctx, user, booking); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
