// Package session keeps track of logged-in users.
//
// A Registry is passed explicitly to whatever needs it. Default returns the
// process-wide instance: it is created on first use and lives until the
// process exits.
package session

import (
	"sort"
	"sync"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
)

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.User
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*domain.User),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first call.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Login authenticates the user and registers it under its name, replacing any
// user previously registered with that name.
func (r *Registry) Login(user *domain.User) {
	user.Authenticate()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[user.Name] = user
}

// Logout de-authenticates the named user and removes it from the registry.
// It reports whether the user was registered.
func (r *Registry) Logout(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.sessions[name]
	if !ok {
		return false
	}

	user.Logout()
	delete(r.sessions, name)

	return true
}

// User returns the registered user with the given name.
func (r *Registry) User(name string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.sessions[name]
	return user, ok
}

// Users returns the registered users sorted by name.
func (r *Registry) Users() []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.sessions))
	for _, u := range r.sessions {
		users = append(users, u)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})

	return users
}
