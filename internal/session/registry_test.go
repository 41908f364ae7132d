package session

import (
	"testing"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *Registry
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = NewRegistry()
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) TestLoginAuthenticatesUser() {
	alice := domain.NewUser("Alice")

	s.registry.Login(alice)

	s.True(alice.IsAuthenticated())
}

func (s *RegistryTestSuite) TestUsersAreIndependentlyRetrievable() {
	alice := domain.NewUser("Alice")
	alex := domain.NewUser("Alex")

	s.registry.Login(alice)
	s.registry.Login(alex)

	got, ok := s.registry.User("Alice")
	s.Require().True(ok)
	s.Same(alice, got)

	got, ok = s.registry.User("Alex")
	s.Require().True(ok)
	s.Same(alex, got)
}

func (s *RegistryTestSuite) TestReLoginOverwritesOnlyThatEntry() {
	alice := domain.NewUser("Alice")
	alex := domain.NewUser("Alex")
	s.registry.Login(alice)
	s.registry.Login(alex)

	newAlice := domain.NewUser("Alice")
	s.registry.Login(newAlice)

	got, ok := s.registry.User("Alice")
	s.Require().True(ok)
	s.Same(newAlice, got)
	s.NotSame(alice, got)

	got, ok = s.registry.User("Alex")
	s.Require().True(ok)
	s.Same(alex, got)

	s.Len(s.registry.Users(), 2)
}

func (s *RegistryTestSuite) TestUnknownUser() {
	got, ok := s.registry.User("Nobody")

	s.False(ok)
	s.Nil(got)
}

func (s *RegistryTestSuite) TestLogout() {
	alice := domain.NewUser("Alice")
	s.registry.Login(alice)

	s.True(s.registry.Logout("Alice"))
	s.False(alice.IsAuthenticated())

	_, ok := s.registry.User("Alice")
	s.False(ok)

	s.False(s.registry.Logout("Alice"))
}

func (s *RegistryTestSuite) TestUsersSortedByName() {
	s.registry.Login(domain.NewUser("Charlie"))
	s.registry.Login(domain.NewUser("Alice"))
	s.registry.Login(domain.NewUser("Bob"))

	var names []string
	for _, u := range s.registry.Users() {
		names = append(names, u.Name)
	}

	s.Equal([]string{"Alice", "Bob", "Charlie"}, names)
}

func TestDefaultReturnsSameInstance(t *testing.T) {
	first := Default()
	second := Default()

	require.NotNil(t, first)
	assert.Same(t, first, second)
}
