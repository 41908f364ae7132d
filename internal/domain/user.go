package domain

// User is a moviegoer known by name. A User exists on its own and may or may
// not be registered in a session registry.
type User struct {
	Name  string
	Email string

	authenticated bool
	history       []Booking
}

func NewUser(name string) *User {
	return &User{Name: name}
}

func (u *User) IsAuthenticated() bool {
	return u.authenticated
}

func (u *User) Authenticate() {
	u.authenticated = true
}

func (u *User) Logout() {
	u.authenticated = false
}

// AddBooking appends to the history. Entries are never removed or reordered.
func (u *User) AddBooking(b Booking) {
	u.history = append(u.history, b)
}

// BookingHistory returns a copy of the user's bookings, oldest first.
func (u *User) BookingHistory() []Booking {
	history := make([]Booking, len(u.history))
	copy(history, u.history)
	return history
}

// LastBooking returns the most recent booking, if any.
func (u *User) LastBooking() (Booking, bool) {
	if len(u.history) == 0 {
		return Booking{}, false
	}

	return u.history[len(u.history)-1], true
}
