package state

import "github.com/five82/pigcat/internal/site"

// DefaultAdminPassword unlocks the dashboard when none is configured.
const DefaultAdminPassword = "1234"

// AdminGate holds the session's admin capability. It is never persisted.
//
// The comparison is a plain string match with no lockout. There is nothing
// behind the gate that the local user could not edit directly.
type AdminGate struct {
	password string
	admin    bool
}

// NewAdminGate returns a gate for password, or the default when blank.
func NewAdminGate(password string) *AdminGate {
	if password == "" {
		password = DefaultAdminPassword
	}
	return &AdminGate{password: password}
}

// Login grants the capability when input matches.
func (g *AdminGate) Login(input string) error {
	if input != g.password {
		return site.ErrWrongPassword
	}
	g.admin = true
	return nil
}

// Logout drops the capability.
func (g *AdminGate) Logout() { g.admin = false }

// IsAdmin reports whether the session is unlocked.
func (g *AdminGate) IsAdmin() bool { return g.admin }

// Require returns ErrNotAdmin unless the session is unlocked.
func (g *AdminGate) Require() error {
	if !g.admin {
		return site.ErrNotAdmin
	}
	return nil
}
