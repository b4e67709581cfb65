package domain

import "time"

// Role of a profile within the studio.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// IsStaff reports whether the role carries administrative rights.
func (r Role) IsStaff() bool {
	return r == RoleAdmin
}

// Profile is a studio member. Credits is the prepaid class balance;
// it is debited on booking creation and refunded on eligible
// cancellation, and must never go negative.
type Profile struct {
	ID        string
	Email     string
	FullName  *string
	Phone     *string
	Role      Role
	Credits   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCredits reports whether the profile can afford n bookings.
func (p *Profile) HasCredits(n int) bool {
	return p.Credits >= n
}
