package domain

import "time"

// MembershipTier decides how long a character may stay AFK in one session
type MembershipTier string

const (
	MembershipFree    MembershipTier = "free"
	MembershipPremium MembershipTier = "premium"
)

// Valid reports whether the tier is one of the known tiers
func (m MembershipTier) Valid() bool {
	return m == MembershipFree || m == MembershipPremium
}

// User represents a registered account
type User struct {
	ID           int            `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Membership   MembershipTier `json:"membership_type"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
