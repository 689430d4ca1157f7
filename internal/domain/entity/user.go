// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that may own a single Card.
type User struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email         string     // The user's login email.
	Name          string     // The user's display name.
	PasswordHash  string     // bcrypt hash, never serialized.
	Role          Role       // Either RoleUser or RoleAdmin.
	Plan          Plan       // Current plan state.
	TrialEndsAt   *time.Time // End of the trial period, if the user is on trial.
	PlanExpiresAt *time.Time // End of the paid period, if the user ever paid.
	IsActive      bool       // Disabled accounts cannot use the authenticated API.
	LicenseKey    string     // Opaque license key shown to the user.
	CreatedAt     time.Time  // Timestamp of when this user account was created.
	UpdatedAt     time.Time  // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PlanActiveAt reports whether the user is on a paid plan that has not expired at t.
func (u *User) PlanActiveAt(t time.Time) bool {
	return u.Plan == PlanPaid && u.PlanExpiresAt != nil && u.PlanExpiresAt.After(t)
}

// EffectivePlanAt resolves the plan the user is actually on at t,
// degrading trial and paid plans whose end date has passed.
func (u *User) EffectivePlanAt(t time.Time) Plan {
	switch u.Plan {
	case PlanTrial:
		if u.TrialEndsAt != nil && !u.TrialEndsAt.After(t) {
			return PlanExpired
		}
	case PlanPaid:
		if !u.PlanActiveAt(t) {
			return PlanExpired
		}
	}

	return u.Plan
}
