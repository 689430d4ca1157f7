package entity

import "time"

// Plan is the subscription state of a user.
type Plan string

const (
	PlanTrial   Plan = "trial"
	PlanPaid    Plan = "paid"
	PlanExpired Plan = "expired"
)

// PlanPeriod is the length of one paid plan extension.
const PlanPeriod = 365 * 24 * time.Hour

// String returns the string representation of the Plan.
func (p Plan) String() string {
	return string(p)
}

// IsValid checks if the Plan is a valid value.
func (p Plan) IsValid() bool {
	switch p {
	case PlanTrial, PlanPaid, PlanExpired:
		return true
	default:
		return false
	}
}

// ExtendPlan applies one paid period to the user at now. A plan that is still
// paid and unexpired is extended from its current end date; anything else
// starts a fresh period from now. The account is re-activated either way.
func ExtendPlan(u *User, now time.Time) time.Time {
	base := now
	if u.PlanActiveAt(now) {
		base = *u.PlanExpiresAt
	}

	expires := base.Add(PlanPeriod)
	u.Plan = PlanPaid
	u.PlanExpiresAt = &expires
	u.IsActive = true

	return expires
}
