package types

// Role is the access level attached to a user via the user_roles table.
type Role string

// Role values, lowest to highest privilege.
const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Plan type values for subscriptions.
const (
	PlanMonthly  = "monthly"
	PlanYearly   = "yearly"
	PlanLifetime = "lifetime"
)

// FreeTierResumeLimit is the number of stored resumes a non-premium user may
// keep. Premium removes the cap entirely.
const FreeTierResumeLimit = 1
