package domain

// Role identifies the acting party of an operation. The developer owns the
// calendar; the two HR roles book against it.
type Role string

const (
	RoleDeveloper Role = "DEV"
	RoleHR1       Role = "HR1"
	RoleHR2       Role = "HR2"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleDeveloper || r == RoleHR1 || r == RoleHR2
}

// IsHR reports whether r is a requester role.
func (r Role) IsHR() bool {
	return r == RoleHR1 || r == RoleHR2
}

// IsDeveloper reports whether r is the calendar owner.
func (r Role) IsDeveloper() bool {
	return r == RoleDeveloper
}
