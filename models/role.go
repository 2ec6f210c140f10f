package models

type Role string

const (
	OrgAdminRole  Role = "org:admin"
	AdminRole     Role = "admin"
	OrgMemberRole Role = "org:member"
)

// IsAdminRole reports whether an organization role grants asset management.
func IsAdminRole(role string) bool {
	return Role(role) == OrgAdminRole || Role(role) == AdminRole
}
