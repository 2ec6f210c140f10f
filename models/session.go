package models

// Session is the caller identity carried by a verified session token.
// Empty fields mean the claim was absent.
type Session struct {
	UserID  string
	OrgID   string
	OrgRole string
}

func (s Session) IsAdmin() bool {
	return IsAdminRole(s.OrgRole)
}

// RequireOrganization checks that the caller is signed in with an active organization.
func (s Session) RequireOrganization() error {
	if s.UserID == "" {
		return ErrUnauthenticated
	}
	if s.OrgID == "" {
		return ErrNoActiveOrganization
	}
	return nil
}
