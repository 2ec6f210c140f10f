package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the local mirror of an identity provider user.
type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ClerkUserID string    `db:"clerk_user_id" json:"clerkUserId"`
	Email       string    `db:"email" json:"email"`
	FirstName   *string   `db:"first_name" json:"firstName"`
	LastName    *string   `db:"last_name" json:"lastName"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// UserPatch carries only the fields an update supplied; nil means unchanged.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	ImageURL  *string
}

// IdentityUser is a user profile as returned by the identity provider.
type IdentityUser struct {
	ID           string
	PrimaryEmail string
	Emails       []string
	FirstName    *string
	LastName     *string
	ImageURL     *string
}

// MirrorEmail picks the address stored on the local mirror.
func (u IdentityUser) MirrorEmail() string {
	if u.PrimaryEmail != "" {
		return u.PrimaryEmail
	}
	if len(u.Emails) > 0 {
		return u.Emails[0]
	}
	return ""
}

// OrganizationMember is one membership of an organization in the identity provider.
type OrganizationMember struct {
	UserID    string  `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     string  `json:"email"`
	ImageURL  *string `json:"imageUrl"`
	Role      string  `json:"role"`
}
