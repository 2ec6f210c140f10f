package models

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ClerkOrgID string    `db:"clerk_org_id" json:"clerkOrgId"`
	Name       string    `db:"name" json:"name"`
	Slug       *string   `db:"slug" json:"slug"`
	ImageURL   *string   `db:"image_url" json:"imageUrl"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
