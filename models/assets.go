package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssetStatusActive      = "Active"
	AssetStatusInactive    = "Inactive"
	AssetStatusMaintenance = "Maintenance"
	AssetStatusArchived    = "Archived"
	AssetStatusRetired     = "Retired"
)

type Asset struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	Title               string     `db:"title" json:"title"`
	Model               string     `db:"model" json:"model"`
	SerialNumber        string     `db:"serial_number" json:"serialNumber"`
	ImageURL            *string    `db:"image_url" json:"imageUrl"`
	Description         string     `db:"description" json:"description"`
	Status              string     `db:"status" json:"status"`
	Latitude            *float64   `db:"latitude" json:"latitude"`
	Longitude           *float64   `db:"longitude" json:"longitude"`
	ClerkOrganizationID *string    `db:"clerk_organization_id" json:"clerkOrganizationId"`
	AssignedToUserID    *uuid.UUID `db:"assigned_to_user_id" json:"assignedToDbUserId"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
}

// AssigneeSummary is the assignee projection joined from the local user mirror.
type AssigneeSummary struct {
	ClerkUserID string  `json:"clerkUserId"`
	Email       string  `json:"email"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	ImageURL    *string `json:"imageUrl"`
}

// AssetDetails is the API shape of an asset. AssignedToClerkUserID and
// AssignedToUserID always come from the same foreign key.
type AssetDetails struct {
	Asset
	AssignedToClerkUserID *string          `json:"assignedToClerkUserId"`
	AssignedTo            *AssigneeSummary `json:"assignedTo"`
}

// AssetRecord is the column set written by create and update.
type AssetRecord struct {
	Title               string
	Model               string
	SerialNumber        string
	ImageURL            *string
	Description         string
	Status              string
	Latitude            *float64
	Longitude           *float64
	ClerkOrganizationID string
	AssignedToUserID    *uuid.UUID
}

func (a AssetDetails) Record() AssetRecord {
	org := ""
	if a.ClerkOrganizationID != nil {
		org = *a.ClerkOrganizationID
	}
	return AssetRecord{
		Title:               a.Title,
		Model:               a.Model,
		SerialNumber:        a.SerialNumber,
		ImageURL:            a.ImageURL,
		Description:         a.Description,
		Status:              a.Status,
		Latitude:            a.Latitude,
		Longitude:           a.Longitude,
		ClerkOrganizationID: org,
		AssignedToUserID:    a.AssignedToUserID,
	}
}

// AssetScope narrows asset reads to an organization and, for non-admins, to one assignee.
type AssetScope struct {
	OrganizationID      string
	AssigneeClerkUserID *string
}

type CountBucket struct {
	Key   string `db:"key" json:"key"`
	Count int    `db:"count" json:"count"`
}

type AssetStats struct {
	Total      int           `json:"total"`
	Assigned   int           `json:"assigned"`
	Unassigned int           `json:"unassigned"`
	ByStatus   []CountBucket `json:"byStatus"`
	ByModel    []CountBucket `json:"byModel"`
}
