package models

import jsoniter "github.com/json-iterator/go"

const (
	EventUserCreated         = "user.created"
	EventUserUpdated         = "user.updated"
	EventUserDeleted         = "user.deleted"
	EventOrganizationCreated = "organization.created"
	EventOrganizationUpdated = "organization.updated"
	EventOrganizationDeleted = "organization.deleted"
)

// WebhookEvent is a verified identity provider event. Data is decoded per type.
type WebhookEvent struct {
	Type   string              `json:"type"`
	Object string              `json:"object"`
	Data   jsoniter.RawMessage `json:"data"`
}

type WebhookEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type WebhookUserData struct {
	ID                    string                `json:"id"`
	EmailAddresses        []WebhookEmailAddress `json:"email_addresses"`
	PrimaryEmailAddressID *string               `json:"primary_email_address_id"`
	FirstName             *string               `json:"first_name"`
	LastName              *string               `json:"last_name"`
	ImageURL              *string               `json:"image_url"`
	Deleted               bool                  `json:"deleted"`
}

// PrimaryEmail returns the primary address, falling back to the first one.
func (d WebhookUserData) PrimaryEmail() string {
	if d.PrimaryEmailAddressID != nil {
		for _, e := range d.EmailAddresses {
			if e.ID == *d.PrimaryEmailAddressID {
				return e.EmailAddress
			}
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}

type WebhookOrganizationData struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     *string `json:"slug"`
	ImageURL *string `json:"image_url"`
	Deleted  bool    `json:"deleted"`
}
