package models

import "time"

// ReportFilter limits report rows to one organization. Nil fields are not applied.
type ReportFilter struct {
	OrganizationID string
	DateFrom       *time.Time
	DateTo         *time.Time
	Status         *string
}
