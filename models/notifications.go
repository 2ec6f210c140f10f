package models

import (
	"time"

	"github.com/google/uuid"
)

const NotificationTypeAssetAssignment = "asset_assignment"

type Notification struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	Message              string    `db:"message" json:"message"`
	RecipientClerkUserID string    `db:"recipient_clerk_user_id" json:"recipientClerkUserId"`
	RecipientUserID      uuid.UUID `db:"recipient_user_id" json:"recipientUserId"`
	AssetID              uuid.UUID `db:"asset_id" json:"assetId"`
	Type                 string    `db:"type" json:"type"`
	IsRead               bool      `db:"is_read" json:"isRead"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
}
