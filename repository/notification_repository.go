package repository

import (
	"assettracker/models"
	"context"

	"github.com/jmoiron/sqlx"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n models.Notification) error
}

type PostgresNotificationRepository struct {
	DB *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &PostgresNotificationRepository{DB: db}
}

func (r *PostgresNotificationRepository) CreateNotification(ctx context.Context, n models.Notification) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO notifications (message, recipient_clerk_user_id, recipient_user_id, asset_id, type)
		VALUES ($1, $2, $3, $4, $5)`,
		n.Message, n.RecipientClerkUserID, n.RecipientUserID, n.AssetID, n.Type)
	return translate(err, "failed to insert notification")
}
