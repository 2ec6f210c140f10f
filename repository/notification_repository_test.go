package repository

import (
	"assettracker/models"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateNotification(t *testing.T) {
	n := models.Notification{
		Message:              "You have been assigned MacBook Pro",
		RecipientClerkUserID: "user_1",
		RecipientUserID:      uuid.New(),
		AssetID:              uuid.New(),
		Type:                 models.NotificationTypeAssetAssignment,
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO notifications`).
			WithArgs(n.Message, n.RecipientClerkUserID, n.RecipientUserID, n.AssetID, n.Type).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewNotificationRepository(db).CreateNotification(context.Background(), n))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO notifications`).WillReturnError(errors.New("db error"))

		err := NewNotificationRepository(db).CreateNotification(context.Background(), n)
		assert.ErrorContains(t, err, "failed to insert notification")
	})
}
