package repository

import (
	"assettracker/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{"id", "clerk_user_id", "email", "first_name", "last_name", "image_url", "created_at", "updated_at"}

func TestGetUserByClerkID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.MustParse("5f62831e-44c5-46c4-bede-0d5e3253cc16")
	now := time.Now()

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, clerk_user_id, email, first_name, last_name, image_url, created_at, updated_at FROM users WHERE clerk_user_id = \$1$`).
					WithArgs("user_1").
					WillReturnRows(sqlmock.NewRows(userColumnNames).AddRow(userID.String(), "user_1", "ada@example.com", "Ada", nil, nil, now, now))
			},
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE clerk_user_id`).
					WithArgs("user_1").
					WillReturnRows(sqlmock.NewRows(userColumnNames))
			},
			expectedErr: models.ErrNotFound,
		},
		{
			name: "query error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users WHERE clerk_user_id`).
					WithArgs("user_1").
					WillReturnError(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mockSetup(mock)

			user, err := NewUserRepository(db).GetUserByClerkID(ctx, "user_1")
			if tc.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, userID, user.ID)
				require.NotNil(t, user.FirstName)
				assert.Equal(t, "Ada", *user.FirstName)
				assert.Nil(t, user.LastName)
			} else if errors.Is(tc.expectedErr, models.ErrNotFound) {
				assert.ErrorIs(t, err, models.ErrNotFound)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpsertUser(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	now := time.Now()
	first := "Ada"

	mock.ExpectQuery(`ON CONFLICT \(clerk_user_id\) DO UPDATE`).
		WithArgs("user_1", "ada@example.com", &first, nil, nil).
		WillReturnRows(sqlmock.NewRows(userColumnNames).AddRow(userID.String(), "user_1", "ada@example.com", "Ada", nil, nil, now, now))

	saved, err := NewUserRepository(db).UpsertUser(context.Background(), models.User{
		ClerkUserID: "user_1",
		Email:       "ada@example.com",
		FirstName:   &first,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	email := "new@example.com"

	tests := []struct {
		name          string
		affected      int64
		expectedFound bool
	}{
		{name: "existing mirror", affected: 1, expectedFound: true},
		{name: "missing mirror", affected: 0, expectedFound: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(`UPDATE users`).
				WithArgs("user_1", &email, nil, nil, nil).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			found, err := NewUserRepository(db).UpdateUser(context.Background(), "user_1", models.UserPatch{Email: &email})
			require.NoError(t, err)
			assert.Equal(t, tc.expectedFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteUserByClerkID(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM users WHERE clerk_user_id = \$1`).
			WithArgs("user_1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := NewUserRepository(db).DeleteUserByClerkID(context.Background(), "user_1")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("already gone", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs("user_1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := NewUserRepository(db).DeleteUserByClerkID(context.Background(), "user_1")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
