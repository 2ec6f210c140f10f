package repository

import (
	"assettracker/models"
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assetColumns = []string{
	"id", "title", "model", "serial_number", "image_url", "description", "status",
	"latitude", "longitude", "clerk_organization_id", "assigned_to_user_id",
	"created_at", "updated_at",
	"assignee_clerk_user_id", "assignee_email", "assignee_first_name", "assignee_last_name", "assignee_image_url",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func assetRowValues(id uuid.UUID, serial string, assigneeID *uuid.UUID, assigneeClerkID string) []driver.Value {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	values := []driver.Value{
		id.String(), "MacBook Pro", "A2141", serial, nil, "engineering laptop", models.AssetStatusActive,
		nil, nil, "org_1", nil, now, now,
		nil, nil, nil, nil, nil,
	}
	if assigneeID != nil {
		values[10] = assigneeID.String()
		values[13] = assigneeClerkID
		values[14] = "ada@example.com"
		values[15] = "Ada"
		values[16] = "Lovelace"
	}
	return values
}

func TestCreateAsset(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	rec := models.AssetRecord{
		Title:               "MacBook Pro",
		Model:               "A2141",
		SerialNumber:        "SN-1",
		Description:         "engineering laptop",
		Status:              models.AssetStatusActive,
		ClerkOrganizationID: "org_1",
	}

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO assets`).
					WithArgs(rec.Title, rec.Model, rec.SerialNumber, nil, rec.Description, rec.Status, nil, nil, "org_1", nil).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assetID.String()))
			},
		},
		{
			name: "duplicate serial number",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO assets`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "assets_serial_number_key"})
			},
			expectedErr: models.ErrDuplicateSerialNumber,
		},
		{
			name: "other unique violation is not a serial conflict",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO assets`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "assets_pkey"})
			},
			expectedErr: errors.New("failed to insert asset"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mockSetup(mock)

			repo := NewAssetRepository(db)
			id, err := repo.CreateAsset(ctx, rec)

			switch {
			case tc.expectedErr == nil:
				require.NoError(t, err)
				assert.Equal(t, assetID, id)
			case errors.Is(tc.expectedErr, models.ErrDuplicateSerialNumber):
				assert.ErrorIs(t, err, models.ErrDuplicateSerialNumber)
			default:
				require.Error(t, err)
				assert.NotErrorIs(t, err, models.ErrDuplicateSerialNumber)
				assert.Contains(t, err.Error(), tc.expectedErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAssetByID(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	userID := uuid.New()

	t.Run("projects assignee from the join", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.id = $1 AND a.clerk_organization_id = $2`)).
			WithArgs(assetID, "org_1").
			WillReturnRows(sqlmock.NewRows(assetColumns).AddRow(assetRowValues(assetID, "SN-1", &userID, "user_1")...))

		asset, err := NewAssetRepository(db).GetAssetByID(ctx, assetID, "org_1")
		require.NoError(t, err)
		require.NotNil(t, asset.AssignedToUserID)
		require.NotNil(t, asset.AssignedToClerkUserID)
		assert.Equal(t, userID, *asset.AssignedToUserID)
		assert.Equal(t, "user_1", *asset.AssignedToClerkUserID)
		require.NotNil(t, asset.AssignedTo)
		assert.Equal(t, "ada@example.com", asset.AssignedTo.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unassigned asset has no projection", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT a.id`).
			WithArgs(assetID, "org_1").
			WillReturnRows(sqlmock.NewRows(assetColumns).AddRow(assetRowValues(assetID, "SN-1", nil, "")...))

		asset, err := NewAssetRepository(db).GetAssetByID(ctx, assetID, "org_1")
		require.NoError(t, err)
		assert.Nil(t, asset.AssignedToUserID)
		assert.Nil(t, asset.AssignedToClerkUserID)
		assert.Nil(t, asset.AssignedTo)
	})

	t.Run("missing or other organization", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT a.id`).
			WithArgs(assetID, "org_2").
			WillReturnRows(sqlmock.NewRows(assetColumns))

		_, err := NewAssetRepository(db).GetAssetByID(ctx, assetID, "org_2")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestListAssets(t *testing.T) {
	ctx := context.Background()
	caller := "user_1"
	userID := uuid.New()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY a.created_at DESC`)).
		WithArgs("org_1", &caller).
		WillReturnRows(sqlmock.NewRows(assetColumns).
			AddRow(assetRowValues(uuid.New(), "SN-2", &userID, caller)...).
			AddRow(assetRowValues(uuid.New(), "SN-1", &userID, caller)...))

	assets, err := NewAssetRepository(db).ListAssets(ctx, models.AssetScope{OrganizationID: "org_1", AssigneeClerkUserID: &caller})
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "SN-2", assets[0].SerialNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAsset(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	rec := models.AssetRecord{Title: "t", Model: "m", SerialNumber: "SN-1", Description: "d", Status: models.AssetStatusActive, ClerkOrganizationID: "org_1"}

	t.Run("clears assignee", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE assets`).
			WithArgs("t", "m", "SN-1", nil, "d", models.AssetStatusActive, nil, nil, nil, assetID, "org_1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewAssetRepository(db).UpdateAsset(ctx, assetID, rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE assets`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewAssetRepository(db).UpdateAsset(ctx, assetID, rec)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("serial conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE assets`).WillReturnError(&pq.Error{Code: "23505", Constraint: "assets_serial_number_key"})

		err := NewAssetRepository(db).UpdateAsset(ctx, assetID, rec)
		assert.ErrorIs(t, err, models.ErrDuplicateSerialNumber)
	})
}

func TestArchiveOrganizationAssets(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SET clerk_organization_id = NULL, assigned_to_user_id = NULL, status = $2`)).
		WithArgs("org_1", models.AssetStatusArchived).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	n, err := NewAssetRepository(db).ArchiveOrganizationAssets(ctx, tx, "org_1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAssetStats(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total`).
		WithArgs("org_1", nil).
		WillReturnRows(sqlmock.NewRows([]string{"total", "assigned"}).AddRow(5, 2))
	mock.ExpectQuery(`SELECT a.status AS key`).
		WithArgs("org_1", nil).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).AddRow("Active", 4).AddRow("Retired", 1))
	mock.ExpectQuery(`SELECT a.model AS key`).
		WithArgs("org_1", nil).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).AddRow("A2141", 5))

	stats, err := NewAssetRepository(db).GetAssetStats(ctx, models.AssetScope{OrganizationID: "org_1"})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Assigned)
	assert.Equal(t, 3, stats.Unassigned)
	assert.Equal(t, []models.CountBucket{{Key: "Active", Count: 4}, {Key: "Retired", Count: 1}}, stats.ByStatus)
	assert.Len(t, stats.ByModel, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReportAssets(t *testing.T) {
	ctx := context.Background()
	retired := models.AssetStatusRetired
	filter := models.ReportFilter{OrganizationID: "org_1", Status: &retired}

	t.Run("assigned only orders by assignee", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`AND a.assigned_to_user_id IS NOT NULL`)).
			WithArgs("org_1", nil, nil, &retired).
			WillReturnRows(sqlmock.NewRows(assetColumns))

		assets, err := NewAssetRepository(db).ListReportAssets(ctx, filter, true)
		require.NoError(t, err)
		assert.Empty(t, assets)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all assets", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY a.title`)).
			WithArgs("org_1", nil, nil, &retired).
			WillReturnRows(sqlmock.NewRows(assetColumns).AddRow(assetRowValues(uuid.New(), "SN-1", nil, "")...))

		assets, err := NewAssetRepository(db).ListReportAssets(ctx, filter, false)
		require.NoError(t, err)
		assert.Len(t, assets, 1)
	})
}

func TestCountAssetsByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY a.status`)).
		WithArgs("org_1", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).AddRow("Active", 2))

	buckets, err := NewAssetRepository(db).CountAssetsByStatus(context.Background(), models.ReportFilter{OrganizationID: "org_1"})
	require.NoError(t, err)
	assert.Equal(t, []models.CountBucket{{Key: "Active", Count: 2}}, buckets)
}
