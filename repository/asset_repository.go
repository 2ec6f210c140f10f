package repository

import (
	"assettracker/models"
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type AssetRepository interface {
	CreateAsset(ctx context.Context, rec models.AssetRecord) (uuid.UUID, error)
	GetAssetByID(ctx context.Context, assetID uuid.UUID, orgID string) (models.AssetDetails, error)
	ListAssets(ctx context.Context, scope models.AssetScope) ([]models.AssetDetails, error)
	UpdateAsset(ctx context.Context, assetID uuid.UUID, rec models.AssetRecord) error
	DeleteAsset(ctx context.Context, assetID uuid.UUID, orgID string) error
	ArchiveOrganizationAssets(ctx context.Context, tx *sqlx.Tx, orgID string) (int64, error)
	GetAssetStats(ctx context.Context, scope models.AssetScope) (models.AssetStats, error)
	ListReportAssets(ctx context.Context, filter models.ReportFilter, assignedOnly bool) ([]models.AssetDetails, error)
	CountAssetsByStatus(ctx context.Context, filter models.ReportFilter) ([]models.CountBucket, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

const assetSelect = `
	SELECT a.id, a.title, a.model, a.serial_number, a.image_url, a.description, a.status,
		a.latitude, a.longitude, a.clerk_organization_id, a.assigned_to_user_id,
		a.created_at, a.updated_at,
		u.clerk_user_id AS assignee_clerk_user_id, u.email AS assignee_email,
		u.first_name AS assignee_first_name, u.last_name AS assignee_last_name,
		u.image_url AS assignee_image_url
	FROM assets a
	LEFT JOIN users u ON u.id = a.assigned_to_user_id`

type assetRow struct {
	models.Asset
	AssigneeClerkUserID *string `db:"assignee_clerk_user_id"`
	AssigneeEmail       *string `db:"assignee_email"`
	AssigneeFirstName   *string `db:"assignee_first_name"`
	AssigneeLastName    *string `db:"assignee_last_name"`
	AssigneeImageURL    *string `db:"assignee_image_url"`
}

func (r assetRow) details() models.AssetDetails {
	d := models.AssetDetails{Asset: r.Asset}
	if r.AssigneeClerkUserID != nil {
		d.AssignedToClerkUserID = r.AssigneeClerkUserID
		d.AssignedTo = &models.AssigneeSummary{
			ClerkUserID: *r.AssigneeClerkUserID,
			FirstName:   r.AssigneeFirstName,
			LastName:    r.AssigneeLastName,
			ImageURL:    r.AssigneeImageURL,
		}
		if r.AssigneeEmail != nil {
			d.AssignedTo.Email = *r.AssigneeEmail
		}
	}
	return d
}

func toDetails(rows []assetRow) []models.AssetDetails {
	out := make([]models.AssetDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.details())
	}
	return out
}

func (r *PostgresAssetRepository) CreateAsset(ctx context.Context, rec models.AssetRecord) (uuid.UUID, error) {
	var assetID uuid.UUID
	err := r.DB.GetContext(ctx, &assetID, `
		INSERT INTO assets (
			title, model, serial_number, image_url, description, status,
			latitude, longitude, clerk_organization_id, assigned_to_user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		rec.Title, rec.Model, rec.SerialNumber, rec.ImageURL, rec.Description, rec.Status,
		rec.Latitude, rec.Longitude, rec.ClerkOrganizationID, rec.AssignedToUserID)
	if err != nil {
		return uuid.Nil, translate(err, "failed to insert asset")
	}
	return assetID, nil
}

func (r *PostgresAssetRepository) GetAssetByID(ctx context.Context, assetID uuid.UUID, orgID string) (models.AssetDetails, error) {
	var row assetRow
	err := r.DB.GetContext(ctx, &row, assetSelect+`
	WHERE a.id = $1 AND a.clerk_organization_id = $2`, assetID, orgID)
	if err != nil {
		return models.AssetDetails{}, translate(err, "failed to fetch asset")
	}
	return row.details(), nil
}

func (r *PostgresAssetRepository) ListAssets(ctx context.Context, scope models.AssetScope) ([]models.AssetDetails, error) {
	var rows []assetRow
	err := r.DB.SelectContext(ctx, &rows, assetSelect+`
	WHERE a.clerk_organization_id = $1
	AND ($2::text IS NULL OR u.clerk_user_id = $2)
	ORDER BY a.created_at DESC`, scope.OrganizationID, scope.AssigneeClerkUserID)
	if err != nil {
		return nil, translate(err, "failed to list assets")
	}
	return toDetails(rows), nil
}

func (r *PostgresAssetRepository) UpdateAsset(ctx context.Context, assetID uuid.UUID, rec models.AssetRecord) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE assets
		SET title = $1, model = $2, serial_number = $3, image_url = $4, description = $5,
			status = $6, latitude = $7, longitude = $8, assigned_to_user_id = $9,
			updated_at = now()
		WHERE id = $10 AND clerk_organization_id = $11`,
		rec.Title, rec.Model, rec.SerialNumber, rec.ImageURL, rec.Description,
		rec.Status, rec.Latitude, rec.Longitude, rec.AssignedToUserID,
		assetID, rec.ClerkOrganizationID)
	if err != nil {
		return translate(err, "failed to update asset")
	}
	return expectAffected(res, "asset not found for update")
}

func (r *PostgresAssetRepository) DeleteAsset(ctx context.Context, assetID uuid.UUID, orgID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM assets WHERE id = $1 AND clerk_organization_id = $2`, assetID, orgID)
	if err != nil {
		return translate(err, "failed to delete asset")
	}
	return expectAffected(res, "asset not found for delete")
}

// ArchiveOrganizationAssets detaches every asset of a deleted organization.
func (r *PostgresAssetRepository) ArchiveOrganizationAssets(ctx context.Context, tx *sqlx.Tx, orgID string) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		UPDATE assets
		SET clerk_organization_id = NULL, assigned_to_user_id = NULL, status = $2, updated_at = now()
		WHERE clerk_organization_id = $1`, orgID, models.AssetStatusArchived)
	if err != nil {
		return 0, translate(err, "failed to archive organization assets")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read archived asset count")
	}
	return n, nil
}

func (r *PostgresAssetRepository) GetAssetStats(ctx context.Context, scope models.AssetScope) (models.AssetStats, error) {
	const scoped = `
	FROM assets a
	LEFT JOIN users u ON u.id = a.assigned_to_user_id
	WHERE a.clerk_organization_id = $1
	AND ($2::text IS NULL OR u.clerk_user_id = $2)`

	var stats models.AssetStats
	var totals struct {
		Total    int `db:"total"`
		Assigned int `db:"assigned"`
	}
	if err := r.DB.GetContext(ctx, &totals, `SELECT COUNT(*) AS total, COUNT(a.assigned_to_user_id) AS assigned`+scoped,
		scope.OrganizationID, scope.AssigneeClerkUserID); err != nil {
		return stats, translate(err, "failed to count assets")
	}
	stats.Total = totals.Total
	stats.Assigned = totals.Assigned
	stats.Unassigned = totals.Total - totals.Assigned

	if err := r.DB.SelectContext(ctx, &stats.ByStatus, `SELECT a.status AS key, COUNT(*) AS count`+scoped+`
	GROUP BY a.status ORDER BY count DESC, key`, scope.OrganizationID, scope.AssigneeClerkUserID); err != nil {
		return stats, translate(err, "failed to group assets by status")
	}
	if err := r.DB.SelectContext(ctx, &stats.ByModel, `SELECT a.model AS key, COUNT(*) AS count`+scoped+`
	GROUP BY a.model ORDER BY count DESC, key`, scope.OrganizationID, scope.AssigneeClerkUserID); err != nil {
		return stats, translate(err, "failed to group assets by model")
	}
	return stats, nil
}

const reportFilter = `
	WHERE a.clerk_organization_id = $1
	AND ($2::timestamptz IS NULL OR a.created_at >= $2)
	AND ($3::timestamptz IS NULL OR a.created_at <= $3)
	AND ($4::text IS NULL OR a.status = $4)`

func (r *PostgresAssetRepository) ListReportAssets(ctx context.Context, filter models.ReportFilter, assignedOnly bool) ([]models.AssetDetails, error) {
	query := assetSelect + reportFilter + `
	ORDER BY a.title`
	if assignedOnly {
		query = assetSelect + reportFilter + `
	AND a.assigned_to_user_id IS NOT NULL
	ORDER BY u.first_name NULLS LAST, a.title`
	}

	var rows []assetRow
	if err := r.DB.SelectContext(ctx, &rows, query, filter.OrganizationID, filter.DateFrom, filter.DateTo, filter.Status); err != nil {
		return nil, translate(err, "failed to load report assets")
	}
	return toDetails(rows), nil
}

func (r *PostgresAssetRepository) CountAssetsByStatus(ctx context.Context, filter models.ReportFilter) ([]models.CountBucket, error) {
	var buckets []models.CountBucket
	err := r.DB.SelectContext(ctx, &buckets, `SELECT a.status AS key, COUNT(*) AS count
	FROM assets a`+reportFilter+`
	GROUP BY a.status
	ORDER BY a.status`, filter.OrganizationID, filter.DateFrom, filter.DateTo, filter.Status)
	if err != nil {
		return nil, translate(err, "failed to summarize asset status")
	}
	return buckets, nil
}
