package repository

import (
	"assettracker/models"
	"context"

	"github.com/jmoiron/sqlx"
)

type OrganizationRepository interface {
	GetOrganizationByClerkID(ctx context.Context, clerkOrgID string) (models.Organization, error)
	UpsertOrganization(ctx context.Context, org models.Organization) error
	UpdateOrganization(ctx context.Context, org models.Organization) (bool, error)
	DeleteOrganization(ctx context.Context, tx *sqlx.Tx, clerkOrgID string) (bool, error)
}

type PostgresOrganizationRepository struct {
	DB *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) OrganizationRepository {
	return &PostgresOrganizationRepository{DB: db}
}

func (r *PostgresOrganizationRepository) GetOrganizationByClerkID(ctx context.Context, clerkOrgID string) (models.Organization, error) {
	var org models.Organization
	err := r.DB.GetContext(ctx, &org, `
		SELECT id, clerk_org_id, name, slug, image_url, created_at, updated_at
		FROM organizations
		WHERE clerk_org_id = $1`, clerkOrgID)
	if err != nil {
		return models.Organization{}, translate(err, "failed to fetch organization "+clerkOrgID)
	}
	return org, nil
}

func (r *PostgresOrganizationRepository) UpsertOrganization(ctx context.Context, org models.Organization) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO organizations (clerk_org_id, name, slug, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (clerk_org_id) DO UPDATE
		SET name = EXCLUDED.name, slug = EXCLUDED.slug, image_url = EXCLUDED.image_url, updated_at = now()`,
		org.ClerkOrgID, org.Name, org.Slug, org.ImageURL)
	return translate(err, "failed to upsert organization "+org.ClerkOrgID)
}

func (r *PostgresOrganizationRepository) UpdateOrganization(ctx context.Context, org models.Organization) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE organizations
		SET name = $2, slug = $3, image_url = $4, updated_at = now()
		WHERE clerk_org_id = $1`,
		org.ClerkOrgID, org.Name, org.Slug, org.ImageURL)
	if err != nil {
		return false, translate(err, "failed to update organization "+org.ClerkOrgID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "failed to read affected rows")
	}
	return n > 0, nil
}

func (r *PostgresOrganizationRepository) DeleteOrganization(ctx context.Context, tx *sqlx.Tx, clerkOrgID string) (bool, error) {
	res, err := tx.ExecContext(ctx, `DELETE FROM organizations WHERE clerk_org_id = $1`, clerkOrgID)
	if err != nil {
		return false, translate(err, "failed to delete organization "+clerkOrgID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "failed to read affected rows")
	}
	return n > 0, nil
}
