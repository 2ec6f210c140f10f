package repository

import (
	"assettracker/models"
	"context"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	GetUserByClerkID(ctx context.Context, clerkUserID string) (models.User, error)
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, clerkUserID string, patch models.UserPatch) (bool, error)
	DeleteUserByClerkID(ctx context.Context, clerkUserID string) (bool, error)
}

type PostgresUserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

const userColumns = `id, clerk_user_id, email, first_name, last_name, image_url, created_at, updated_at`

func (r *PostgresUserRepository) GetUserByClerkID(ctx context.Context, clerkUserID string) (models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE clerk_user_id = $1`, clerkUserID)
	if err != nil {
		return models.User{}, translate(err, "failed to fetch user "+clerkUserID)
	}
	return user, nil
}

// UpsertUser inserts the mirror or refreshes the profile of an existing one.
func (r *PostgresUserRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	var saved models.User
	err := r.DB.GetContext(ctx, &saved, `
		INSERT INTO users (clerk_user_id, email, first_name, last_name, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (clerk_user_id) DO UPDATE
		SET email = EXCLUDED.email, first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name, image_url = EXCLUDED.image_url, updated_at = now()
		RETURNING `+userColumns,
		user.ClerkUserID, user.Email, user.FirstName, user.LastName, user.ImageURL)
	if err != nil {
		return models.User{}, translate(err, "failed to upsert user "+user.ClerkUserID)
	}
	return saved, nil
}

// UpdateUser overwrites only the supplied fields and reports whether the mirror exists.
func (r *PostgresUserRepository) UpdateUser(ctx context.Context, clerkUserID string, patch models.UserPatch) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET email = COALESCE($2, email), first_name = COALESCE($3, first_name),
			last_name = COALESCE($4, last_name), image_url = COALESCE($5, image_url),
			updated_at = now()
		WHERE clerk_user_id = $1`,
		clerkUserID, patch.Email, patch.FirstName, patch.LastName, patch.ImageURL)
	if err != nil {
		return false, translate(err, "failed to update user "+clerkUserID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "failed to read affected rows")
	}
	return n > 0, nil
}

// DeleteUserByClerkID reports false when there was nothing to delete.
func (r *PostgresUserRepository) DeleteUserByClerkID(ctx context.Context, clerkUserID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE clerk_user_id = $1`, clerkUserID)
	if err != nil {
		return false, translate(err, "failed to delete user "+clerkUserID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "failed to read affected rows")
	}
	return n > 0, nil
}
