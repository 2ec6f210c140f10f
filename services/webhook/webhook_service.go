package webhookservice

import (
	"assettracker/models"
	"assettracker/providers"
	"assettracker/repository"
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_webhook_service.go -package=webhookservice assettracker/services/webhook WebhookService

// event families that are acknowledged without any processing
var loggedOnlyPrefixes = []string{
	"organizationMembership.",
	"organizationInvitation.",
	"organizationDomain.",
	"permission.",
	"role.",
	"email.created",
}

type WebhookService interface {
	HandleEvent(ctx context.Context, event models.WebhookEvent) error
}

type webhookService struct {
	db        *sqlx.DB
	userRepo  repository.UserRepository
	orgRepo   repository.OrganizationRepository
	assetRepo repository.AssetRepository
	logger    providers.ZapLoggerProvider
}

func NewWebhookService(
	db *sqlx.DB,
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	assetRepo repository.AssetRepository,
	logger providers.ZapLoggerProvider,
) WebhookService {
	return &webhookService{
		db:        db,
		userRepo:  userRepo,
		orgRepo:   orgRepo,
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// HandleEvent applies a verified event to the local mirrors. A returned error
// means the event was not processed; organization failures are only logged.
func (s *webhookService) HandleEvent(ctx context.Context, event models.WebhookEvent) error {
	log := s.logger.GetLogger().With(zap.String("event_type", event.Type))

	switch event.Type {
	case models.EventUserCreated:
		return s.userCreated(ctx, event.Data)
	case models.EventUserUpdated:
		return s.userUpdated(ctx, event.Data)
	case models.EventUserDeleted:
		return s.userDeleted(ctx, event.Data)
	case models.EventOrganizationCreated, models.EventOrganizationUpdated:
		if err := s.organizationUpserted(ctx, event.Type, event.Data); err != nil {
			log.Error("failed to sync organization", zap.Error(err))
		}
		return nil
	case models.EventOrganizationDeleted:
		if err := s.organizationDeleted(ctx, event.Data); err != nil {
			log.Error("failed to remove organization", zap.Error(err))
		}
		return nil
	}

	for _, prefix := range loggedOnlyPrefixes {
		if strings.HasPrefix(event.Type, prefix) {
			log.Info("webhook event received")
			return nil
		}
	}
	log.Warn("unhandled webhook event type")
	return nil
}

func (s *webhookService) userCreated(ctx context.Context, raw jsoniter.RawMessage) error {
	data, err := decodeUser(raw)
	if err != nil {
		return err
	}
	email := data.PrimaryEmail()
	if data.ID == "" || email == "" {
		return fmt.Errorf("%w: user.created requires an id and an email address", models.ErrInvalidInput)
	}

	user, err := s.userRepo.UpsertUser(ctx, models.User{
		ClerkUserID: data.ID,
		Email:       email,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		ImageURL:    data.ImageURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create user mirror: %w", err)
	}
	s.logger.GetLogger().Info("user mirror created", zap.String("clerk_user_id", data.ID), zap.String("user_id", user.ID.String()))
	return nil
}

func (s *webhookService) userUpdated(ctx context.Context, raw jsoniter.RawMessage) error {
	data, err := decodeUser(raw)
	if err != nil {
		return err
	}
	if data.ID == "" {
		return fmt.Errorf("%w: user.updated requires an id", models.ErrInvalidInput)
	}

	patch := models.UserPatch{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		ImageURL:  data.ImageURL,
	}
	if email := data.PrimaryEmail(); email != "" {
		patch.Email = &email
	}

	found, err := s.userRepo.UpdateUser(ctx, data.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update user mirror: %w", err)
	}
	if !found {
		s.logger.GetLogger().Info("user mirror not found, skipping update", zap.String("clerk_user_id", data.ID))
	}
	return nil
}

func (s *webhookService) userDeleted(ctx context.Context, raw jsoniter.RawMessage) error {
	data, err := decodeUser(raw)
	if err != nil {
		return err
	}
	if data.ID == "" {
		return fmt.Errorf("%w: user.deleted requires an id", models.ErrInvalidInput)
	}
	if !data.Deleted {
		s.logger.GetLogger().Info("user.deleted without deleted flag, ignoring", zap.String("clerk_user_id", data.ID))
		return nil
	}

	found, err := s.userRepo.DeleteUserByClerkID(ctx, data.ID)
	if err != nil {
		return fmt.Errorf("failed to delete user mirror: %w", err)
	}
	if !found {
		s.logger.GetLogger().Info("user mirror already absent", zap.String("clerk_user_id", data.ID))
	}
	return nil
}

func (s *webhookService) organizationUpserted(ctx context.Context, eventType string, raw jsoniter.RawMessage) error {
	var data models.WebhookOrganizationData
	if err := jsoniter.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid organization payload: %w", err)
	}
	if data.ID == "" {
		return fmt.Errorf("%w: %s requires an id", models.ErrInvalidInput, eventType)
	}

	org := models.Organization{
		ClerkOrgID: data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		ImageURL:   data.ImageURL,
	}
	if eventType == models.EventOrganizationCreated {
		if err := s.orgRepo.UpsertOrganization(ctx, org); err != nil {
			return err
		}
		s.logger.GetLogger().Info("organization mirror created", zap.String("clerk_org_id", data.ID))
		return nil
	}

	found, err := s.orgRepo.UpdateOrganization(ctx, org)
	if err != nil {
		return err
	}
	if !found {
		s.logger.GetLogger().Info("organization mirror not found, skipping update", zap.String("clerk_org_id", data.ID))
	}
	return nil
}

// organizationDeleted removes the organization mirror and archives its
// assets in one transaction.
func (s *webhookService) organizationDeleted(ctx context.Context, raw jsoniter.RawMessage) (err error) {
	var data models.WebhookOrganizationData
	if err = jsoniter.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid organization payload: %w", err)
	}
	if data.ID == "" {
		return fmt.Errorf("%w: organization.deleted requires an id", models.ErrInvalidInput)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.GetLogger().Error("panic recovered while removing organization", zap.Any("recover_info", r))
			tx.Rollback()
			err = fmt.Errorf("panic while removing organization %s", data.ID)
		} else if err != nil {
			tx.Rollback()
		} else if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit organization removal: %w", commitErr)
		}
	}()

	found, err := s.orgRepo.DeleteOrganization(ctx, tx, data.ID)
	if err != nil {
		return err
	}
	if !found {
		s.logger.GetLogger().Info("organization mirror already absent", zap.String("clerk_org_id", data.ID))
	}

	archived, err := s.assetRepo.ArchiveOrganizationAssets(ctx, tx, data.ID)
	if err != nil {
		return err
	}
	s.logger.GetLogger().Info("organization removed",
		zap.String("clerk_org_id", data.ID), zap.Int64("archived_assets", archived))
	return nil
}

func decodeUser(raw jsoniter.RawMessage) (models.WebhookUserData, error) {
	var data models.WebhookUserData
	if err := jsoniter.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("%w: malformed user payload", models.ErrInvalidInput)
	}
	return data, nil
}
