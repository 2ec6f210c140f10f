package assetservice

import (
	"assettracker/models"
	"assettracker/providers"
	"assettracker/providers/imageProvider"
	"assettracker/repository"
	"assettracker/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_asset_service.go -package=assetservice assettracker/services/asset AssetService

const imageFolderPrefix = "asset_tracker"

type AssetService interface {
	CreateAsset(ctx context.Context, session models.Session, req CreateAssetReq) (AssetMutationResult, error)
	GetAsset(ctx context.Context, session models.Session, assetID uuid.UUID) (models.AssetDetails, error)
	ListAssets(ctx context.Context, session models.Session) ([]models.AssetDetails, error)
	UpdateAsset(ctx context.Context, session models.Session, assetID uuid.UUID, req UpdateAssetReq) (AssetMutationResult, error)
	DeleteAsset(ctx context.Context, session models.Session, assetID uuid.UUID) (DeleteAssetResult, error)
	GetAssetStats(ctx context.Context, session models.Session) (models.AssetStats, error)
}

type assetService struct {
	assetRepo        repository.AssetRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	identity         providers.IdentityProvider
	images           providers.ImageStore
	logger           providers.ZapLoggerProvider
}

func NewAssetService(
	assetRepo repository.AssetRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	identity providers.IdentityProvider,
	images providers.ImageStore,
	logger providers.ZapLoggerProvider,
) AssetService {
	return &assetService{
		assetRepo:        assetRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		identity:         identity,
		images:           images,
		logger:           logger,
	}
}

func (s *assetService) CreateAsset(ctx context.Context, session models.Session, req CreateAssetReq) (AssetMutationResult, error) {
	if err := session.RequireOrganization(); err != nil {
		return AssetMutationResult{}, err
	}
	if !session.IsAdmin() {
		return AssetMutationResult{}, fmt.Errorf("%w: only organization admins can create assets", models.ErrForbidden)
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Model = strings.TrimSpace(req.Model)
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)
	req.Description = strings.TrimSpace(req.Description)
	if err := utils.ValidateStruct(req); err != nil {
		return AssetMutationResult{}, err
	}
	if err := checkCoordinates(req.Latitude, req.Longitude); err != nil {
		return AssetMutationResult{}, err
	}

	rec := models.AssetRecord{
		Title:               req.Title,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		Description:         req.Description,
		Status:              models.AssetStatusActive,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		ClerkOrganizationID: session.OrgID,
		ImageURL:            nonEmpty(req.ImageURL),
	}
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		rec.Status = strings.TrimSpace(*req.Status)
	}

	var assignee *models.User
	if clerkID := nonEmpty(req.AssignedToClerkUserID); clerkID != nil {
		user, err := s.resolveAssignee(ctx, *clerkID)
		if err != nil {
			return AssetMutationResult{}, err
		}
		assignee = &user
		rec.AssignedToUserID = &user.ID
	}

	var uploaded *string
	if req.Image != nil && *req.Image != "" {
		url, err := s.uploadImage(ctx, *req.Image, session.OrgID)
		if err != nil {
			return AssetMutationResult{}, err
		}
		uploaded = &url
		rec.ImageURL = &url
	}

	assetID, err := s.assetRepo.CreateAsset(ctx, rec)
	if err != nil {
		s.logger.GetLogger().Error("failed to create asset", zap.String("serial_number", rec.SerialNumber), zap.Error(err))
		if uploaded != nil {
			s.deleteImage(ctx, *uploaded)
		}
		return AssetMutationResult{}, fmt.Errorf("failed to create asset: %w", err)
	}

	asset, err := s.assetRepo.GetAssetByID(ctx, assetID, session.OrgID)
	if err != nil {
		return AssetMutationResult{}, fmt.Errorf("failed to load created asset: %w", err)
	}
	s.logger.GetLogger().Info("asset created", zap.String("asset_id", assetID.String()), zap.String("org_id", session.OrgID))

	result := AssetMutationResult{Asset: asset}
	if assignee != nil {
		result.SideEffects = append(result.SideEffects, s.notifyAssignment(ctx, *assignee, asset))
	}
	return result, nil
}

func (s *assetService) GetAsset(ctx context.Context, session models.Session, assetID uuid.UUID) (models.AssetDetails, error) {
	if err := session.RequireOrganization(); err != nil {
		return models.AssetDetails{}, err
	}

	asset, err := s.assetRepo.GetAssetByID(ctx, assetID, session.OrgID)
	if err != nil {
		return models.AssetDetails{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	if session.IsAdmin() {
		return asset, nil
	}
	if asset.AssignedToClerkUserID == nil || *asset.AssignedToClerkUserID != session.UserID {
		return models.AssetDetails{}, fmt.Errorf("%w: asset is not assigned to you", models.ErrForbidden)
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, session models.Session) ([]models.AssetDetails, error) {
	if err := session.RequireOrganization(); err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.ListAssets(ctx, scopeFor(session))
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (s *assetService) GetAssetStats(ctx context.Context, session models.Session) (models.AssetStats, error) {
	if err := session.RequireOrganization(); err != nil {
		return models.AssetStats{}, err
	}
	stats, err := s.assetRepo.GetAssetStats(ctx, scopeFor(session))
	if err != nil {
		return models.AssetStats{}, fmt.Errorf("failed to load asset stats: %w", err)
	}
	return stats, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, session models.Session, assetID uuid.UUID, req UpdateAssetReq) (AssetMutationResult, error) {
	if err := session.RequireOrganization(); err != nil {
		return AssetMutationResult{}, err
	}

	current, err := s.assetRepo.GetAssetByID(ctx, assetID, session.OrgID)
	if err != nil {
		return AssetMutationResult{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	if !session.IsAdmin() {
		return AssetMutationResult{}, fmt.Errorf("%w: only organization admins can update assets", models.ErrForbidden)
	}

	rec := current.Record()
	rec.ClerkOrganizationID = session.OrgID
	if err := applyTextFields(&rec, req); err != nil {
		return AssetMutationResult{}, err
	}
	if req.Latitude.Set {
		rec.Latitude = req.Latitude.Ptr()
	}
	if req.Longitude.Set {
		rec.Longitude = req.Longitude.Ptr()
	}
	if err := checkCoordinates(rec.Latitude, rec.Longitude); err != nil {
		return AssetMutationResult{}, err
	}

	var newAssignee *models.User
	if req.AssignedToClerkUserID.Set {
		target := nonEmpty(req.AssignedToClerkUserID.Ptr())
		switch {
		case target == nil:
			rec.AssignedToUserID = nil
		case current.AssignedToClerkUserID != nil && *current.AssignedToClerkUserID == *target:
			// unchanged
		default:
			if err := s.checkMembership(ctx, *target, session.OrgID); err != nil {
				return AssetMutationResult{}, err
			}
			user, err := s.resolveAssignee(ctx, *target)
			if err != nil {
				return AssetMutationResult{}, err
			}
			newAssignee = &user
			rec.AssignedToUserID = &user.ID
		}
	}

	var staleImage, uploaded *string
	switch {
	case req.Image != nil && *req.Image != "":
		url, err := s.uploadImage(ctx, *req.Image, session.OrgID)
		if err != nil {
			return AssetMutationResult{}, err
		}
		uploaded = &url
		staleImage = current.ImageURL
		rec.ImageURL = &url
	case req.ImageURL.Set && nonEmpty(req.ImageURL.Ptr()) == nil:
		staleImage = current.ImageURL
		rec.ImageURL = nil
	case req.ImageURL.Set:
		staleImage = current.ImageURL
		rec.ImageURL = nonEmpty(req.ImageURL.Ptr())
	}

	if err := s.assetRepo.UpdateAsset(ctx, assetID, rec); err != nil {
		s.logger.GetLogger().Error("failed to update asset", zap.String("asset_id", assetID.String()), zap.Error(err))
		if uploaded != nil {
			s.deleteImage(ctx, *uploaded)
		}
		return AssetMutationResult{}, fmt.Errorf("failed to update asset: %w", err)
	}

	asset, err := s.assetRepo.GetAssetByID(ctx, assetID, session.OrgID)
	if err != nil {
		return AssetMutationResult{}, fmt.Errorf("failed to load updated asset: %w", err)
	}

	result := AssetMutationResult{Asset: asset}
	if staleImage != nil && (rec.ImageURL == nil || *rec.ImageURL != *staleImage) {
		if effect, ok := s.deleteImage(ctx, *staleImage); ok {
			result.SideEffects = append(result.SideEffects, effect)
		}
	}
	if newAssignee != nil {
		result.SideEffects = append(result.SideEffects, s.notifyAssignment(ctx, *newAssignee, asset))
	}
	return result, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, session models.Session, assetID uuid.UUID) (DeleteAssetResult, error) {
	if err := session.RequireOrganization(); err != nil {
		return DeleteAssetResult{}, err
	}

	current, err := s.assetRepo.GetAssetByID(ctx, assetID, session.OrgID)
	if err != nil {
		return DeleteAssetResult{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	if !session.IsAdmin() {
		return DeleteAssetResult{}, fmt.Errorf("%w: only organization admins can delete assets", models.ErrForbidden)
	}

	result := DeleteAssetResult{AssetID: assetID}
	if current.ImageURL != nil {
		if effect, ok := s.deleteImage(ctx, *current.ImageURL); ok {
			result.SideEffects = append(result.SideEffects, effect)
		}
	}

	if err := s.assetRepo.DeleteAsset(ctx, assetID, session.OrgID); err != nil {
		return DeleteAssetResult{}, fmt.Errorf("failed to delete asset: %w", err)
	}
	s.logger.GetLogger().Info("asset deleted", zap.String("asset_id", assetID.String()), zap.String("org_id", session.OrgID))
	return result, nil
}

// resolveAssignee returns the local mirror for clerkUserID, creating it from
// the identity provider profile on first use.
func (s *assetService) resolveAssignee(ctx context.Context, clerkUserID string) (models.User, error) {
	user, err := s.userRepo.GetUserByClerkID(ctx, clerkUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, fmt.Errorf("failed to look up assignee: %w", err)
	}

	profile, err := s.identity.GetUser(ctx, clerkUserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, fmt.Errorf("%w: %s", models.ErrAssigneeNotFound, clerkUserID)
		}
		return models.User{}, fmt.Errorf("failed to fetch assignee profile: %w", err)
	}

	user, err = s.userRepo.UpsertUser(ctx, models.User{
		ClerkUserID: profile.ID,
		Email:       profile.MirrorEmail(),
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		ImageURL:    profile.ImageURL,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to mirror assignee: %w", err)
	}
	s.logger.GetLogger().Info("mirrored assignee from identity provider", zap.String("clerk_user_id", clerkUserID))
	return user, nil
}

func (s *assetService) checkMembership(ctx context.Context, clerkUserID, orgID string) error {
	orgIDs, err := s.identity.ListUserOrganizationIDs(ctx, clerkUserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%w: %s", models.ErrAssigneeNotFound, clerkUserID)
		}
		return fmt.Errorf("failed to verify assignee membership: %w", err)
	}
	for _, id := range orgIDs {
		if id == orgID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", models.ErrAssigneeNotInOrganization, clerkUserID)
}

func (s *assetService) uploadImage(ctx context.Context, data, orgID string) (string, error) {
	if !utils.IsDataURI(data) {
		return "", fmt.Errorf("%w: image must be a base64 data URI", models.ErrInvalidInput)
	}
	url, err := s.images.Upload(ctx, data, imageFolderPrefix+"/"+orgID)
	if err != nil {
		s.logger.GetLogger().Error("image upload failed", zap.String("org_id", orgID), zap.Error(err))
		if errors.Is(err, models.ErrImageUploadFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", models.ErrImageUploadFailed, err)
	}
	return url, nil
}

// deleteImage removes a hosted image best-effort. ok is false when the URL is
// not served by the image store and nothing was attempted.
func (s *assetService) deleteImage(ctx context.Context, imageURL string) (models.SideEffect, bool) {
	publicID, ok := imageProvider.PublicIDFromURL(imageURL)
	if !ok {
		return models.SideEffect{}, false
	}
	effect := models.SideEffect{Name: models.SideEffectImageDelete}
	if err := s.images.Delete(ctx, publicID); err != nil {
		s.logger.GetLogger().Warn("failed to delete image", zap.String("public_id", publicID), zap.Error(err))
		effect.Err = err
	}
	return effect, true
}

func (s *assetService) notifyAssignment(ctx context.Context, assignee models.User, asset models.AssetDetails) models.SideEffect {
	effect := models.SideEffect{Name: models.SideEffectNotification}
	err := s.notificationRepo.CreateNotification(ctx, models.Notification{
		Message:              fmt.Sprintf("You have been assigned the asset %q (serial %s).", asset.Title, asset.SerialNumber),
		RecipientClerkUserID: assignee.ClerkUserID,
		RecipientUserID:      assignee.ID,
		AssetID:              asset.ID,
		Type:                 models.NotificationTypeAssetAssignment,
	})
	if err != nil {
		s.logger.GetLogger().Warn("failed to write assignment notification",
			zap.String("asset_id", asset.ID.String()), zap.String("clerk_user_id", assignee.ClerkUserID), zap.Error(err))
		effect.Err = err
	}
	return effect
}

func applyTextFields(rec *models.AssetRecord, req UpdateAssetReq) error {
	fields := []struct {
		name string
		in   *string
		out  *string
	}{
		{"title", req.Title, &rec.Title},
		{"model", req.Model, &rec.Model},
		{"serialNumber", req.SerialNumber, &rec.SerialNumber},
		{"description", req.Description, &rec.Description},
		{"status", req.Status, &rec.Status},
	}
	for _, f := range fields {
		if f.in == nil {
			continue
		}
		v := strings.TrimSpace(*f.in)
		if v == "" {
			return fmt.Errorf("%w: %s cannot be empty", models.ErrInvalidInput, f.name)
		}
		*f.out = v
	}
	return nil
}

func checkCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return fmt.Errorf("%w: latitude out of range", models.ErrInvalidInput)
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return fmt.Errorf("%w: longitude out of range", models.ErrInvalidInput)
	}
	return nil
}

func scopeFor(session models.Session) models.AssetScope {
	scope := models.AssetScope{OrganizationID: session.OrgID}
	if !session.IsAdmin() {
		userID := session.UserID
		scope.AssigneeClerkUserID = &userID
	}
	return scope
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
