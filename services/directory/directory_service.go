package directoryservice

import (
	"assettracker/models"
	"assettracker/providers"
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_directory_service.go -package=directoryservice assettracker/services/directory DirectoryService

const (
	membersCachePrefix = "directory:members:"
	membersCacheTTL    = 5 * time.Minute
)

type DirectoryService interface {
	ListMembers(ctx context.Context, session models.Session) ([]models.OrganizationMember, error)
}

type directoryService struct {
	identity providers.IdentityProvider
	cache    providers.RedisProvider
	logger   providers.ZapLoggerProvider
}

// NewDirectoryService builds the member directory. cache may be nil, in which
// case every call goes to the identity provider.
func NewDirectoryService(identity providers.IdentityProvider, cache providers.RedisProvider, logger providers.ZapLoggerProvider) DirectoryService {
	return &directoryService{
		identity: identity,
		cache:    cache,
		logger:   logger,
	}
}

func (s *directoryService) ListMembers(ctx context.Context, session models.Session) ([]models.OrganizationMember, error) {
	if err := session.RequireOrganization(); err != nil {
		return nil, err
	}
	key := membersCachePrefix + session.OrgID

	if members, ok := s.cached(ctx, key); ok {
		return members, nil
	}

	members, err := s.identity.ListOrganizationMembers(ctx, session.OrgID)
	if err != nil {
		s.logger.GetLogger().Error("failed to list organization members", zap.String("org_id", session.OrgID), zap.Error(err))
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}
	if members == nil {
		members = []models.OrganizationMember{}
	}

	s.store(ctx, key, members)
	return members, nil
}

func (s *directoryService) cached(ctx context.Context, key string) ([]models.OrganizationMember, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.GetLogger().Warn("directory cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var members []models.OrganizationMember
	if err := jsoniter.UnmarshalFromString(raw, &members); err != nil {
		s.logger.GetLogger().Warn("discarding malformed directory cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return members, true
}

func (s *directoryService) store(ctx context.Context, key string, members []models.OrganizationMember) {
	if s.cache == nil {
		return
	}
	payload, err := jsoniter.MarshalToString(members)
	if err != nil {
		s.logger.GetLogger().Warn("failed to encode directory cache entry", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, payload, membersCacheTTL); err != nil {
		s.logger.GetLogger().Warn("directory cache write failed", zap.String("key", key), zap.Error(err))
	}
}
