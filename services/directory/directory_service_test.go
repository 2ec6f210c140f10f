package directoryservice

import (
	"assettracker/models"
	"assettracker/providers"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var memberSession = models.Session{UserID: "user_1", OrgID: "org_1", OrgRole: "org:member"}

func sampleMembers() []models.OrganizationMember {
	first := "Ada"
	return []models.OrganizationMember{
		{UserID: "user_1", FirstName: &first, Email: "ada@example.com", Role: "org:admin"},
		{UserID: "user_2", Email: "bob@example.com", Role: "org:member"},
	}
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()
	cached, err := jsoniter.MarshalToString(sampleMembers())
	require.NoError(t, err)

	testCases := []struct {
		name          string
		cacheValue    string
		cacheErr      error
		expectFetch   bool
		fetchErr      error
		expectStore   bool
		storeErr      error
		expectedErr   bool
		expectedCount int
	}{
		{name: "cache hit", cacheValue: cached, expectedCount: 2},
		{name: "cache miss fetches and stores", cacheErr: redis.Nil, expectFetch: true, expectStore: true, expectedCount: 2},
		{name: "cache read failure falls through", cacheErr: errors.New("connection refused"), expectFetch: true, expectStore: true, expectedCount: 2},
		{name: "cache write failure is ignored", cacheErr: redis.Nil, expectFetch: true, expectStore: true, storeErr: errors.New("readonly"), expectedCount: 2},
		{name: "malformed cache entry is refetched", cacheValue: "{not json", expectFetch: true, expectStore: true, expectedCount: 2},
		{name: "identity provider failure", cacheErr: redis.Nil, expectFetch: true, fetchErr: errors.New("clerk down"), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockIdentity := providers.NewMockIdentityProvider(ctrl)
			mockCache := providers.NewMockRedisProvider(ctrl)
			mockLogger := providers.NewMockZapLoggerProvider(ctrl)
			mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

			svc := &directoryService{identity: mockIdentity, cache: mockCache, logger: mockLogger}

			mockCache.EXPECT().Get(ctx, "directory:members:org_1").Return(tc.cacheValue, tc.cacheErr)
			if tc.expectFetch {
				mockIdentity.EXPECT().ListOrganizationMembers(ctx, "org_1").Return(sampleMembers(), tc.fetchErr)
			}
			if tc.expectStore {
				mockCache.EXPECT().Set(ctx, "directory:members:org_1", gomock.Any(), membersCacheTTL).Return(tc.storeErr)
			}

			members, err := svc.ListMembers(ctx, memberSession)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, members, tc.expectedCount)
			assert.Equal(t, "Ada", *members[0].FirstName)
		})
	}
}

func TestListMembersWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockIdentity := providers.NewMockIdentityProvider(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	svc := NewDirectoryService(mockIdentity, nil, mockLogger)
	mockIdentity.EXPECT().ListOrganizationMembers(gomock.Any(), "org_1").Return(nil, nil)

	members, err := svc.ListMembers(context.Background(), memberSession)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestListMembersRequiresOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	svc := NewDirectoryService(providers.NewMockIdentityProvider(ctrl), providers.NewMockRedisProvider(ctrl), mockLogger)

	_, err := svc.ListMembers(context.Background(), models.Session{})
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, err = svc.ListMembers(context.Background(), models.Session{UserID: "user_1"})
	assert.ErrorIs(t, err, models.ErrNoActiveOrganization)
}

func TestListMembersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockDirectoryService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockAuth.EXPECT().GetSessionFromContext(gomock.Any()).Return(memberSession).AnyTimes()
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)

	handler := &DirectoryHandler{Service: mockService, AuthMiddleware: mockAuth, Logger: mockLogger}
	mockService.EXPECT().ListMembers(gomock.Any(), memberSession).Return(sampleMembers(), nil)

	rr := httptest.NewRecorder()
	handler.ListMembers(rr, httptest.NewRequest(http.MethodGet, "/api/directory/members", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body []map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "user_1", body[0]["id"])
	assert.Equal(t, "org:admin", body[0]["role"])
}
