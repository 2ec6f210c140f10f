package identityProvider

import (
	"assettracker/models"
	"assettracker/providers"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/organizationmembership"
	"github.com/clerk/clerk-sdk-go/v2/user"
)

// directoryPageSize bounds a single membership listing.
const directoryPageSize = 200

type ClerkProvider struct {
	users       *user.Client
	memberships *organizationmembership.Client
}

// NewClerkProvider builds the backend API clients. baseURL overrides the API
// endpoint and is left empty outside tests.
func NewClerkProvider(secretKey, baseURL string) providers.IdentityProvider {
	cfg := &clerk.ClientConfig{}
	cfg.Key = clerk.String(secretKey)
	if baseURL != "" {
		cfg.URL = clerk.String(baseURL)
	}
	return &ClerkProvider{
		users:       user.NewClient(cfg),
		memberships: organizationmembership.NewClient(cfg),
	}
}

func (c *ClerkProvider) GetUser(ctx context.Context, userID string) (models.IdentityUser, error) {
	u, err := c.users.Get(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return models.IdentityUser{}, fmt.Errorf("identity user %s: %w", userID, models.ErrNotFound)
		}
		return models.IdentityUser{}, fmt.Errorf("failed to fetch identity user %s: %w", userID, err)
	}

	out := models.IdentityUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ImageURL:  u.ImageURL,
	}
	for _, e := range u.EmailAddresses {
		if e == nil {
			continue
		}
		out.Emails = append(out.Emails, e.EmailAddress)
		if u.PrimaryEmailAddressID != nil && e.ID == *u.PrimaryEmailAddressID {
			out.PrimaryEmail = e.EmailAddress
		}
	}
	return out, nil
}

func (c *ClerkProvider) ListOrganizationMembers(ctx context.Context, orgID string) ([]models.OrganizationMember, error) {
	params := &organizationmembership.ListParams{OrganizationID: orgID}
	params.Limit = clerk.Int64(directoryPageSize)

	list, err := c.memberships.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of %s: %w", orgID, err)
	}

	members := make([]models.OrganizationMember, 0, len(list.OrganizationMemberships))
	for _, m := range list.OrganizationMemberships {
		if m == nil || m.PublicUserData == nil {
			continue
		}
		members = append(members, models.OrganizationMember{
			UserID:    m.PublicUserData.UserID,
			FirstName: m.PublicUserData.FirstName,
			LastName:  m.PublicUserData.LastName,
			Email:     m.PublicUserData.Identifier,
			ImageURL:  m.PublicUserData.ImageURL,
			Role:      m.Role,
		})
	}
	return members, nil
}

func (c *ClerkProvider) ListUserOrganizationIDs(ctx context.Context, userID string) ([]string, error) {
	params := &user.ListOrganizationMembershipsParams{}
	params.Limit = clerk.Int64(directoryPageSize)

	list, err := c.users.ListOrganizationMemberships(ctx, userID, params)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("identity user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to list organizations of %s: %w", userID, err)
	}

	ids := make([]string, 0, len(list.OrganizationMemberships))
	for _, m := range list.OrganizationMemberships {
		if m != nil && m.Organization != nil {
			ids = append(ids, m.Organization.ID)
		}
	}
	return ids, nil
}

func isNotFound(err error) bool {
	var apiErr *clerk.APIErrorResponse
	return errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound
}
