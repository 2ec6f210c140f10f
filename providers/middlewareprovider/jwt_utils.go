package middlewareprovider

import (
	"assettracker/models"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// SessionClaims covers both session token layouts issued by the identity
// provider: flat org_id/org_role claims and the compact "o" claim.
type SessionClaims struct {
	OrgID   string           `json:"org_id,omitempty"`
	OrgRole string           `json:"org_role,omitempty"`
	Org     *compactOrgClaim `json:"o,omitempty"`
	jwt.RegisteredClaims
}

type compactOrgClaim struct {
	ID   string `json:"id"`
	Role string `json:"rol"`
}

// ParseSessionToken verifies an RS256 session token and extracts the caller.
func ParseSessionToken(tokenStr string, key *rsa.PublicKey) (models.Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithLeeway(5*time.Second))

	if err != nil || !token.Valid {
		return models.Session{}, fmt.Errorf("invalid or expired token: %w", err)
	}
	if claims.Subject == "" {
		return models.Session{}, errors.New("invalid 'sub' claim")
	}

	session := models.Session{
		UserID:  claims.Subject,
		OrgID:   claims.OrgID,
		OrgRole: claims.OrgRole,
	}
	if session.OrgID == "" && claims.Org != nil {
		session.OrgID = claims.Org.ID
		session.OrgRole = claims.Org.Role
	}
	return session, nil
}
