// Package token issues and validates the signed bearer tokens that carry an
// account's identity and role between requests. Tokens are stateless; expiry
// is the only termination mechanism.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
)

// DefaultTTL is the fixed token lifetime from the issuance instant.
const DefaultTTL = 7 * 24 * time.Hour

// Claims is the set of identity facts embedded in every token.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and validates tokens with a shared symmetric secret.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewManager(secret, issuer, audience string) *Manager {
	return &Manager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      DefaultTTL,
	}
}

// Issue mints an HS512-signed token for user. The user's Role must be loaded;
// its name becomes the role claim.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(m.secret)
}

// Validate checks signature, issuer, audience and expiry, in that order, with
// zero clock-skew tolerance. Every failure collapses into ErrInvalidToken;
// the caller is not told which check failed.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithAudience(m.audience), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// ExtractUserID is the soft decomposition used on write paths: it returns the
// subject id of a valid token, or ok=false on any validation failure. Absence
// of identity is routine for its callers, so no error is propagated.
func (m *Manager) ExtractUserID(tokenString string) (int, bool) {
	claims, err := m.Validate(tokenString)
	if err != nil {
		return 0, false
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, false
	}
	return id, true
}
