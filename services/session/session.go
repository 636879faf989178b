// Package session mints and verifies the signed session token carried in
// the "token" cookie, and revokes it on logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"greenvilla/models"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookieName is the cookie the session token travels in.
const CookieName = "token"

var (
	// ErrMissingToken is returned when the request carries no session cookie.
	ErrMissingToken = errors.New("missing session token")
	// ErrInvalidToken covers bad signatures, wrong algorithms, malformed
	// claims and expired tokens.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrRevokedToken is returned for tokens whose session was logged out.
	ErrRevokedToken = errors.New("session token revoked")
)

// Claims are the signed contents of a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Expiry returns the expiry as a time.
func (c *Claims) Expiry() time.Time {
	return time.Unix(c.StandardClaims.ExpiresAt, 0)
}

// CookiePolicy holds the security attributes of the session cookie.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
}

// CookiePolicyFor returns cross-site cookies over HTTPS in production and
// same-site cookies everywhere else.
func CookiePolicyFor(production bool) CookiePolicy {
	if production {
		return CookiePolicy{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookiePolicy{Secure: false, SameSite: http.SameSiteStrictMode}
}

// Issuer signs, verifies and revokes session tokens.
type Issuer struct {
	secret      []byte
	ttl         time.Duration
	revocations RevocationStore
	logger      *zap.Logger
	now         func() time.Time
}

// NewIssuer creates an Issuer. A nil revocations store disables revocation:
// tokens then stay valid until they expire.
func NewIssuer(secret string, ttl time.Duration, revocations RevocationStore, logger *zap.Logger) *Issuer {
	return &Issuer{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
		logger:      logger,
		now:         time.Now,
	}
}

// TTL is the lifetime of every issued token.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs identity into a new HS256 token.
func (i *Issuer) Issue(identity models.SessionIdentity) (string, *Claims, error) {
	now := i.now()
	claims := &Claims{
		Email: identity.Email,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   identity.Email,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(i.ttl).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, claims, nil
}

// Verify parses a token and checks signature, algorithm, expiry and revocation.
func (i *Issuer) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims, err := i.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if i.revocations != nil && claims.Id != "" {
		revoked, err := i.revocations.IsRevoked(ctx, claims.Id)
		if err != nil {
			// Signature and expiry already hold; an unreachable store must not log everyone out.
			i.logger.Warn("session: revocation lookup failed, accepting token",
				zap.String("jti", claims.Id), zap.Error(err))
		} else if revoked {
			return nil, ErrRevokedToken
		}
	}
	return claims, nil
}

// Revoke records the token id so that copies of the token are rejected
// until it would have expired anyway.
func (i *Issuer) Revoke(ctx context.Context, claims *Claims) error {
	if i.revocations == nil || claims.Id == "" {
		return nil
	}
	remaining := claims.Expiry().Sub(i.now())
	if remaining <= 0 {
		return nil
	}
	if err := i.revocations.Revoke(ctx, claims.Id, remaining); err != nil {
		return fmt.Errorf("failed to revoke session %s: %w", claims.Id, err)
	}
	return nil
}

func (i *Issuer) parse(tokenString string) (*Claims, error) {
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !claims.VerifyExpiresAt(i.now().Unix(), true) {
		return nil, fmt.Errorf("%w: expired", ErrInvalidToken)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: no email claim", ErrInvalidToken)
	}
	return claims, nil
}
