//go:generate mockery --name TokenIssuer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"fmt"
	"strconv"
	"time"

	"dental_clinic_api/internal/config"
	"dental_clinic_api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload for both token kinds: the subject carries
// the user ID, plus the user's role.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the access and refresh tokens. Access
// tokens are short-lived and stateless; refresh tokens are long-lived and
// persisted by the auth service for revocation.
type TokenIssuer interface {
	IssueAccessToken(userID uint, role model.UserRole) (string, time.Time, error)
	IssueRefreshToken(userID uint, role model.UserRole) (string, time.Time, error)
	Verify(tokenString string) (*TokenClaims, error)
}

type jwtTokenIssuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(cfg *config.Config) TokenIssuer {
	return &jwtTokenIssuer{
		secret:     []byte(cfg.JWT.SecretKey),
		issuer:     cfg.App.Name,
		accessTTL:  cfg.JWT.AccessTokenTTL,
		refreshTTL: cfg.JWT.RefreshTokenTTL,
		now:        time.Now,
	}
}

func (i *jwtTokenIssuer) IssueAccessToken(userID uint, role model.UserRole) (string, time.Time, error) {
	return i.issue(userID, role, i.accessTTL)
}

func (i *jwtTokenIssuer) IssueRefreshToken(userID uint, role model.UserRole) (string, time.Time, error) {
	return i.issue(userID, role, i.refreshTTL)
}

func (i *jwtTokenIssuer) issue(userID uint, role model.UserRole, ttl time.Duration) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(ttl)

	claims := &TokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwtTokenIssuer.issue: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a signed token. It fails closed: signature
// mismatch, expiry and malformed structure are all rejected.
func (i *jwtTokenIssuer) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("jwtTokenIssuer.Verify: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("jwtTokenIssuer.Verify: token is not valid")
	}
	return claims, nil
}

// SubjectUserID extracts the numeric user ID from the subject claim.
func (c *TokenClaims) SubjectUserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim %q: %w", c.Subject, err)
	}
	return uint(id), nil
}
