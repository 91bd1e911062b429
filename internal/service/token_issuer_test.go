package service_test

import (
	"testing"
	"time"

	"dental_clinic_api/internal/config"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuerConfig(secret string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "DentalClinicAPI"},
		JWT: config.JWTConfig{
			SecretKey:       secret,
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := service.NewTokenIssuer(issuerConfig("test-secret"))

	t.Run("access token round-trips with subject and role", func(t *testing.T) {
		token, expiresAt, err := issuer.IssueAccessToken(42, model.RoleDentist)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "42", claims.Subject)
		assert.Equal(t, string(model.RoleDentist), claims.Role)
		assert.Equal(t, "DentalClinicAPI", claims.Issuer)

		userID, err := claims.SubjectUserID()
		require.NoError(t, err)
		assert.Equal(t, uint(42), userID)
	})

	t.Run("refresh token uses the longer TTL", func(t *testing.T) {
		token, expiresAt, err := issuer.IssueRefreshToken(42, model.RoleUser)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := service.NewTokenIssuer(issuerConfig("another-secret"))
		token, _, err := other.IssueAccessToken(42, model.RoleUser)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := issuer.Verify("not.a.jwt")
		assert.Error(t, err)

		_, err = issuer.Verify("")
		assert.Error(t, err)
	})
}

func TestTokenClaims_SubjectUserID(t *testing.T) {
	claims := &service.TokenClaims{}
	claims.Subject = "abc"
	_, err := claims.SubjectUserID()
	assert.Error(t, err)

	claims.Subject = "7"
	id, err := claims.SubjectUserID()
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}
