package service_test

import (
	"testing"
	"time"

	"github.com/farhan7479/taskflow/internal/config"
	"github.com/farhan7479/taskflow/internal/domain"
	"github.com/farhan7479/taskflow/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:  "access-secret-for-tests",
		JWTRefreshSecret: "refresh-secret-for-tests",
		AccessTokenTTL:   time.Hour,
		RefreshTokenTTL:  24 * time.Hour,
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "tokens@example.com",
	}
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig())
	user := testUser()

	tokenString, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := tokens.VerifyAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestTokenService_RefreshTokenRoundTrip(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig())
	user := testUser()

	tokenString, err := tokens.IssueRefreshToken(user)
	require.NoError(t, err)

	claims, err := tokens.VerifyRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

// Access and refresh tokens are signed with different secrets, so neither
// verifier may accept the other kind.
func TestTokenService_KindsAreNotInterchangeable(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig())
	user := testUser()

	accessToken, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)
	refreshToken, err := tokens.IssueRefreshToken(user)
	require.NoError(t, err)

	_, err = tokens.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = tokens.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig())
	user := testUser()

	tokenString, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	otherCfg := tokenConfig()
	otherCfg.JWTAccessSecret = "a-different-access-secret"
	other := service.NewTokenService(otherCfg)

	_, err = other.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	cfg := tokenConfig()
	cfg.AccessTokenTTL = -time.Minute
	tokens := service.NewTokenService(cfg)

	tokenString, err := tokens.IssueAccessToken(testUser())
	require.NoError(t, err)

	_, err = tokens.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenService_GarbageToken(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig())

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "empty string", tokenString: ""},
		{name: "not a jwt", tokenString: "definitely-not-a-token"},
		{name: "truncated jwt", tokenString: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.VerifyAccessToken(tt.tokenString)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestTokenService_MissingSecret(t *testing.T) {
	cfg := tokenConfig()
	cfg.JWTAccessSecret = ""
	cfg.JWTRefreshSecret = ""
	tokens := service.NewTokenService(cfg)
	user := testUser()

	_, err := tokens.IssueAccessToken(user)
	assert.ErrorIs(t, err, domain.ErrMissingSecret)

	_, err = tokens.IssueRefreshToken(user)
	assert.ErrorIs(t, err, domain.ErrMissingSecret)

	_, err = tokens.VerifyRefreshToken("any-token")
	assert.ErrorIs(t, err, domain.ErrMissingSecret)
}
