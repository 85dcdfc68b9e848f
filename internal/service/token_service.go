package service

import (
	"errors"
	"time"

	"github.com/farhan7479/taskflow/internal/config"
	"github.com/farhan7479/taskflow/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the identity payload carried by both token kinds.
type TokenClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, expiring JWTs. Access and refresh
// tokens use independently configured secrets and lifetimes; verifying one
// kind never accepts a token signed for the other.
type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

func (s *TokenService) IssueAccessToken(user *domain.User) (string, error) {
	return s.issue(user, s.cfg.JWTAccessSecret, s.cfg.AccessTokenTTL)
}

func (s *TokenService) IssueRefreshToken(user *domain.User) (string, error) {
	return s.issue(user, s.cfg.JWTRefreshSecret, s.cfg.RefreshTokenTTL)
}

func (s *TokenService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.cfg.JWTAccessSecret)
}

func (s *TokenService) VerifyRefreshToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.cfg.JWTRefreshSecret)
}

func (s *TokenService) issue(user *domain.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", domain.ErrMissingSecret
	}

	now := time.Now()
	claims := &TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *TokenService) verify(tokenString, secret string) (*TokenClaims, error) {
	if secret == "" {
		return nil, domain.ErrMissingSecret
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
