package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reseldor/content-api/internal/domain"
)

// TokenIssuerConfig holds the signing configuration for both tokens.
// Access and refresh tokens use distinct secrets so one cannot be
// presented in place of the other.
type TokenIssuerConfig struct {
	AccessSecret    string
	AccessTokenTTL  time.Duration
	RefreshSecret   string
	RefreshTokenTTL time.Duration
	Issuer          string
}

// TokenIssuer signs and verifies the access/refresh token pair
type TokenIssuer interface {
	// Issue signs a fresh access/refresh pair for the user
	Issue(user *domain.User) (*domain.TokenPair, error)
	// IssueAccess signs a fresh access token only
	IssueAccess(user *domain.User) (string, int64, error)
	// VerifyAccess validates an access token and returns its claims
	VerifyAccess(token string) (*domain.Claims, error)
	// VerifyRefresh validates a refresh token and returns its claims
	VerifyRefresh(token string) (*domain.Claims, error)
}

type jwtClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	config *TokenIssuerConfig
}

// NewTokenIssuer creates a TokenIssuer
func NewTokenIssuer(config *TokenIssuerConfig) TokenIssuer {
	if config.AccessTokenTTL == 0 {
		config.AccessTokenTTL = 15 * time.Minute
	}
	if config.RefreshTokenTTL == 0 {
		config.RefreshTokenTTL = 24 * time.Hour
	}
	return &tokenIssuer{config: config}
}

func (t *tokenIssuer) Issue(user *domain.User) (*domain.TokenPair, error) {
	accessToken, expiresIn, err := t.IssueAccess(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := t.sign(user, t.config.RefreshSecret, t.config.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

func (t *tokenIssuer) IssueAccess(user *domain.User) (string, int64, error) {
	token, err := t.sign(user, t.config.AccessSecret, t.config.AccessTokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int64(t.config.AccessTokenTTL.Seconds()), nil
}

func (t *tokenIssuer) VerifyAccess(token string) (*domain.Claims, error) {
	return t.verify(token, t.config.AccessSecret)
}

func (t *tokenIssuer) VerifyRefresh(token string) (*domain.Claims, error) {
	return t.verify(token, t.config.RefreshSecret)
}

func (t *tokenIssuer) sign(user *domain.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    t.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (t *tokenIssuer) verify(tokenString, secret string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
	}, nil
}
