package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/tiffinhub/internal/pkg/models"
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks
var ErrInvalidToken = errors.New("invalid token")

// Claims represents standard JWT claims plus the account fields the client needs
type Claims struct {
	UserID      string             `json:"user_id"`
	Name        string             `json:"name,omitempty"`
	Role        string             `json:"role,omitempty"`
	ServiceType models.ServiceType `json:"service_type,omitempty"`
	jwt.RegisteredClaims
}

// User builds the session user described by the claims
func (c *Claims) User() *models.User {
	return &models.User{
		ID:          c.UserID,
		Name:        c.Name,
		Role:        c.Role,
		ServiceType: c.ServiceType,
	}
}

// GenerateToken signs an HS256 token for the given user
func GenerateToken(user *models.User, cfg models.JWTConfig) (string, int64, error) {
	if cfg.Secret == "" {
		return "", 0, errors.New("jwt secret is not configured")
	}

	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		UserID:      user.ID,
		Name:        user.Name,
		Role:        user.Role,
		ServiceType: user.ServiceType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken verifies signature and expiry and returns the claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseUnverified reads the claims without checking the signature. The client
// never holds the signing secret; the server remains the only verifier.
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	return claims, nil
}
