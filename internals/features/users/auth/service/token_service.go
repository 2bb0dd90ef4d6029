package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sigi_backend/internals/configs"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// GenerateAccessToken signs a short-lived token carrying the user id.
func GenerateAccessToken(userID uuid.UUID, isSuperuser bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":      userID.String(),
		"is_superuser": isSuperuser,
		"iat":          now.Unix(),
		"exp":          now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// GenerateRefreshToken signs a long-lived token under the refresh secret.
func GenerateRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken validates a refresh token and returns the user id.
func ParseRefreshToken(tokenString string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRefreshToken
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	return id, nil
}

// AccessTokenExpiry extracts exp from an already-issued access token without
// validating it; used when blacklisting on logout.
func AccessTokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().Add(AccessTokenTTL)
	}
	if expFloat, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(expFloat), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
