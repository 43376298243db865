// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"sekolahku_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claim school_id ikut di access token supaya guard tenant
// tidak perlu query users tiap request.
func buildClaims(u *model.UserModel, ttl time.Duration, typ string) jwt.MapClaims {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"typ":  typ,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if u.UserSchoolID != nil {
		claims["school_id"] = u.UserSchoolID.String()
	}
	return claims
}

func IssueAccessToken(u *model.UserModel, secret string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(u, AccessTokenTTL, "access"))
	return tok.SignedString([]byte(secret))
}

func IssueRefreshToken(u *model.UserModel, secret string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(u, RefreshTokenTTL, "refresh"))
	return tok.SignedString([]byte(secret))
}

// ParseRefreshToken memverifikasi refresh token dan mengembalikan user_id (sub).
func ParseRefreshToken(raw, secret string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", errors.New("bukan refresh token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}
