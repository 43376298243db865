// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/users/auth/model"
)

const testSecret = "test-secret-please-rotate"

func testUser() *model.UserModel {
	schoolID := uuid.New()
	return &model.UserModel{
		UserID:       uuid.New(),
		UserRole:     "school_admin",
		UserSchoolID: &schoolID,
	}
}

func TestIssueAccessTokenClaims(t *testing.T) {
	u := testUser()
	raw, err := IssueAccessToken(u, testSecret)
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, u.UserID.String(), claims["sub"])
	assert.Equal(t, "school_admin", claims["role"])
	assert.Equal(t, u.UserSchoolID.String(), claims["school_id"])
	assert.Equal(t, "access", claims["typ"])
}

func TestIssueAccessTokenWithoutSchool(t *testing.T) {
	u := testUser()
	u.UserSchoolID = nil
	raw, err := IssueAccessToken(u, testSecret)
	require.NoError(t, err)

	tok, _ := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	claims := tok.Claims.(jwt.MapClaims)
	_, hasSchool := claims["school_id"]
	assert.False(t, hasSchool, "akun tanpa tenant tidak boleh bawa claim school_id")
}

func TestParseRefreshToken(t *testing.T) {
	u := testUser()
	raw, err := IssueRefreshToken(u, testSecret)
	require.NoError(t, err)

	sub, err := ParseRefreshToken(raw, testSecret)
	require.NoError(t, err)
	assert.Equal(t, u.UserID.String(), sub)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	u := testUser()
	raw, err := IssueAccessToken(u, testSecret)
	require.NoError(t, err)

	_, err = ParseRefreshToken(raw, testSecret)
	require.Error(t, err, "access token tidak boleh dipakai sebagai refresh")
}

func TestParseRefreshTokenWrongSecret(t *testing.T) {
	u := testUser()
	raw, err := IssueRefreshToken(u, testSecret)
	require.NoError(t, err)

	_, err = ParseRefreshToken(raw, "secret-lain")
	require.Error(t, err)
}
