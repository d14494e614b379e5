package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/user"
)

func testService() Service {
	return NewJWTService("test-secret", "15m", "168h")
}

func TestGenerateAccessToken(t *testing.T) {
	t.Parallel()

	svc := testService()

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken(t *testing.T) {
	t.Parallel()

	svc := testService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
	assert.NotContains(t, claims, "role")
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "not-a-duration", "168h")

	_, _, err := svc.GenerateAccessToken("user-1", "a@b.co", user.RoleStaff)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()

	svc := testService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	t.Parallel()

	svc := testService()
	expiresAt := time.Now().Add(time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, time.Unix(expiresAt, 0), cookie.Expires)
}
