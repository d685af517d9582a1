package utils

import (
	"testing"

	"plants/config"
	"plants/global"
	"plants/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJwtConfig(t *testing.T) {
	t.Helper()
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 7,
			Issuer:  "test",
		},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setupJwtConfig(t)

	payload := PayLoad{Account: "alice", Role: ctypes.RoleAdmin, UserID: 42}
	token, err := GenerateAccessToken(payload)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Account)
	assert.Equal(t, ctypes.RoleAdmin, claims.Role)
	assert.EqualValues(t, 42, claims.UserID)
}

func TestParseTokenInvalid(t *testing.T) {
	setupJwtConfig(t)

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	// 换密钥签名的token不通过
	token, err := GenerateAccessToken(PayLoad{Account: "alice", UserID: 1})
	require.NoError(t, err)
	global.Config.Jwt.Secret = "another-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setupJwtConfig(t)

	token, err := GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
}
