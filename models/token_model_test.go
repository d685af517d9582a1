package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRevoke(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	require.NoError(t, TokenCreate(user.ID, "token-abc"))

	record, err := TokenFindByString("token-abc")
	require.NoError(t, err)
	assert.False(t, record.Dead())

	require.NoError(t, record.Revoke())
	assert.True(t, record.Dead())

	got, err := TokenFindByString("token-abc")
	require.NoError(t, err)
	assert.True(t, got.Expired)
	assert.True(t, got.Revoked)
}

func TestTokenIsDead(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	require.NoError(t, TokenCreate(user.ID, "token-live"))
	require.NoError(t, TokenCreate(user.ID, "token-dead"))

	record, err := TokenFindByString("token-dead")
	require.NoError(t, err)
	require.NoError(t, record.Revoke())

	dead, err := TokenIsDead("token-live")
	require.NoError(t, err)
	assert.False(t, dead)

	dead, err = TokenIsDead("token-dead")
	require.NoError(t, err)
	assert.True(t, dead)

	// 未入库的令牌视为有效
	dead, err = TokenIsDead("token-unknown")
	require.NoError(t, err)
	assert.False(t, dead)
}

func TestTokenPurgeDead(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	require.NoError(t, TokenCreate(user.ID, "token-live"))
	require.NoError(t, TokenCreate(user.ID, "token-dead"))

	record, err := TokenFindByString("token-dead")
	require.NoError(t, err)
	require.NoError(t, record.Revoke())

	n, err := TokenPurgeDead()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = TokenFindByString("token-dead")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	_, err = TokenFindByString("token-live")
	assert.NoError(t, err)
}
