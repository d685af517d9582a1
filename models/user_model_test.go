package models

import (
	"testing"

	"plants/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateHashesPassword(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.ValidatePassword("secret123"))
	assert.False(t, user.ValidatePassword("wrong"))
}

func TestUserCreateDuplicate(t *testing.T) {
	setupTestDB(t)

	mustCreateUser(t, "alice")

	dup := &UserModel{
		Nickname: "someone",
		Account:  "alice",
		Password: "secret123",
		Role:     ctypes.RoleUser,
	}
	err := dup.Create("127.0.0.1")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestUserFindByAccount(t *testing.T) {
	setupTestDB(t)

	mustCreateUser(t, "alice")

	var user UserModel
	require.NoError(t, user.FindByAccount("alice"))
	assert.Equal(t, "alice", user.Account)
}

func TestUserDeleteRemovesTokens(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	require.NoError(t, TokenCreate(user.ID, "token-abc"))

	require.NoError(t, user.Delete())

	_, err := UserFindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = TokenFindByString("token-abc")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestUserIsAdmin(t *testing.T) {
	setupTestDB(t)

	admin := &UserModel{
		Nickname: "admin",
		Account:  "admin-account",
		Password: "secret123",
		Role:     ctypes.RoleAdmin,
	}
	require.NoError(t, admin.Create("127.0.0.1"))
	assert.True(t, admin.IsAdmin())

	user := mustCreateUser(t, "alice")
	assert.False(t, user.IsAdmin())
}
