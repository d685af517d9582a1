package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"plants/config"
	"plants/global"
	"plants/models"
	"plants/models/ctypes"
	"plants/models/res"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLogoutTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.TokenModel{}))

	global.DB = db
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 7,
			Issuer:  "test",
		},
	}
	global.Redis = nil

	r := gin.New()
	r.POST("/api/user/logout", new(User).UserLogout)
	return r
}

func doLogout(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustIssueToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(utils.PayLoad{
		Account: "someone",
		Role:    ctypes.RoleUser,
		UserID:  userID,
	})
	require.NoError(t, err)
	require.NoError(t, models.TokenCreate(userID, token))
	return token
}

func tokenRows(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, global.DB.Model(&models.TokenModel{}).Count(&count).Error)
	return count
}

func TestUserLogoutWithoutHeader(t *testing.T) {
	r := setupLogoutTest(t)
	token := mustIssueToken(t, 1)

	w := doLogout(r, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "已登出", body.Message)

	// 未携带令牌的登出不能动任何记录
	assert.EqualValues(t, 1, tokenRows(t))
	record, err := models.TokenFindByString(token)
	require.NoError(t, err)
	assert.False(t, record.Dead())
}

func TestUserLogoutGarbledHeader(t *testing.T) {
	r := setupLogoutTest(t)
	mustIssueToken(t, 1)

	w := doLogout(r, "Basic abc")
	assert.Equal(t, http.StatusOK, w.Code)

	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.EqualValues(t, 1, tokenRows(t))
}

func TestUserLogoutUnknownToken(t *testing.T) {
	r := setupLogoutTest(t)
	live := mustIssueToken(t, 1)

	// 合法签名但未入库的令牌
	stray, err := utils.GenerateAccessToken(utils.PayLoad{Account: "other", Role: ctypes.RoleUser, UserID: 2})
	require.NoError(t, err)

	w := doLogout(r, "Bearer "+stray)
	assert.Equal(t, http.StatusOK, w.Code)

	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)

	// 已有记录不受影响，也不新增记录
	assert.EqualValues(t, 1, tokenRows(t))
	record, err := models.TokenFindByString(live)
	require.NoError(t, err)
	assert.False(t, record.Dead())
}

func TestUserLogoutRevokesKnownToken(t *testing.T) {
	r := setupLogoutTest(t)
	token := mustIssueToken(t, 1)

	w := doLogout(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)

	record, err := models.TokenFindByString(token)
	require.NoError(t, err)
	assert.True(t, record.Dead())

	// 幂等，再次登出仍然成功
	w = doLogout(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
