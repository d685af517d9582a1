package middleware

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

func setupAuthTest(t *testing.T) {
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
}

// adminRouter 受管理员中间件保护的路由，记录处理函数是否被执行
func adminRouter(ran *bool) *gin.Engine {
	r := gin.New()
	r.POST("/admin", JwtAdmin(), func(c *gin.Context) {
		*ran = true
		res.Success(c, gin.H{"ok": true})
	})
	return r
}

func mustToken(t *testing.T, role ctypes.UserRole) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(utils.PayLoad{
		Account: "someone",
		Role:    role,
		UserID:  1,
	})
	require.NoError(t, err)
	return token
}

func TestJwtAdminRejectsNonAdminBeforeHandler(t *testing.T) {
	setupAuthTest(t)

	ran := false
	r := adminRouter(&ran)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, ctypes.RoleUser))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, ran, "非管理员请求不应进入处理函数")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 响应体必须是单个JSON对象，不能拼接两段响应
	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, res.PermissionDenied, body.Code)
}

func TestJwtAdminAllowsAdmin(t *testing.T) {
	setupAuthTest(t)

	ran := false
	r := adminRouter(&ran)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, ctypes.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.True(t, ran)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJwtAdminMissingToken(t *testing.T) {
	setupAuthTest(t)

	ran := false
	r := adminRouter(&ran)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, ran)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, res.TokenMissing, body.Code)
}

func TestJwtAuthRejectsRevokedToken(t *testing.T) {
	setupAuthTest(t)

	token := mustToken(t, ctypes.RoleAdmin)
	require.NoError(t, models.TokenCreate(1, token))
	record, err := models.TokenFindByString(token)
	require.NoError(t, err)
	require.NoError(t, record.Revoke())

	ran := false
	r := gin.New()
	r.GET("/me", JwtAuth(), func(c *gin.Context) {
		ran = true
		res.Success(c, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, ran)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, res.TokenInvalid, body.Code)
}
