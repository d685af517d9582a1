package middleware

import (
	"net/http"

	"plants/global"
	"plants/models"
	"plants/models/ctypes"
	"plants/models/res"
	"plants/service/redis_ser"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// authenticate 校验请求携带的 Access Token，失败时写响应并中断请求
func authenticate(c *gin.Context) (*utils.CustomClaims, bool) {
	tokenString := c.Request.Header.Get("Authorization")
	// 检查 Token 是否存在并去除 "Bearer " 前缀
	if len(tokenString) < 7 || tokenString[:7] != "Bearer " {
		res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "缺少token")
		c.Abort()
		return nil, false
	}
	tokenString = tokenString[7:]

	// 检查令牌是否在黑名单中
	isBlacklisted, err := redis_ser.IsTokenBlacklisted(tokenString)
	if err != nil {
		global.Log.Error("检查令牌黑名单失败", zap.Error(err))
		res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
		c.Abort()
		return nil, false
	}
	if isBlacklisted {
		res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token已失效")
		c.Abort()
		return nil, false
	}

	// 登出过的令牌在数据库中有作废标记
	dead, err := models.TokenIsDead(tokenString)
	if err != nil {
		global.Log.Error("检查令牌状态失败", zap.Error(err))
		res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
		c.Abort()
		return nil, false
	}
	if dead {
		res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token已失效")
		c.Abort()
		return nil, false
	}

	// 解析 Token
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		if err.Error() == "token已过期" {
			res.HttpError(c, http.StatusUnauthorized, res.TokenExpired, "token已过期")
			c.Abort()
			return nil, false
		}
		res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token无效")
		c.Abort()
		return nil, false
	}

	// 将用户信息保存到上下文中，方便后续使用
	c.Set("claims", claims)
	return claims, true
}

// JwtAuth 中间件，负责验证 Token 并将用户信息存储到上下文
func JwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// JwtAdmin 中间件，校验 Token 且要求管理员角色，校验不过不会进入后续处理
func JwtAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}
		if claims.Role != ctypes.RoleAdmin {
			res.HttpError(c, http.StatusForbidden, res.PermissionDenied, "权限不足")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims 从上下文取出当前用户信息
func GetClaims(c *gin.Context) (*utils.CustomClaims, bool) {
	_claims, ok := c.Get("claims")
	if !ok {
		return nil, false
	}
	claims, ok := _claims.(*utils.CustomClaims)
	return claims, ok
}
