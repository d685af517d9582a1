package user

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"
	"plants/service/redis_ser"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLogout 登出。无令牌或未知令牌按幂等处理，不报错
func (u *User) UserLogout(c *gin.Context) {
	accessToken := c.GetHeader("Authorization")

	if len(accessToken) < 7 || accessToken[:7] != "Bearer " {
		res.SuccessWithMsg(c, nil, "已登出")
		return
	}
	accessToken = accessToken[7:]

	var userID uint
	record, err := models.TokenFindByString(accessToken)
	switch {
	case err == nil:
		if err := record.Revoke(); err != nil {
			global.Log.Error("record.Revoke() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "登出失败")
			return
		}
		userID = record.UserID
	case errors.Is(err, models.ErrTokenNotFound):
		// 未入库的令牌仍然拉黑，尽力取用户ID删refresh token
		if claims, parseErr := utils.ParseToken(accessToken); parseErr == nil {
			userID = claims.UserID
		}
	default:
		global.Log.Error("models.TokenFindByString() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "登出失败")
		return
	}

	if err := redis_ser.InvalidateTokens(userID, accessToken); err != nil {
		global.Log.Error("redis_ser.InvalidateTokens() failed", zap.String("error", err.Error()))
		res.Error(c, res.CacheError, "登出失败")
		return
	}

	global.Log.Info("用户退出成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.SuccessWithMsg(c, nil, "已登出")
}
