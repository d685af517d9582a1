package user

import (
	"errors"

	"plants/global"
	"plants/middleware"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserInfo 获取当前登录用户信息
func (u *User) UserInfo(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}

	user, err := models.UserFindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			res.Error(c, res.UserNotFound, "用户不存在")
			return
		}
		global.Log.Error("models.UserFindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查找用户失败")
		return
	}

	res.Success(c, user)
}
