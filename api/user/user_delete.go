package user

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserDeleteRequest struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

func (u *User) UserDelete(c *gin.Context) {
	var req UserDeleteRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	user, err := models.UserFindByID(req.ID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			res.Error(c, res.UserNotFound, "用户不存在")
			return
		}
		global.Log.Error("models.UserFindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查找用户失败")
		return
	}

	if err := user.Delete(); err != nil {
		global.Log.Error("user.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除用户失败")
		return
	}

	global.Log.Info("删除用户成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
