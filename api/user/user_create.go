package user

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/ctypes"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserCreateRequest struct {
	Nickname string          `json:"nick_name" binding:"required"`
	Account  string          `json:"account" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Email    string          `json:"email"`
	Role     ctypes.UserRole `json:"role" binding:"required"`
}

func (u *User) UserCreate(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	user := models.UserModel{
		Nickname: req.Nickname,
		Account:  req.Account,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	}
	if err := user.Create(c.ClientIP()); err != nil {
		if errors.Is(err, models.ErrUserExists) {
			res.Error(c, res.UserAlreadyExists, "用户名或账号已存在")
			return
		}
		global.Log.Error("user.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建用户失败")
		return
	}

	global.Log.Info("创建用户成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, user)
}
