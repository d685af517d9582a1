package system

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

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken 用 refresh token 换新的 access token
func (s *System) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	claims, err := utils.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		res.Error(c, res.TokenInvalid, "refresh token无效")
		return
	}

	// 与Redis中的存根比对，登出后的refresh token不能再换票
	stored, err := redis_ser.GetRefreshToken(claims.UserID)
	if err != nil || (stored != "" && stored != req.RefreshToken) {
		res.Error(c, res.TokenInvalid, "refresh token已失效")
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

	accessToken, err := utils.GenerateAccessToken(utils.PayLoad{
		Account: user.Account,
		Role:    user.Role,
		UserID:  user.ID,
	})
	if err != nil {
		global.Log.Error("utils.GenerateAccessToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成access token失败")
		return
	}

	if err := models.TokenCreate(user.ID, accessToken); err != nil {
		global.Log.Error("models.TokenCreate() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "记录令牌失败")
		return
	}

	res.Success(c, accessToken)
}
