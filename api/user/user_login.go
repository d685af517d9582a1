package user

import (
	"time"

	"plants/api/system"
	"plants/global"
	"plants/models"
	"plants/models/res"
	"plants/service/redis_ser"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserLoginRequest struct {
	Account   string `json:"account" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=50"`
	Captcha   string `json:"captcha"`
	CaptchaId string `json:"captcha_id"`
}

type UserLoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         models.UserModel `json:"user"`
}

func (u *User) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if global.Config.Captcha.Open {
		if req.Captcha == "" || req.CaptchaId == "" || !system.Store.Verify(req.CaptchaId, req.Captcha, true) {
			res.Error(c, res.InvalidParameter, "验证码错误")
			return
		}
	}

	var user models.UserModel
	if err := user.FindByAccount(req.Account); err != nil {
		res.Error(c, res.UserNotFound, "用户名或密码错误")
		return
	}

	if !user.ValidatePassword(req.Password) {
		res.Error(c, res.PasswordError, "用户名或密码错误")
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

	// 签发记录入库，登出时据此作废
	if err := models.TokenCreate(user.ID, accessToken); err != nil {
		global.Log.Error("models.TokenCreate() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "记录令牌失败")
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		global.Log.Error("utils.GenerateRefreshToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成refresh token失败")
		return
	}

	expiration := time.Duration(global.Config.Jwt.Expires) * 24 * time.Hour
	if err := redis_ser.SetRefreshToken(user.ID, refreshToken, expiration); err != nil {
		global.Log.Error("redis_ser.SetRefreshToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.CacheError, "设置 refresh token 失败")
		return
	}

	c.Request.Header.Set("Authorization", "Bearer "+accessToken)
	global.Log.Info("用户登录成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}
