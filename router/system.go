package router

import (
	"plants/api"
)

func (router RouterGroup) SystemRouter() {
	systemRouter := router.Group("system")
	systemApi := api.AppGroupApp.SystemApi
	systemRouter.GET("captcha", systemApi.CaptchaCreate)
	systemRouter.POST("refreshToken", systemApi.RefreshToken)
}
