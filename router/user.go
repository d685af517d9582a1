package router

import (
	"plants/api"
	"plants/middleware"
)

func (router RouterGroup) UserRouter() {
	userRouter := router.Group("user")
	userApi := api.AppGroupApp.UserApi
	userRouter.POST("login", userApi.UserLogin)
	userRouter.POST("logout", userApi.UserLogout)
	userRouter.GET("info", middleware.JwtAuth(), userApi.UserInfo)
	userRouter.GET("list", middleware.JwtAdmin(), userApi.UserList)
	userRouter.POST("", middleware.JwtAdmin(), userApi.UserCreate)
	userRouter.DELETE(":id", middleware.JwtAdmin(), userApi.UserDelete)
}
