package router

import (
	"plants/api"
	"plants/middleware"
)

func (router RouterGroup) ArticleRouter() {
	articleRouter := router.Group("article")
	articleApi := api.AppGroupApp.ArticleApi
	articleRouter.GET("", articleApi.ArticleList)
	articleRouter.GET("search", articleApi.ArticleSearch)
	articleRouter.GET(":id", articleApi.ArticleDetail)
	articleRouter.POST("", middleware.JwtAdmin(), articleApi.ArticleCreate)
	articleRouter.PUT(":id", middleware.JwtAdmin(), articleApi.ArticleUpdate)
	articleRouter.DELETE(":id", middleware.JwtAdmin(), articleApi.ArticleDelete)
}
