package router

import (
	"plants/api"
	"plants/middleware"
)

func (router RouterGroup) CommentRouter() {
	commentRouter := router.Group("comment")
	commentApi := api.AppGroupApp.CommentApi
	commentRouter.GET(":owner/:id", commentApi.CommentList)
	commentRouter.POST(":owner/:id", middleware.JwtAuth(), commentApi.CommentCreate)
}
